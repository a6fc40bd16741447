package navigation

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/TLATER/mcshader-lsp/internal/linemap"
)

// Range is a half-open span between two zero-based positions, matching
// editor-protocol range semantics.
type Range struct {
	Start linemap.Position `json:"start"`
	End   linemap.Position `json:"end"`
}

// Location identifies a navigable result: a file URI plus the range the
// symbol occupies. Result sets follow tree traversal order; no ranking is
// implied.
type Location struct {
	URI   string `json:"uri"`
	Range Range  `json:"range"`
}

// Symbol is a named declaration in a file, as listed by document-symbol
// requests.
type Symbol struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

// locationFor converts a syntax node's span into a Location.
func locationFor(uri string, node *sitter.Node) Location {
	start := node.StartPoint()
	end := node.EndPoint()
	return Location{
		URI: uri,
		Range: Range{
			Start: linemap.Position{Line: start.Row, Character: start.Column},
			End:   linemap.Position{Line: end.Row, Character: end.Column},
		},
	}
}
