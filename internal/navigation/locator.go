package navigation

import (
	sitter "github.com/smacker/go-tree-sitter"

	naverr "github.com/TLATER/mcshader-lsp/internal/errors"
	"github.com/TLATER/mcshader-lsp/internal/linemap"
	"github.com/TLATER/mcshader-lsp/internal/parser"
)

// findNodeAt resolves the smallest named syntax node under (or adjacent to)
// the cursor. Cursors sit at character boundaries, so a single-byte probe
// decides which side of the boundary holds the identifier: on a
// non-alphabetic byte the cursor is just past an identifier's last character
// and we look behind, otherwise we look ahead. Exact only for ASCII
// identifier characters.
//
// Returns (nil, nil) when no named node covers the adjusted range; an error
// only for positions outside the snapshot.
func findNodeAt(pc *parser.Context, pos linemap.Position) (*sitter.Node, error) {
	offset, err := pc.LineMap().OffsetFor(pos)
	if err != nil {
		return nil, naverr.New(naverr.PositionOutOfRange, "cursor outside source text", err)
	}

	source := pc.Source()
	lookBehind := offset >= len(source) || !isASCIIAlphabetic(source[offset])

	start := sitter.Point{Row: pos.Line, Column: pos.Character}
	end := start

	if lookBehind {
		if start.Column == 0 {
			// Nothing before the cursor on this line to look behind at.
			return nil, nil
		}
		start.Column--
	} else {
		end.Column++
	}

	node := pc.RootNode().NamedDescendantForPointRange(start, end)
	if node == nil {
		return nil, nil
	}
	return node, nil
}

func isASCIIAlphabetic(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
