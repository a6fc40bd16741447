// Package navigation answers "where is this symbol defined?" and "where is
// it referenced?" for shader sources, by querying a freshly parsed syntax
// tree per request. It keeps no symbol table; structural context is
// recomputed from the live tree every time.
package navigation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/TLATER/mcshader-lsp/internal/config"
	"github.com/TLATER/mcshader-lsp/internal/linemap"
	"github.com/TLATER/mcshader-lsp/internal/parser"
	"github.com/TLATER/mcshader-lsp/internal/paths"
)

// Engine resolves navigation requests against single-file snapshots. One
// engine owns one parser instance; requests are synchronous and the parser
// is exclusively held while a snapshot is (re)built.
type Engine struct {
	parser     *parser.Parser
	queries    *querySet
	logger     *slog.Logger
	maxMatches int
}

// NewEngine compiles the structural patterns and wraps the given parser.
func NewEngine(cfg *config.Config, p *parser.Parser, logger *slog.Logger) (*Engine, error) {
	queries, err := compileQueries()
	if err != nil {
		return nil, err
	}

	return &Engine{
		parser:     p,
		queries:    queries,
		logger:     logger,
		maxMatches: cfg.Navigation.MaxMatches,
	}, nil
}

// Close releases the compiled queries. The parser is owned by the caller.
func (e *Engine) Close() {
	e.queries.Close()
}

// FindDefinitions resolves the definition sites of the symbol under the
// cursor. found is false when the cursor is not on a navigable symbol;
// found with an empty slice means the search ran and came up empty.
func (e *Engine) FindDefinitions(ctx context.Context, path string, pos linemap.Position) (locations []Location, found bool, err error) {
	logger := e.requestLogger("definition", path, pos)

	pc, err := parser.NewContext(ctx, e.parser, path)
	if err != nil {
		return nil, false, err
	}
	defer pc.Close()

	node, err := findNodeAt(pc, pos)
	if err != nil {
		return nil, false, err
	}
	if node == nil || node.Parent() == nil {
		return nil, false, nil
	}
	parent := node.Parent()

	logger.Debug("classifying node under cursor",
		"kind", node.Type(),
		"parentKind", parent.Type(),
	)

	var nodes []*sitter.Node
	switch definitionStrategy(node.Type(), parent.Type()) {
	case strategyGlobal:
		nodes = runQuery(e.queries.functionDefs, pc.RootNode(), pc.Source(), node.Content(pc.Source()))
	case strategyClimb:
		nodes = e.climbSearch(logger, pc, node)
	default:
		return nil, false, nil
	}

	locations, err = e.collectLocations(path, nodes)
	if err != nil {
		return nil, false, err
	}

	logger.Debug("finished searching for definitions", "count", len(locations))
	return locations, true, nil
}

// FindReferences resolves the call sites of the function whose declarator is
// under the cursor. Same found/err contract as FindDefinitions.
func (e *Engine) FindReferences(ctx context.Context, path string, pos linemap.Position) (locations []Location, found bool, err error) {
	logger := e.requestLogger("references", path, pos)

	pc, err := parser.NewContext(ctx, e.parser, path)
	if err != nil {
		return nil, false, err
	}
	defer pc.Close()

	node, err := findNodeAt(pc, pos)
	if err != nil {
		return nil, false, err
	}
	if node == nil || node.Parent() == nil {
		return nil, false, nil
	}

	if referenceStrategy(node.Type(), node.Parent().Type()) != strategyGlobal {
		return nil, false, nil
	}

	nodes := runQuery(e.queries.functionRefs, pc.RootNode(), pc.Source(), node.Content(pc.Source()))

	locations, err = e.collectLocations(path, nodes)
	if err != nil {
		return nil, false, err
	}

	logger.Debug("finished searching for references", "count", len(locations))
	return locations, true, nil
}

// Symbols lists every function declarator in the file, in tree order.
func (e *Engine) Symbols(ctx context.Context, path string) ([]Symbol, error) {
	pc, err := parser.NewContext(ctx, e.parser, path)
	if err != nil {
		return nil, err
	}
	defer pc.Close()

	uri, err := paths.FileURI(path)
	if err != nil {
		return nil, err
	}

	nodes := e.capNodes(runQuery(e.queries.functionDefs, pc.RootNode(), pc.Source(), ""))

	symbols := make([]Symbol, 0, len(nodes))
	for _, node := range nodes {
		symbols = append(symbols, Symbol{
			Name:     node.Content(pc.Source()),
			Location: locationFor(uri, node),
		})
	}
	return symbols, nil
}

// climbSearch looks for variable/parameter declarations by walking ancestor
// scopes outward from the use site. The first ancestor subtree that yields
// any match wins and the climb stops there, so a declaration closer to the
// use site always shadows one farther away. With no match up to file scope
// the result is empty, not an error.
func (e *Engine) climbSearch(logger *slog.Logger, pc *parser.Context, useSite *sitter.Node) []*sitter.Node {
	text := useSite.Content(pc.Source())

	for ancestor := useSite.Parent(); ancestor != nil; ancestor = ancestor.Parent() {
		nodes := runQuery(e.queries.variableDefs, ancestor, pc.Source(), text)
		if len(nodes) > 0 {
			logger.Debug("scope climb matched",
				"scopeKind", ancestor.Type(),
				"matches", len(nodes),
			)
			return nodes
		}
	}

	logger.Debug("scope climb exhausted ancestors", "identifier", text)
	return nil
}

// collectLocations converts captured nodes into protocol locations, applying
// the configured result cap.
func (e *Engine) collectLocations(path string, nodes []*sitter.Node) ([]Location, error) {
	uri, err := paths.FileURI(path)
	if err != nil {
		return nil, err
	}

	nodes = e.capNodes(nodes)

	locations := make([]Location, 0, len(nodes))
	for _, node := range nodes {
		locations = append(locations, locationFor(uri, node))
	}
	return locations, nil
}

// capNodes truncates a result set to the configured maximum. Zero means
// unlimited.
func (e *Engine) capNodes(nodes []*sitter.Node) []*sitter.Node {
	if e.maxMatches > 0 && len(nodes) > e.maxMatches {
		return nodes[:e.maxMatches]
	}
	return nodes
}

// requestLogger tags a logger with a fresh request ID and the request shape.
func (e *Engine) requestLogger(op, path string, pos linemap.Position) *slog.Logger {
	return e.logger.With(
		"requestId", uuid.NewString(),
		"op", op,
		"path", path,
		"line", pos.Line,
		"character", pos.Character,
	)
}
