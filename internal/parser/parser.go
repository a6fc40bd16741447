// Package parser owns the tree-sitter parser instance and builds per-file
// parse contexts for navigation requests.
package parser

import (
	"context"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	naverr "github.com/TLATER/mcshader-lsp/internal/errors"
)

// Language returns the grammar used for shader sources. Tree-sitter ships no
// first-party GLSL binding; the C++ grammar produces the node kinds
// navigation relies on (function_declarator, init_declarator,
// parameter_declaration, declaration, call_expression, ...) for the GLSL
// subset found in shader packs.
func Language() *sitter.Language {
	return cpp.GetLanguage()
}

// Parser wraps a tree-sitter parser instance. The underlying instance is
// mutable and must be held exclusively during a parse; Parse serializes
// callers so one Parser can be shared across requests.
type Parser struct {
	mu     sync.Mutex
	parser *sitter.Parser
}

// New creates a parser configured for shader sources.
func New() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(Language())
	return &Parser{parser: p}
}

// Parse parses source into a new syntax tree. The tree is independent of the
// parser once returned and stays read-only for its lifetime.
func (p *Parser) Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, naverr.New(naverr.ParseFailure, "failed to parse source", err)
	}
	if tree == nil {
		return nil, naverr.Newf(naverr.ParseFailure, "parser produced no tree")
	}
	return tree, nil
}

// Close releases the parser instance.
func (p *Parser) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.parser.Close()
}
