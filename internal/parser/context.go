package parser

import (
	"context"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	naverr "github.com/TLATER/mcshader-lsp/internal/errors"
	"github.com/TLATER/mcshader-lsp/internal/linemap"
)

// Context bundles the source text, syntax tree and line map for exactly one
// file snapshot. The tree is immutable for the lifetime of the context and
// may be read concurrently; rebuilding requires a new Context.
type Context struct {
	path    string
	source  []byte
	tree    *sitter.Tree
	lineMap *linemap.LineMap
}

// NewContext reads path from disk, parses it fully and builds the line map.
func NewContext(ctx context.Context, p *Parser, path string) (*Context, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, naverr.New(naverr.IOFailure, "failed to read "+path, err)
	}
	return NewContextFromSource(ctx, p, path, source)
}

// NewContextFromSource builds a context over an in-memory snapshot.
func NewContextFromSource(ctx context.Context, p *Parser, path string, source []byte) (*Context, error) {
	tree, err := p.Parse(ctx, source)
	if err != nil {
		return nil, err
	}

	return &Context{
		path:    path,
		source:  source,
		tree:    tree,
		lineMap: linemap.New(source),
	}, nil
}

// Path returns the file path this snapshot was read from.
func (c *Context) Path() string {
	return c.path
}

// Source returns the raw source bytes. Callers must not mutate them.
func (c *Context) Source() []byte {
	return c.source
}

// RootNode returns the root of the syntax tree.
func (c *Context) RootNode() *sitter.Node {
	return c.tree.RootNode()
}

// LineMap returns the position map for this snapshot.
func (c *Context) LineMap() *linemap.LineMap {
	return c.lineMap
}

// Close releases the syntax tree. The context must not be used afterwards.
func (c *Context) Close() {
	c.tree.Close()
}
