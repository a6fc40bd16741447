package navigation

import (
	sitter "github.com/smacker/go-tree-sitter"

	naverr "github.com/TLATER/mcshader-lsp/internal/errors"
	"github.com/TLATER/mcshader-lsp/internal/parser"
)

// The structural patterns carry no identifier text: each captures every
// candidate declarator or call site, and runQuery filters captures by exact
// byte equality against the wanted identifier in Go. Source tokens therefore
// never reach the query compiler, which removes the whole class of
// pattern-injection failures that string-templated queries have.
const (
	// functionDefPattern matches function declarators, capturing the name.
	functionDefPattern = `(function_declarator (identifier) @function)`

	// functionRefPattern matches call sites, capturing the callee name.
	functionRefPattern = `(call_expression (identifier) @call)`

	// variableDefPattern matches the three declaration forms a variable or
	// parameter can be introduced by, capturing the declared name.
	variableDefPattern = `[
  (init_declarator declarator: (identifier) @variable)
  (parameter_declaration declarator: (identifier) @variable)
  (declaration declarator: (identifier) @variable)
]`
)

// querySet holds the compiled structural patterns, built once per engine.
type querySet struct {
	functionDefs *sitter.Query
	functionRefs *sitter.Query
	variableDefs *sitter.Query
}

// compileQueries compiles every pattern against the shader grammar.
// Compilation failure is propagated, never swallowed.
func compileQueries() (*querySet, error) {
	lang := parser.Language()

	compile := func(pattern string) (*sitter.Query, error) {
		q, err := sitter.NewQuery([]byte(pattern), lang)
		if err != nil {
			return nil, naverr.New(naverr.QueryCompileFailure, "failed to compile pattern", err)
		}
		return q, nil
	}

	functionDefs, err := compile(functionDefPattern)
	if err != nil {
		return nil, err
	}
	functionRefs, err := compile(functionRefPattern)
	if err != nil {
		return nil, err
	}
	variableDefs, err := compile(variableDefPattern)
	if err != nil {
		return nil, err
	}

	return &querySet{
		functionDefs: functionDefs,
		functionRefs: functionRefs,
		variableDefs: variableDefs,
	}, nil
}

// Close releases the compiled queries.
func (qs *querySet) Close() {
	qs.functionDefs.Close()
	qs.functionRefs.Close()
	qs.variableDefs.Close()
}

// runQuery executes a compiled pattern over subtreeRoot and returns every
// captured node whose text equals want. An empty want keeps all captures.
// Results follow the query cursor's traversal order.
func runQuery(q *sitter.Query, subtreeRoot *sitter.Node, source []byte, want string) []*sitter.Node {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	cursor.Exec(q, subtreeRoot)

	var nodes []*sitter.Node
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		for _, capture := range match.Captures {
			if want != "" && capture.Node.Content(source) != want {
				continue
			}
			nodes = append(nodes, capture.Node)
		}
	}
	return nodes
}
