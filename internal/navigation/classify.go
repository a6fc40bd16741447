package navigation

// strategy selects how to search for a located symbol.
type strategy int

const (
	// strategyNone means the node/parent pair is not navigable.
	strategyNone strategy = iota
	// strategyGlobal searches the whole tree; used for symbols without
	// lexical scoping (free functions).
	strategyGlobal
	// strategyClimb searches ancestor scopes from the use site outward;
	// used for variables and parameters.
	strategyClimb
)

// definitionStrategy classifies a located node for go-to-definition from the
// node's kind and its parent's kind alone. The tables below are the complete
// decision policy; extending navigation to new syntactic contexts means
// adding rows here, not new control flow.
func definitionStrategy(kind, parentKind string) strategy {
	switch parentKind {
	case "call_expression":
		return strategyGlobal
	case "argument_list", "field_expression", "binary_expression",
		"assignment_expression", "return_statement":
		if kind == "identifier" {
			return strategyClimb
		}
	}
	return strategyNone
}

// referenceStrategy classifies a located node for find-references. Only a
// symbol at its declarator is a reference anchor.
func referenceStrategy(kind, parentKind string) strategy {
	if parentKind == "function_declarator" {
		return strategyGlobal
	}
	return strategyNone
}
