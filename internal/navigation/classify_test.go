package navigation

import "testing"

func TestDefinitionStrategy(t *testing.T) {
	tests := []struct {
		kind       string
		parentKind string
		want       strategy
	}{
		{"identifier", "call_expression", strategyGlobal},
		{"field_identifier", "call_expression", strategyGlobal},
		{"identifier", "argument_list", strategyClimb},
		{"identifier", "field_expression", strategyClimb},
		{"identifier", "binary_expression", strategyClimb},
		{"identifier", "assignment_expression", strategyClimb},
		{"identifier", "return_statement", strategyClimb},
		{"number_literal", "argument_list", strategyNone},
		{"identifier", "function_declarator", strategyNone},
		{"comment", "translation_unit", strategyNone},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.parentKind, func(t *testing.T) {
			if got := definitionStrategy(tt.kind, tt.parentKind); got != tt.want {
				t.Errorf("definitionStrategy(%s, %s) = %d, want %d", tt.kind, tt.parentKind, got, tt.want)
			}
		})
	}
}

func TestReferenceStrategy(t *testing.T) {
	if got := referenceStrategy("identifier", "function_declarator"); got != strategyGlobal {
		t.Errorf("declarator should use the global strategy, got %d", got)
	}
	if got := referenceStrategy("identifier", "call_expression"); got != strategyNone {
		t.Errorf("call site is not a reference anchor, got %d", got)
	}
}
