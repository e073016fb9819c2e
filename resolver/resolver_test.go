package resolver

import (
	"testing"

	"github.com/AlexCouch/hawk-lang/lexer"
	"github.com/AlexCouch/hawk-lang/parser"
)

func resolveSource(t *testing.T, src string) (*Table, bool) {
	t.Helper()
	tokens, lexDiags := lexer.New(src, "<test>").Scan()
	if lexDiags.HasErrors() {
		t.Fatalf("unexpected lex diagnostics: %v", lexDiags.All())
	}
	root, parseDiags := parser.New(tokens, "<test>").Parse()
	if parseDiags.HasErrors() {
		t.Fatalf("unexpected parse diagnostics: %v", parseDiags.All())
	}
	table, diags := Resolve(root)
	return table, diags.HasErrors()
}

func TestResolveDeclaredReferenceIsClean(t *testing.T) {
	_, hasErrors := resolveSource(t, "let a = 5 do a")
	if hasErrors {
		t.Fatalf("expected no diagnostics for a declared reference")
	}
}

func TestResolveUndeclaredReferenceIsReported(t *testing.T) {
	_, hasErrors := resolveSource(t, "let a = b do a")
	if !hasErrors {
		t.Fatalf("expected a diagnostic for an undeclared reference")
	}
}

func TestResolveVariableInScopeForLaterSiblings(t *testing.T) {
	_, hasErrors := resolveSource(t, "let a = 5 b = a do b")
	if hasErrors {
		t.Fatalf("a later sibling referencing an earlier one should resolve cleanly")
	}
}

func TestResolveShadowingPrefersNearestDeclaration(t *testing.T) {
	table, hasErrors := resolveSource(t, "let a = 5 b = let a = 10 do a do b")
	if hasErrors {
		t.Fatalf("unexpected diagnostics")
	}
	// Two scopes were created: the outer let and the nested one.
	if len(table.Scopes) != 2 {
		t.Fatalf("got %d scopes, want 2", len(table.Scopes))
	}
	// Re-entered at the nested scope, a resolves to the nested declaration.
	table.EnterScope()
	inner := table.EnterScope()
	sym, ok := table.FindSymbol("a")
	if !ok || sym != &inner.Symbols[0] {
		t.Errorf("FindSymbol(a) = %+v, want the nested let's declaration", sym)
	}
}
