package hawk

import "testing"

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int32
	}{
		{"single binding", "let a = 5 do a", 5},
		{"right-associative precedence", "let a = 5 b = 3 c = 8 do a + b * c", 29},
		{"nested let as sibling initializer", "let a = 5 b = let c = 10 do c + a do b * 2", 30},
		{"nested let as sole initializer", "let a = let b = 5 do b * 2 do a * 2", 20},
		{"self reference in binary", "let a = 5 do a + a", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, diags, err := CompileAndRun(tt.src, "<test>")
			if diags.HasErrors() {
				t.Fatalf("unexpected diagnostics: %v", diags.All())
			}
			if err != nil {
				t.Fatalf("unexpected VM error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEndToEndUndeclaredSymbolProducesDiagnosticNoBytecode(t *testing.T) {
	artifacts, diags := Compile("let a = b do a", "<test>")
	if !diags.HasErrors() {
		t.Fatalf("expected a diagnostic for an undeclared symbol")
	}
	found := false
	for _, d := range diags.All() {
		if d.Message == "Use of undeclared symbol: b" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'Use of undeclared symbol: b', got %v", diags.All())
	}
	if artifacts.Code != nil {
		t.Errorf("expected no bytecode to be produced after a diagnostic halts the pipeline")
	}
}

func TestCompileThenRunIsDeterministic(t *testing.T) {
	artifacts1, diags1 := Compile("let a = 5 b = 3 c = 8 do a + b * c", "<test>")
	artifacts2, diags2 := Compile("let a = 5 b = 3 c = 8 do a + b * c", "<test>")
	if diags1.HasErrors() || diags2.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	if string(artifacts1.Code) != string(artifacts2.Code) {
		t.Fatalf("identical source produced different bytecode")
	}
}
