package lexer

import (
	"testing"

	"github.com/AlexCouch/hawk-lang/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	l := New("let a = 5 do a", "<test>")
	tokens, diags := l.Scan()
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	want := []token.Kind{
		token.Identifier, token.Identifier, token.Equal, token.Integer,
		token.Identifier, token.Identifier,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
	if tokens[0].Data.(string) != "let" {
		t.Errorf("token 0 data = %v, want let", tokens[0].Data)
	}
	if tokens[3].Data.(int32) != 5 {
		t.Errorf("token 3 data = %v, want 5", tokens[3].Data)
	}
}

func TestScanPunctuation(t *testing.T) {
	l := New("+-*/", "<test>")
	tokens, diags := l.Scan()
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	want := []token.Kind{token.Plus, token.Hyphen, token.Star, token.FSlash}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTabAdvancesColumnByThree(t *testing.T) {
	l := New("\ta", "<test>")
	tokens, diags := l.Scan()
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	if tokens[0].Start.Col != 4 {
		t.Errorf("col after tab = %d, want 4", tokens[0].Start.Col)
	}
}

func TestIntegerOverflowAbortsTokenizing(t *testing.T) {
	l := New("99999999999 a", "<test>")
	tokens, diags := l.Scan()
	if !diags.HasErrors() {
		t.Fatalf("expected overflow diagnostic")
	}
	if len(tokens) != 0 {
		t.Errorf("expected tokenizing to abort with no tokens, got %v", tokens)
	}
}

func TestUnrecognizedCharacterSkippedSilently(t *testing.T) {
	l := New("a \x01 b", "<test>")
	tokens, diags := l.Scan()
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
}
