// Package resolver implements Hawk's symbol resolution: an append-only
// symbol table of scopes built by a single walk over the AST, and
// re-entered (never rebuilt) by the passes that follow it.
package resolver

import (
	"fmt"

	"github.com/AlexCouch/hawk-lang/ast"
	"github.com/AlexCouch/hawk-lang/diag"
)

// Symbol is one declared name, carrying the span of its declaring Var
// for use in downstream diagnostics.
type Symbol struct {
	Ident string
	Start diag.Pos
	End   diag.Pos
}

// Scope is one Let's bindings, labeled with a stable identifier.
type Scope struct {
	Ident   string
	Symbols []Symbol
}

// Table is the append-only, ordered list of scopes the resolver builds
// and every later pass re-enters in the same pre-order traversal.
type Table struct {
	Scopes []*Scope
	cursor int
	nonce  int
}

// NewTable returns an empty table positioned before any scope.
func NewTable() *Table {
	return &Table{cursor: -1}
}

// CreateScope appends a new scope with a unique label and enters it.
// Only the resolver pass calls this; later passes use EnterScope.
func (t *Table) CreateScope() *Scope {
	s := &Scope{Ident: fmt.Sprintf("let_%d", t.nonce)}
	t.nonce++
	t.Scopes = append(t.Scopes, s)
	t.cursor = len(t.Scopes) - 1
	return s
}

// EnterScope moves the cursor one scope forward (the inverse of
// LeaveScope), for passes re-walking a tree whose scopes already exist.
func (t *Table) EnterScope() *Scope {
	t.cursor++
	return t.Scopes[t.cursor]
}

// LeaveScope backs the cursor up to the enclosing scope.
func (t *Table) LeaveScope() {
	t.cursor--
}

// Define adds a symbol to the current scope; shadowing prior symbols of
// the same name in the same scope is allowed.
func (t *Table) Define(sym Symbol) {
	s := t.Scopes[t.cursor]
	s.Symbols = append(s.Symbols, sym)
}

// FindSymbol resolves name to the lexically nearest declaration, walking
// outward from the current scope.
func (t *Table) FindSymbol(name string) (*Symbol, bool) {
	for i := t.cursor; i >= 0; i-- {
		scope := t.Scopes[i]
		for j := len(scope.Symbols) - 1; j >= 0; j-- {
			if scope.Symbols[j].Ident == name {
				return &scope.Symbols[j], true
			}
		}
	}
	return nil, false
}

// Resolve walks root (a Let node) building the symbol table, reporting
// a diagnostic for every undeclared reference.
func Resolve(root *ast.Node) (*Table, diag.Diagnostics) {
	t := NewTable()
	var diags diag.Diagnostics

	var visitLet func(n *ast.Node)
	var visitExpr func(n *ast.Node)

	visitLet = func(n *ast.Node) {
		t.CreateScope()
		var do *ast.Node
		for _, c := range n.Children {
			switch c.Kind {
			case ast.Var:
				name := c.Children[0].Data.(string)
				t.Define(Symbol{Ident: name, Start: c.Start, End: c.End})
				visitExpr(c.Children[1])
			case ast.Do:
				do = c
			}
		}
		if do != nil {
			visitExpr(do.Children[0])
		}
		t.LeaveScope()
	}

	visitExpr = func(n *ast.Node) {
		switch n.Kind {
		case ast.VarRef:
			name := n.Data.(string)
			if _, ok := t.FindSymbol(name); !ok {
				diags.Add(diag.Span{Start: n.Start, End: n.End}, "Use of undeclared symbol: %s", name)
			}
		case ast.IntLiteral:
		case ast.Let:
			visitLet(n)
		default:
			if ast.BinaryKinds[n.Kind] {
				visitExpr(n.Children[0])
				visitExpr(n.Children[1])
			}
		}
	}

	visitLet(root)
	return t, diags
}
