// Package types implements Hawk's type inferencer: a typemap built by
// re-walking the AST with the resolver's symbol table re-entered (not
// rebuilt), propagating a concrete type up from each Var's initializer.
package types

import (
	"github.com/AlexCouch/hawk-lang/ast"
	"github.com/AlexCouch/hawk-lang/diag"
	"github.com/AlexCouch/hawk-lang/resolver"
)

// NodeKind distinguishes a typemap Leaf (no contributing children yet)
// from a Branch (at least one child attached by promotion).
type NodeKind int

const (
	Leaf NodeKind = iota
	Branch
)

// Type is a resolved or not-yet-resolved type. Dyn is the tag for a
// not-yet-inferred node; Int is the only concrete type Hawk has.
type Type struct {
	Name string
}

var Dyn = &Type{Name: "dyn"}
var Int = &Type{Name: "int"}

// Node is one typemap entry, named for the Var that owns it.
type Node struct {
	Symbol   string
	Type     *Type
	Kind     NodeKind
	Start    diag.Pos
	End      diag.Pos
	Children []*Node
}

// Map is the typemap: a root list growing in declaration order as each
// Var is visited.
type Map struct {
	Roots []*Node
}

func (m *Map) newLeaf(name string, start, end diag.Pos) *Node {
	n := &Node{Symbol: name, Type: Dyn, Kind: Leaf, Start: start, End: end}
	m.Roots = append(m.Roots, n)
	return n
}

func (m *Map) addChild(target, child *Node) {
	target.Kind = Branch
	target.Children = append(target.Children, child)
}

// findNode implements the quirk named in the spec's open questions: it
// scans root declarations back-to-front (the "last occurrence
// globally"), and on a miss falls through into branch children, which
// can alias the "same" name across scopes. This is preserved literally
// rather than made scope-aware.
func (m *Map) findNode(name string) (*Node, bool) {
	for i := len(m.Roots) - 1; i >= 0; i-- {
		if m.Roots[i].Symbol == name {
			return m.Roots[i], true
		}
	}
	for i := len(m.Roots) - 1; i >= 0; i-- {
		if n, ok := findInChildren(m.Roots[i], name); ok {
			return n, true
		}
	}
	return nil, false
}

func findInChildren(n *Node, name string) (*Node, bool) {
	for i := len(n.Children) - 1; i >= 0; i-- {
		c := n.Children[i]
		if c.Symbol == name {
			return c, true
		}
		if found, ok := findInChildren(c, name); ok {
			return found, true
		}
	}
	return nil, false
}

type inferer struct {
	table *resolver.Table
	m     *Map
	diags diag.Diagnostics
}

// Infer builds the typemap for root, re-entering table's scopes in the
// same pre-order the resolver built them in.
func Infer(root *ast.Node, table *resolver.Table) (*Map, diag.Diagnostics) {
	inf := &inferer{table: table, m: &Map{}}
	inf.visitLet(root, nil)
	return inf.m, inf.diags
}

// visitLet enters the scope the resolver already created for this Let,
// visits each Var (registering and then typing its target), and its Do
// (contributing to outerTarget when this Let is itself an initializer).
func (inf *inferer) visitLet(n *ast.Node, outerTarget *Node) {
	inf.table.EnterScope()
	var do *ast.Node
	for _, c := range n.Children {
		switch c.Kind {
		case ast.Var:
			name := c.Children[0].Data.(string)
			target := inf.m.newLeaf(name, c.Start, c.End)
			inf.visitInit(c.Children[1], target)
		case ast.Do:
			do = c
		}
	}
	if do != nil {
		if outerTarget != nil {
			inf.visitInit(do.Children[0], outerTarget)
		} else {
			// top-level Do contributes to no variable; still walk it so
			// that dyn-reference diagnostics at its use sites surface.
			throwaway := &Node{Symbol: "", Type: Dyn, Kind: Leaf}
			inf.visitInit(do.Children[0], throwaway)
		}
	}
	inf.table.LeaveScope()
}

// visitInit resolves target's type from expr, with the enclosing Var's
// typemap node passed down as target: IntLiteral types directly, VarRef promotes from an
// already-typed reference, a nested Let recurses into its own binding
// body, and a binary node visits child[0] twice (the reference
// inferencer's own quirk, preserved rather than fixed).
func (inf *inferer) visitInit(expr *ast.Node, target *Node) {
	switch expr.Kind {
	case ast.IntLiteral:
		target.Type = Int

	case ast.VarRef:
		name := expr.Data.(string)
		ref, ok := inf.m.findNode(name)
		if !ok {
			return
		}
		if ref.Type == Dyn {
			inf.diags.Add(diag.Span{Start: expr.Start, End: expr.End}, "cannot infer type of var ref")
			inf.diags.Add(diag.Span{Start: ref.Start, End: ref.End}, "because %s has not been typed", name)
			return
		}
		inf.m.addChild(target, ref)
		target.Type = ref.Type

	case ast.Let:
		inf.visitLet(expr, target)

	default:
		if ast.BinaryKinds[expr.Kind] {
			inf.visitInit(expr.Children[0], target)
			inf.visitInit(expr.Children[0], target)
		}
	}
}
