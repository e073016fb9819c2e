// Package ast defines Hawk's AST node shape: a small tagged tree rebuilt
// immutably by the parser, with parent edges reassigned by a post-order
// pass after each composition.
package ast

import "github.com/AlexCouch/hawk-lang/diag"

// Kind tags the syntactic form of a Node.
type Kind int

const (
	Let Kind = iota
	Do
	Var
	Identifier
	VarRef
	IntLiteral
	BinaryPlus
	BinaryMinus
	BinaryMul
	BinaryDiv
)

func (k Kind) String() string {
	switch k {
	case Let:
		return "Let"
	case Do:
		return "Do"
	case Var:
		return "Var"
	case Identifier:
		return "Identifier"
	case VarRef:
		return "VarRef"
	case IntLiteral:
		return "IntLiteral"
	case BinaryPlus:
		return "BinaryPlus"
	case BinaryMinus:
		return "BinaryMinus"
	case BinaryMul:
		return "BinaryMul"
	case BinaryDiv:
		return "BinaryDiv"
	default:
		return "Unknown"
	}
}

// BinaryKinds are the four right-associative, equal-precedence operators.
var BinaryKinds = map[Kind]bool{
	BinaryPlus:  true,
	BinaryMinus: true,
	BinaryMul:   true,
	BinaryDiv:   true,
}

// Node is one AST node. Data carries the per-kind payload: a string for
// Identifier/VarRef, an int32 for IntLiteral, nil otherwise.
type Node struct {
	Kind     Kind
	Data     any
	Start    diag.Pos
	End      diag.Pos
	Parent   *Node `json:"-"`
	Children []*Node
}

// New builds a node from already-parsed children and reparents them.
func New(kind Kind, start, end diag.Pos, data any, children ...*Node) *Node {
	n := &Node{Kind: kind, Data: data, Start: start, End: end, Children: children}
	Reparent(n)
	return n
}

// Reparent performs the post-order parent-assignment pass the spec
// requires after every composition: every child's Parent is set to n,
// recursively.
func Reparent(n *Node) {
	for _, c := range n.Children {
		c.Parent = n
		Reparent(c)
	}
}

// Walk visits n and its descendants pre-order, stopping a branch early
// when visit returns false.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}
