// Package codegen lowers a resolved AST into Hawk bytecode. It maintains
// a shadow stack modeling the VM's runtime stack at compile time (used to
// resolve variable references to offsets-from-top) alongside a tree of
// byte chunks grouped by block, flattened in-order once generation
// completes.
package codegen

import (
	"github.com/AlexCouch/hawk-lang/ast"
	"github.com/AlexCouch/hawk-lang/bytecode"
	"github.com/AlexCouch/hawk-lang/diag"
)

// entryKind distinguishes a block's frame sentinel from a named or
// synthetic value entry on the shadow stack.
type entryKind int

const (
	frameEntry entryKind = iota
	varEntry
)

// StackEntry is one compile-time model of a runtime stack slot.
type StackEntry struct {
	Kind entryKind
	Name string
}

// frameMarker is the runtime sentinel value pushed at every block's base.
const frameMarker int32 = 0xff

// chunk is one node of the byte-chunk tree: either a leaf holding emitted
// bytes, or a block holding further chunks.
type chunk struct {
	parent   *chunk
	children []*chunk
	bytes    []byte
}

func (c *chunk) isLeaf() bool { return c.bytes != nil }

func flatten(c *chunk) []byte {
	if c.isLeaf() {
		return c.bytes
	}
	var out []byte
	for _, child := range c.children {
		out = append(out, flatten(child)...)
	}
	return out
}

// Generator walks a resolved AST emitting bytecode, keeping the shadow
// stack in lock-step with the VM stack it models.
type Generator struct {
	shadow  []StackEntry
	root    *chunk
	current *chunk
	synth   int
	diags   diag.Diagnostics
}

func newGenerator() *Generator {
	root := &chunk{}
	return &Generator{root: root, current: root}
}

// Generate lowers root (a Let node) to bytecode.
func Generate(root *ast.Node) ([]byte, diag.Diagnostics) {
	g := newGenerator()
	if root == nil || root.Kind != ast.Let {
		g.diags.Add(diag.Span{}, "codegen: expected a let block at program root")
		return nil, g.diags
	}
	g.genLet(root)
	return flatten(g.root), g.diags
}

func (g *Generator) emit(b ...byte) {
	g.current.children = append(g.current.children, &chunk{bytes: b})
}

func (g *Generator) enterBlock() {
	nb := &chunk{parent: g.current}
	g.current.children = append(g.current.children, nb)
	g.current = nb
}

func (g *Generator) leaveBlock() {
	g.current = g.current.parent
}

func (g *Generator) pushShadow(e StackEntry) {
	g.shadow = append(g.shadow, e)
}

func (g *Generator) popShadow() {
	g.shadow = g.shadow[:len(g.shadow)-1]
}

func (g *Generator) synthName() string {
	g.synth++
	return "$t" + itoa(g.synth)
}

// itoa avoids pulling in strconv for a single-digit-dominant counter used
// only to keep synthetic shadow-stack names distinct from real ones.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// locate returns the current index-from-top of name's most recent
// occurrence in the shadow stack: the offset the VM's READ will use.
func (g *Generator) locate(name string) int32 {
	for i := len(g.shadow) - 1; i >= 0; i-- {
		if g.shadow[i].Kind == varEntry && g.shadow[i].Name == name {
			return int32((len(g.shadow) - 1) - i)
		}
	}
	return -1
}

// nameTop claims the shadow stack's top entry for name. Per the spec's
// open questions, this pops without checking the top is a Var — a bare
// Frame there is silently removed.
func (g *Generator) nameTop(name string) {
	g.popShadow()
	g.pushShadow(StackEntry{Kind: varEntry, Name: name})
}

// genLet emits a block's frame marker, its Var declarations, and its Do.
func (g *Generator) genLet(n *ast.Node) {
	g.enterBlock()
	g.emit(byte(bytecode.PUSH))
	g.emit(bytecode.EncodeInt32(frameMarker)...)
	g.pushShadow(StackEntry{Kind: frameEntry})
	frameDepth := len(g.shadow) - 1

	var do *ast.Node
	for _, c := range n.Children {
		switch c.Kind {
		case ast.Var:
			g.genVar(c)
		case ast.Do:
			do = c
		}
	}
	if do == nil {
		g.diags.Add(diag.Span{Start: n.Start, End: n.End}, "codegen: missing do block under let")
		g.leaveBlock()
		return
	}
	g.genDo(do, frameDepth)
	g.leaveBlock()
}

// genVar emits the initializer, then claims the resulting value for
// name: a binary or self-pushing initializer's synthetic entry is
// renamed; a bare IntLiteral (which pushes no shadow entry itself)
// gets a freshly pushed named entry.
func (g *Generator) genVar(n *ast.Node) {
	name := n.Children[0].Data.(string)
	init := n.Children[1]
	g.genExpr(init)
	if init.Kind == ast.IntLiteral {
		g.pushShadow(StackEntry{Kind: varEntry, Name: name})
	} else {
		g.nameTop(name)
	}
}

// genDo emits the expression, SAVEs it off, pops every local down to
// (not including) the block's own frame, then LOADs the saved result
// back. frameDepth is the shadow index of this block's frame entry,
// captured by genLet at block entry: a block that holds a nested let's
// leftover frame among its locals (that nested block's sentinel is never
// popped; see genDo's own cleanup below) must keep popping through it
// rather than stopping at the first frame-kind entry it meets.
func (g *Generator) genDo(n *ast.Node, frameDepth int) {
	g.genExpr(n.Children[0])
	g.emit(byte(bytecode.SAVE))
	g.popShadow()

	for len(g.shadow)-1 > frameDepth {
		g.emit(byte(bytecode.POP))
		g.popShadow()
	}

	g.emit(byte(bytecode.LOAD))
	g.pushShadow(StackEntry{Kind: varEntry, Name: g.synthName()})
}

// genExpr dispatches by node kind, emitting bytes and (for every kind
// except a bare IntLiteral) pushing the shadow entry for its own result.
func (g *Generator) genExpr(n *ast.Node) {
	switch n.Kind {
	case ast.IntLiteral:
		g.emit(byte(bytecode.PUSH))
		g.emit(bytecode.EncodeInt32(n.Data.(int32))...)

	case ast.VarRef:
		name := n.Data.(string)
		idx := g.locate(name)
		g.emit(byte(bytecode.READ))
		g.emit(bytecode.EncodeInt32(idx)...)
		g.pushShadow(StackEntry{Kind: varEntry, Name: name})

	case ast.Let:
		g.genLet(n)

	default:
		if ast.BinaryKinds[n.Kind] {
			g.genBinary(n)
		}
	}
}

// genOperand emits one binary operand, ensuring exactly one shadow entry
// results: self-pushing kinds (VarRef, BinaryOp, Let) push their own;
// a solo IntLiteral operand needs one pushed by the caller.
func (g *Generator) genOperand(n *ast.Node) {
	g.genExpr(n)
	if n.Kind == ast.IntLiteral {
		g.pushShadow(StackEntry{Kind: varEntry, Name: g.synthName()})
	}
}

var opByKind = map[ast.Kind]bytecode.Op{
	ast.BinaryPlus:  bytecode.ADD,
	ast.BinaryMinus: bytecode.SUB,
	ast.BinaryMul:   bytecode.MUL,
	ast.BinaryDiv:   bytecode.DIV,
}

// genBinary emits right then left (so the left operand ends up on top
// at VM time), then the operator, then collapses the two shadow entries
// into one synthetic result.
func (g *Generator) genBinary(n *ast.Node) {
	left, right := n.Children[0], n.Children[1]
	g.genOperand(right)
	g.genOperand(left)
	g.emit(byte(opByKind[n.Kind]))
	g.shadow = g.shadow[:len(g.shadow)-2]
	g.pushShadow(StackEntry{Kind: varEntry, Name: g.synthName()})
}
