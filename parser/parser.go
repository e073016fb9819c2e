// Package parser implements Hawk's combinator-style, LL(1)-with-local-
// backtracking parser: File := Let, Let := 'let' Var* Do,
// Var := IDENT '=' Expr, Do := 'do' Expr,
// Expr := Atom ((Plus|Hyphen|Star|FSlash) Expr)? | Let, Atom := INT | IDENT.
package parser

import (
	"github.com/AlexCouch/hawk-lang/ast"
	"github.com/AlexCouch/hawk-lang/diag"
	"github.com/AlexCouch/hawk-lang/token"
)

// Parser drives a TokenCursor through the grammar above, accumulating
// diagnostics for any non-speculative failure.
type Parser struct {
	cursor *TokenCursor
	diags  diag.Diagnostics
	path   string
}

// New builds a Parser over an already-tokenized stream.
func New(tokens []token.Token, path string) *Parser {
	return &Parser{cursor: NewTokenCursor(tokens), path: path}
}

// Parse parses File := Let and returns the root Let node. Internal
// invariant panics (raised via fail when canFail is false) are recovered
// here and converted into the accumulated diagnostics, mirroring the
// teacher's pass-boundary recover-to-error pattern.
func (p *Parser) Parse() (root *ast.Node, diags diag.Diagnostics) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*SyntaxError); ok {
				diags = p.diags
				root = nil
				return
			}
			panic(r)
		}
	}()
	root, ok := p.parseLet(false)
	if !ok {
		return nil, p.diags
	}
	return root, p.diags
}

// fail does nothing when canFail is true; otherwise it records a
// diagnostic at span and panics with a *SyntaxError to unwind to Parse's
// recover.
func (p *Parser) fail(canFail bool, span diag.Span, format string, args ...any) {
	if canFail {
		return
	}
	p.diags.Add(span, format, args...)
	panic(&SyntaxError{Line: span.Start.Line, Col: span.Start.Col, Message: "parse aborted"})
}

func (p *Parser) here() diag.Span {
	if t, ok := p.cursor.Peek(); ok {
		return diag.Span{Start: t.Start, End: t.End}
	}
	return diag.Span{}
}

// parseLet implements LetParser: consumes 'let', then Var* until the
// peek is the 'do' identifier, then Do.
func (p *Parser) parseLet(canFail bool) (*ast.Node, bool) {
	kw, ok := p.cursor.Peek()
	if !ok || !kw.IsKeyword("let") {
		p.fail(canFail, p.here(), "expected 'let'")
		return nil, false
	}
	p.cursor.Next()

	var vars []*ast.Node
	for {
		t, ok := p.cursor.Peek()
		if !ok {
			p.fail(false, p.here(), "unexpected end of input, expected 'do'")
			return nil, false
		}
		if t.IsKeyword("do") {
			break
		}
		v, ok := p.parseVar(false)
		if !ok {
			return nil, false
		}
		vars = append(vars, v)
	}

	do, ok := p.parseDo(false)
	if !ok {
		return nil, false
	}

	children := append(vars, do)
	end := do.End
	if len(children) == 0 {
		end = do.End
	}
	return ast.New(ast.Let, kw.Start, end, nil, children...), true
}

// parseVar implements VarParser: IDENT '=' Expr.
func (p *Parser) parseVar(canFail bool) (*ast.Node, bool) {
	name, ok := p.cursor.Peek()
	if !ok || name.Kind != token.Identifier {
		p.fail(canFail, p.here(), "expected an identifier")
		return nil, false
	}
	p.cursor.Next()
	identNode := ast.New(ast.Identifier, name.Start, name.End, name.Data.(string))

	eq, ok := p.cursor.Peek()
	if !ok || eq.Kind != token.Equal {
		p.fail(false, p.here(), "expected '=' after identifier '%s'", name.Data)
		return nil, false
	}
	p.cursor.Next()

	expr, ok := p.parseExpr(false)
	if !ok {
		return nil, false
	}
	return ast.New(ast.Var, name.Start, expr.End, nil, identNode, expr), true
}

// parseDo implements DoParser: 'do' Expr.
func (p *Parser) parseDo(canFail bool) (*ast.Node, bool) {
	kw, ok := p.cursor.Peek()
	if !ok || !kw.IsKeyword("do") {
		p.fail(canFail, p.here(), "expected 'do'")
		return nil, false
	}
	p.cursor.Next()
	expr, ok := p.parseExpr(false)
	if !ok {
		return nil, false
	}
	return ast.New(ast.Do, kw.Start, expr.End, nil, expr), true
}

// parseExpr implements ExprParser's full dispatch including the
// speculative nested-Let and binary-continuation attempts.
func (p *Parser) parseExpr(canFail bool) (*ast.Node, bool) {
	t, ok := p.cursor.Peek()
	if !ok {
		p.fail(canFail, p.here(), "expected an expression")
		return nil, false
	}

	switch t.Kind {
	case token.Integer:
		p.cursor.Next()
		lit := ast.New(ast.IntLiteral, t.Start, t.End, t.Data.(int32))
		p.cursor.Checkpoint()
		if node, ok := p.tryBinaryContinuation(lit); ok {
			p.cursor.Commit()
			return node, true
		}
		p.cursor.Restore()
		return lit, true

	case token.Identifier:
		if t.IsKeyword("let") {
			p.cursor.Checkpoint()
			if letNode, ok := p.parseLet(true); ok {
				p.cursor.Commit()
				return letNode, true
			}
			p.cursor.Restore()
		}
		p.cursor.Next()
		ref := ast.New(ast.VarRef, t.Start, t.End, t.Data.(string))
		p.cursor.Checkpoint()
		if node, ok := p.tryBinaryContinuation(ref); ok {
			p.cursor.Commit()
			return node, true
		}
		p.cursor.Restore()
		return ref, true

	default:
		p.fail(canFail, p.here(), "expected an expression")
		return nil, false
	}
}

var binaryKindByToken = map[token.Kind]ast.Kind{
	token.Plus:   ast.BinaryPlus,
	token.Hyphen: ast.BinaryMinus,
	token.Star:   ast.BinaryMul,
	token.FSlash: ast.BinaryDiv,
}

// tryBinaryContinuation attempts to extend left into a binary expression.
// It fails silently (no diagnostic) when the peek is not an operator;
// once an operator is consumed, parsing the right operand is mandatory.
func (p *Parser) tryBinaryContinuation(left *ast.Node) (*ast.Node, bool) {
	t, ok := p.cursor.Peek()
	if !ok {
		return nil, false
	}
	kind, isOp := binaryKindByToken[t.Kind]
	if !isOp {
		return nil, false
	}
	p.cursor.Next()
	right, ok := p.parseExpr(false)
	if !ok {
		return nil, false
	}
	return ast.New(kind, left.Start, right.End, nil, left, right), true
}
