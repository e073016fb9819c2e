package parser

import "github.com/AlexCouch/hawk-lang/token"

// TokenCursor walks an already-tokenized stream with a checkpoint stack,
// giving the combinator parser local backtracking without re-lexing.
type TokenCursor struct {
	tokens []token.Token
	pos    int
	marks  []int
}

// NewTokenCursor wraps a token slice for speculative, checkpointed reading.
func NewTokenCursor(tokens []token.Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Peek returns the token at the cursor without advancing.
func (c *TokenCursor) Peek() (token.Token, bool) {
	if c.pos >= len(c.tokens) {
		return token.Token{}, false
	}
	return c.tokens[c.pos], true
}

// Next returns the token at the cursor and advances past it.
func (c *TokenCursor) Next() (token.Token, bool) {
	t, ok := c.Peek()
	if ok {
		c.pos++
	}
	return t, ok
}

// Checkpoint saves the current position for a later Restore or Commit.
func (c *TokenCursor) Checkpoint() {
	c.marks = append(c.marks, c.pos)
}

// Restore rewinds to the most recent checkpoint and discards it.
func (c *TokenCursor) Restore() {
	n := len(c.marks) - 1
	c.pos = c.marks[n]
	c.marks = c.marks[:n]
}

// Commit discards the most recent checkpoint without rewinding.
func (c *TokenCursor) Commit() {
	c.marks = c.marks[:len(c.marks)-1]
}
