package logicpaper

// opCursor walks an immutable operation token list with explicit lookahead.
// Strategies must be able to peek at the next token and consume it only when
// it looks like a valid argument for the current keyword; a plain range loop
// cannot express that, so every strategy drives one of these instead.
type opCursor struct {
	ops []string
	pos int
}

func newOpCursor(ops []string) *opCursor {
	return &opCursor{ops: ops}
}

// Next consumes and returns the next token.
func (c *opCursor) Next() (string, bool) {
	if c.pos >= len(c.ops) {
		return "", false
	}
	tok := c.ops[c.pos]
	c.pos++
	return tok, true
}

// Peek returns the next token without consuming it.
func (c *opCursor) Peek() (string, bool) {
	if c.pos >= len(c.ops) {
		return "", false
	}
	return c.ops[c.pos], true
}

// TakeIf consumes and returns the next token only when pred accepts it.
func (c *opCursor) TakeIf(pred func(string) bool) (string, bool) {
	tok, ok := c.Peek()
	if !ok || !pred(tok) {
		return "", false
	}
	c.pos++
	return tok, true
}
