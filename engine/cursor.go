package engine

// Cursor is the current editing position plus the remembered column for
// vertical movement. Desired is updated by horizontal moves and by
// entering insert mode; vertical moves consult it but never change it,
// so a run of j/k across short lines still remembers where the cursor
// started once a long-enough line is reached again.
type Cursor struct {
	Row     int
	Col     int
	Desired int
}

// Position returns the cursor's buffer position.
func (c Cursor) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// clamp pulls the cursor back inside the buffer. Col may rest one past
// the last character; Desired is left alone.
func (c *Cursor) clamp(b *Buffer) {
	if c.Row < 0 {
		c.Row = 0
	} else if c.Row >= b.LineCount() {
		c.Row = b.LineCount() - 1
	}
	lineLen := b.LineLength(c.Row)
	if c.Col < 0 {
		c.Col = 0
	} else if c.Col > lineLen {
		c.Col = lineLen
	}
}

// clampToLastChar additionally forbids the past-end column, used when
// leaving insert mode.
func (c *Cursor) clampToLastChar(b *Buffer) {
	c.clamp(b)
	lineLen := b.LineLength(c.Row)
	if lineLen > 0 && c.Col >= lineLen {
		c.Col = lineLen - 1
	}
}

// setCol moves the cursor horizontally and records the new desired
// column.
func (c *Cursor) setCol(col int) {
	c.Col = col
	c.Desired = col
}
