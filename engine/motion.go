package engine

import "unicode"

// Motion is a command that computes a target cursor position, or a
// text span when combined with a pending operator.
type Motion int

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward
	MotionWordBackward
	MotionLineStart
	MotionLineEnd
)

// motionForKey maps a normal-mode key event to a motion.
func motionForKey(key KeyEvent) (Motion, bool) {
	switch {
	case key.Rune == 'h' || key.Key == KeyLeft:
		return MotionLeft, true
	case key.Rune == 'l' || key.Key == KeyRight:
		return MotionRight, true
	case key.Rune == 'k' || key.Key == KeyUp:
		return MotionUp, true
	case key.Rune == 'j' || key.Key == KeyDown:
		return MotionDown, true
	case key.Rune == 'w':
		return MotionWordForward, true
	case key.Rune == 'b':
		return MotionWordBackward, true
	case key.Rune == '0' || key.Key == KeyHome:
		return MotionLineStart, true
	case key.Rune == '$' || key.Key == KeyEnd:
		return MotionLineEnd, true
	}
	return 0, false
}

// isVertical reports whether the motion moves between lines and should
// consult (not modify) the desired column.
func (m Motion) isVertical() bool {
	return m == MotionUp || m == MotionDown
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// resolveMotion computes the cursor resulting from applying a motion at
// c. Horizontal moves record the new desired column; vertical moves read
// the remembered one and leave it untouched. Results are always clamped
// to valid bounds.
func resolveMotion(b *Buffer, m Motion, c Cursor) Cursor {
	switch m {
	case MotionLeft:
		if c.Col > 0 {
			c.setCol(c.Col - 1)
		} else {
			c.setCol(0)
		}

	case MotionRight:
		if c.Col < b.LineLength(c.Row) {
			c.setCol(c.Col + 1)
		}

	case MotionUp:
		if c.Row > 0 {
			c.Row--
		}
		c.Col = min(c.Desired, b.LineLength(c.Row))

	case MotionDown:
		if c.Row < b.LineCount()-1 {
			c.Row++
		}
		c.Col = min(c.Desired, b.LineLength(c.Row))

	case MotionWordForward:
		pos := wordForward(b, c.Position())
		c.Row = pos.Row
		c.setCol(pos.Col)

	case MotionWordBackward:
		pos := wordBackward(b, c.Position())
		c.Row = pos.Row
		c.setCol(pos.Col)

	case MotionLineStart:
		c.setCol(0)

	case MotionLineEnd:
		c.setCol(max(0, b.LineLength(c.Row)-1))
	}

	c.clamp(b)
	return c
}

// wordForward advances past the remainder of the current word (run of
// non-whitespace), then past any whitespace, stopping at the start of
// the next word or at the end of the buffer. Line breaks count as
// whitespace, so the motion crosses lines.
func wordForward(b *Buffer, p Position) Position {
	lastRow := b.LineCount() - 1
	atEnd := func(q Position) bool {
		return q.Row == lastRow && q.Col >= b.LineLength(lastRow)
	}
	advance := func(q Position) Position {
		if q.Col < b.LineLength(q.Row) {
			q.Col++
		} else if q.Row < lastRow {
			q.Row++
			q.Col = 0
		}
		return q
	}
	onWhitespace := func(q Position) bool {
		r, ok := b.CharAt(q.Row, q.Col)
		if !ok {
			return true // the implicit newline
		}
		return isWhitespace(r)
	}

	// Skip the rest of the current word, then the gap after it.
	for !atEnd(p) && !onWhitespace(p) {
		p = advance(p)
	}
	for !atEnd(p) && onWhitespace(p) {
		p = advance(p)
	}
	return p
}

// wordBackward is the mirror traversal: back over whitespace, then back
// to the start of the preceding word, stopping at the buffer start.
func wordBackward(b *Buffer, p Position) Position {
	atStart := func(q Position) bool {
		return q.Row == 0 && q.Col == 0
	}
	retreat := func(q Position) Position {
		if q.Col > 0 {
			q.Col--
		} else if q.Row > 0 {
			q.Row--
			q.Col = b.LineLength(q.Row) // the implicit newline slot
		}
		return q
	}
	onWhitespace := func(q Position) bool {
		r, ok := b.CharAt(q.Row, q.Col)
		if !ok {
			return true
		}
		return isWhitespace(r)
	}

	if atStart(p) {
		return p
	}
	p = retreat(p)
	for !atStart(p) && onWhitespace(p) {
		p = retreat(p)
	}
	for !atStart(p) {
		prev := retreat(p)
		if onWhitespace(prev) {
			break
		}
		p = prev
	}
	return p
}

// spanForMotion resolves a motion as operator input: the half-open,
// order-normalized span between the current position and the motion
// target.
func spanForMotion(b *Buffer, m Motion, c Cursor) Span {
	target := resolveMotion(b, m, c)
	return normalizeSpan(c.Position(), target.Position())
}
