package engine

// Operator is a pending command (delete/yank/change) awaiting a motion
// or text object. OpNone means nothing is pending.
type Operator int

const (
	OpNone Operator = iota
	OpDelete
	OpYank
	OpChange
)

// operatorForKey maps d/y/c to an operator.
func operatorForKey(key KeyEvent) (Operator, bool) {
	switch key.Rune {
	case 'd':
		return OpDelete, true
	case 'y':
		return OpYank, true
	case 'c':
		return OpChange, true
	}
	return OpNone, false
}

// spanKind classifies a span for the register: line-wise when it covers
// whole lines end-to-end, character-wise otherwise.
func spanKind(sp Span) RegisterKind {
	if sp.Start.Col == 0 && sp.End.Col == 0 && sp.End.Row > sp.Start.Row {
		return LineWise
	}
	return CharacterWise
}

// applySpan runs an operator over a half-open span: the covered text is
// written to the register, delete/change remove it from the buffer, and
// change additionally drops into insert mode at the deletion point.
func (e *Engine) applySpan(op Operator, sp Span) {
	if sp.isEmpty() {
		return
	}

	kind := spanKind(sp)
	text := e.buf.textInSpan(sp)
	if kind == LineWise {
		// Whole lines: drop the empty fragment contributed by the
		// exclusive end column.
		text = text[:len(text)-1]
	}
	if len(text) == 0 {
		return
	}
	e.reg.Set(text, kind)

	switch op {
	case OpYank:
		// Buffer and cursor untouched.

	case OpDelete:
		e.buf.deleteSpan(sp)
		e.cur.Row = sp.Start.Row
		e.cur.setCol(sp.Start.Col)
		e.cur.clamp(e.buf)

	case OpChange:
		e.buf.deleteSpan(sp)
		e.cur.Row = sp.Start.Row
		e.cur.setCol(sp.Start.Col)
		e.cur.clamp(e.buf)
		e.enterInsertMode()
	}
}

// applyLinewise handles the doubled-operator forms dd, yy and cc, which
// operate on the whole current line rather than a character span.
func (e *Engine) applyLinewise(op Operator) {
	row := e.cur.Row
	line := string(e.buf.Line(row))
	e.reg.Set([]string{line}, LineWise)

	switch op {
	case OpYank:
		// Nothing to mutate.

	case OpDelete:
		e.buf.RemoveLine(row)
		// Cursor lands on the same line index, or the new last line
		// when the deleted line was the last one.
		e.cur.Row = min(row, e.buf.LineCount()-1)
		e.cur.setCol(0)
		e.cur.clamp(e.buf)

	case OpChange:
		// cc clears the line's content but keeps the line.
		e.buf.SetLine(row, "")
		e.cur.setCol(0)
		e.enterInsertMode()
	}
}

// deleteCharUnderCursor implements x: a built-in single-character delete
// written to the register as a character-wise capture. No-op when the
// cursor is past the last character.
func (e *Engine) deleteCharUnderCursor() {
	row, col := e.cur.Row, e.cur.Col
	ch, ok := e.buf.CharAt(row, col)
	if !ok {
		return
	}
	e.reg.Set([]string{string(ch)}, CharacterWise)
	e.buf.DeleteChar(row, col)

	// Keep the cursor on a character when one remains.
	lineLen := e.buf.LineLength(row)
	if col >= lineLen && lineLen > 0 {
		e.cur.setCol(lineLen - 1)
	}
}

// paste inserts the register contents relative to the cursor. Line-wise
// content becomes whole new lines below (p) or above (P) the current
// line. Character-wise content is spliced in at the cursor column; p
// leaves the cursor just past the inserted text (so deleting a span and
// pasting it right back restores the buffer), P leaves it at the start
// of the inserted text.
func (e *Engine) paste(before bool) {
	if e.reg.IsEmpty() {
		return
	}
	text := e.reg.Text()

	if e.reg.Kind() == LineWise {
		insertRow := e.cur.Row + 1
		if before {
			insertRow = e.cur.Row
		}
		for i, line := range text {
			e.buf.InsertLine(insertRow+i, line)
		}
		// Just past the inserted block, clamped to the last line.
		e.cur.Row = min(insertRow+len(text), e.buf.LineCount()-1)
		e.cur.setCol(0)
		return
	}

	start := e.cur
	end := e.buf.insertText(e.cur.Row, e.cur.Col, text)
	if before {
		e.cur.setCol(start.Col)
	} else {
		e.cur.Row = end.Row
		e.cur.setCol(end.Col)
	}
	e.cur.clamp(e.buf)
}
