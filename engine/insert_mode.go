package engine

// dispatchInsert interprets a key in insert mode: printable runes are
// inserted at the cursor, named keys edit structurally, Escape returns
// to normal mode with the column pulled back onto the last character.
func (e *Engine) dispatchInsert(key KeyEvent) Outcome {
	row, col := e.cur.Row, e.cur.Col

	switch key.Key {
	case KeyEscape:
		e.mode = ModeNormal
		e.cur.clampToLastChar(e.buf)
		e.cur.Desired = e.cur.Col
		return 0

	case KeyEnter:
		e.buf.SplitLine(row, col)
		e.cur.Row = row + 1
		e.cur.setCol(0)
		return 0

	case KeyBackspace:
		if col > 0 {
			e.buf.DeleteChar(row, col-1)
			e.cur.setCol(col - 1)
		} else if row > 0 {
			// Join with the previous line, cursor at the join point.
			joinCol := e.buf.LineLength(row - 1)
			e.buf.JoinLine(row - 1)
			e.cur.Row = row - 1
			e.cur.setCol(joinCol)
		}
		return 0

	case KeyDelete:
		if col < e.buf.LineLength(row) {
			e.buf.DeleteChar(row, col)
		} else if row < e.buf.LineCount()-1 {
			e.buf.JoinLine(row)
		}
		return 0

	case KeyTab:
		e.buf.InsertChar(row, col, '\t')
		e.cur.setCol(col + 1)
		return 0

	case KeyLeft:
		e.cur = resolveMotion(e.buf, MotionLeft, e.cur)
		return 0

	case KeyRight:
		// Unlike normal mode, insert mode may rest past the last char.
		if col < e.buf.LineLength(row) {
			e.cur.setCol(col + 1)
		}
		return 0

	case KeyUp:
		e.cur = resolveMotion(e.buf, MotionUp, e.cur)
		return 0

	case KeyDown:
		e.cur = resolveMotion(e.buf, MotionDown, e.cur)
		return 0

	case KeySpace:
		e.buf.InsertChar(row, col, ' ')
		e.cur.setCol(col + 1)
		return 0
	}

	if key.Rune != 0 {
		e.buf.InsertChar(row, col, key.Rune)
		e.cur.setCol(col + 1)
	}
	return 0
}
