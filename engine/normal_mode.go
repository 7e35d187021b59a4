package engine

// dispatchNormal interprets a key in normal mode. With an operator
// pending the key is read as a motion, text object or doubled operator;
// otherwise it is a motion, an operator start, a mode change or one of
// the direct editing commands.
func (e *Engine) dispatchNormal(key KeyEvent) Outcome {
	if e.pending != OpNone {
		e.dispatchPendingOperator(key)
		return 0
	}

	if m, ok := motionForKey(key); ok {
		e.cur = resolveMotion(e.buf, m, e.cur)
		return 0
	}

	if op, ok := operatorForKey(key); ok {
		e.pending = op
		return 0
	}

	switch {
	case key.Rune == 'i':
		e.enterInsertMode()

	case key.Rune == 'I':
		e.cur.setCol(0)
		e.enterInsertMode()

	case key.Rune == 'a':
		e.cur.setCol(min(e.cur.Col+1, e.buf.LineLength(e.cur.Row)))
		e.enterInsertMode()

	case key.Rune == 'A':
		e.cur.setCol(e.buf.LineLength(e.cur.Row))
		e.enterInsertMode()

	case key.Rune == 'o':
		e.buf.InsertLine(e.cur.Row+1, "")
		e.cur.Row++
		e.cur.setCol(0)
		e.enterInsertMode()

	case key.Rune == 'O':
		e.buf.InsertLine(e.cur.Row, "")
		e.cur.setCol(0)
		e.enterInsertMode()

	case key.Rune == ':':
		e.mode = ModeCommand
		e.cmdline = e.cmdline[:0]

	case key.Rune == 'x':
		e.deleteCharUnderCursor()

	case key.Rune == 'p':
		e.paste(false)

	case key.Rune == 'P':
		e.paste(true)

	case key.Key == KeyEscape:
		// Nothing pending in this branch; stay put.

	default:
		// Unrecognized normal-mode key: ignore.
	}

	return 0
}

// dispatchPendingOperator consumes the key following d/y/c. Anything
// that is not a motion, the text-object prefix, the object key after it,
// or the doubled operator cancels the pending command and discards the
// key.
func (e *Engine) dispatchPendingOperator(key KeyEvent) {
	op := e.pending

	if e.pendingObject {
		e.pending = OpNone
		e.pendingObject = false
		if key.Rune == 'w' {
			if sp, ok := innerWord(e.buf, e.cur.Position()); ok {
				e.applySpan(op, sp)
			}
		}
		return
	}

	// Text-object prefix: keep waiting for the object key.
	if key.Rune == 'i' {
		e.pendingObject = true
		return
	}

	// Doubled operator (dd / yy / cc) works on the whole current line.
	if doubled, ok := operatorForKey(key); ok && doubled == op {
		e.pending = OpNone
		e.applyLinewise(op)
		return
	}

	e.pending = OpNone
	if m, ok := motionForKey(key); ok {
		e.applySpan(op, spanForMotion(e.buf, m, e.cur))
	}
	// Any other key: pending operator already cleared, key discarded.
}
