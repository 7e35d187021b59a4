// Package engine implements a modal text-editing core emulating a small
// vim-style command language: normal/insert/command modes, a fixed
// motion and operator grammar, a single register, and desired-column
// cursor discipline. The engine performs no I/O and knows nothing about
// rendering; the host feeds it logical key events one at a time and
// reads back mode, cursor and buffer content after each dispatch.
package engine

// Mode is the current editing mode. It is a closed set: dispatch is a
// single switch over (mode, event), not a hierarchy of mode objects.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

// String returns the mode name as shown in a status line.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Outcome is the set of host-level intents raised by a dispatch. The
// engine itself performs no file or window I/O; the host reacts to these
// flags (write the note, leave the editor) after the call returns.
type Outcome uint8

const (
	RequestSave Outcome = 1 << iota
	RequestQuitToList
)

// Has reports whether the outcome carries the given intent.
func (o Outcome) Has(intent Outcome) bool {
	return o&intent != 0
}

// Engine is the mode state machine driving one editing session. It owns
// the buffer, cursor and register; the host must serialize all calls on
// a single logical thread and only read state between dispatches.
//
// The register outlives individual buffers: opening another note resets
// buffer, cursor and mode but keeps the register, so text captured in
// one note can be pasted into the next.
type Engine struct {
	buf  *Buffer
	cur  Cursor
	mode Mode

	// pending is the operator awaiting a motion or text object, and
	// pendingObject marks that the text-object prefix 'i' has been
	// seen after it. Cancellation is just clearing these fields.
	pending       Operator
	pendingObject bool

	cmdline []rune
	reg     *Register
}

// New creates an engine with an empty buffer in normal mode.
func New() *Engine {
	return &Engine{
		buf: NewBuffer(),
		reg: NewRegister(),
	}
}

// SetContent replaces the open note: a fresh buffer and cursor, mode
// back to normal, any partial command discarded. The register persists.
func (e *Engine) SetContent(content string) {
	e.buf = NewBufferFromString(content)
	e.cur = Cursor{}
	e.mode = ModeNormal
	e.pending = OpNone
	e.pendingObject = false
	e.cmdline = nil
}

// Buffer exposes the open note's content for rendering and saving. The
// host must not mutate it while a dispatch is in flight.
func (e *Engine) Buffer() *Buffer {
	return e.buf
}

// Cursor returns the current cursor.
func (e *Engine) Cursor() Cursor {
	return e.cur
}

// Mode returns the current editing mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Pending returns the operator awaiting a motion, or OpNone.
func (e *Engine) Pending() Operator {
	return e.pending
}

// CommandLine returns the in-progress command-mode input.
func (e *Engine) CommandLine() string {
	return string(e.cmdline)
}

// Register returns the session register.
func (e *Engine) Register() *Register {
	return e.reg
}

// Dispatch processes one logical key event to completion and returns the
// host intents it raised. It never fails: out-of-range positions are
// clamped, malformed command sequences are silently discarded, and
// unknown command-line input is a no-op.
func (e *Engine) Dispatch(key KeyEvent) Outcome {
	switch e.mode {
	case ModeInsert:
		return e.dispatchInsert(key)
	case ModeCommand:
		return e.dispatchCommand(key)
	default:
		return e.dispatchNormal(key)
	}
}

// enterInsertMode switches to insert mode, remembering the entry column
// for subsequent vertical movement.
func (e *Engine) enterInsertMode() {
	e.mode = ModeInsert
	e.cur.Desired = e.cur.Col
	e.pending = OpNone
	e.pendingObject = false
}
