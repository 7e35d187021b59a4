package engine

import "strings"

// dispatchCommand accumulates the command line and executes it on Enter.
// Backspacing past the start of the input, or Escape, cancels back to
// normal mode.
func (e *Engine) dispatchCommand(key KeyEvent) Outcome {
	switch key.Key {
	case KeyEscape:
		e.cmdline = e.cmdline[:0]
		e.mode = ModeNormal
		return 0

	case KeyBackspace:
		if len(e.cmdline) > 0 {
			e.cmdline = e.cmdline[:len(e.cmdline)-1]
		}
		if len(e.cmdline) == 0 {
			e.mode = ModeNormal
		}
		return 0

	case KeyEnter:
		cmd := string(e.cmdline)
		e.cmdline = e.cmdline[:0]
		e.mode = ModeNormal
		return executeCommand(cmd)

	case KeySpace:
		e.cmdline = append(e.cmdline, ' ')
		return 0
	}

	if key.Rune != 0 {
		e.cmdline = append(e.cmdline, key.Rune)
	}
	return 0
}

// executeCommand parses a finished command line into host intents.
// Unrecognized commands are deliberately no-ops: nothing in the engine
// surfaces an error to the user.
func executeCommand(cmd string) Outcome {
	switch strings.TrimSpace(cmd) {
	case "w", "write":
		return RequestSave
	case "q", "quit":
		return RequestQuitToList
	case "wq":
		return RequestSave | RequestQuitToList
	default:
		return 0
	}
}
