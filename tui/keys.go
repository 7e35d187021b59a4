package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmaftei/vinote/engine"
)

// convertKey translates a bubbletea key message into the engine's
// logical key event.
func convertKey(msg tea.KeyMsg) engine.KeyEvent {
	key := engine.KeyEvent{}

	if len(msg.Runes) > 0 {
		key.Rune = msg.Runes[0]
	}

	if msg.Alt {
		key.Modifiers |= engine.ModAlt
	}

	switch msg.Type {
	case tea.KeyEnter:
		key.Key = engine.KeyEnter
	case tea.KeySpace:
		key.Key = engine.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = engine.KeyEscape
	case tea.KeyBackspace:
		key.Key = engine.KeyBackspace
	case tea.KeyTab:
		key.Key = engine.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = engine.KeyUp
	case tea.KeyDown:
		key.Key = engine.KeyDown
	case tea.KeyLeft:
		key.Key = engine.KeyLeft
	case tea.KeyRight:
		key.Key = engine.KeyRight
	case tea.KeyHome:
		key.Key = engine.KeyHome
	case tea.KeyEnd:
		key.Key = engine.KeyEnd
	case tea.KeyDelete:
		key.Key = engine.KeyDelete
	}

	return key
}
