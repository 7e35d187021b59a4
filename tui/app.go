// Package tui is the terminal front end: a note list, a rename prompt
// and the modal editor, glued to the notes store. The editing semantics
// live entirely in the engine package; this package only translates key
// messages, renders state and reacts to the engine's host intents.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmaftei/vinote/engine"
	"github.com/dmaftei/vinote/internal/notes"
)

const (
	autoSaveInterval = 5 * time.Second
	messageDuration  = 3 * time.Second
)

// appMode is the top-level UI state: which surface has the keyboard.
type appMode int

const (
	modeList appMode = iota
	modeEditor
	modeRename
)

type (
	autoSaveMsg struct{}
	clearMsg    struct{}
)

// noteItem adapts a note file name to the bubbles list.
type noteItem string

func (n noteItem) Title() string       { return string(n) }
func (n noteItem) Description() string { return "" }
func (n noteItem) FilterValue() string { return string(n) }

// Model is the root bubbletea model.
type Model struct {
	store  *notes.Store
	mode   appMode
	theme  Theme
	editor editorModel
	list   list.Model
	rename textinput.Model

	// confirmDelete holds the note name awaiting a y/n answer in list
	// mode, or "" when no deletion is pending.
	confirmDelete string

	message string
	err     error

	width  int
	height int
}

// New builds the root model over a note store.
func New(store *notes.Store, theme Theme) (Model, error) {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	noteList := list.New(nil, delegate, 0, 0)
	noteList.Title = "vinote"
	noteList.SetShowStatusBar(false)
	noteList.Styles.Title = theme.TitleStyle

	rename := textinput.New()
	rename.Prompt = "rename: "
	rename.CharLimit = 120

	m := Model{
		store:  store,
		theme:  theme,
		editor: newEditorModel(theme, 80, 24),
		list:   noteList,
		rename: rename,
	}
	if err := m.reloadList(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reloadList re-scans the store and rebuilds the list items.
func (m *Model) reloadList() error {
	names, err := m.store.List()
	if err != nil {
		return err
	}
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = noteItem(name)
	}
	m.list.SetItems(items)
	return nil
}

// selectedNote returns the highlighted note name, or "".
func (m *Model) selectedNote() string {
	item, ok := m.list.SelectedItem().(noteItem)
	if !ok {
		return ""
	}
	return string(item)
}

func autoSaveTick() tea.Cmd {
	return tea.Tick(autoSaveInterval, func(time.Time) tea.Msg {
		return autoSaveMsg{}
	})
}

func clearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMsg{}
	})
}

func (m Model) Init() tea.Cmd {
	return autoSaveTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-1)
		m.editor.setSize(msg.Width, msg.Height)
		return m, nil

	case autoSaveMsg:
		if m.mode == modeEditor && m.editor.dirty() {
			m.saveCurrentNote()
		}
		return m, autoSaveTick()

	case clearMsg:
		m.message = ""
		m.err = nil
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEditor:
			return m.updateEditor(msg)
		case modeRename:
			return m.updateRename(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateList handles keys while the note list has focus.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete consumes the next key as its answer.
	if m.confirmDelete != "" {
		name := m.confirmDelete
		m.confirmDelete = ""
		if msg.String() == "y" {
			if err := m.store.Delete(name); err != nil {
				return m.reportError(err)
			}
			if err := m.reloadList(); err != nil {
				return m.reportError(err)
			}
			return m.reportMessage(fmt.Sprintf("deleted %s", name))
		}
		return m, nil
	}

	// Let the list's filter input take everything while active.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "enter", "i", "a":
		name := m.selectedNote()
		if name == "" {
			return m, nil
		}
		return m.openNote(name)

	case "n":
		name, err := m.store.Create()
		if err != nil {
			return m.reportError(err)
		}
		if err := m.reloadList(); err != nil {
			return m.reportError(err)
		}
		return m.openNote(name)

	case "r":
		name := m.selectedNote()
		if name == "" {
			return m, nil
		}
		m.mode = modeRename
		m.rename.SetValue(strings.TrimSuffix(name, ".md"))
		m.rename.SetValue(strings.TrimSuffix(m.rename.Value(), ".txt"))
		m.rename.CursorEnd()
		m.rename.Focus()
		return m, textinput.Blink

	case "d":
		name := m.selectedNote()
		if name == "" {
			return m, nil
		}
		m.confirmDelete = name
		return m, nil

	case "t":
		if m.theme.Name == "dark" {
			m.theme = LightTheme
		} else {
			m.theme = DarkTheme
		}
		m.list.Styles.Title = m.theme.TitleStyle
		m.editor.setTheme(m.theme)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// updateEditor routes keys into the engine and reacts to its intents.
func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Escape in plain normal mode leaves the editor; with an operator
	// pending (or in another mode) the engine consumes it as a cancel.
	if msg.Type == tea.KeyEsc &&
		m.editor.engine.Mode() == engine.ModeNormal &&
		m.editor.engine.Pending() == engine.OpNone {
		return m.closeEditor()
	}

	outcome := m.editor.handleKey(msg)

	var cmd tea.Cmd
	if outcome.Has(engine.RequestSave) {
		m.saveCurrentNote()
		cmd = clearAfter(messageDuration)
	}
	if outcome.Has(engine.RequestQuitToList) {
		return m.leaveEditor()
	}
	return m, cmd
}

// updateRename drives the single-line rename prompt.
func (m Model) updateRename(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeList
		m.rename.Blur()
		return m, nil

	case tea.KeyEnter:
		oldName := m.selectedNote()
		m.mode = modeList
		m.rename.Blur()
		newName, err := m.store.Rename(oldName, m.rename.Value())
		if err != nil {
			return m.reportError(err)
		}
		if err := m.reloadList(); err != nil {
			return m.reportError(err)
		}
		return m.reportMessage(fmt.Sprintf("renamed to %s", newName))
	}

	var cmd tea.Cmd
	m.rename, cmd = m.rename.Update(msg)
	return m, cmd
}

// openNote loads a note into the editor and switches focus to it.
func (m Model) openNote(name string) (tea.Model, tea.Cmd) {
	content, err := m.store.Load(name)
	if err != nil {
		return m.reportError(err)
	}
	m.editor.open(name, content)
	m.mode = modeEditor
	m.message = ""
	m.err = nil
	return m, nil
}

// closeEditor saves the open note and returns to the list.
func (m Model) closeEditor() (tea.Model, tea.Cmd) {
	m.saveCurrentNote()
	return m.leaveEditor()
}

// leaveEditor returns to the list without saving.
func (m Model) leaveEditor() (tea.Model, tea.Cmd) {
	m.mode = modeList
	if err := m.reloadList(); err != nil {
		return m.reportError(err)
	}
	return m, clearAfter(messageDuration)
}

// saveCurrentNote persists the editor buffer, reporting the result in
// the message line. Returns whether the save succeeded.
func (m *Model) saveCurrentNote() bool {
	err := m.store.Save(m.editor.noteName, m.editor.engine.Buffer().Content())
	if err != nil {
		m.err = err
		m.message = ""
		return false
	}
	m.editor.markSaved()
	m.message = fmt.Sprintf("saved %s", m.editor.noteName)
	m.err = nil
	return true
}

func (m Model) reportError(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.message = ""
	return m, clearAfter(messageDuration)
}

func (m Model) reportMessage(text string) (tea.Model, tea.Cmd) {
	m.message = text
	m.err = nil
	return m, clearAfter(messageDuration)
}

// footer renders the shared message line under the list views.
func (m Model) footer() string {
	switch {
	case m.err != nil:
		return m.theme.ErrorStyle.Render(m.err.Error())
	case m.confirmDelete != "":
		return m.theme.ErrorStyle.Render(fmt.Sprintf("delete %s? (y/n)", m.confirmDelete))
	case m.message != "":
		return m.theme.MessageStyle.Render(m.message)
	default:
		return m.theme.HintStyle.Render("enter open · n new · r rename · d delete · t theme · q quit")
	}
}

func (m Model) View() string {
	switch m.mode {
	case modeEditor:
		v := m.editor.view()
		if m.message != "" || m.err != nil {
			v += "\n" + m.footer()
		}
		return v

	case modeRename:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.list.View(),
			m.rename.View(),
		)

	default:
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.list.View(),
			m.footer(),
		)
	}
}
