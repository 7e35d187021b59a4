package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaftei/vinote/internal/notes"
)

func newTestApp(t *testing.T, files map[string]string) (Model, *notes.Store) {
	t.Helper()
	store, err := notes.New(t.TempDir())
	require.NoError(t, err)
	for name, content := range files {
		require.NoError(t, store.Save(name, content))
	}

	m, err := New(store, DarkTheme)
	require.NoError(t, err)

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return sized.(Model), store
}

func sendKeys(m Model, keys string) Model {
	for _, r := range keys {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func sendKey(m Model, typ tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: typ})
	return next.(Model)
}

func TestAppStartsInListMode(t *testing.T) {
	m, _ := newTestApp(t, map[string]string{"a.md": "", "b.md": ""})

	assert.Equal(t, modeList, m.mode)
	assert.Len(t, m.list.Items(), 2)
}

func TestOpenNoteWithEnter(t *testing.T) {
	m, _ := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)

	require.Equal(t, modeEditor, m.mode)
	assert.Equal(t, "a.md", m.editor.noteName)
	assert.Equal(t, "hello", m.editor.engine.Buffer().Content())
}

func TestEscapeFromEditorSavesAndReturnsToList(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)
	m = sendKeys(m, "x") // delete 'h'
	m = sendKey(m, tea.KeyEsc)

	assert.Equal(t, modeList, m.mode)

	content, err := store.Load("a.md")
	require.NoError(t, err)
	assert.Equal(t, "ello", content)
}

func TestEscapeCancelsPendingOperatorBeforeLeaving(t *testing.T) {
	m, _ := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)
	m = sendKeys(m, "d")
	m = sendKey(m, tea.KeyEsc)

	// First escape only cancels the pending delete.
	assert.Equal(t, modeEditor, m.mode)
	assert.Equal(t, "hello", m.editor.engine.Buffer().Content())

	m = sendKey(m, tea.KeyEsc)
	assert.Equal(t, modeList, m.mode)
}

func TestWriteCommandSavesNote(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)
	m = sendKeys(m, "x:w")
	m = sendKey(m, tea.KeyEnter)

	assert.Equal(t, modeEditor, m.mode)

	content, err := store.Load("a.md")
	require.NoError(t, err)
	assert.Equal(t, "ello", content)
}

func TestQuitCommandReturnsToListWithoutSaving(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)
	m = sendKeys(m, "x:q")
	m = sendKey(m, tea.KeyEnter)

	assert.Equal(t, modeList, m.mode)

	content, err := store.Load("a.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestWriteQuitCommandSavesAndReturnsToList(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)
	m = sendKeys(m, "x:wq")
	m = sendKey(m, tea.KeyEnter)

	assert.Equal(t, modeList, m.mode)

	content, err := store.Load("a.md")
	require.NoError(t, err)
	assert.Equal(t, "ello", content)
}

func TestCreateNoteOpensEditor(t *testing.T) {
	m, store := newTestApp(t, nil)

	m = sendKeys(m, "n")

	assert.Equal(t, modeEditor, m.mode)
	assert.NotEmpty(t, m.editor.noteName)

	names, err := store.List()
	require.NoError(t, err)
	assert.Len(t, names, 1)
}

func TestDeleteNoteNeedsConfirmation(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"a.md": ""})

	m = sendKeys(m, "d")
	assert.Equal(t, "a.md", m.confirmDelete)

	// Anything but y cancels.
	m = sendKeys(m, "x")
	names, err := store.List()
	require.NoError(t, err)
	assert.Len(t, names, 1)

	m = sendKeys(m, "dy")
	names, err = store.List()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.Empty(t, m.list.Items())
}

func TestRenameFlow(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"old.md": "body"})

	m = sendKeys(m, "r")
	require.Equal(t, modeRename, m.mode)
	assert.Equal(t, "old", m.rename.Value())

	m = sendKey(m, tea.KeyBackspace)
	m = sendKey(m, tea.KeyBackspace)
	m = sendKey(m, tea.KeyBackspace)
	m = sendKeys(m, "new")
	m = sendKey(m, tea.KeyEnter)

	assert.Equal(t, modeList, m.mode)

	content, err := store.Load("new.md")
	require.NoError(t, err)
	assert.Equal(t, "body", content)
}

func TestRenameEscapeCancels(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"old.md": ""})

	m = sendKeys(m, "r")
	m = sendKey(m, tea.KeyEsc)

	assert.Equal(t, modeList, m.mode)

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"old.md"}, names)
}

func TestThemeToggle(t *testing.T) {
	m, _ := newTestApp(t, nil)
	require.Equal(t, "dark", m.theme.Name)

	m = sendKeys(m, "t")
	assert.Equal(t, "light", m.theme.Name)

	m = sendKeys(m, "t")
	assert.Equal(t, "dark", m.theme.Name)
}

func TestAutoSaveWritesDirtyBuffer(t *testing.T) {
	m, store := newTestApp(t, map[string]string{"a.md": "hello"})

	m = sendKey(m, tea.KeyEnter)
	m = sendKeys(m, "x")

	next, _ := m.Update(autoSaveMsg{})
	m = next.(Model)

	content, err := store.Load("a.md")
	require.NoError(t, err)
	assert.Equal(t, "ello", content)
	assert.False(t, m.editor.dirty())
}

func TestRegisterSurvivesAcrossNotes(t *testing.T) {
	m, _ := newTestApp(t, map[string]string{"a.md": "copy me", "b.md": "target"})

	m = sendKey(m, tea.KeyEnter) // open a.md
	m = sendKeys(m, "yy")
	m = sendKey(m, tea.KeyEsc) // back to list

	m = sendKeys(m, "j") // select b.md
	m = sendKey(m, tea.KeyEnter)
	require.Equal(t, "b.md", m.editor.noteName)

	m = sendKeys(m, "p")
	assert.Equal(t, "target\ncopy me", m.editor.engine.Buffer().Content())
}
