package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/dmaftei/vinote/engine"
	"github.com/dmaftei/vinote/tui/highlighter"
)

// tabWidth is the fixed display width of a tab character. The buffer
// stores '\t' as one character; expansion happens only at render time.
const tabWidth = 4

// editorModel wraps one engine session for display: viewport, syntax
// highlighting, status line and clipboard mirroring of the register.
type editorModel struct {
	engine   *engine.Engine
	viewport viewport.Model
	hl       *highlighter.Highlighter
	theme    Theme

	noteName string
	saved    string // content as of the last successful save

	width  int
	height int

	// lastMirrored is the register text most recently written to the
	// system clipboard, so unchanged registers are not re-written on
	// every keystroke.
	lastMirrored string
}

func newEditorModel(theme Theme, width, height int) editorModel {
	vp := viewport.New(width, max(1, height-2))
	return editorModel{
		engine:   engine.New(),
		viewport: vp,
		hl:       highlighter.New("markdown", theme.ChromaStyle),
		theme:    theme,
	}
}

// open loads a note into a fresh engine session. The register survives
// (it lives in the engine and SetContent keeps it). Only .md notes get
// markdown highlighting; everything else renders as plain text.
func (m *editorModel) open(name, content string) {
	lang := "plaintext"
	if strings.HasSuffix(name, ".md") {
		lang = "markdown"
	}

	m.noteName = name
	m.saved = content
	m.engine.SetContent(content)
	m.hl = highlighter.New(lang, m.theme.ChromaStyle)
	m.viewport.YOffset = 0
}

func (m *editorModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(1, height-2)
}

func (m *editorModel) setTheme(theme Theme) {
	m.theme = theme
	m.hl.SetTheme(theme.ChromaStyle)
}

// dirty reports whether the buffer differs from the last saved content.
func (m *editorModel) dirty() bool {
	return m.engine.Buffer().Content() != m.saved
}

// markSaved records the current content as persisted.
func (m *editorModel) markSaved() {
	m.saved = m.engine.Buffer().Content()
}

// handleKey feeds one key into the engine and returns the host intents
// it raised. Edits invalidate the token cache and any newly captured
// register text is mirrored to the system clipboard.
func (m *editorModel) handleKey(msg tea.KeyMsg) engine.Outcome {
	before := m.engine.Buffer().Content()
	outcome := m.engine.Dispatch(convertKey(msg))

	if m.engine.Buffer().Content() != before {
		m.hl.Invalidate()
	}
	m.mirrorRegister()
	m.scrollToCursor()
	return outcome
}

// mirrorRegister copies the register to the system clipboard whenever
// its contents change. Clipboard failures (e.g. headless environments)
// are ignored: the in-engine register keeps working regardless.
func (m *editorModel) mirrorRegister() {
	text := m.engine.Register().String()
	if text == "" || text == m.lastMirrored {
		return
	}
	m.lastMirrored = text
	_ = clipboard.WriteAll(text)
}

// scrollToCursor keeps the cursor row inside the viewport. The offset
// is assigned directly: the viewport's own setter clamps against its
// current content, which is only rendered later in view(). Row is
// always a valid buffer line, so the offset stays within the content
// eventually handed to the viewport.
func (m *editorModel) scrollToCursor() {
	row := m.engine.Cursor().Row
	if row < m.viewport.YOffset {
		m.viewport.YOffset = row
	} else if row >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = row - m.viewport.Height + 1
	}
}

// runeDisplay returns the rendered form of a buffer rune: tabs expand
// to a fixed cell count, everything else renders as itself.
func runeDisplay(r rune) string {
	if r == '\t' {
		return strings.Repeat(" ", tabWidth)
	}
	return string(r)
}

// displayCol converts a buffer column on a line into its display column,
// accounting for tab expansion and wide characters.
func displayCol(line []rune, col int) int {
	width := 0
	for i := 0; i < col && i < len(line); i++ {
		if line[i] == '\t' {
			width += tabWidth
		} else {
			width += uniseg.StringWidth(string(line[i]))
		}
	}
	return width
}

// renderBuffer builds the styled text content for the viewport: every
// line syntax-highlighted per character, with the cursor cell drawn in
// the current mode's style.
func (m *editorModel) renderBuffer() string {
	buf := m.engine.Buffer()
	cur := m.engine.Cursor()
	lines := buf.Lines()
	cursorStyle := m.theme.modeStyle(m.engine.Mode())

	var b strings.Builder
	for row, line := range lines {
		if row > 0 {
			b.WriteByte('\n')
		}

		tokens := m.hl.LineTokens(row, lines)
		runes := []rune(line)
		for col, r := range runes {
			text := runeDisplay(r)
			if row == cur.Row && col == cur.Col {
				b.WriteString(cursorStyle.Render(text))
				continue
			}
			b.WriteString(m.hl.StyleAt(tokens, col).Render(text))
		}

		// Cursor resting one past the last character.
		if row == cur.Row && cur.Col >= len(runes) {
			b.WriteString(cursorStyle.Render(" "))
		}
	}
	return b.String()
}

// statusLine renders mode, note name, dirty marker and cursor position.
func (m *editorModel) statusLine() string {
	cur := m.engine.Cursor()

	mode := m.theme.modeStyle(m.engine.Mode()).Render(" " + m.engine.Mode().String() + " ")

	name := m.noteName
	if m.dirty() {
		name += " [+]"
	}
	name = " " + name

	lineRunes := m.engine.Buffer().Line(cur.Row)
	cursorInfo := fmt.Sprintf("%d:%d ", cur.Row+1, displayCol(lineRunes, cur.Col)+1)

	gap := m.width - lipgloss.Width(mode) - lipgloss.Width(name) - lipgloss.Width(cursorInfo)
	filler := strings.Repeat(" ", max(0, gap))

	return mode + m.theme.StatusLineStyle.Render(name+filler+cursorInfo)
}

// commandLine renders the in-progress ':' command, or a blank strip.
func (m *editorModel) commandLine() string {
	var text string
	if m.engine.Mode() == engine.ModeCommand {
		text = ":" + m.engine.CommandLine()
	}

	pad := m.width - lipgloss.Width(text)
	if pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return m.theme.CommandLineStyle.Render(text)
}

func (m *editorModel) view() string {
	m.viewport.SetContent(m.renderBuffer())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.commandLine(),
	)
}
