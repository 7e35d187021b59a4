// Package highlighter provides chroma-based syntax highlighting for the
// note editor view. Notes are markdown by default, so tokenization runs
// over the whole document (markdown structures span lines) and the
// per-line results are cached until the content changes.
package highlighter

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter tokenizes note content and maps tokens to lipgloss styles.
type Highlighter struct {
	lexer      chroma.Lexer
	style      *chroma.Style
	lineTokens map[int][]chroma.Token
	styleCache map[chroma.TokenType]lipgloss.Style
}

// New creates a highlighter for the given chroma language and style
// theme, falling back to the plaintext lexer for unknown languages.
func New(language, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		lineTokens: make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// SetTheme switches the chroma style and drops cached lipgloss styles.
func (h *Highlighter) SetTheme(theme string) {
	h.style = styles.Get(theme)
	h.styleCache = make(map[chroma.TokenType]lipgloss.Style)
}

// Invalidate clears the token cache; call after any buffer edit.
func (h *Highlighter) Invalidate() {
	h.lineTokens = make(map[int][]chroma.Token)
}

// LineTokens returns the tokens for one line, tokenizing the whole
// document on a cache miss.
func (h *Highlighter) LineTokens(lineNum int, lines []string) []chroma.Token {
	if _, ok := h.lineTokens[0]; !ok {
		h.tokenize(lines)
	}
	return h.lineTokens[lineNum]
}

// tokenize runs the lexer over the joined document and splits the token
// stream back into per-line slices.
func (h *Highlighter) tokenize(lines []string) {
	h.lineTokens = make(map[int][]chroma.Token)
	h.lineTokens[0] = []chroma.Token{}

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		return
	}

	lineNum := 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				h.lineTokens[lineNum] = append(h.lineTokens[lineNum], chroma.Token{Type: token.Type, Value: before})
			}
			lineNum++
			h.lineTokens[lineNum] = []chroma.Token{}
			value = after
		}
		if value != "" {
			h.lineTokens[lineNum] = append(h.lineTokens[lineNum], chroma.Token{Type: token.Type, Value: value})
		}
	}
}

// StyleFor converts a token type to a lipgloss style, memoized per type.
func (h *Highlighter) StyleFor(tokenType chroma.TokenType) lipgloss.Style {
	if style, ok := h.styleCache[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styleCache[tokenType] = style
	return style
}

// StyleAt returns the style of the rune at col within a line's token
// stream. Columns past the tokenized text get the zero style.
func (h *Highlighter) StyleAt(tokens []chroma.Token, col int) lipgloss.Style {
	current := 0
	for _, token := range tokens {
		next := current + len([]rune(token.Value))
		if col >= current && col < next {
			return h.StyleFor(token.Type)
		}
		current = next
	}
	return lipgloss.NewStyle()
}
