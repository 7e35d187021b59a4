package engine

import "strings"

// Position is a specific location in the buffer: zero-indexed row and
// column. Col may equal the line length, meaning "past the last
// character" (used for insert-adjacent positions).
type Position struct {
	Row int
	Col int
}

// Less reports whether p comes before q in buffer order.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// Span is a half-open [Start, End) range over the buffer. Spans are
// always order-normalized: Start never comes after End.
type Span struct {
	Start Position
	End   Position
}

// normalizeSpan orders two positions into a valid span.
func normalizeSpan(a, b Position) Span {
	if b.Less(a) {
		a, b = b, a
	}
	return Span{Start: a, End: b}
}

// isEmpty reports whether the span covers no characters.
func (s Span) isEmpty() bool {
	return s.Start == s.End
}

// Buffer owns the text content of one open note as an ordered sequence
// of lines of runes. It always contains at least one line: an empty
// document is a single empty line. All index-taking operations clamp or
// no-op on out-of-range input rather than failing, since user input can
// always attempt an edit past the buffer edges.
type Buffer struct {
	lines [][]rune
}

// NewBuffer creates an empty buffer holding one empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromString creates a buffer from existing note content.
func NewBufferFromString(content string) *Buffer {
	b := NewBuffer()
	b.SetContent(content)
	return b
}

// SetContent replaces the entire buffer content.
func (b *Buffer) SetContent(content string) {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	b.lines = lines
}

// LineCount returns the number of lines; always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLength returns the rune count of line i, or 0 if i is out of range.
func (b *Buffer) LineLength(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// Line returns the runes of line i, or nil if i is out of range.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// CharAt returns the rune at (i, j) and whether one exists there.
func (b *Buffer) CharAt(i, j int) (rune, bool) {
	if i < 0 || i >= len(b.lines) {
		return 0, false
	}
	if j < 0 || j >= len(b.lines[i]) {
		return 0, false
	}
	return b.lines[i][j], true
}

// Lines returns the buffer content as strings, one per line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, r := range b.lines {
		out[i] = string(r)
	}
	return out
}

// Content returns the entire buffer joined with newlines.
func (b *Buffer) Content() string {
	return strings.Join(b.Lines(), "\n")
}

// IsEmpty reports whether the buffer holds no text at all.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && len(b.lines[0]) == 0
}

// InsertChar inserts ch at (i, j). The column is clamped to [0, lineLen];
// an out-of-range row is a no-op.
func (b *Buffer) InsertChar(i, j int, ch rune) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	line := b.lines[i]
	if j < 0 {
		j = 0
	} else if j > len(line) {
		j = len(line)
	}
	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:j]...)
	next = append(next, ch)
	next = append(next, line[j:]...)
	b.lines[i] = next
}

// DeleteChar removes the rune at (i, j); no-op if out of range.
func (b *Buffer) DeleteChar(i, j int) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	line := b.lines[i]
	if j < 0 || j >= len(line) {
		return
	}
	b.lines[i] = append(line[:j:j], line[j+1:]...)
}

// SplitLine splits line i at column j, creating a new line at i+1 with
// the suffix from j onward. The column is clamped.
func (b *Buffer) SplitLine(i, j int) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	line := b.lines[i]
	if j < 0 {
		j = 0
	} else if j > len(line) {
		j = len(line)
	}
	suffix := make([]rune, len(line)-j)
	copy(suffix, line[j:])
	b.lines[i] = line[:j:j]
	b.insertLineRunes(i+1, suffix)
}

// JoinLine merges line i+1 into line i; no-op if i is the last line.
func (b *Buffer) JoinLine(i int) {
	if i < 0 || i+1 >= len(b.lines) {
		return
	}
	b.lines[i] = append(b.lines[i], b.lines[i+1]...)
	b.lines = append(b.lines[:i+1], b.lines[i+2:]...)
}

// InsertLine inserts content as a new line at index i (clamped to
// [0, lineCount]).
func (b *Buffer) InsertLine(i int, content string) {
	b.insertLineRunes(i, []rune(content))
}

func (b *Buffer) insertLineRunes(i int, content []rune) {
	if i < 0 {
		i = 0
	} else if i > len(b.lines) {
		i = len(b.lines)
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = content
}

// RemoveLine deletes line i. Removing the only remaining line replaces
// it with an empty line instead, so the buffer never reaches zero lines.
func (b *Buffer) RemoveLine(i int) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	if len(b.lines) == 1 {
		b.lines[0] = []rune{}
		return
	}
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
}

// SetLine replaces the content of line i; no-op if out of range.
func (b *Buffer) SetLine(i int, content string) {
	if i < 0 || i >= len(b.lines) {
		return
	}
	b.lines[i] = []rune(content)
}

// textInSpan extracts the text covered by a half-open span, one string
// per buffer line touched. Positions are clamped to valid bounds.
func (b *Buffer) textInSpan(sp Span) []string {
	start, end := b.clampPosition(sp.Start), b.clampPosition(sp.End)
	if !start.Less(end) {
		return nil
	}

	if start.Row == end.Row {
		return []string{string(b.lines[start.Row][start.Col:end.Col])}
	}

	out := make([]string, 0, end.Row-start.Row+1)
	out = append(out, string(b.lines[start.Row][start.Col:]))
	for r := start.Row + 1; r < end.Row; r++ {
		out = append(out, string(b.lines[r]))
	}
	out = append(out, string(b.lines[end.Row][:end.Col]))
	return out
}

// deleteSpan removes the text covered by a half-open span, joining the
// remainder of the last affected line onto the first.
func (b *Buffer) deleteSpan(sp Span) {
	start, end := b.clampPosition(sp.Start), b.clampPosition(sp.End)
	if !start.Less(end) {
		return
	}

	if start.Row == end.Row {
		line := b.lines[start.Row]
		b.lines[start.Row] = append(line[:start.Col:start.Col], line[end.Col:]...)
		return
	}

	head := b.lines[start.Row][:start.Col:start.Col]
	tail := b.lines[end.Row][end.Col:]
	b.lines[start.Row] = append(head, tail...)
	b.lines = append(b.lines[:start.Row+1], b.lines[end.Row+1:]...)
}

// insertText inserts lines of text at (row, col) and returns the
// position just past the inserted text. A single element inserts inline;
// multiple elements split the target line around the insertion.
func (b *Buffer) insertText(row, col int, text []string) Position {
	if len(text) == 0 {
		return Position{Row: row, Col: col}
	}
	pos := b.clampPosition(Position{Row: row, Col: col})
	row, col = pos.Row, pos.Col
	line := b.lines[row]

	if len(text) == 1 {
		insert := []rune(text[0])
		next := make([]rune, 0, len(line)+len(insert))
		next = append(next, line[:col]...)
		next = append(next, insert...)
		next = append(next, line[col:]...)
		b.lines[row] = next
		return Position{Row: row, Col: col + len(insert)}
	}

	tail := make([]rune, len(line)-col)
	copy(tail, line[col:])
	b.lines[row] = append(line[:col:col], []rune(text[0])...)

	for i := 1; i < len(text); i++ {
		b.insertLineRunes(row+i, []rune(text[i]))
	}

	lastRow := row + len(text) - 1
	lastCol := len(b.lines[lastRow])
	b.lines[lastRow] = append(b.lines[lastRow], tail...)
	return Position{Row: lastRow, Col: lastCol}
}

// clampPosition clamps a position to the nearest valid buffer location,
// allowing Col to sit one past the last character.
func (b *Buffer) clampPosition(p Position) Position {
	if p.Row < 0 {
		p.Row = 0
	} else if p.Row >= len(b.lines) {
		p.Row = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	} else if p.Col > len(b.lines[p.Row]) {
		p.Col = len(b.lines[p.Row])
	}
	return p
}
