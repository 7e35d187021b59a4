package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cursorAt(row, col int) Cursor {
	return Cursor{Row: row, Col: col, Desired: col}
}

func TestMotionForKey(t *testing.T) {
	cases := []struct {
		key  KeyEvent
		want Motion
	}{
		{KeyEvent{Rune: 'h'}, MotionLeft},
		{KeyEvent{Rune: 'l'}, MotionRight},
		{KeyEvent{Rune: 'k'}, MotionUp},
		{KeyEvent{Rune: 'j'}, MotionDown},
		{KeyEvent{Rune: 'w'}, MotionWordForward},
		{KeyEvent{Rune: 'b'}, MotionWordBackward},
		{KeyEvent{Rune: '0'}, MotionLineStart},
		{KeyEvent{Rune: '$'}, MotionLineEnd},
		{KeyEvent{Key: KeyLeft}, MotionLeft},
		{KeyEvent{Key: KeyRight}, MotionRight},
		{KeyEvent{Key: KeyUp}, MotionUp},
		{KeyEvent{Key: KeyDown}, MotionDown},
		{KeyEvent{Key: KeyHome}, MotionLineStart},
		{KeyEvent{Key: KeyEnd}, MotionLineEnd},
	}
	for _, tc := range cases {
		m, ok := motionForKey(tc.key)
		assert.True(t, ok, tc.key.String())
		assert.Equal(t, tc.want, m, tc.key.String())
	}

	_, ok := motionForKey(KeyEvent{Rune: 'z'})
	assert.False(t, ok)
}

func TestHorizontalMotionClampsAtEdges(t *testing.T) {
	b := NewBufferFromString("ab")

	c := resolveMotion(b, MotionLeft, cursorAt(0, 0))
	assert.Equal(t, 0, c.Col)

	c = resolveMotion(b, MotionRight, cursorAt(0, 2))
	assert.Equal(t, 2, c.Col)
}

func TestVerticalMotionClampsAtEdges(t *testing.T) {
	b := NewBufferFromString("a\nb")

	c := resolveMotion(b, MotionUp, cursorAt(0, 0))
	assert.Equal(t, 0, c.Row)

	c = resolveMotion(b, MotionDown, cursorAt(1, 0))
	assert.Equal(t, 1, c.Row)
}

func TestLineStartAndEnd(t *testing.T) {
	b := NewBufferFromString("hello")

	c := resolveMotion(b, MotionLineEnd, cursorAt(0, 1))
	assert.Equal(t, 4, c.Col)
	assert.Equal(t, 4, c.Desired)

	c = resolveMotion(b, MotionLineStart, c)
	assert.Equal(t, 0, c.Col)
	assert.Equal(t, 0, c.Desired)
}

func TestLineEndOnEmptyLine(t *testing.T) {
	b := NewBufferFromString("")

	c := resolveMotion(b, MotionLineEnd, cursorAt(0, 0))
	assert.Equal(t, 0, c.Col)
}

func TestDesiredColumnSurvivesShortLines(t *testing.T) {
	b := NewBufferFromString("a long first line\nab\nanother long line")
	c := cursorAt(0, 10)

	c = resolveMotion(b, MotionDown, c)
	assert.Equal(t, Cursor{Row: 1, Col: 2, Desired: 10}, c)

	c = resolveMotion(b, MotionDown, c)
	assert.Equal(t, Cursor{Row: 2, Col: 10, Desired: 10}, c)

	c = resolveMotion(b, MotionUp, c)
	c = resolveMotion(b, MotionUp, c)
	assert.Equal(t, Cursor{Row: 0, Col: 10, Desired: 10}, c)
}

func TestHorizontalMoveResetsDesiredColumn(t *testing.T) {
	b := NewBufferFromString("long line here\nab\nlong line here")
	c := cursorAt(0, 10)

	c = resolveMotion(b, MotionDown, c)
	c = resolveMotion(b, MotionLeft, c)
	assert.Equal(t, 1, c.Desired)

	c = resolveMotion(b, MotionDown, c)
	assert.Equal(t, Cursor{Row: 2, Col: 1, Desired: 1}, c)
}

func TestWordForward(t *testing.T) {
	b := NewBufferFromString("one two  three")

	p := wordForward(b, Position{0, 0})
	assert.Equal(t, Position{0, 4}, p)

	p = wordForward(b, p)
	assert.Equal(t, Position{0, 9}, p)
}

func TestWordForwardFromMidWord(t *testing.T) {
	b := NewBufferFromString("hello world")

	p := wordForward(b, Position{0, 2})
	assert.Equal(t, Position{0, 6}, p)
}

func TestWordForwardCrossesLines(t *testing.T) {
	b := NewBufferFromString("one\ntwo")

	p := wordForward(b, Position{0, 0})
	assert.Equal(t, Position{1, 0}, p)
}

func TestWordForwardStopsAtBufferEnd(t *testing.T) {
	b := NewBufferFromString("one two")

	p := wordForward(b, Position{0, 4})
	assert.Equal(t, Position{0, 7}, p)

	p = wordForward(b, p)
	assert.Equal(t, Position{0, 7}, p)
}

func TestWordBackward(t *testing.T) {
	b := NewBufferFromString("one two  three")

	p := wordBackward(b, Position{0, 9})
	assert.Equal(t, Position{0, 4}, p)

	p = wordBackward(b, p)
	assert.Equal(t, Position{0, 0}, p)
}

func TestWordBackwardFromMidWord(t *testing.T) {
	b := NewBufferFromString("one two")

	// From inside "two", back to its own start first.
	p := wordBackward(b, Position{0, 5})
	assert.Equal(t, Position{0, 4}, p)
}

func TestWordBackwardCrossesLines(t *testing.T) {
	b := NewBufferFromString("one\ntwo")

	p := wordBackward(b, Position{1, 0})
	assert.Equal(t, Position{0, 0}, p)
}

func TestWordBackwardStopsAtBufferStart(t *testing.T) {
	b := NewBufferFromString("one")

	p := wordBackward(b, Position{0, 0})
	assert.Equal(t, Position{0, 0}, p)
}

func TestSpanForMotionIsNormalized(t *testing.T) {
	b := NewBufferFromString("hello")

	sp := spanForMotion(b, MotionWordBackward, cursorAt(0, 4))
	assert.Equal(t, Span{Position{0, 0}, Position{0, 4}}, sp)

	sp = spanForMotion(b, MotionLineEnd, cursorAt(0, 0))
	assert.Equal(t, Span{Position{0, 0}, Position{0, 4}}, sp)
}

func TestInnerWordOnWord(t *testing.T) {
	b := NewBufferFromString("hello world")

	sp, ok := innerWord(b, Position{0, 2})
	assert.True(t, ok)
	assert.Equal(t, Span{Position{0, 0}, Position{0, 5}}, sp)
}

func TestInnerWordOnWhitespaceCoversTheGap(t *testing.T) {
	b := NewBufferFromString("a   b")

	sp, ok := innerWord(b, Position{0, 2})
	assert.True(t, ok)
	assert.Equal(t, Span{Position{0, 1}, Position{0, 4}}, sp)
}

func TestInnerWordOnPunctuationRun(t *testing.T) {
	b := NewBufferFromString("foo::bar")

	sp, ok := innerWord(b, Position{0, 3})
	assert.True(t, ok)
	assert.Equal(t, Span{Position{0, 3}, Position{0, 5}}, sp)
}

func TestInnerWordPastEndOfLine(t *testing.T) {
	b := NewBufferFromString("ab")

	_, ok := innerWord(b, Position{0, 2})
	assert.False(t, ok)
}
