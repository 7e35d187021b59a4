package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferHasOneEmptyLine(t *testing.T) {
	b := NewBuffer()

	assert.Equal(t, 1, b.LineCount())
	assert.Equal(t, 0, b.LineLength(0))
	assert.True(t, b.IsEmpty())
}

func TestSetContentSplitsLines(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	require.Equal(t, 3, b.LineCount())
	assert.Equal(t, []string{"one", "two", "three"}, b.Lines())
	assert.Equal(t, "one\ntwo\nthree", b.Content())
}

func TestSetContentEmptyStringKeepsOneLine(t *testing.T) {
	b := NewBufferFromString("")

	assert.Equal(t, 1, b.LineCount())
	assert.True(t, b.IsEmpty())
}

func TestInsertChar(t *testing.T) {
	b := NewBufferFromString("ac")

	b.InsertChar(0, 1, 'b')

	assert.Equal(t, "abc", string(b.Line(0)))
}

func TestInsertCharClampsColumn(t *testing.T) {
	b := NewBufferFromString("ab")

	b.InsertChar(0, 99, 'c')
	b.InsertChar(0, -5, 'z')

	assert.Equal(t, "zabc", string(b.Line(0)))
}

func TestInsertCharOutOfRangeRowIsNoop(t *testing.T) {
	b := NewBufferFromString("ab")

	b.InsertChar(3, 0, 'x')

	assert.Equal(t, []string{"ab"}, b.Lines())
}

func TestDeleteCharOutOfRangeIsNoop(t *testing.T) {
	b := NewBufferFromString("ab")

	b.DeleteChar(0, 2)
	b.DeleteChar(0, -1)
	b.DeleteChar(5, 0)

	assert.Equal(t, "ab", string(b.Line(0)))
}

func TestSplitLine(t *testing.T) {
	b := NewBufferFromString("hello world")

	b.SplitLine(0, 5)

	require.Equal(t, 2, b.LineCount())
	assert.Equal(t, "hello", string(b.Line(0)))
	assert.Equal(t, " world", string(b.Line(1)))
}

func TestSplitLineAtEndCreatesEmptyLine(t *testing.T) {
	b := NewBufferFromString("abc")

	b.SplitLine(0, 3)

	require.Equal(t, 2, b.LineCount())
	assert.Equal(t, "abc", string(b.Line(0)))
	assert.Equal(t, 0, b.LineLength(1))
}

func TestJoinLine(t *testing.T) {
	b := NewBufferFromString("foo\nbar")

	b.JoinLine(0)

	require.Equal(t, 1, b.LineCount())
	assert.Equal(t, "foobar", string(b.Line(0)))
}

func TestJoinLastLineIsNoop(t *testing.T) {
	b := NewBufferFromString("foo\nbar")

	b.JoinLine(1)

	assert.Equal(t, []string{"foo", "bar"}, b.Lines())
}

func TestRemoveLine(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	b.RemoveLine(1)

	assert.Equal(t, []string{"one", "three"}, b.Lines())
}

func TestRemoveOnlyLineClearsItInstead(t *testing.T) {
	b := NewBufferFromString("only")

	b.RemoveLine(0)

	require.Equal(t, 1, b.LineCount())
	assert.Equal(t, 0, b.LineLength(0))
}

func TestInsertLineClampsIndex(t *testing.T) {
	b := NewBufferFromString("a")

	b.InsertLine(99, "end")
	b.InsertLine(-1, "start")

	assert.Equal(t, []string{"start", "a", "end"}, b.Lines())
}

func TestSetLine(t *testing.T) {
	b := NewBufferFromString("a\nb")

	b.SetLine(1, "changed")
	b.SetLine(9, "ignored")

	assert.Equal(t, []string{"a", "changed"}, b.Lines())
}

func TestCharAt(t *testing.T) {
	b := NewBufferFromString("ab")

	r, ok := b.CharAt(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 'b', r)

	_, ok = b.CharAt(0, 2)
	assert.False(t, ok)
	_, ok = b.CharAt(1, 0)
	assert.False(t, ok)
}

func TestTextInSpanSingleLine(t *testing.T) {
	b := NewBufferFromString("hello world")

	text := b.textInSpan(Span{Position{0, 0}, Position{0, 5}})

	assert.Equal(t, []string{"hello"}, text)
}

func TestTextInSpanMultiLine(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	text := b.textInSpan(Span{Position{0, 1}, Position{2, 2}})

	assert.Equal(t, []string{"ne", "two", "th"}, text)
}

func TestDeleteSpanJoinsRemainders(t *testing.T) {
	b := NewBufferFromString("one\ntwo\nthree")

	b.deleteSpan(Span{Position{0, 1}, Position{2, 2}})

	assert.Equal(t, []string{"oree"}, b.Lines())
}

func TestInsertTextInline(t *testing.T) {
	b := NewBufferFromString("ad")

	end := b.insertText(0, 1, []string{"bc"})

	assert.Equal(t, "abcd", string(b.Line(0)))
	assert.Equal(t, Position{0, 3}, end)
}

func TestInsertTextMultiLineSplitsAroundInsertion(t *testing.T) {
	b := NewBufferFromString("head tail")

	end := b.insertText(0, 5, []string{"one", "two"})

	assert.Equal(t, []string{"head one", "twotail"}, b.Lines())
	assert.Equal(t, Position{1, 3}, end)
}
