package engine

// charClass buckets a rune for text-object resolution: word characters,
// whitespace, and everything else each form their own runs.
type charClass int

const (
	classWord charClass = iota
	classSpace
	classOther
)

func classOf(r rune) charClass {
	switch {
	case isWordChar(r):
		return classWord
	case isWhitespace(r):
		return classSpace
	default:
		return classOther
	}
}

// innerWord resolves the "iw" text object: the span covering the
// contiguous run of the cursor's character class on the current line.
// Returns false when the cursor is past the end of the line and there is
// nothing to cover.
func innerWord(b *Buffer, p Position) (Span, bool) {
	line := b.Line(p.Row)
	if p.Col < 0 || p.Col >= len(line) {
		return Span{}, false
	}

	class := classOf(line[p.Col])
	start := p.Col
	for start > 0 && classOf(line[start-1]) == class {
		start--
	}
	end := p.Col + 1
	for end < len(line) && classOf(line[end]) == class {
		end++
	}

	return Span{
		Start: Position{Row: p.Row, Col: start},
		End:   Position{Row: p.Row, Col: end},
	}, true
}
