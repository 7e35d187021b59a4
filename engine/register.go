package engine

import "strings"

// RegisterKind says whether stored text represents whole lines or an
// inline character run; it decides how paste places the text.
type RegisterKind int

const (
	CharacterWise RegisterKind = iota
	LineWise
)

// String returns the kind name.
func (k RegisterKind) String() string {
	if k == LineWise {
		return "linewise"
	}
	return "characterwise"
}

// Register is the single clipboard-like slot shared by delete, yank and
// change. It is overwritten by every capturing operation and read by
// paste. One register exists per editing session: it outlives individual
// buffers, so text deleted in one note can be pasted into another.
type Register struct {
	text []string
	kind RegisterKind
}

// NewRegister creates an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Set overwrites the register contents.
func (r *Register) Set(text []string, kind RegisterKind) {
	r.text = append([]string(nil), text...)
	r.kind = kind
}

// Text returns the stored lines.
func (r *Register) Text() []string {
	return r.text
}

// Kind returns whether the stored text is line-wise or character-wise.
func (r *Register) Kind() RegisterKind {
	return r.kind
}

// IsEmpty reports whether anything has been captured yet.
func (r *Register) IsEmpty() bool {
	return len(r.text) == 0
}

// String joins the stored text for display or clipboard export.
// Line-wise content carries a trailing newline.
func (r *Register) String() string {
	if len(r.text) == 0 {
		return ""
	}
	s := strings.Join(r.text, "\n")
	if r.kind == LineWise {
		s += "\n"
	}
	return s
}
