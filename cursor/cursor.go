/*
Package cursor provides a bidirectional code-point cursor over text.

Break engines and dictionary matchers do not consume strings directly. They
move a Cursor back and forth over a run of text and read code-points at its
current index. Indices count code-points, not bytes.
*/
package cursor

// Done is returned when the cursor is positioned outside of the text.
const Done rune = -1

// Cursor is a bidirectional iterator over code-points with get/set index.
type Cursor interface {
	Index() int     // current index, in code-points
	SetIndex(i int) // move to index i; clamped to [Begin,End]
	Begin() int     // first valid index
	End() int       // index just past the last code-point
	Current() rune  // code-point at the current index, or Done
	Next() rune     // advance by one, then return Current()
	Previous() rune // step back by one, then return Current(); Done at Begin
}

// RuneCursor is a Cursor over a slice of runes.
type RuneCursor struct {
	text []rune
	pos  int
}

var _ Cursor = (*RuneCursor)(nil)

// NewRuneCursor creates a cursor positioned at the start of text.
func NewRuneCursor(text []rune) *RuneCursor {
	return &RuneCursor{text: text}
}

// FromString creates a cursor over the code-points of s.
func FromString(s string) *RuneCursor {
	return NewRuneCursor([]rune(s))
}

func (rc *RuneCursor) Index() int { return rc.pos }
func (rc *RuneCursor) Begin() int { return 0 }
func (rc *RuneCursor) End() int   { return len(rc.text) }

func (rc *RuneCursor) SetIndex(i int) {
	rc.pos = min(max(i, 0), len(rc.text))
}

func (rc *RuneCursor) Current() rune {
	if rc.pos >= len(rc.text) {
		return Done
	}
	return rc.text[rc.pos]
}

func (rc *RuneCursor) Next() rune {
	if rc.pos < len(rc.text) {
		rc.pos++
	}
	return rc.Current()
}

func (rc *RuneCursor) Previous() rune {
	if rc.pos == 0 {
		return Done
	}
	rc.pos--
	return rc.text[rc.pos]
}

// Slice returns the runes between from and to, clamped to the text.
func (rc *RuneCursor) Slice(from, to int) []rune {
	from = min(max(from, 0), len(rc.text))
	to = min(max(to, from), len(rc.text))
	return rc.text[from:to]
}
