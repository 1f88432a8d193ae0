package dictbreak

import (
	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
)

// possibleWordListMax caps the number of candidate lengths per position.
const possibleWordListMax = 20

// possibleWord caches the dictionary candidates found at one text offset
// and tracks which candidate is being tried and which one is preferred.
type possibleWord struct {
	lengths [possibleWordListMax]int // ascending candidate lengths
	count   int                      // number of candidates
	prefix  int                      // code-points read by the dictionary walk
	offset  int                      // text offset of the candidates, -1 if none
	mark    int                      // index of the preferred candidate
	current int                      // index of the candidate being tried
}

func (pw *possibleWord) reset() {
	pw.count, pw.prefix, pw.mark, pw.current = 0, 0, 0, 0
	pw.offset = -1
}

// candidates looks up dictionary words at the cursor position, unless they
// are already cached for this position. The cursor is left after the longest
// candidate, or unmoved if there is none.
func (pw *possibleWord) candidates(text cursor.Cursor, dict dictionary.Matcher, rangeEnd int) int {
	start := text.Index()
	if start != pw.offset {
		pw.offset = start
		pw.count, pw.prefix = dict.Matches(text, rangeEnd-start, pw.lengths[:], nil, len(pw.lengths))
		if pw.count <= 0 {
			text.SetIndex(start)
		}
	}
	if pw.count > 0 {
		text.SetIndex(start + pw.lengths[pw.count-1])
	}
	pw.current = pw.count - 1
	pw.mark = pw.current
	return pw.count
}

// acceptMarked moves the cursor after the preferred candidate and returns
// its length.
func (pw *possibleWord) acceptMarked(text cursor.Cursor) int {
	text.SetIndex(pw.offset + pw.lengths[pw.mark])
	return pw.lengths[pw.mark]
}

// backUp switches to the next shorter candidate, if any, and moves the
// cursor after it.
func (pw *possibleWord) backUp(text cursor.Cursor) bool {
	if pw.current > 0 {
		pw.current--
		text.SetIndex(pw.offset + pw.lengths[pw.current])
		return true
	}
	return false
}

// longestPrefix is the length of the dictionary walk, which may exceed the
// longest candidate.
func (pw *possibleWord) longestPrefix() int {
	return pw.prefix
}

// markCurrent prefers the candidate currently tried.
func (pw *possibleWord) markCurrent() {
	pw.mark = pw.current
}

// newPossibleWords creates a ring of n lookahead records.
func newPossibleWords(n int) []possibleWord {
	words := make([]possibleWord, n)
	for i := range words {
		words[i].reset()
	}
	return words
}
