package dictbreak

import (
	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
)

const (
	thaiPaiyannoi = 0x0E2F // abbreviation mark
	thaiMaiyamok  = 0x0E46 // repetition mark
)

const (
	thaiLookahead     = 3
	thaiRootCombine   = 3
	thaiPrefixCombine = 3
	thaiMinWord       = 2
	thaiMinWordSpan   = thaiMinWord * 2
)

// NewThaiEngine creates an engine for Thai using a dictionary for script "Thai".
func NewThaiEngine(dict dictionary.Matcher) *LookaheadEngine {
	setupCharsets()
	return newLookaheadEngine(lookaheadParams{
		script:        "Thai",
		lookahead:     thaiLookahead,
		rootCombine:   thaiRootCombine,
		prefixCombine: thaiPrefixCombine,
		minSpan:       thaiMinWordSpan,
	}, thaiSets, dict)
}

// absorbSuffixes appends PAIYANNOI and MAIYAMOK at the cursor to the
// preceding word, unless they follow another instance of themselves.
// It returns the number of characters absorbed, leaving the cursor after
// them.
func (e *LookaheadEngine) absorbSuffixes(text cursor.Cursor, rangeEnd int) int {
	pos := text.Index()
	absorbed := 0
	uc := text.Current()
	if uc == thaiPaiyannoi {
		if !inSet(e.sets.suffix, runeBefore(text, pos)) {
			pos++
			absorbed++
			text.SetIndex(pos)
			uc = text.Current()
		}
	}
	if uc == thaiMaiyamok && pos < rangeEnd {
		if runeBefore(text, pos) != thaiMaiyamok {
			pos++
			absorbed++
		}
	}
	text.SetIndex(pos)
	return absorbed
}

// runeBefore returns the code-point preceding pos. The cursor is moved.
func runeBefore(text cursor.Cursor, pos int) rune {
	text.SetIndex(pos)
	return text.Previous()
}
