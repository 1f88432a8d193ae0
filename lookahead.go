package dictbreak

import (
	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
)

// lookaheadParams are the tuning constants of a lookahead engine.
type lookaheadParams struct {
	script        string // ISO 15924 code, used for tracing and dictionary lookup
	lookahead     int    // number of words considered before committing
	rootCombine   int    // words shorter than this may absorb following unknown text
	prefixCombine int    // unknown text sharing this many characters with a word is not absorbed
	minSpan       int    // runs shorter than this are not segmented
}

// LookaheadEngine segments South-East Asian scripts (Thai, Lao, Khmer,
// Burmese) using a dictionary and a three word lookahead.
//
// At every position the engine looks up all dictionary words starting there.
// If there is more than one, it prefers the longest word which is followed
// by two more dictionary words, else the longest word followed by one more,
// else the longest word. Text not covered by the dictionary is attached to
// the preceding short word or forms a word of its own, up to a plausible
// word start which begins a dictionary word. Breaks are never placed before
// combining marks.
type LookaheadEngine struct {
	dictionaryEngine
	params lookaheadParams
	sets   scriptSets
	dict   dictionary.Matcher
}

var _ Engine = (*LookaheadEngine)(nil)

func newLookaheadEngine(params lookaheadParams, sets scriptSets, dict dictionary.Matcher) *LookaheadEngine {
	assert(dict != nil, "lookahead engine needs a dictionary")
	e := &LookaheadEngine{params: params, sets: sets, dict: dict}
	e.dictionaryEngine = dictionaryEngine{
		chars:  sets.word,
		kinds:  kinds(WordBreak, LineBreak),
		divide: e.DivideUpRange,
	}
	tracer().Infof("created %s dictionary break engine", params.script)
	return e
}

// Script returns the ISO 15924 code of the engine's script.
func (e *LookaheadEngine) Script() string {
	return e.params.script
}

// DivideUpRange segments text[rangeStart:rangeEnd], which must consist of
// characters of the engine's script, and pushes the breaks found onto
// breaks. A break at rangeEnd is not reported. It returns the number of
// breaks pushed.
func (e *LookaheadEngine) DivideUpRange(text cursor.Cursor, rangeStart, rangeEnd int, breaks *BreakDeque) int {
	p := &e.params
	if rangeEnd-rangeStart < p.minSpan {
		return 0
	}
	initialLen := breaks.Len()
	ring := newPossibleWords(p.lookahead)
	words := func(n int) *possibleWord {
		return &ring[n%p.lookahead]
	}
	wordsFound := 0
	text.SetIndex(rangeStart)
	for current := text.Index(); current < rangeEnd; current = text.Index() {
		wordLength := 0
		candidates := words(wordsFound).candidates(text, e.dict, rangeEnd)
		if candidates == 1 {
			wordLength = words(wordsFound).acceptMarked(text)
			wordsFound++
		} else if candidates > 1 {
			if text.Index() < rangeEnd {
				e.selectCandidate(text, words, wordsFound, rangeEnd)
			}
			wordLength = words(wordsFound).acceptMarked(text)
			wordsFound++
		}
		// The cursor is at the end of the word found (if any). If no
		// dictionary word follows and the word is short, unknown text
		// following it is combined with it.
		if text.Index() < rangeEnd && wordLength < p.rootCombine {
			if words(wordsFound).candidates(text, e.dict, rangeEnd) <= 0 &&
				(wordLength == 0 || words(wordsFound).longestPrefix() < p.prefixCombine) {
				chars := e.resynchronize(text, words(wordsFound+1), current+wordLength, rangeEnd)
				if wordLength <= 0 {
					wordsFound++ // unknown text forms a word of its own
				}
				wordLength += chars
			} else {
				text.SetIndex(current + wordLength)
			}
		}
		for text.Index() < rangeEnd && inSet(e.sets.mark, text.Current()) {
			text.Next()
			wordLength++
		}
		if e.sets.suffix != nil && text.Index() < rangeEnd && wordLength > 0 {
			if words(wordsFound).candidates(text, e.dict, rangeEnd) <= 0 &&
				inSet(e.sets.suffix, text.Current()) {
				wordLength += e.absorbSuffixes(text, rangeEnd)
			} else {
				text.SetIndex(current + wordLength)
			}
		}
		if wordLength > 0 {
			breaks.Push(current + wordLength)
		}
	}
	if breaks.Len() > initialLen && breaks.Peek() >= rangeEnd {
		breaks.Pop() // end of range is not an internal break
	}
	found := breaks.Len() - initialLen
	tracer().Debugf("%s: %d breaks in range [%d,%d)", p.script, found, rangeStart, rangeEnd)
	return found
}

// selectCandidate marks the preferred candidate of the word at position n of
// the ring. The cursor is after its longest candidate on entry.
// Candidates are tried from longest to shortest. The first one starting a
// chain of three dictionary words wins at once; otherwise the first one
// followed by a second word is kept; otherwise the longest stays marked.
// Among two-word chains the longest first word wins, not the shortest.
func (e *LookaheadEngine) selectCandidate(text cursor.Cursor, words func(int) *possibleWord, n, rangeEnd int) {
	followed := false
	for {
		if words(n+1).candidates(text, e.dict, rangeEnd) > 0 {
			if !followed {
				words(n).markCurrent()
				followed = true
			}
			if text.Index() >= rangeEnd {
				return
			}
			for {
				if words(n+2).candidates(text, e.dict, rangeEnd) > 0 {
					words(n).markCurrent()
					return
				}
				if !words(n+1).backUp(text) {
					break
				}
			}
		}
		if !words(n).backUp(text) {
			return
		}
	}
}

// resynchronize skips unknown text starting at from, until a character
// which may end a word is followed by one which may begin a word and starts
// a dictionary word, or until rangeEnd. It returns the number of characters
// skipped; the cursor is left after them.
func (e *LookaheadEngine) resynchronize(text cursor.Cursor, probe *possibleWord, from, rangeEnd int) int {
	remaining := rangeEnd - from
	pc := text.Current()
	chars := 0
	for {
		uc := text.Next()
		chars++
		if remaining--; remaining <= 0 {
			break
		}
		if inSet(e.sets.endWord, pc) && inSet(e.sets.beginWord, uc) {
			found := probe.candidates(text, e.dict, rangeEnd)
			text.SetIndex(from + chars)
			if found > 0 {
				break
			}
		}
		pc = uc
	}
	return chars
}
