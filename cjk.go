package dictbreak

import (
	"math"
	"unicode/utf8"

	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
	"golang.org/x/text/unicode/norm"
)

const (
	maxWordSize            = 20  // longest dictionary word considered
	maxSnlp                = 255 // cost of a single unknown character
	maxKatakanaLength      = 8
	maxKatakanaGroupLength = 20
	unreachable            = math.MaxInt32
)

// katakanaCosts are the costs of Katakana runs by length; index 0 is unused.
var katakanaCosts = [maxKatakanaLength + 1]int32{8192, 984, 408, 240, 204, 252, 300, 372, 480}

func katakanaCost(length int) int32 {
	if length > maxKatakanaLength {
		return 8192
	}
	return katakanaCosts[length]
}

func isKatakana(c rune) bool {
	return (c >= 0x30A1 && c <= 0x30FE && c != 0x30FB) || (c >= 0xFF66 && c <= 0xFF9F)
}

// CJKEngine segments Chinese and Japanese (or Korean) text by searching the
// cheapest sequence of words. Dictionary values are word costs (negative log
// probabilities). Characters without a single-character dictionary entry may
// form a word at a high cost, except Hangul, and a run of Katakana may form
// a word at a cost depending on its length.
type CJKEngine struct {
	dictionaryEngine
	dict   dictionary.Matcher
	korean bool
}

var _ Engine = (*CJKEngine)(nil)

// NewCJKEngine creates an engine for Han, Hiragana and Katakana, using a
// dictionary with word costs for script "Hira".
func NewCJKEngine(dict dictionary.Matcher) *CJKEngine {
	setupCharsets()
	return newCJKEngine(dict, false)
}

// NewKoreanEngine creates an engine for Hangul syllables.
func NewKoreanEngine(dict dictionary.Matcher) *CJKEngine {
	setupCharsets()
	return newCJKEngine(dict, true)
}

func newCJKEngine(dict dictionary.Matcher, korean bool) *CJKEngine {
	assert(dict != nil, "CJK engine needs a dictionary")
	e := &CJKEngine{dict: dict, korean: korean}
	chars := cjSet
	if korean {
		chars = hangulSet
	}
	e.dictionaryEngine = dictionaryEngine{
		chars:  chars,
		kinds:  kinds(WordBreak),
		divide: e.DivideUpRange,
	}
	tracer().Infof("created CJK dictionary break engine (korean=%v)", korean)
	return e
}

// lattice holds, for every character index, the cost of the cheapest
// segmentation reaching it and the index this segmentation came from.
type lattice struct {
	bestSnlp []int32 // unreachable if the index has not been reached
	prev     []int   // -1 if the index has not been reached
}

func newLattice(numChars int) *lattice {
	l := &lattice{
		bestSnlp: make([]int32, numChars+1),
		prev:     make([]int, numChars+1),
	}
	for i := range l.bestSnlp {
		l.bestSnlp[i] = unreachable
		l.prev[i] = -1
	}
	l.bestSnlp[0] = 0
	return l
}

func (l *lattice) reached(i int) bool {
	return l.bestSnlp[i] != unreachable
}

// relax records a word from..to with the given cost, if it improves the
// cost of reaching to.
func (l *lattice) relax(from, to int, cost int32) {
	if !l.reached(from) {
		return
	}
	snlp := l.bestSnlp[from]
	if cost >= unreachable-1-snlp {
		snlp = unreachable - 1 // saturate, but stay reachable
	} else {
		snlp += cost
	}
	if snlp < l.bestSnlp[to] {
		l.bestSnlp[to] = snlp
		l.prev[to] = from
	}
}

// path returns the boundaries of the cheapest segmentation, last first.
func (l *lattice) path() []int {
	numChars := len(l.bestSnlp) - 1
	if !l.reached(numChars) {
		return []int{numChars}
	}
	boundaries := make([]int, 0, numChars)
	for i := numChars; i > 0; i = l.prev[i] {
		boundaries = append(boundaries, i)
	}
	if len(boundaries) > 0 {
		assert(l.prev[boundaries[len(boundaries)-1]] == 0, "segmentation path does not start at 0")
	}
	return boundaries
}

// bestSegmentation runs the dynamic programming over normalized text.
func (e *CJKEngine) bestSegmentation(chars []rune) *lattice {
	numChars := len(chars)
	l := newLattice(numChars)
	text := cursor.NewRuneCursor(chars)
	lengths := make([]int, maxWordSize+1)
	values := make([]int32, maxWordSize+1)
	prevKatakana := false
	for i := 0; i < numChars; i++ {
		if !l.reached(i) {
			continue
		}
		text.SetIndex(i)
		maxSearch := min(maxWordSize, numChars-i)
		count, _ := e.dict.Matches(text, maxSearch, lengths, values, maxSearch)
		// Without a single-character word in the dictionary, treat the
		// character as a word of its own at the highest cost. Hangul is
		// left together by default.
		c := chars[i]
		if (count == 0 || lengths[0] != 1) && !inSet(hangulSet, c) {
			lengths[count] = 1
			values[count] = maxSnlp
			count++
		}
		for j := 0; j < count; j++ {
			l.relax(i, i+lengths[j], values[j])
		}
		// Single-character Katakana words are rare in Japanese, so a whole
		// run of Katakana is a candidate word as well.
		katakana := isKatakana(c)
		if !prevKatakana && katakana {
			j := i + 1
			for j < numChars && j-i < maxKatakanaGroupLength && isKatakana(chars[j]) {
				j++
			}
			if j-i < maxKatakanaGroupLength {
				l.relax(i, j, katakanaCost(j-i))
			}
		}
		prevKatakana = katakana
	}
	return l
}

// DivideUpRange segments text[rangeStart:rangeEnd] and pushes the breaks
// found onto breaks, skipping breaks already present. A break at rangeEnd
// is not reported. The cursor is left at the last break. It returns the
// number of breaks pushed.
func (e *CJKEngine) DivideUpRange(text cursor.Cursor, rangeStart, rangeEnd int, breaks *BreakDeque) int {
	if rangeStart >= rangeEnd {
		return 0
	}
	input := make([]rune, 0, rangeEnd-rangeStart)
	text.SetIndex(rangeStart)
	for text.Index() < rangeEnd {
		input = append(input, text.Current())
		text.Next()
	}
	normalized, charPositions := normalizeNFKC(input)
	boundaries := e.bestSegmentation(normalized).path()
	pushed := 0
	for i := len(boundaries) - 1; i >= 0; i-- {
		pos := charPositions[boundaries[i]] + rangeStart
		if pos == rangeStart || breaks.Contains(pos) {
			continue
		}
		breaks.Push(pos)
		pushed++
	}
	if pushed > 0 && breaks.Peek() == rangeEnd {
		breaks.Pop() // end of range is not an internal break
		pushed--
	}
	if !breaks.IsEmpty() {
		text.SetIndex(breaks.Peek())
	}
	tracer().Debugf("CJK: %d breaks in range [%d,%d)", pushed, rangeStart, rangeEnd)
	return pushed
}

// normalizeNFKC returns the NFKC form of input, together with a map from
// indices of the normalized text to indices of input. Code-points produced
// inside a normalization segment map to the segment's start, the last one
// maps to its end.
func normalizeNFKC(input []rune) ([]rune, []int) {
	s := string(input)
	if norm.NFKC.IsNormalString(s) {
		positions := make([]int, len(input)+1)
		for i := range positions {
			positions[i] = i
		}
		return input, positions
	}
	runeIndex := make([]int, len(s)+1) // byte offset → code-point index
	n := 0
	for b := range s {
		runeIndex[b] = n
		n++
	}
	runeIndex[len(s)] = n
	normalized := make([]rune, 0, len(input))
	positions := make([]int, 1, len(input)+1)
	var it norm.Iter
	it.InitString(norm.NFKC, s)
	for !it.Done() {
		start := runeIndex[it.Pos()]
		segment := it.Next()
		end := runeIndex[it.Pos()]
		count := utf8.RuneCount(segment)
		k := 0
		for len(segment) > 0 {
			r, size := utf8.DecodeRune(segment)
			segment = segment[size:]
			normalized = append(normalized, r)
			if k++; k == count {
				positions = append(positions, end)
			} else {
				positions = append(positions, start)
			}
		}
	}
	return normalized, positions
}
