package dictbreak

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// scriptSets holds the character classes a lookahead engine needs.
// All tables are frozen after setup.
type scriptSets struct {
	word      *unicode.RangeTable // characters segmented by the engine
	mark      *unicode.RangeTable // never break before these
	beginWord *unicode.RangeTable // may start a word
	endWord   *unicode.RangeTable // may end a word
	suffix    *unicode.RangeTable // may be appended to a preceding word
}

var (
	setupOnce sync.Once

	thaiSets, laoSets, khmerSets, burmeseSets scriptSets

	katakanaSet, cjSet, hangulSet *unicode.RangeTable
	dictionaryScripts             *unicode.RangeTable // union of all engine scripts
)

// setupCharsets creates the character classes of all engines.
// (Concurrency-safe).
func setupCharsets() {
	setupOnce.Do(func() {
		thaiSets = newScriptSets(unicode.Thai, []rune{0x0E01, 0x0E3A, 0x0E40, 0x0E4E})
		thaiSets.beginWord = spans(0x0E01, 0x0E2E, 0x0E40, 0x0E44)
		thaiSets.endWord = without(thaiSets.word, spans(0x0E31, 0x0E31, 0x0E40, 0x0E44))
		thaiSets.suffix = rangetable.New(thaiPaiyannoi, thaiMaiyamok)

		laoSets = newScriptSets(unicode.Lao, []rune{0x0E81, 0x0ECF, 0x0EDA, 0x0EDF})
		laoSets.beginWord = spans(0x0E81, 0x0EAE, 0x0EDC, 0x0EDD, 0x0EC0, 0x0EC4)
		laoSets.endWord = without(laoSets.word, spans(0x0EC0, 0x0EC4))

		khmerSets = newScriptSets(unicode.Khmer, []rune{0x1780, 0x17D3, 0x17D7, 0x17D7, 0x17DC, 0x17DD})
		khmerSets.beginWord = spans(0x1780, 0x17B3)
		khmerSets.endWord = without(khmerSets.word, spans(khmerSignCoeng, khmerSignCoeng))

		burmeseSets = newScriptSets(unicode.Myanmar, []rune{0x1000, 0x103F, 0x1050, 0x108F,
			0x109A, 0x109F, 0xA9E0, 0xA9EF, 0xA9FA, 0xA9FE, 0xAA60, 0xAA7F})
		burmeseSets.beginWord = spans(0x1000, 0x102A)
		burmeseSets.endWord = burmeseSets.word

		katakanaSet = rangetable.Merge(unicode.Katakana, rangetable.New(0xFF9E, 0xFF9F))
		cjSet = rangetable.Merge(unicode.Han, katakanaSet, unicode.Hiragana, rangetable.New(0xFF70, 0x30FC))
		hangulSet = spans(0xAC00, 0xD7A3)

		dictionaryScripts = rangetable.Merge(thaiSets.word, laoSets.word, khmerSets.word,
			burmeseSets.word, cjSet, hangulSet)
		tracer().Debugf("dictionary engine character classes set up")
	})
}

// newScriptSets creates the word set as the part of script within the
// given [lo,hi] pairs, and the mark set as its combining marks plus space.
func newScriptSets(script *unicode.RangeTable, bounds []rune) scriptSets {
	inBounds := spans(bounds...)
	word := filter(script, func(r rune) bool { return unicode.Is(inBounds, r) })
	mark := rangetable.Merge(filter(word, func(r rune) bool { return unicode.Is(unicode.M, r) }),
		rangetable.New(' '))
	return scriptSets{word: word, mark: mark}
}

// spans creates a table from pairs of inclusive bounds.
func spans(bounds ...rune) *unicode.RangeTable {
	assert(len(bounds)%2 == 0, "spans need pairs of bounds")
	var runes []rune
	for i := 0; i < len(bounds); i += 2 {
		for r := bounds[i]; r <= bounds[i+1]; r++ {
			runes = append(runes, r)
		}
	}
	return rangetable.New(runes...)
}

func filter(t *unicode.RangeTable, keep func(rune) bool) *unicode.RangeTable {
	var runes []rune
	rangetable.Visit(t, func(r rune) {
		if keep(r) {
			runes = append(runes, r)
		}
	})
	return rangetable.New(runes...)
}

func without(t, remove *unicode.RangeTable) *unicode.RangeTable {
	return filter(t, func(r rune) bool { return !unicode.Is(remove, r) })
}
