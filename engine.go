package dictbreak

import (
	"fmt"
	"unicode"

	"github.com/npillmayer/dictbreak/cursor"
)

// BreakKind is the kind of boundary a break iterator is looking for.
type BreakKind uint8

const (
	CharacterBreak BreakKind = iota
	WordBreak
	LineBreak
	SentenceBreak
	TitleBreak
	kindCount
)

func (k BreakKind) String() string {
	switch k {
	case CharacterBreak:
		return "character"
	case WordBreak:
		return "word"
	case LineBreak:
		return "line"
	case SentenceBreak:
		return "sentence"
	case TitleBreak:
		return "title"
	}
	return fmt.Sprintf("BreakKind(%d)", int(k))
}

// kindSet is a bitset of break kinds.
type kindSet uint8

func kinds(kk ...BreakKind) kindSet {
	var s kindSet
	for _, k := range kk {
		s |= 1 << k
	}
	return s
}

func (s kindSet) has(k BreakKind) bool {
	return k < kindCount && s&(1<<k) != 0
}

// Engine finds breaks within runs of text of a single script.
type Engine interface {
	// Handles is true if the engine is responsible for c when looking
	// for breaks of the given kind.
	Handles(c rune, kind BreakKind) bool

	// FindBreaks scans text from startPos towards endPos as long as the
	// engine handles the characters, and pushes the breaks found inside this
	// run onto breaks. It returns the number of breaks pushed and leaves
	// the cursor at the end of the run.
	FindBreaks(text cursor.Cursor, startPos, endPos int, kind BreakKind, breaks *BreakDeque) int
}

// rangeDivider segments a run of characters known to belong to an engine's
// character set.
type rangeDivider func(text cursor.Cursor, rangeStart, rangeEnd int, breaks *BreakDeque) int

// dictionaryEngine is the common part of all dictionary-based engines.
type dictionaryEngine struct {
	chars  *unicode.RangeTable
	kinds  kindSet
	divide rangeDivider
}

// Handles is true if kind is supported and c is part of the engine's script.
func (e *dictionaryEngine) Handles(c rune, kind BreakKind) bool {
	return e.kinds.has(kind) && inSet(e.chars, c)
}

// FindBreaks establishes the run starting at startPos and delegates it to
// the engine's range divider.
func (e *dictionaryEngine) FindBreaks(text cursor.Cursor, startPos, endPos int, kind BreakKind,
	breaks *BreakDeque) int {
	//
	text.SetIndex(startPos)
	c := text.Current()
	for text.Index() < endPos && inSet(e.chars, c) {
		c = text.Next()
	}
	rangeEnd := text.Index()
	found := e.divide(text, startPos, rangeEnd, breaks)
	text.SetIndex(rangeEnd)
	return found
}

func inSet(set *unicode.RangeTable, c rune) bool {
	return c != cursor.Done && set != nil && unicode.Is(set, c)
}
