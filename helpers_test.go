package dictbreak

import (
	"testing"

	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
)

func mustBytesDict(t *testing.T, offset rune, words ...string) dictionary.Matcher {
	t.Helper()
	b, err := dictionary.NewBuilder(dictionary.BytesTrie, dictionary.OffsetTransform(offset))
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range words {
		if err = b.Add(w, 0); err != nil {
			t.Fatal(err)
		}
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func thaiDict(t *testing.T, words ...string) dictionary.Matcher {
	t.Helper()
	return mustBytesDict(t, 0x0E00, words...)
}

func cjDict(t *testing.T, entries map[string]int32) dictionary.Matcher {
	t.Helper()
	b, err := dictionary.NewBuilder(dictionary.CharsTrie, nil)
	if err != nil {
		t.Fatal(err)
	}
	for w, v := range entries {
		if err = b.Add(w, v); err != nil {
			t.Fatal(err)
		}
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

type rangeDividerEngine interface {
	DivideUpRange(text cursor.Cursor, rangeStart, rangeEnd int, breaks *BreakDeque) int
}

// divideAll divides the complete text and returns the breaks and the count
// reported by the engine.
func divideAll(e rangeDividerEngine, text string) ([]int, int) {
	c := cursor.FromString(text)
	breaks := NewBreakDeque()
	n := e.DivideUpRange(c, 0, c.End(), breaks)
	return breaks.Slice(), n
}

// checkMonotonic verifies that breaks are strictly increasing and within
// (start,end).
func checkMonotonic(t *testing.T, breaks []int, start, end int) {
	t.Helper()
	prev := start
	for _, b := range breaks {
		if b <= prev || b >= end {
			t.Fatalf("breaks %v not strictly increasing within (%d,%d)", breaks, start, end)
		}
		prev = b
	}
}
