package dictionary

import (
	"fmt"

	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/trie"
)

// TrieKind tells which trie encoding backs a dictionary.
type TrieKind int

const (
	BytesTrie TrieKind = 0
	CharsTrie TrieKind = 1
)

func (k TrieKind) String() string {
	switch k {
	case BytesTrie:
		return "bytes"
	case CharsTrie:
		return "chars"
	}
	return fmt.Sprintf("TrieKind(%d)", int(k))
}

// Matcher finds dictionary words at a text position.
//
// Matches walks the dictionary from the cursor's position, reading at most
// maxLength code-points. Every dictionary word that is a prefix of the text
// is reported in ascending length order: its length goes to lengths[i] and,
// if values is non-nil, its value goes to values[i]. At most limit words are
// reported; limit must not exceed len(lengths) (nor len(values)).
//
// count is the number of words reported. consumed is the number of
// code-points the walk read, which may exceed the longest word. The cursor
// is left after the consumed code-points; callers reposition it.
//
// Matchers are immutable and may be shared between goroutines.
type Matcher interface {
	Matches(text cursor.Cursor, maxLength int, lengths []int, values []int32, limit int) (count, consumed int)
	Kind() TrieKind
}

// BytesMatcher matches a BytesTrie, mapping code-points to bytes with a
// Transform.
type BytesMatcher struct {
	trie      *trie.BytesTrie
	transform Transform
}

var _ Matcher = (*BytesMatcher)(nil)

// NewBytesMatcher creates a matcher for a bytes trie.
func NewBytesMatcher(t *trie.BytesTrie, transform Transform) *BytesMatcher {
	return &BytesMatcher{trie: t, transform: transform}
}

func (m *BytesMatcher) Kind() TrieKind { return BytesTrie }

// Trie returns the underlying trie.
func (m *BytesMatcher) Trie() *trie.BytesTrie { return m.trie }

func (m *BytesMatcher) Matches(text cursor.Cursor, maxLength int, lengths []int, values []int32,
	limit int) (count, consumed int) {
	//
	if maxLength <= 0 {
		return 0, 0
	}
	c := text.Current()
	if c == cursor.Done {
		return 0, 0
	}
	text.Next()
	it := m.trie.Iterator()
	result := it.First(m.transform.Apply(c))
	consumed = 1
	for {
		if result.HasValue() {
			if count < limit {
				if values != nil {
					values[count] = it.Value()
				}
				lengths[count] = consumed
				count++
			}
			if result == trie.FinalValue {
				break
			}
		} else if result == trie.NoMatch {
			break
		}
		if consumed >= maxLength {
			break
		}
		if c = text.Current(); c == cursor.Done {
			break
		}
		text.Next()
		consumed++
		result = it.Next(m.transform.Apply(c))
	}
	return count, consumed
}

// CharsMatcher matches a CharsTrie code-point by code-point.
type CharsMatcher struct {
	trie *trie.CharsTrie
}

var _ Matcher = (*CharsMatcher)(nil)

// NewCharsMatcher creates a matcher for a chars trie.
func NewCharsMatcher(t *trie.CharsTrie) *CharsMatcher {
	return &CharsMatcher{trie: t}
}

func (m *CharsMatcher) Kind() TrieKind { return CharsTrie }

// Trie returns the underlying trie.
func (m *CharsMatcher) Trie() *trie.CharsTrie { return m.trie }

func (m *CharsMatcher) Matches(text cursor.Cursor, maxLength int, lengths []int, values []int32,
	limit int) (count, consumed int) {
	//
	if maxLength <= 0 {
		return 0, 0
	}
	c := text.Current()
	if c == cursor.Done {
		return 0, 0
	}
	text.Next()
	it := m.trie.Iterator()
	result := it.FirstForCodePoint(c)
	consumed = 1
	for {
		if result.HasValue() {
			if count < limit {
				if values != nil {
					values[count] = it.Value()
				}
				lengths[count] = consumed
				count++
			}
			if result == trie.FinalValue {
				break
			}
		} else if result == trie.NoMatch {
			break
		}
		if consumed >= maxLength {
			break
		}
		if c = text.Current(); c == cursor.Done {
			break
		}
		text.Next()
		consumed++
		result = it.NextForCodePoint(c)
	}
	return count, consumed
}
