package dictionary

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf16"

	prefixtrie "github.com/derekparker/trie"
	"github.com/npillmayer/dictbreak/trie"
)

// WordReader yields dictionary entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, value int32, err error)
}

// Builder collects words and values and compiles them into a dictionary.
//
// Words are kept in a prefix tree until Build is called; adding a word twice
// keeps the last value.
type Builder struct {
	kind      TrieKind
	transform Transform // bytes tries only
	hasValues bool
	words     *prefixtrie.Trie
	count     int
}

// NewBuilder creates a builder for a dictionary of the given kind.
// transform defaults to IdentityTransform for BytesTrie and is ignored for
// CharsTrie.
func NewBuilder(kind TrieKind, transform Transform) (*Builder, error) {
	switch kind {
	case BytesTrie:
		if transform == nil {
			transform = IdentityTransform{}
		}
	case CharsTrie:
		transform = nil
	default:
		return nil, fmt.Errorf("unsupported trie kind %v", kind)
	}
	return &Builder{kind: kind, transform: transform, words: prefixtrie.New()}, nil
}

// Add registers word with value. Values must not be negative.
func (b *Builder) Add(word string, value int32) error {
	if word == "" {
		return errors.New("cannot add empty word to dictionary")
	}
	if value < 0 {
		return fmt.Errorf("word %q has negative value %d", word, value)
	}
	if b.transform != nil {
		for _, c := range word {
			if b.transform.Apply(c) < 0 {
				return fmt.Errorf("word %q: code-point %U not covered by transform %v", word, c, b.transform)
			}
		}
	}
	if node, found := b.words.Find(word); found {
		tracer().Debugf("dictionary word %q re-added, value %v → %d", word, node.Meta(), value)
	} else {
		b.count++
	}
	b.words.Add(word, value)
	if value != 0 {
		b.hasValues = true
	}
	return nil
}

// AddAll reads entries from r until io.EOF.
func (b *Builder) AddAll(r WordReader) error {
	for {
		word, value, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err = b.Add(word, value); err != nil {
			return err
		}
	}
}

// Len returns the number of distinct words.
func (b *Builder) Len() int { return b.count }

// WordsWithPrefix lists the collected words starting with prefix, sorted.
func (b *Builder) WordsWithPrefix(prefix string) []string {
	words := b.words.PrefixSearch(prefix)
	sort.Strings(words)
	return words
}

func (b *Builder) value(word string) int32 {
	node, found := b.words.Find(word)
	if !found {
		return 0
	}
	v, _ := node.Meta().(int32)
	return v
}

// Bytes compiles the collected words into a dictionary blob.
func (b *Builder) Bytes() ([]byte, error) {
	words := b.WordsWithPrefix("")
	var raw []byte
	var err error
	var transform uint32
	switch b.kind {
	case BytesTrie:
		tb := trie.NewBytesBuilder()
		key := make([]byte, 0, 32)
		for _, w := range words {
			key = key[:0]
			for _, c := range w {
				key = append(key, byte(b.transform.Apply(c)))
			}
			if err = tb.Add(key, b.value(w)); err != nil {
				return nil, err
			}
		}
		raw, err = tb.Build().MarshalBinary()
		transform = b.transform.Header()
	case CharsTrie:
		tb := trie.NewCharsBuilder()
		for _, w := range words {
			if err = tb.Add(utf16.Encode([]rune(w)), b.value(w)); err != nil {
				return nil, err
			}
		}
		raw, err = tb.Build().MarshalBinary()
	}
	if err != nil {
		return nil, err
	}
	tracer().Infof("compiled %s dictionary with %d words into %d bytes", b.kind, len(words), len(raw))
	return encode(b.kind, transform, b.hasValues, raw), nil
}

// Build compiles the collected words and returns a matcher for them.
func (b *Builder) Build() (Matcher, error) {
	blob, err := b.Bytes()
	if err != nil {
		return nil, err
	}
	return Parse(blob)
}

// Compile reads all entries from r and returns the dictionary blob.
func Compile(r WordReader, kind TrieKind, transform Transform) ([]byte, error) {
	b, err := NewBuilder(kind, transform)
	if err != nil {
		return nil, err
	}
	if err = b.AddAll(r); err != nil {
		return nil, err
	}
	return b.Bytes()
}

// Write compiles the entries of r and writes the blob to w.
func Write(w io.Writer, r WordReader, kind TrieKind, transform Transform) error {
	blob, err := Compile(r, kind, transform)
	if err != nil {
		return err
	}
	_, err = w.Write(blob)
	return err
}
