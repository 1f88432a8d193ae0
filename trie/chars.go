package trie

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/npillmayer/dictbreak/dat"
)

// CharsTrie is an immutable trie over UTF-16 code unit sequences.
type CharsTrie struct {
	d        *dat.DAT
	alphabet *dat.Alphabet
}

// CharsBuilder collects UTF-16 keys for a CharsTrie.
type CharsBuilder struct {
	b        *dat.Builder
	alphabet *dat.Alphabet
}

// NewCharsBuilder creates an empty builder.
func NewCharsBuilder() *CharsBuilder {
	return &CharsBuilder{b: dat.NewBuilder(), alphabet: &dat.Alphabet{}}
}

// Add inserts key with a non-negative value.
func (cb *CharsBuilder) Add(key []uint16, value int32) error {
	labels := make([]uint16, len(key))
	for i, u := range key {
		label, err := cb.alphabet.Add(u)
		if err != nil {
			return fmt.Errorf("chars trie: %w", err)
		}
		labels[i] = label
	}
	return cb.b.Insert(labels, value)
}

// AddString inserts the UTF-16 encoding of s.
func (cb *CharsBuilder) AddString(s string, value int32) error {
	return cb.Add(utf16.Encode([]rune(s)), value)
}

// Len returns the number of distinct keys added so far.
func (cb *CharsBuilder) Len() int { return cb.b.Len() }

// Build freezes the collected keys into a CharsTrie.
func (cb *CharsBuilder) Build() *CharsTrie {
	return &CharsTrie{d: cb.b.Freeze(), alphabet: cb.alphabet}
}

// Iterator returns a fresh iterator positioned at the root.
func (t *CharsTrie) Iterator() *CharsIterator {
	it := &CharsIterator{walker: walker{d: t.d}, alphabet: t.alphabet}
	it.reset()
	return it
}

// Stats reports density metrics.
func (t *CharsTrie) Stats() Stats {
	return Stats{Kind: "chars", UsedSlots: t.d.UsedSlots(), TotalSlots: t.d.NStates(), Sigma: int(t.d.Sigma)}
}

func (t *CharsTrie) String() string {
	return fmt.Sprintf("CharsTrie(states=%d,pages=%d)", t.d.NStates(), t.alphabet.NumPages())
}

// CharsIterator walks a CharsTrie by code unit or by code-point.
type CharsIterator struct {
	walker
	alphabet *dat.Alphabet
}

// First resets the iterator to the root and consumes unit.
func (it *CharsIterator) First(unit uint16) Result {
	it.reset()
	return it.Next(unit)
}

// Next consumes unit. Units not in the trie's alphabet never match.
func (it *CharsIterator) Next(unit uint16) Result {
	label := it.alphabet.Label(unit)
	if label == 0 {
		it.state = 0
		it.result = NoMatch
		return NoMatch
	}
	return it.step(label)
}

// FirstForCodePoint resets the iterator to the root and consumes c.
func (it *CharsIterator) FirstForCodePoint(c rune) Result {
	it.reset()
	return it.NextForCodePoint(c)
}

// NextForCodePoint consumes c, as a surrogate pair for supplementary
// code-points.
func (it *CharsIterator) NextForCodePoint(c rune) Result {
	if c < 0 || c > 0x10FFFF {
		it.state = 0
		it.result = NoMatch
		return NoMatch
	}
	if c <= 0xFFFF {
		return it.Next(uint16(c))
	}
	lead, trail := utf16.EncodeRune(c)
	if !it.Next(uint16(lead)).HasNext() {
		it.state = 0
		it.result = NoMatch
		return NoMatch
	}
	return it.Next(uint16(trail))
}

// Current returns the result of the last step.
func (it *CharsIterator) Current() Result { return it.result }

// Value returns the value of the key just matched.
func (it *CharsIterator) Value() int32 { return it.value() }

// --- Serialization ---------------------------------------------------------

// The encoding is a sequence of little endian UTF-16 code units:
//
//	sigma | numPages | root (2 units) | n (2 units) | top[256] |
//	pages[numPages*256] | base[n] | check[n] | value[n]
//
// Array entries take two units each (low unit first).
const charsHeaderUnits = 6 + 256

// MarshalBinary encodes the trie.
func (t *CharsTrie) MarshalBinary() ([]byte, error) {
	n := t.d.NStates()
	units := make([]uint16, 0, charsHeaderUnits+len(t.alphabet.Pages)+6*n)
	units = append(units, t.d.Sigma, uint16(t.alphabet.NumPages()))
	units = appendInt32Units(units, int32(t.d.Root))
	units = appendInt32Units(units, int32(n))
	units = append(units, t.alphabet.Index[:]...)
	units = append(units, t.alphabet.Pages...)
	for _, arr := range [][]int32{t.d.Base, t.d.Check, t.d.Value} {
		for _, x := range arr {
			units = appendInt32Units(units, x)
		}
	}
	buf := make([]byte, 0, 2*len(units))
	for _, u := range units {
		buf = binary.LittleEndian.AppendUint16(buf, u)
	}
	return buf, nil
}

func appendInt32Units(units []uint16, x int32) []uint16 {
	return append(units, uint16(uint32(x)), uint16(uint32(x)>>16))
}

func int32FromUnits(units []uint16) int32 {
	return int32(uint32(units[0]) | uint32(units[1])<<16)
}

// UnmarshalCharsTrie decodes a trie produced by MarshalBinary.
func UnmarshalCharsTrie(data []byte) (*CharsTrie, error) {
	if len(data)%2 != 0 {
		return nil, errors.New("chars trie: odd number of bytes")
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(data[2*i:])
	}
	if len(units) < charsHeaderUnits {
		return nil, errors.New("chars trie: data too short")
	}
	d := &dat.DAT{Sigma: units[0], Root: uint32(int32FromUnits(units[2:]))}
	numPages := int(units[1])
	n := int(int32FromUnits(units[4:]))
	if n < 0 || len(units) != charsHeaderUnits+256*numPages+6*n {
		return nil, fmt.Errorf("chars trie: %d states and %d pages do not fit %d units", n, numPages, len(units))
	}
	alphabet := &dat.Alphabet{}
	copy(alphabet.Index[:], units[6:charsHeaderUnits])
	p := charsHeaderUnits
	alphabet.Pages = append([]uint16(nil), units[p:p+256*numPages]...)
	p += 256 * numPages
	if err := alphabet.Restore(); err != nil {
		return nil, fmt.Errorf("chars trie: %w", err)
	}
	d.Base, d.Check, d.Value = make([]int32, n), make([]int32, n), make([]int32, n)
	for _, arr := range [][]int32{d.Base, d.Check, d.Value} {
		for i := range arr {
			arr[i] = int32FromUnits(units[p:])
			p += 2
		}
	}
	if !d.Validate() {
		return nil, errors.New("chars trie: inconsistent double array")
	}
	tracer().Debugf("decoded chars trie with %d states, %d alphabet pages", n, numPages)
	return &CharsTrie{d: d, alphabet: alphabet}, nil
}
