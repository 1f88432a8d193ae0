package trie

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/npillmayer/dictbreak/dat"
)

// BytesTrie is an immutable trie over byte sequences.
type BytesTrie struct {
	d *dat.DAT
}

// BytesBuilder collects byte keys for a BytesTrie.
type BytesBuilder struct {
	b *dat.Builder
}

// NewBytesBuilder creates an empty builder.
func NewBytesBuilder() *BytesBuilder {
	return &BytesBuilder{b: dat.NewBuilder()}
}

// Add inserts key with a non-negative value.
func (bb *BytesBuilder) Add(key []byte, value int32) error {
	labels := make([]uint16, len(key))
	for i, c := range key {
		labels[i] = uint16(c) + 1 // label 0 is reserved
	}
	return bb.b.Insert(labels, value)
}

// Len returns the number of distinct keys added so far.
func (bb *BytesBuilder) Len() int { return bb.b.Len() }

// Build freezes the collected keys into a BytesTrie.
func (bb *BytesBuilder) Build() *BytesTrie {
	return &BytesTrie{d: bb.b.Freeze()}
}

// Iterator returns a fresh iterator positioned at the root.
func (t *BytesTrie) Iterator() *BytesIterator {
	it := &BytesIterator{walker{d: t.d}}
	it.reset()
	return it
}

// Stats reports density metrics.
func (t *BytesTrie) Stats() Stats {
	return Stats{Kind: "bytes", UsedSlots: t.d.UsedSlots(), TotalSlots: t.d.NStates(), Sigma: int(t.d.Sigma)}
}

func (t *BytesTrie) String() string {
	return fmt.Sprintf("BytesTrie(states=%d)", t.d.NStates())
}

// BytesIterator walks a BytesTrie one input byte at a time.
type BytesIterator struct {
	walker
}

// First resets the iterator to the root and consumes b.
// b outside of [0,0xFF] never matches.
func (it *BytesIterator) First(b int) Result {
	it.reset()
	return it.Next(b)
}

// Next consumes b.
func (it *BytesIterator) Next(b int) Result {
	if b < 0 || b > 0xFF {
		it.state = 0
		it.result = NoMatch
		return NoMatch
	}
	return it.step(uint16(b) + 1)
}

// Current returns the result of the last step.
func (it *BytesIterator) Current() Result { return it.result }

// Value returns the value of the key just matched. Only meaningful if the
// last result had a value.
func (it *BytesIterator) Value() int32 { return it.value() }

// --- Serialization ---------------------------------------------------------

// Layout (little endian):
//
//	uint32 root | uint16 sigma | uint16 reserved | uint32 n |
//	n × int32 base | n × int32 check | n × int32 value
const bytesHeaderSize = 12

// MarshalBinary encodes the trie.
func (t *BytesTrie) MarshalBinary() ([]byte, error) {
	n := t.d.NStates()
	buf := make([]byte, bytesHeaderSize, bytesHeaderSize+12*n)
	binary.LittleEndian.PutUint32(buf[0:], t.d.Root)
	binary.LittleEndian.PutUint16(buf[4:], t.d.Sigma)
	binary.LittleEndian.PutUint32(buf[8:], uint32(n))
	for _, arr := range [][]int32{t.d.Base, t.d.Check, t.d.Value} {
		for _, x := range arr {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(x))
		}
	}
	return buf, nil
}

// UnmarshalBytesTrie decodes a trie produced by MarshalBinary.
func UnmarshalBytesTrie(data []byte) (*BytesTrie, error) {
	if len(data) < bytesHeaderSize {
		return nil, errors.New("bytes trie: data too short")
	}
	d := &dat.DAT{
		Root:  binary.LittleEndian.Uint32(data[0:]),
		Sigma: binary.LittleEndian.Uint16(data[4:]),
	}
	n := int(binary.LittleEndian.Uint32(data[8:]))
	if n < 0 || len(data)-bytesHeaderSize != 12*n {
		return nil, fmt.Errorf("bytes trie: %d states do not fit %d bytes", n, len(data))
	}
	d.Base, d.Check, d.Value = make([]int32, n), make([]int32, n), make([]int32, n)
	p := bytesHeaderSize
	for _, arr := range [][]int32{d.Base, d.Check, d.Value} {
		for i := range arr {
			arr[i] = int32(binary.LittleEndian.Uint32(data[p:]))
			p += 4
		}
	}
	if !d.Validate() {
		return nil, errors.New("bytes trie: inconsistent double array")
	}
	tracer().Debugf("decoded bytes trie with %d states", n)
	return &BytesTrie{d: d}, nil
}
