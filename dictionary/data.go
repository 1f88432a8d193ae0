package dictionary

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/npillmayer/dictbreak/trie"
)

// Magic is the format tag at the start of every dictionary blob ("Dict").
const Magic uint32 = 0x44696374

// Header index positions.
const (
	IxStringTrieOffset = iota
	IxReserved1Offset
	IxReserved2Offset
	IxTotalSize
	IxTrieType
	IxTransform
	IxReserved6
	IxReserved7
	IxCount
)

// Trie type word.
const (
	TrieTypeMask    int32 = 7
	TrieHasValues   int32 = 8
	indexesSize           = 4 * IxCount
	magicSize             = 4
	minimumBlobSize       = magicSize + indexesSize
)

// Parse decodes a dictionary blob and returns a matcher for it.
func Parse(data []byte) (Matcher, error) {
	if len(data) < minimumBlobSize {
		return nil, formatError("blob of %d bytes is too short for a header", len(data))
	}
	if magic := binary.BigEndian.Uint32(data); magic != Magic {
		return nil, formatError("bad magic 0x%08x", magic)
	}
	data = data[magicSize:]
	var indexes [IxCount]int32
	for i := range indexes {
		indexes[i] = int32(binary.LittleEndian.Uint32(data[4*i:]))
	}
	offset := int(indexes[IxStringTrieOffset])
	end := int(indexes[IxReserved1Offset])
	if offset < indexesSize || end < offset || end > len(data) {
		return nil, formatError("trie bounds [%d,%d) invalid for %d bytes", offset, end, len(data))
	}
	if total := int(indexes[IxTotalSize]); total < end || total > len(data) {
		return nil, formatError("total size %d invalid for %d bytes", total, len(data))
	}
	raw := data[offset:end]
	var m Matcher
	switch kind := TrieKind(indexes[IxTrieType] & TrieTypeMask); kind {
	case BytesTrie:
		transform, err := TransformFromHeader(uint32(indexes[IxTransform]))
		if err != nil {
			return nil, err
		}
		t, err := trie.UnmarshalBytesTrie(raw)
		if err != nil {
			return nil, &FormatError{Msg: "cannot decode bytes trie", Err: err}
		}
		s := t.Stats()
		tracer().Infof("dictionary trie stats kind=%s used=%d total=%d fill=%.2f transform=%v",
			s.Kind, s.UsedSlots, s.TotalSlots, s.FillRatio(), transform)
		m = NewBytesMatcher(t, transform)
	case CharsTrie:
		if len(raw)%2 != 0 {
			return nil, formatError("chars trie has odd byte count %d", len(raw))
		}
		t, err := trie.UnmarshalCharsTrie(raw)
		if err != nil {
			return nil, &FormatError{Msg: "cannot decode chars trie", Err: err}
		}
		s := t.Stats()
		tracer().Infof("dictionary trie stats kind=%s used=%d total=%d fill=%.2f",
			s.Kind, s.UsedSlots, s.TotalSlots, s.FillRatio())
		m = NewCharsMatcher(t)
	default:
		return nil, formatError("unsupported trie type %d", int(kind))
	}
	return m, nil
}

// Load reads a complete dictionary blob from r.
func Load(r io.Reader) (Matcher, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// LoadFile loads a dictionary from a file.
func LoadFile(path string) (Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// encode wraps raw trie bytes into a dictionary blob.
func encode(kind TrieKind, transform uint32, hasValues bool, raw []byte) []byte {
	var indexes [IxCount]int32
	end := int32(indexesSize + len(raw))
	indexes[IxStringTrieOffset] = indexesSize
	indexes[IxReserved1Offset] = end
	indexes[IxReserved2Offset] = end
	indexes[IxTotalSize] = end
	indexes[IxTrieType] = int32(kind)
	if hasValues {
		indexes[IxTrieType] |= TrieHasValues
	}
	indexes[IxTransform] = int32(transform)
	blob := make([]byte, 0, magicSize+int(end))
	blob = binary.BigEndian.AppendUint32(blob, Magic)
	for _, x := range indexes {
		blob = binary.LittleEndian.AppendUint32(blob, uint32(x))
	}
	return append(blob, raw...)
}
