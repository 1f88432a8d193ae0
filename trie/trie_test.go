package trie

import (
	"testing"
	"unicode/utf16"
)

func TestResultPredicates(t *testing.T) {
	tests := []struct {
		r                          Result
		matches, hasValue, hasNext bool
	}{
		{NoMatch, false, false, false},
		{NoValue, true, false, true},
		{FinalValue, true, true, false},
		{IntermediateValue, true, true, true},
	}
	for _, tt := range tests {
		if tt.r.Matches() != tt.matches || tt.r.HasValue() != tt.hasValue || tt.r.HasNext() != tt.hasNext {
			t.Fatalf("predicates of %s are wrong", tt.r)
		}
	}
}

func buildBytes(t *testing.T, entries map[string]int32) *BytesTrie {
	t.Helper()
	bb := NewBytesBuilder()
	for k, v := range entries {
		if err := bb.Add([]byte(k), v); err != nil {
			t.Fatalf("cannot add %q: %v", k, err)
		}
	}
	return bb.Build()
}

func TestBytesIterator(t *testing.T) {
	tr := buildBytes(t, map[string]int32{"ab": 1, "abc": 2, "x": 0})
	it := tr.Iterator()
	if r := it.First('a'); r != NoValue {
		t.Fatalf("'a' should be NoValue, is %s", r)
	}
	if r := it.Next('b'); r != IntermediateValue || it.Value() != 1 {
		t.Fatalf("'ab' should be IntermediateValue(1), is %s(%d)", r, it.Value())
	}
	if r := it.Next('c'); r != FinalValue || it.Value() != 2 {
		t.Fatalf("'abc' should be FinalValue(2), is %s(%d)", r, it.Value())
	}
	if r := it.Next('d'); r != NoMatch {
		t.Fatalf("'abcd' should be NoMatch, is %s", r)
	}
	if r := it.Next('a'); r != NoMatch {
		t.Fatalf("iterator must stay in NoMatch, is %s", r)
	}
	if r := it.First('x'); r != FinalValue || it.Value() != 0 {
		t.Fatalf("'x' should be FinalValue(0), is %s", r)
	}
	if r := it.First(-1); r != NoMatch {
		t.Fatalf("negative input should not match, is %s", r)
	}
	if r := it.First(0x100); r != NoMatch {
		t.Fatalf("input beyond a byte should not match, is %s", r)
	}
}

func TestBytesTrieSerialization(t *testing.T) {
	entries := map[string]int32{"\x00\x01": 5, "\xff\xfe\xfd": 6, "\x10": 7}
	tr := buildBytes(t, entries)
	data, err := tr.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := UnmarshalBytesTrie(data)
	if err != nil {
		t.Fatal(err)
	}
	for k, v := range entries {
		it := decoded.Iterator()
		var r Result
		for i := 0; i < len(k); i++ {
			if i == 0 {
				r = it.First(int(k[i]))
			} else {
				r = it.Next(int(k[i]))
			}
		}
		if !r.HasValue() || it.Value() != v {
			t.Fatalf("key %q: result %s, value %d, want %d", k, r, it.Value(), v)
		}
	}
	if _, err := UnmarshalBytesTrie(data[:len(data)-3]); err == nil {
		t.Fatalf("expected error for truncated data")
	}
}

func TestCharsTrieCodePoints(t *testing.T) {
	cb := NewCharsBuilder()
	words := map[string]int32{
		"にほん":  400,
		"にほんご": 300,
		"𠀋":    44, // supplementary code-point, two code units
		"日本":   12,
	}
	for w, v := range words {
		if err := cb.AddString(w, v); err != nil {
			t.Fatal(err)
		}
	}
	tr := cb.Build()
	data, err := tr.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	if len(data)%2 != 0 {
		t.Fatalf("chars trie encoding must have an even byte count")
	}
	decoded, err := UnmarshalCharsTrie(data)
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range []*CharsTrie{tr, decoded} {
		for w, v := range words {
			it := tr.Iterator()
			var r Result
			for i, c := range []rune(w) {
				if i == 0 {
					r = it.FirstForCodePoint(c)
				} else {
					r = it.NextForCodePoint(c)
				}
			}
			if !r.HasValue() || it.Value() != v {
				t.Fatalf("word %q: result %s, value %d, want %d", w, r, it.Value(), v)
			}
		}
		it := tr.Iterator()
		if r := it.FirstForCodePoint('ア'); r != NoMatch {
			t.Fatalf("unknown code-point should not match, is %s", r)
		}
		lead, _ := utf16.EncodeRune('𠀋')
		if r := it.First(uint16(lead)); r != NoValue {
			t.Fatalf("lead surrogate should be a proper prefix, is %s", r)
		}
	}
	if _, err := UnmarshalCharsTrie(data[:len(data)-1]); err == nil {
		t.Fatalf("expected error for odd byte count")
	}
}

func TestStats(t *testing.T) {
	tr := buildBytes(t, map[string]int32{"ab": 1, "ac": 2})
	s := tr.Stats()
	if s.Kind != "bytes" || s.UsedSlots != 4 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if fill := s.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("fill ratio out of range: %f", fill)
	}
}
