package dictionary

import (
	"encoding/binary"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/npillmayer/dictbreak/cursor"
)

type sliceWordReader struct {
	words  []string
	values []int32
	index  int
}

func (r *sliceWordReader) Next() (string, int32, error) {
	if r.index >= len(r.words) {
		return "", 0, io.EOF
	}
	i := r.index
	r.index++
	if r.values == nil {
		return r.words[i], 0, nil
	}
	return r.words[i], r.values[i], nil
}

func mustBuild(t *testing.T, kind TrieKind, transform Transform, words []string, values []int32) Matcher {
	t.Helper()
	b, err := NewBuilder(kind, transform)
	if err != nil {
		t.Fatal(err)
	}
	if err = b.AddAll(&sliceWordReader{words: words, values: values}); err != nil {
		t.Fatal(err)
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestTrieRoundTrip(t *testing.T) {
	thai := []string{"แมว", "กิน", "กินข้าว", "ปลา", "ข้าว"}
	values := []int32{10, 20, 30, 40, 50}
	bytesDict := mustBuild(t, BytesTrie, OffsetTransform(0x0E00), thai, values)
	charsDict := mustBuild(t, CharsTrie, nil, thai, values)
	for _, m := range []Matcher{bytesDict, charsDict} {
		for i, w := range thai {
			text := cursor.FromString(w + "xyz")
			lengths := make([]int, 20)
			vals := make([]int32, 20)
			count, _ := m.Matches(text, text.End(), lengths, vals, 20)
			found := false
			for j := 0; j < count; j++ {
				if lengths[j] == len([]rune(w)) && vals[j] == values[i] {
					found = true
				}
			}
			if !found {
				t.Fatalf("%s dictionary: word %q not matched with value %d; have %v/%v",
					m.Kind(), w, values[i], lengths[:count], vals[:count])
			}
		}
	}
}

func TestMatchesReportsAllPrefixesAscending(t *testing.T) {
	m := mustBuild(t, CharsTrie, nil, []string{"日", "日本", "日本語", "日本語学校"}, []int32{3, 2, 1, 9})
	text := cursor.FromString("日本語学")
	lengths := make([]int, 8)
	values := make([]int32, 8)
	count, consumed := m.Matches(text, 10, lengths, values, 8)
	if count != 3 {
		t.Fatalf("expected 3 matches, have %d", count)
	}
	if !reflect.DeepEqual(lengths[:count], []int{1, 2, 3}) || !reflect.DeepEqual(values[:count], []int32{3, 2, 1}) {
		t.Fatalf("unexpected matches %v %v", lengths[:count], values[:count])
	}
	if consumed != 4 || text.Index() != 4 {
		t.Fatalf("walk should consume the text beyond the longest word, consumed=%d index=%d", consumed, text.Index())
	}
	text.SetIndex(0)
	count, consumed = m.Matches(text, 2, lengths, nil, 8)
	if count != 2 || consumed != 2 {
		t.Fatalf("maxLength must cap the walk, count=%d consumed=%d", count, consumed)
	}
	text.SetIndex(0)
	count, _ = m.Matches(text, 10, lengths, values, 1)
	if count != 1 || lengths[0] != 1 {
		t.Fatalf("limit must cap the number of matches, count=%d", count)
	}
}

func TestMatchesFinalValueStopsWalk(t *testing.T) {
	m := mustBuild(t, BytesTrie, OffsetTransform(0x0E00), []string{"แมว"}, nil)
	text := cursor.FromString("แมวแมว")
	lengths := make([]int, 4)
	count, consumed := m.Matches(text, 6, lengths, nil, 4)
	if count != 1 || lengths[0] != 3 || consumed != 3 {
		t.Fatalf("expected single match of length 3, have count=%d consumed=%d", count, consumed)
	}
}

func TestMatchesOutsideTransform(t *testing.T) {
	m := mustBuild(t, BytesTrie, OffsetTransform(0x0E00), []string{"กก"}, nil)
	text := cursor.FromString("abc")
	lengths := make([]int, 4)
	count, consumed := m.Matches(text, 3, lengths, nil, 4)
	if count != 0 || consumed != 1 {
		t.Fatalf("expected no match after one code-point, have count=%d consumed=%d", count, consumed)
	}
	empty := cursor.FromString("")
	if count, consumed = m.Matches(empty, 3, lengths, nil, 4); count != 0 || consumed != 0 {
		t.Fatalf("empty text must not match")
	}
}

func TestOffsetTransform(t *testing.T) {
	tr := OffsetTransform(0x0E00)
	tests := []struct {
		c    rune
		want int
	}{
		{0x0E00, 0}, {0x0E01, 1}, {0x0EFD, 0xFD}, {0x0EFE, -1}, {0x0DFF, -1},
		{0x200D, 0xFF}, {0x200C, 0xFE}, {'a', -1},
	}
	for _, tt := range tests {
		if got := tr.Apply(tt.c); got != tt.want {
			t.Fatalf("transform %U: got %d, want %d", tt.c, got, tt.want)
		}
	}
	decoded, err := TransformFromHeader(tr.Header())
	if err != nil || decoded != tr {
		t.Fatalf("header round trip failed: %v %v", decoded, err)
	}
	parsed, err := ParseTransform("offset-0x0e80")
	if err != nil || parsed != OffsetTransform(0x0E80) {
		t.Fatalf("cannot parse transform: %v %v", parsed, err)
	}
	if _, err = ParseTransform("rot13"); err == nil {
		t.Fatalf("expected error for unknown transform")
	}
}

func TestBuilderRejects(t *testing.T) {
	if _, err := NewBuilder(TrieKind(5), nil); err == nil {
		t.Fatalf("unknown trie kind should be rejected")
	}
	b, _ := NewBuilder(BytesTrie, OffsetTransform(0x0E00))
	if err := b.Add("abc", 0); err == nil {
		t.Fatalf("words outside of transform range should be rejected")
	}
	if err := b.Add("", 0); err == nil {
		t.Fatalf("empty words should be rejected")
	}
	if err := b.Add("กก", -1); err == nil {
		t.Fatalf("negative values should be rejected")
	}
}

func TestBuilderKeepsLastValue(t *testing.T) {
	b, _ := NewBuilder(CharsTrie, nil)
	_ = b.Add("ねこ", 5)
	_ = b.Add("ねこ", 7)
	_ = b.Add("ねずみ", 1)
	if b.Len() != 2 {
		t.Fatalf("expected 2 distinct words, have %d", b.Len())
	}
	if got := b.WordsWithPrefix("ね"); !reflect.DeepEqual(got, []string{"ねこ", "ねずみ"}) {
		t.Fatalf("unexpected prefix search result %v", got)
	}
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	lengths, values := make([]int, 2), make([]int32, 2)
	count, _ := m.Matches(cursor.FromString("ねこ"), 2, lengths, values, 2)
	if count != 1 || values[0] != 7 {
		t.Fatalf("expected value 7, have %v", values[:count])
	}
}

func TestParseFormatErrors(t *testing.T) {
	b, _ := NewBuilder(CharsTrie, nil)
	_ = b.Add("ねこ", 5)
	good, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	corrupt := func(f func(blob []byte) []byte) []byte {
		blob := append([]byte(nil), good...)
		return f(blob)
	}
	tests := []struct {
		name string
		blob []byte
	}{
		{"short", good[:10]},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b })},
		{"trie type", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[4+4*IxTrieType:], 5)
			return b
		})},
		{"offset", corrupt(func(b []byte) []byte {
			binary.LittleEndian.PutUint32(b[4+4*IxStringTrieOffset:], 8)
			return b
		})},
		{"odd chars trie", corrupt(func(b []byte) []byte {
			end := binary.LittleEndian.Uint32(b[4+4*IxReserved1Offset:])
			binary.LittleEndian.PutUint32(b[4+4*IxReserved1Offset:], end-1)
			return b
		})},
		{"truncated", good[:len(good)-2]},
	}
	for _, tt := range tests {
		_, err := Parse(tt.blob)
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("%s: expected FormatError, have %v", tt.name, err)
		}
	}
	if _, err := Parse(good); err != nil {
		t.Fatalf("untouched blob should parse: %v", err)
	}
}

func TestParseBytesTransformError(t *testing.T) {
	b, _ := NewBuilder(BytesTrie, OffsetTransform(0x0E80))
	_ = b.Add("ກາ", 0)
	blob, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	binary.LittleEndian.PutUint32(blob[4+4*IxTransform:], 0x02000000)
	var ferr *FormatError
	if _, err = Parse(blob); !errors.As(err, &ferr) {
		t.Fatalf("expected FormatError for bad transform, have %v", err)
	}
}

func TestIdentityTransform(t *testing.T) {
	tr := IdentityTransform{}
	tests := []struct {
		c    rune
		want int
	}{
		{c: 'a', want: 0x61},
		{c: 0xFF, want: 0xFF},
		{c: 0x200D, want: 0xFF},
		{c: 0x200C, want: 0xFE},
		{c: 0x100, want: -1},
		{c: 'ก', want: -1},
	}
	for _, tt := range tests {
		if got := tr.Apply(tt.c); got != tt.want {
			t.Fatalf("transform %U: got %d, want %d", tt.c, got, tt.want)
		}
	}
	for _, spec := range []string{"", "none"} {
		if parsed, err := ParseTransform(spec); err != nil || parsed != Transform(tr) {
			t.Fatalf("cannot parse transform %q: %v %v", spec, parsed, err)
		}
	}
}

func TestBytesDictionaryWithoutTransform(t *testing.T) {
	b, err := NewBuilder(BytesTrie, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"ab", "abc", "café"} {
		if err = b.Add(w, 0); err != nil {
			t.Fatal(err)
		}
	}
	if err = b.Add("Ω", 0); err == nil {
		t.Fatalf("code-points above 0xFF should be rejected")
	}
	blob, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if h := binary.LittleEndian.Uint32(blob[4+4*IxTransform:]); h != TransformNone {
		t.Fatalf("expected transform word 0, have 0x%08x", h)
	}
	m, err := Parse(blob)
	if err != nil {
		t.Fatal(err)
	}
	lengths := make([]int, 4)
	count, _ := m.Matches(cursor.FromString("abcd"), 4, lengths, nil, 4)
	if count != 2 || lengths[0] != 2 || lengths[1] != 3 {
		t.Fatalf("unexpected matches %v", lengths[:count])
	}
	if count, _ = m.Matches(cursor.FromString("café"), 4, lengths, nil, 4); count != 1 || lengths[0] != 4 {
		t.Fatalf("café not found, have %v", lengths[:count])
	}
}
