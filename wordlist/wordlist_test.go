package wordlist

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/dictbreak/cursor"
	"github.com/npillmayer/dictbreak/dictionary"
)

func TestReaderEntries(t *testing.T) {
	src := "\uFEFF# comment\nแมว\n\n  กิน  \n日本\t100\n# done\n"
	r := NewReader(strings.NewReader(src))
	tests := []struct {
		word  string
		value int32
	}{
		{word: "แมว"},
		{word: "กิน"},
		{word: "日本", value: 100},
	}
	for _, tt := range tests {
		word, value, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if word != tt.word || value != tt.value {
			t.Fatalf("expected (%s,%d), have (%s,%d)", tt.word, tt.value, word, value)
		}
	}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, have %v", err)
	}
	if r.Line() != 6 {
		t.Errorf("expected 6 lines read, have %d", r.Line())
	}
}

func TestReaderMalformedLines(t *testing.T) {
	for _, src := range []string{"word -1\n", "word x\n", "word 1 2\n", "word 99999999999\n"} {
		r := NewReader(strings.NewReader(src))
		if _, _, err := r.Next(); err == nil || err == io.EOF {
			t.Errorf("%q should be rejected, have %v", src, err)
		}
	}
}

func TestLoadDictionary(t *testing.T) {
	src := "日本 100\n日本語 250\n"
	dict, err := LoadDictionary(strings.NewReader(src), dictionary.CharsTrie, nil)
	if err != nil {
		t.Fatal(err)
	}
	lengths := make([]int, 4)
	values := make([]int32, 4)
	count, _ := dict.Matches(cursor.FromString("日本語"), 3, lengths, values, 4)
	if count != 2 || lengths[1] != 3 || values[0] != 100 || values[1] != 250 {
		t.Fatalf("unexpected matches: %d %v %v", count, lengths[:count], values[:count])
	}
}
