package dictbreak

import (
	"reflect"
	"testing"

	"github.com/npillmayer/dictbreak/dictionary"
)

func TestScriptSegmentation(t *testing.T) {
	tests := []struct {
		name   string
		engine func(dictionary.Matcher) *LookaheadEngine
		offset rune
		words  []string
		text   string
		want   []int
	}{
		// Khmer absorbs unknown text after words shorter than 10.
		{"khmer short root", NewKhmerEngine, 0x1780, []string{"កខ", "គឃង"}, "កខចចគឃង", []int{4}},
		{"khmer long root", NewKhmerEngine, 0x1780, []string{"កខកខ", "គឃង"}, "កខកខចចគឃង", []int{6}},
		{"burmese", NewBurmeseEngine, 0x1000, []string{"ကခ", "ဂဃင"}, "ကခဂဃင", []int{2}},
		{"burmese repeated", NewBurmeseEngine, 0x1000, []string{"ကခ", "ဂဃင"}, "ကခကခဂဃင", []int{2, 4}},
		{"lao", NewLaoEngine, 0x0E80, []string{"ກິນ", "ປາ"}, "ກິນປາ", []int{3}},
		// Unknown text after a long word resynchronizes at ປາ.
		{"lao resync", NewLaoEngine, 0x0E80, []string{"ກິນ", "ປາ"}, "ກິນຂຂປາ", []int{3, 5}},
		// A prefix vowel cannot end a word, so ປາ is not split off.
		{"lao prefix vowel", NewLaoEngine, 0x0E80, []string{"ກິນ", "ປາ"}, "ກິນຂເປາ", []int{3}},
		// The same text in Thai does split, with a different dictionary.
		{"thai long root", NewThaiEngine, 0x0E00, []string{"กขกข", "คฆง"}, "กขกขจจคฆง", []int{4, 6}},
	}
	for _, tt := range tests {
		e := tt.engine(mustBytesDict(t, tt.offset, tt.words...))
		breaks, n := divideAll(e, tt.text)
		if !reflect.DeepEqual(breaks, tt.want) || n != len(tt.want) {
			t.Errorf("%s: expected breaks %v, have %v (n=%d)", tt.name, tt.want, breaks, n)
		}
	}
}
