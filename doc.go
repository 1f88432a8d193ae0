/*
Package dictbreak finds word boundaries in scripts written without spaces.

Thai, Lao, Khmer and Burmese text as well as Chinese and Japanese (and, on
request, Korean) do not separate words by spaces. Rule-based break
iteration therefore hands maximal runs of such text to a break engine, which
segments the run with the help of a compiled word dictionary (see package
dictionary).

Two families of engines exist. South-East Asian scripts are segmented left to
right with a three word lookahead, preferring words which are followed by
more dictionary words, and with heuristics to resynchronize after unknown
text. Chinese and Japanese are segmented by dynamic programming over word
costs (a Viterbi search), with a heuristic for Katakana loan words.

Typical Usage

	thai, err := dictionary.LoadFile("thaidict.dict")
	...
	engine := dictbreak.NewThaiEngine(thai)
	text := cursor.FromString("แมวกินปลา")
	breaks := dictbreak.NewBreakDeque()
	engine.FindBreaks(text, 0, text.End(), dictbreak.WordBreak, breaks)

A Registry selects (and lazily constructs) engines per code-point and falls
back to a non-segmenting engine for scripts without a dictionary.

Engines are immutable after construction and may be shared between
goroutines. Break deques and cursors are per call.

______________________________________________________________________

BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

All rights reserved.

License information is available in the LICENSE file.
*/
package dictbreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictbreak'
func tracer() tracing.Trace {
	return tracing.Select("dictbreak")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
