/*
Package trie implements the two compiled trie encodings used by dictionaries.

A BytesTrie has 8-bit labels. Text is mapped to bytes by a transform before
lookup (see package dictionary). A CharsTrie has UTF-16 code units as labels,
re-mapped to a dense alphabet. Both store their states in a frozen
double-array trie (package dat), are immutable once built, and are walked
with cheap per-query iterators. Iterators are not safe for concurrent use,
tries are.
*/
package trie

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dictbreak'
func tracer() tracing.Trace {
	return tracing.Select("dictbreak")
}

// Result is the outcome of advancing a trie iterator by one label.
type Result int

const (
	NoMatch           Result = iota // input does not continue any key
	NoValue                         // input is a proper prefix of keys, no value here
	FinalValue                      // input is a key, and no key continues it
	IntermediateValue               // input is a key, and longer keys exist
)

// Matches is true if the input seen so far is a prefix of some key.
func (r Result) Matches() bool { return r != NoMatch }

// HasValue is true if the input seen so far is a key.
func (r Result) HasValue() bool { return r >= FinalValue }

// HasNext is true if longer keys continue the input seen so far.
func (r Result) HasNext() bool { return r&1 != 0 }

func (r Result) String() string {
	switch r {
	case NoMatch:
		return "NoMatch"
	case NoValue:
		return "NoValue"
	case FinalValue:
		return "FinalValue"
	case IntermediateValue:
		return "IntermediateValue"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// Stats reports density metrics for a compiled trie.
type Stats struct {
	Kind       string
	UsedSlots  int
	TotalSlots int
	Sigma      int
}

// FillRatio is the share of double-array slots occupied by states.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}
