package dictbreak

import "github.com/npillmayer/dictbreak/dictionary"

const khmerSignCoeng = 0x17D2 // combines with the following consonant

const (
	khmerLookahead     = 3
	khmerRootCombine   = 10
	khmerPrefixCombine = 5
	khmerMinWord       = 2
	khmerMinWordSpan   = khmerMinWord * 2
)

// NewKhmerEngine creates an engine for Khmer using a dictionary for script
// "Khmr".
func NewKhmerEngine(dict dictionary.Matcher) *LookaheadEngine {
	setupCharsets()
	return newLookaheadEngine(lookaheadParams{
		script:        "Khmr",
		lookahead:     khmerLookahead,
		rootCombine:   khmerRootCombine,
		prefixCombine: khmerPrefixCombine,
		minSpan:       khmerMinWordSpan,
	}, khmerSets, dict)
}
