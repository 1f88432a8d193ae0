package dictbreak

import "github.com/npillmayer/dictbreak/dictionary"

const (
	burmeseLookahead     = 3
	burmeseRootCombine   = 3
	burmesePrefixCombine = 3
	burmeseMinWord       = 2
	burmeseMinWordSpan   = burmeseMinWord * 2
)

// NewBurmeseEngine creates an engine for Burmese using a dictionary for
// script "Mymr".
func NewBurmeseEngine(dict dictionary.Matcher) *LookaheadEngine {
	setupCharsets()
	return newLookaheadEngine(lookaheadParams{
		script:        "Mymr",
		lookahead:     burmeseLookahead,
		rootCombine:   burmeseRootCombine,
		prefixCombine: burmesePrefixCombine,
		minSpan:       burmeseMinWordSpan,
	}, burmeseSets, dict)
}
