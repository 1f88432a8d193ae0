package dictbreak

import "github.com/npillmayer/dictbreak/dictionary"

const (
	laoLookahead     = 3
	laoRootCombine   = 3
	laoPrefixCombine = 3
	laoMinWord       = 2
)

// NewLaoEngine creates an engine for Lao using a dictionary for script "Laoo".
func NewLaoEngine(dict dictionary.Matcher) *LookaheadEngine {
	setupCharsets()
	return newLookaheadEngine(lookaheadParams{
		script:        "Laoo",
		lookahead:     laoLookahead,
		rootCombine:   laoRootCombine,
		prefixCombine: laoPrefixCombine,
		minSpan:       laoMinWord,
	}, laoSets, dict)
}
