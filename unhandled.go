package dictbreak

import (
	"sync"
	"unicode"

	"github.com/npillmayer/dictbreak/cursor"
	"golang.org/x/text/unicode/rangetable"
)

// UnhandledEngine takes over scripts for which no dictionary engine could be
// created. It claims runs of such text but never breaks inside them.
type UnhandledEngine struct {
	mu      sync.RWMutex
	handled [kindCount]*unicode.RangeTable
}

var _ Engine = (*UnhandledEngine)(nil)

// NewUnhandledEngine creates an engine which does not handle any character
// until told so by HandleChar.
func NewUnhandledEngine() *UnhandledEngine {
	return &UnhandledEngine{}
}

// Handles is true if c's script has been registered for kind.
func (u *UnhandledEngine) Handles(c rune, kind BreakKind) bool {
	if kind >= kindCount {
		return false
	}
	u.mu.RLock()
	defer u.mu.RUnlock()
	return inSet(u.handled[kind], c)
}

// FindBreaks skips the run of handled characters and reports no breaks.
func (u *UnhandledEngine) FindBreaks(text cursor.Cursor, startPos, endPos int, kind BreakKind,
	breaks *BreakDeque) int {
	//
	text.SetIndex(startPos)
	c := text.Current()
	for text.Index() < endPos && u.Handles(c, kind) {
		c = text.Next()
	}
	return 0
}

// HandleChar registers the script of c (or c alone, for characters of no
// particular script) as handled for kind.
func (u *UnhandledEngine) HandleChar(c rune, kind BreakKind) {
	if kind >= kindCount || c == cursor.Done || u.Handles(c, kind) {
		return
	}
	add := scriptOf(c)
	if add == nil {
		add = rangetable.New(c)
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.handled[kind] == nil {
		u.handled[kind] = add
	} else {
		u.handled[kind] = rangetable.Merge(u.handled[kind], add)
	}
	tracer().Debugf("unhandled engine takes over %U and its script for %s breaks", c, kind)
}

// scriptOf returns the table of the script c belongs to, or nil for
// characters common to several scripts.
func scriptOf(c rune) *unicode.RangeTable {
	for name, table := range unicode.Scripts {
		if name == "Common" || name == "Inherited" {
			continue
		}
		if unicode.Is(table, c) {
			return table
		}
	}
	return nil
}
