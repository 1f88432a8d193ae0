package trie

import "github.com/npillmayer/dictbreak/dat"

// walker is the iteration state shared by both trie kinds.
type walker struct {
	d      *dat.DAT
	state  uint32 // 0 after a mismatch
	result Result
}

func (w *walker) reset() {
	w.state = w.d.Root
	w.result = NoValue
}

func (w *walker) step(label uint16) Result {
	if w.state == 0 {
		return NoMatch
	}
	next, ok := w.d.Transition(w.state, label)
	if !ok {
		w.state = 0
		w.result = NoMatch
		return NoMatch
	}
	w.state = next
	_, terminal := w.d.ValueOf(next)
	switch {
	case terminal && w.d.HasChildren(next):
		w.result = IntermediateValue
	case terminal:
		w.result = FinalValue
	default:
		w.result = NoValue
	}
	return w.result
}

func (w *walker) value() int32 {
	v, _ := w.d.ValueOf(w.state)
	return v
}
