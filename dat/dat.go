/*
Package dat implements a frozen double-array trie (DAT).

Both dictionary trie encodings of this module store their states in a DAT.
Labels are small positive integers: byte tries use (byte+1), char tries use
labels obtained from an Alphabet.

  - Nodes/states are indices into Base/Check (0 is unused; Root is 1).
  - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
  - A state with Base[s] == 0 has no outgoing transitions.
  - Value[s] >= 0 marks s as the end of a key, carrying the key's value.
*/
package dat

// NoValue is stored in Value for states which do not terminate a key.
const NoValue int32 = -1

// DAT is a frozen double-array trie.
type DAT struct {
	// Root state index (always 1 for tries produced by Builder).
	Root uint32

	// Sigma is the size of the label alphabet (maximum label).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value holds the value of terminal states, NoValue otherwise.
	Value []int32 // len == N
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). label must be in [1..Sigma].
func (d *DAT) Transition(state uint32, label uint16) (uint32, bool) {
	if label == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	if d.Base[state] == 0 {
		return 0, false
	}
	t := d.Base[state] + int32(label)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// HasChildren is true if state has at least one outgoing transition.
func (d *DAT) HasChildren(state uint32) bool {
	return int(state) < len(d.Base) && d.Base[state] != 0
}

// ValueOf returns the value stored at state, if state terminates a key.
func (d *DAT) ValueOf(state uint32) (int32, bool) {
	if int(state) >= len(d.Value) || d.Value[state] < 0 {
		return NoValue, false
	}
	return d.Value[state], true
}

// UsedSlots counts slots occupied by states, including the root.
func (d *DAT) UsedSlots() int {
	used := 0
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
		}
	}
	return used
}

// Validate checks structural consistency of a DAT which has been read
// from an untrusted source.
func (d *DAT) Validate() bool {
	n := len(d.Base)
	if len(d.Check) != n || len(d.Value) != n || int(d.Root) >= n || d.Root == 0 {
		return false
	}
	for i := 0; i < n; i++ {
		if c := d.Check[i]; c < 0 || int(c) >= n {
			return false
		}
		if b := d.Base[i]; b < 0 || int(b) >= n {
			return false
		}
	}
	return true
}
