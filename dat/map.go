package dat

import "errors"

const pageSize = 256

// Alphabet assigns DAT labels 1, 2, … to UTF-16 code units in order of
// first use, so that a char trie over a few thousand distinct units keeps a
// small Sigma.
//
// Units are grouped into pages by their high byte. Index[hi] is the 1-based
// number of the page holding the labels of units hi<<8 … hi<<8|0xFF, or 0 if
// no unit of that block has a label. Pages holds all pages back to back, in
// the order they were created; this is also their serialized form.
type Alphabet struct {
	Index [pageSize]uint16
	Pages []uint16
	size  uint16
}

// ErrAlphabetFull is returned when all 65535 labels are taken.
var ErrAlphabetFull = errors.New("alphabet has no labels left")

// Label returns the label of unit, or 0 if it has none.
func (a *Alphabet) Label(unit uint16) uint16 {
	page := a.Index[unit>>8]
	if page == 0 {
		return 0
	}
	return a.Pages[int(page-1)*pageSize+int(unit&0xFF)]
}

// Add returns the label of unit, assigning the next free one if necessary.
func (a *Alphabet) Add(unit uint16) (uint16, error) {
	if label := a.Label(unit); label != 0 {
		return label, nil
	}
	if a.size == ^uint16(0) {
		return 0, ErrAlphabetFull
	}
	hi := unit >> 8
	if a.Index[hi] == 0 {
		a.Pages = append(a.Pages, make([]uint16, pageSize)...)
		a.Index[hi] = uint16(a.NumPages())
	}
	a.size++
	a.Pages[int(a.Index[hi]-1)*pageSize+int(unit&0xFF)] = a.size
	return a.size, nil
}

// Len returns the number of labels assigned.
func (a *Alphabet) Len() int { return int(a.size) }

// NumPages returns the number of pages in use.
func (a *Alphabet) NumPages() int { return len(a.Pages) / pageSize }

// Restore validates a deserialized alphabet and recomputes its size.
// Every label must be unique and every page referenced exactly once.
func (a *Alphabet) Restore() error {
	if len(a.Pages)%pageSize != 0 {
		return errors.New("alphabet pages are truncated")
	}
	n := a.NumPages()
	referenced := make([]bool, n)
	for _, page := range a.Index {
		if page == 0 {
			continue
		}
		if int(page) > n || referenced[page-1] {
			return errors.New("alphabet index references bad page")
		}
		referenced[page-1] = true
	}
	seen := make(map[uint16]bool)
	for _, label := range a.Pages {
		if label == 0 {
			continue
		}
		if seen[label] {
			return errors.New("alphabet label assigned twice")
		}
		seen[label] = true
	}
	a.size = uint16(len(seen))
	return nil
}
