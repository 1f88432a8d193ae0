package dictbreak

// BreakDeque collects break offsets found by engines.
//
// Engines push to the back; entries present before an engine call are never
// modified by it. The deque is a growable ring buffer.
type BreakDeque struct {
	buf  []int
	head int // index of the front element in buf
	n    int
}

const initialDequeSize = 16

// NewBreakDeque creates an empty deque.
func NewBreakDeque() *BreakDeque {
	return &BreakDeque{buf: make([]int, initialDequeSize)}
}

// Len returns the number of entries.
func (d *BreakDeque) Len() int { return d.n }

// IsEmpty is true if the deque has no entries.
func (d *BreakDeque) IsEmpty() bool { return d.n == 0 }

func (d *BreakDeque) grow() {
	if d.n < len(d.buf) {
		return
	}
	buf := make([]int, max(initialDequeSize, 2*len(d.buf)))
	for i := 0; i < d.n; i++ {
		buf[i] = d.At(i)
	}
	d.buf = buf
	d.head = 0
}

func (d *BreakDeque) slot(i int) int {
	return (d.head + i) % len(d.buf)
}

// Push appends v at the back.
func (d *BreakDeque) Push(v int) {
	d.grow()
	d.buf[d.slot(d.n)] = v
	d.n++
}

// Offer prepends v at the front.
func (d *BreakDeque) Offer(v int) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// Pop removes and returns the back entry. The deque must not be empty.
func (d *BreakDeque) Pop() int {
	assert(d.n > 0, "pop from empty break deque")
	v := d.Peek()
	d.n--
	return v
}

// Peek returns the back entry. The deque must not be empty.
func (d *BreakDeque) Peek() int {
	assert(d.n > 0, "peek into empty break deque")
	return d.buf[d.slot(d.n-1)]
}

// PeekFirst returns the front entry. The deque must not be empty.
func (d *BreakDeque) PeekFirst() int {
	assert(d.n > 0, "peek into empty break deque")
	return d.buf[d.head]
}

// At returns the i-th entry, counted from the front.
func (d *BreakDeque) At(i int) int {
	assert(i >= 0 && i < d.n, "break deque index out of range")
	return d.buf[d.slot(i)]
}

// Contains scans the deque for v.
func (d *BreakDeque) Contains(v int) bool {
	for i := 0; i < d.n; i++ {
		if d.buf[d.slot(i)] == v {
			return true
		}
	}
	return false
}

// Clear removes all entries.
func (d *BreakDeque) Clear() {
	d.head, d.n = 0, 0
}

// Slice returns a copy of the entries, front to back.
func (d *BreakDeque) Slice() []int {
	s := make([]int, d.n)
	for i := range s {
		s[i] = d.At(i)
	}
	return s
}
