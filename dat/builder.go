package dat

import (
	"errors"
	"sort"
)

type buildNode struct {
	state    uint32
	value    int32
	children map[uint16]*buildNode
}

func newBuildNode() *buildNode {
	return &buildNode{value: NoValue, children: make(map[uint16]*buildNode)}
}

// Builder collects keys (label sequences) with values and compiles them
// into a frozen DAT.
type Builder struct {
	root  *buildNode
	sigma uint16
	keys  int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{root: newBuildNode()}
}

// Insert adds key with value. Labels must be non-zero and value must not be
// negative. Inserting a key twice overwrites its value.
func (b *Builder) Insert(key []uint16, value int32) error {
	if len(key) == 0 {
		return errors.New("cannot insert empty key into DAT")
	}
	if value < 0 {
		return errors.New("DAT values must not be negative")
	}
	if b.root == nil {
		return errors.New("DAT builder already frozen")
	}
	n := b.root
	for _, c := range key {
		if c == 0 {
			return errors.New("label 0 is reserved in DAT")
		}
		child := n.children[c]
		if child == nil {
			child = newBuildNode()
			n.children[c] = child
		}
		n = child
		b.sigma = max(b.sigma, c)
	}
	if n.value == NoValue {
		b.keys++
	}
	n.value = value
	return nil
}

// Len returns the number of distinct keys inserted.
func (b *Builder) Len() int { return b.keys }

// Freeze assigns states breadth-first and returns the compiled DAT.
// The builder is unusable afterwards.
func (b *Builder) Freeze() *DAT {
	d := &DAT{Root: 1, Sigma: b.sigma}
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = []int32{NoValue, NoValue}
	b.root.state = d.Root
	d.Value[d.Root] = b.root.value
	free := 1 // no slot below this index is free
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels, free, int(d.Root))
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			d.Value[t] = child.value
			queue = append(queue, child)
		}
		for free < len(d.Check) && (free == int(d.Root) || d.Check[free] != 0) {
			free++
		}
	}
	b.root = nil
	return d
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase searches the smallest base where all labels land in free slots.
func findBase(check []int32, labels []uint16, free, root int) int {
	for base := max(1, free-int(labels[0])); ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == root || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	for i := 0; i < grow; i++ {
		d.Value = append(d.Value, NoValue)
	}
}
