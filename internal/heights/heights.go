// Package heights tracks the height in rows of every item of a list, either uniformly or per item.
package heights

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Model is the height of each item of a list. In uniform mode every item is DefaultHeight rows tall and all
// operations are O(1). In variable mode items start at DefaultHeight as an estimate and are refined by Measure; offsets
// are kept in a prefix sum structure so lookups are O(log n)
type Model struct {
	defaultHeight int
	uniform       bool
	count         int

	// measured holds the item index -> measured height of every item whose height differs from the estimate
	measured *redblacktree.Tree

	// prefix is only used in variable mode
	prefix fenwick
}

func New(defaultHeight int, uniform bool) *Model {
	m := &Model{
		uniform:  uniform,
		measured: redblacktree.NewWithIntComparator(),
	}
	m.Reset(0, defaultHeight)
	return m
}

// Reset sizes the model to count items of defaultHeight rows, dropping every measurement. It is the only O(n)
// operation and is meant to be called when the items or the estimated height change, never per frame
func (m *Model) Reset(count, defaultHeight int) {
	m.count = max(0, count)
	m.defaultHeight = max(1, defaultHeight)
	m.measured.Clear()
	if m.uniform {
		m.prefix = nil
	} else {
		m.prefix = newFenwick(m.count, m.defaultHeight)
	}
}

func (m Model) Count() int {
	return m.count
}

func (m Model) DefaultHeight() int {
	return m.defaultHeight
}

func (m Model) Uniform() bool {
	return m.uniform
}

// HeightOf returns the height of the item at index, or 0 if index is out of range
func (m Model) HeightOf(index int) int {
	if index < 0 || index >= m.count {
		return 0
	}
	if !m.uniform {
		if h, found := m.measured.Get(index); found {
			return h.(int)
		}
	}
	return m.defaultHeight
}

// Offset returns the row at which the item at index starts. Offset(Count()) is the total height
func (m Model) Offset(index int) int {
	index = max(0, min(index, m.count))
	if m.uniform {
		return index * m.defaultHeight
	}
	return m.prefix.sum(index)
}

// TotalHeight returns the height of the first count items, estimating any items beyond those the model knows about
func (m Model) TotalHeight(count int) int {
	if count <= 0 {
		return 0
	}
	if m.uniform {
		return count * m.defaultHeight
	}
	known := min(count, m.count)
	return m.prefix.sum(known) + (count-known)*m.defaultHeight
}

// IndexAt returns the first index whose bottom edge is at or below offset, or -1 if offset is past the last item
func (m Model) IndexAt(offset int) int {
	if m.count == 0 {
		return -1
	}
	if offset <= 0 {
		return 0
	}
	var index int
	if m.uniform {
		index = (offset+m.defaultHeight-1)/m.defaultHeight - 1
	} else {
		index = m.prefix.search(offset)
	}
	if index >= m.count {
		return -1
	}
	return index
}

// Measure records the real height of the item at index. It returns true if the height changed. Uniform models ignore
// measurements
func (m *Model) Measure(index, height int) bool {
	if m.uniform || index < 0 || index >= m.count {
		return false
	}
	height = max(1, height)
	previous := m.HeightOf(index)
	if previous == height {
		return false
	}
	if height == m.defaultHeight {
		m.measured.Remove(index)
	} else {
		m.measured.Put(index, height)
	}
	m.prefix.add(index, height-previous)
	return true
}

// Measured returns the indexes of items whose measured height differs from the estimate, in order
func (m Model) Measured() []int {
	indexes := make([]int, 0, m.measured.Size())
	it := m.measured.Iterator()
	for it.Next() {
		indexes = append(indexes, it.Key().(int))
	}
	return indexes
}
