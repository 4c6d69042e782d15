// Package slot holds the fixed pool of reusable placeholders a virtualized list renders its visible items into.
package slot

// Empty is the Index of a slot that holds no item
const Empty = -1

// Slot is a reusable placeholder. It holds at most one rendered item at a time and is repositioned, never recreated,
// when its item changes
type Slot struct {
	// ID identifies the physical slot for the lifetime of its pool
	ID int

	// Index is the item index currently rendered in the slot, or Empty
	Index int

	// Top is the row, relative to the top of the list content, at which the slot is drawn
	Top int

	// Height is the number of rows the slot occupies
	Height int

	// Content is the rendered item
	Content string
}

func (s Slot) Occupied() bool {
	return s.Index != Empty
}

// Pool is a fixed-size ring of slots. The placeholder is the physical position the next recycled item goes into
type Pool struct {
	slots       []Slot
	placeholder int
}

// NewPool returns a pool of size empty slots. A pool always has at least one slot
func NewPool(size int) *Pool {
	p := &Pool{slots: make([]Slot, max(1, size))}
	for i := range p.slots {
		p.slots[i] = Slot{ID: i, Index: Empty}
	}
	return p
}

func (p *Pool) Size() int {
	return len(p.slots)
}

// At returns the slot at physical position i, wrapping around the ring
func (p *Pool) At(i int) *Slot {
	n := len(p.slots)
	return &p.slots[((i%n)+n)%n]
}

func (p *Pool) Placeholder() int {
	return p.placeholder
}

// Advance moves the placeholder forward by one and returns the slot it pointed at
func (p *Pool) Advance() *Slot {
	s := p.At(p.placeholder)
	p.placeholder = (p.placeholder + 1) % len(p.slots)
	return s
}

// Retreat moves the placeholder back by one and returns the slot it now points at
func (p *Pool) Retreat() *Slot {
	n := len(p.slots)
	p.placeholder = (p.placeholder - 1 + n) % n
	return p.At(p.placeholder)
}

// Bind puts the item at index into s
func (s *Slot) Bind(index, top, height int, content string) {
	s.Index = index
	s.Top = top
	s.Height = height
	s.Content = content
}

// Clear empties s
func (s *Slot) Clear() {
	s.Index = Empty
	s.Top = 0
	s.Height = 0
	s.Content = ""
}

// Clear empties every slot and rewinds the placeholder
func (p *Pool) Clear() {
	for i := range p.slots {
		p.slots[i].Clear()
	}
	p.placeholder = 0
}

// Slots returns a copy of the slots in physical order
func (p *Pool) Slots() []Slot {
	res := make([]Slot, len(p.slots))
	copy(res, p.slots)
	return res
}

// Indexes returns the item index held by each occupied slot, in physical order
func (p *Pool) Indexes() []int {
	var res []int
	for _, s := range p.slots {
		if s.Occupied() {
			res = append(res, s.Index)
		}
	}
	return res
}

// Each calls fn on every occupied slot
func (p *Pool) Each(fn func(s *Slot)) {
	for i := range p.slots {
		if p.slots[i].Occupied() {
			fn(&p.slots[i])
		}
	}
}
