package viewport

import "fmt"

// Overflow is how a node treats content taller than itself
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowAuto
	OverflowScroll
)

func (o Overflow) scrolls() bool {
	return o == OverflowAuto || o == OverflowScroll
}

// Node is a region of the screen a list can be mounted in
type Node interface {
	Parent() Node
	Overflow() Overflow
	// Height is the node's height in rows
	Height() int
}

// Box is a Node with a fixed height that the owner resizes
type Box struct {
	parent   Node
	overflow Overflow
	height   int
}

func NewBox(parent Node, overflow Overflow, height int) *Box {
	return &Box{parent: parent, overflow: overflow, height: height}
}

func (b *Box) Parent() Node {
	return b.parent
}

func (b *Box) Overflow() Overflow {
	return b.overflow
}

func (b *Box) Height() int {
	return b.height
}

func (b *Box) SetHeight(height int) {
	b.height = max(0, height)
}

// Kind selects the viewport a list scrolls in
type Kind int

const (
	// Auto uses the nearest scrollable ancestor, or the window if there is none
	Auto Kind = iota
	// Window is the whole terminal
	Window
	// Pane is a scrollable pane
	Pane
)

func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Window:
		return "window"
	case Pane:
		return "pane"
	}
	return "unknown"
}

// ParseKind parses the names Kind.String returns
func ParseKind(s string) (Kind, error) {
	switch s {
	case "auto", "":
		return Auto, nil
	case "window":
		return Window, nil
	case "pane":
		return Pane, nil
	}
	return Auto, fmt.Errorf("unknown viewport kind %q, expected auto, window or pane", s)
}

// nearestScrollable walks up from n to the first node whose overflow scrolls
func nearestScrollable(n Node) Node {
	for ; n != nil; n = n.Parent() {
		if n.Overflow().scrolls() {
			return n
		}
	}
	return nil
}
