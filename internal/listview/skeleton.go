package listview

import (
	"fmt"
	"strings"
)

// Filler anchors. A list template marks where the items go with a TopFiller line directly followed by a BottomFiller
// line
const (
	TopFiller    = "{{top-filler}}"
	BottomFiller = "{{bottom-filler}}"
)

// DefaultListTemplate renders a bare list with no header or footer
func DefaultListTemplate(any) string {
	return TopFiller + "\n" + BottomFiller
}

// DefaultItemTemplate renders an item with fmt, on a single line
func DefaultItemTemplate[T any](item T) string {
	s := fmt.Sprint(item)
	if text, ok := any(item).(interface{ Text() string }); ok {
		s = text.Text()
	}
	return strings.ReplaceAll(s, "\n", " ")
}

// skeleton is a rendered list template split around the filler anchors
type skeleton struct {
	header []string
	footer []string
}

func (s skeleton) chrome() int {
	return len(s.header) + len(s.footer)
}

func parseSkeleton(rendered string) (skeleton, error) {
	lines := strings.Split(rendered, "\n")
	top, bottom := -1, -1
	for i, line := range lines {
		switch strings.TrimSpace(line) {
		case TopFiller:
			if top == -1 {
				top = i
			}
		case BottomFiller:
			if bottom == -1 {
				bottom = i
			}
		}
	}
	switch {
	case top == -1 && bottom == -1:
		return skeleton{}, fmt.Errorf("%w: found neither %s nor %s", ErrMissingAnchor, TopFiller, BottomFiller)
	case top == -1:
		return skeleton{}, fmt.Errorf("%w: found no %s", ErrMissingAnchor, TopFiller)
	case bottom == -1:
		return skeleton{}, fmt.Errorf("%w: found no %s", ErrMissingAnchor, BottomFiller)
	case bottom != top+1:
		return skeleton{}, fmt.Errorf("%w: %s on line %d must directly follow %s on line %d", ErrMissingAnchor,
			BottomFiller, bottom, TopFiller, top)
	}
	return skeleton{
		header: lines[:top],
		footer: lines[bottom+1:],
	}, nil
}
