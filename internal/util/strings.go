package util

import (
	"charm.land/lipgloss/v2"
	"github.com/google/go-cmp/cmp"
	"runtime"
	"strings"
	"testing"
)

func JoinWithEqualSpacing(width int, items ...string) string {
	if len(items) == 0 {
		return ""
	}

	totalContentWidth := 0
	for _, item := range items {
		totalContentWidth += lipgloss.Width(item)
	}

	if width <= 0 {
		return ""
	}

	if totalContentWidth <= width {
		// if enough space, proceed with equal spacing
		if len(items) == 1 {
			return items[0]
		}

		totalSpacing := width - totalContentWidth
		baseSpacing := totalSpacing / (len(items) - 1)
		extraSpacing := totalSpacing % (len(items) - 1)

		var result strings.Builder

		for i, item := range items {
			result.WriteString(item)
			if i < len(items)-1 {
				spaces := baseSpacing
				if i < extraSpacing {
					spaces++
				}
				result.WriteString(strings.Repeat(" ", spaces))
			}
		}

		return result.String()
	} else {
		// if not enough space, truncate from the right
		var result strings.Builder
		remainingWidth := width

		for _, item := range items {
			itemWidth := lipgloss.Width(item)
			if remainingWidth <= 0 {
				break
			}
			if itemWidth > remainingWidth {
				result.WriteString(lipgloss.NewStyle().MaxWidth(remainingWidth).Render(item))
				break
			}
			result.WriteString(item)
			remainingWidth -= itemWidth
		}

		return result.String()
	}
}

// PadLines pads lines to width and adds blank lines up to height, joining them into a single string. For example,
// PadLines(3, 4, []string{"a", "b"}) is
// "a  "
// "b  "
// "   "
// "   "
func PadLines(width, height int, lines []string) string {
	var res []string
	for _, line := range lines {
		if n := width - lipgloss.Width(line); n > 0 {
			line += strings.Repeat(" ", n)
		}
		res = append(res, line)
	}
	for i := len(lines); i < height; i++ {
		res = append(res, strings.Repeat(" ", width))
	}
	return strings.Join(res, "\n")
}

// CmpStr compares two strings and fails the test if they are not equal
func CmpStr(t *testing.T, expected, actual string) {
	_, file, line, _ := runtime.Caller(1)
	testName := t.Name()
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("\nTest %q failed at %s:%d\nDiff (-expected +actual):\n%s", testName, file, line, diff)
	}
}
