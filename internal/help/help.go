// Package help renders the help overlay: the list's current state, then its option, action and navigation keys
package help

import (
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"fmt"
	"github.com/robinovitch61/vl/internal/keymap"
	"strings"
)

// Status is the list state shown above the keys
type Status struct {
	Items      int
	ItemHeight int
	BatchSize  int
	Viewport   string
	Measured   bool
	Start, End int
}

func (s Status) String() string {
	height := fmt.Sprintf("%d row items", s.ItemHeight)
	if s.Measured {
		height = fmt.Sprintf("measured items (estimate %d rows)", s.ItemHeight)
	}
	return fmt.Sprintf("%d %s in a %s viewport\nbatch of %d, rendering %d-%d", s.Items, height, s.Viewport,
		s.BatchSize, s.Start, s.End)
}

type section struct {
	title    string
	bindings []key.Binding
}

// MakeHelp renders status and every key binding, one titled section per group
func MakeHelp(keyMap keymap.KeyMap, status Status, keyStyle lipgloss.Style) string {
	title := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Render("Help (press any key to hide)")
	sections := []section{
		{"List options", keymap.OptionKeyBindings(keyMap)},
		{"Actions", keymap.ActionKeyBindings(keyMap)},
		{"Navigation", keymap.NavigationKeyBindings()},
	}

	var cols []string
	for i, s := range sections {
		col := renderSection(s, keyStyle)
		if i < len(sections)-1 {
			col = lipgloss.NewStyle().PaddingRight(3).Render(col)
		}
		cols = append(cols, col)
	}
	return lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		lipgloss.NewStyle().Faint(true).Align(lipgloss.Center).Render(status.String()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
	)
}

func renderSection(s section, keyStyle lipgloss.Style) string {
	var keys, descs []string
	for _, b := range s.bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		keys = append(keys, " "+h.Key+" ")
		descs = append(descs, " "+h.Desc)
	}
	if len(keys) == 0 {
		return ""
	}
	rows := lipgloss.JoinHorizontal(
		lipgloss.Top,
		keyStyle.Render(lipgloss.JoinVertical(lipgloss.Right, keys...)),
		strings.Join(descs, "\n"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lipgloss.NewStyle().Bold(true).Render(s.title), rows)
}
