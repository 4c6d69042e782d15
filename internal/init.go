package internal

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"fmt"
	"github.com/mattn/go-runewidth"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/listview"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/style"
	"github.com/robinovitch61/vl/internal/viewport"
	"strings"
)

// itemLabelWidth aligns the notes after item labels
const itemLabelWidth = 14

// #2: The first WindowSizeMsg builds the node tree the list is mounted in, then sets the list's options and renders it
func (m Model) initialize() (Model, tea.Cmd) {
	dev.Debug("initializing")
	defer dev.Debug("done initializing")
	dev.Debug("------------")

	m.topBarHeight = lipgloss.Height(m.topBar())
	m.root = viewport.NewBox(nil, viewport.OverflowVisible, m.contentHeight())
	m.pane = viewport.NewBox(m.root, viewport.OverflowAuto, m.contentHeight())

	m.list = listview.New[Item](listProps(m.config, m.pane))
	m.list.SetPosition(0, m.topBarHeight)

	setCmd, err := m.list.Set(nil,
		listview.WithModel[Item](m.titles[m.titleIndex]),
		listview.WithListTemplate[Item](listTemplate(m.keyMap.Title.Help().Key)),
		listview.WithItems(m.items),
		listview.WithItemTemplate(itemTemplate(m.config.Measure)),
		listview.WithDefaultItemHeight[Item](m.itemHeight),
		listview.WithEvents(listEvents(m.list.ID())),
	)
	if err != nil {
		m.err = err
		return m, nil
	}
	renderCmd, err := m.list.Render(nil)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.initialized = true
	return m, tea.Batch(setCmd, renderCmd)
}

func listProps(c Config, pane *viewport.Box) listview.Props {
	props := listview.DefaultProps()
	props.BatchSize = c.BatchSize
	props.MeasureItems = c.Measure
	props.Node = pane
	props.Viewport = viewport.Spec{Kind: c.Viewport, FrameInterval: c.FrameInterval}
	if c.Viewport == viewport.Pane {
		props.Viewport.Pane = pane
	}
	return props
}

// listTemplate renders a header with the title and a footer hint, or a bare list when there is no title
func listTemplate(titleKey string) listview.ListTemplate {
	return func(model any) string {
		title, _ := model.(string)
		if title == "" {
			return listview.DefaultListTemplate(model)
		}
		return strings.Join([]string{
			style.HeaderStyle.Render(title),
			listview.TopFiller,
			listview.BottomFiller,
			style.FooterStyle.Render(fmt.Sprintf("%s to change title", titleKey)),
		}, "\n")
	}
}

// itemTemplate renders an item on one line. When items are measured, every fifth item gets a second line so that
// heights vary
func itemTemplate(measure bool) listview.ItemTemplate[Item] {
	return func(item Item) string {
		itemStyle := style.ItemStyle
		if item.Text%2 == 1 {
			itemStyle = style.ItemAltStyle
		}
		line := runewidth.FillRight(plainItemText(item), itemLabelWidth) +
			style.ItemNoteStyle.Render(fmt.Sprintf("│ %x", item.Text))
		if measure && item.Text%5 == 0 {
			line += "\n" + runewidth.FillRight("", itemLabelWidth) + style.ItemNoteStyle.Render("│ taller")
		}
		return itemStyle.Render(line)
	}
}

func listEvents(owner string) map[string]listview.Handler[Item] {
	return map[string]listview.Handler[Item]{
		"click item": func(e listview.Event[Item]) tea.Cmd {
			return func() tea.Msg {
				return message.ItemClickedMsg{Index: e.Index}
			}
		},
		listview.DidRedraw: func(listview.Event[Item]) tea.Cmd {
			return func() tea.Msg {
				return message.RedrawnMsg{Owner: owner}
			}
		},
	}
}
