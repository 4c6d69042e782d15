package internal

// NOTE: Searching for `// #` will walk you through the main flow of the application

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"fmt"
	"github.com/muesli/reflow/wrap"
	"github.com/robinovitch61/vl/internal/command"
	"github.com/robinovitch61/vl/internal/constants"
	"github.com/robinovitch61/vl/internal/dev"
	"github.com/robinovitch61/vl/internal/fileio"
	"github.com/robinovitch61/vl/internal/help"
	"github.com/robinovitch61/vl/internal/keymap"
	"github.com/robinovitch61/vl/internal/listview"
	"github.com/robinovitch61/vl/internal/message"
	"github.com/robinovitch61/vl/internal/style"
	"github.com/robinovitch61/vl/internal/toast"
	"github.com/robinovitch61/vl/internal/util"
	"github.com/robinovitch61/vl/internal/viewport"
	"slices"
	"strings"
)

// Item is one synthetic entry of the demo list
type Item struct {
	Text int
}

// defaultTitles are the list models the title key cycles through. Changing the model rebuilds the whole list
var defaultTitles = []string{"", "Items", "Virtualized items"}

type Model struct {
	config        Config
	keyMap        keymap.KeyMap
	width, height int
	initialized   bool
	list          listview.Model[Item]
	root, pane    *viewport.Box
	items         []Item
	itemHeight    int
	titles        []string
	titleIndex    int
	redraws       int
	lastClicked   int
	toast         toast.Model
	helpText      string
	err           error
	topBarHeight  int // assumed constant
}

func InitialModel(c Config) Model {
	if c.ItemHeight <= 0 {
		c.ItemHeight = constants.DefaultItemHeight
	}
	if c.BatchSize <= 0 {
		c.BatchSize = constants.DefaultBatchSize
	}
	titles := defaultTitles
	titleIndex := slices.Index(titles, c.Title)
	if titleIndex < 0 {
		titles = append([]string{c.Title}, defaultTitles...)
		titleIndex = 0
	}
	return Model{
		config:      c,
		keyMap:      c.KeyMap,
		items:       makeItems(0, c.Items),
		itemHeight:  c.ItemHeight,
		titles:      titles,
		titleIndex:  titleIndex,
		lastClicked: -1,
	}
}

// #1: Nothing is drawn until the first WindowSizeMsg arrives, see initialize
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	dev.DebugUpdateMsg("App", msg)
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case message.CleanupCompleteMsg:
		return m, tea.Quit

	// #4: The user presses a key. App keys change list options, everything else is navigation the list's viewport
	// handles
	case tea.KeyPressMsg:
		return m.handleKeyMsg(msg)

	case message.ErrMsg:
		m.err = msg.Err
		return m, nil

	// WindowSizeMsg arrives once on startup, then again every time the window is resized
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if !m.initialized {
			m, cmd = m.initialize()
			cmds = append(cmds, cmd)
		}
		m, cmd = m.handleWindowSizeMsg(msg.Width, msg.Height)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	// #3: The list finished a redraw, either applying option changes or moving its window after a scroll
	case message.RedrawnMsg:
		if msg.Owner == m.list.ID() {
			m.redraws = m.list.Redraws()
		}
		return m, nil

	case message.ItemClickedMsg:
		m.lastClicked = msg.Index
		return m.withToast(fmt.Sprintf("Clicked item %d", msg.Index))

	case fileio.SaveCompleteMsg:
		if msg.ErrMessage != "" {
			return m.withErrorToast(msg.ErrMessage)
		}
		return m.withToast(msg.SuccessMessage)

	case command.ContentCopiedToClipboardMsg:
		if msg.Err != nil {
			return m.withErrorToast(fmt.Sprintf("Error copying to clipboard: %s", msg.Err.Error()))
		}
		return m.withToast("Copied visible items to clipboard")

	case toast.TimeoutMsg:
		m.toast, cmd = m.toast.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// #5: Frame, redraw and mouse messages go to the list
	if m.initialized {
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m Model) render() string {
	if m.err != nil {
		errString := wrap.String(m.err.Error(), max(1, m.width))
		return lipgloss.JoinVertical(
			lipgloss.Left,
			style.ErrorStyle.Render("Error"),
			"",
			fmt.Sprintf("%s to quit", m.keyMap.Quit.Help().Key),
			"",
			errString,
		)
	}
	if !m.initialized {
		return ""
	}
	topBar := m.topBar()
	if m.helpText != "" {
		centeredHelp := lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, m.helpText)
		return lipgloss.JoinVertical(lipgloss.Left, topBar, centeredHelp)
	}
	viewLines := strings.Split(topBar, "\n")
	listLines := util.PadLines(m.width, m.contentHeight(), strings.Split(m.list.View(), "\n"))
	viewLines = append(viewLines, strings.Split(listLines, "\n")...)
	if toastHeight := m.toast.Height(m.width); toastHeight > 0 && len(viewLines) > toastHeight {
		viewLines = viewLines[:len(viewLines)-toastHeight]
		viewLines = append(viewLines, strings.Split(m.toast.View(m.width), "\n")...)
	}
	return strings.Join(viewLines, "\n")
}

func (m Model) topBar() string {
	padding := "   "
	start, end := m.list.Range()
	left := fmt.Sprintf(
		"vl %s%s%d items, rendering %d-%d%s%d redraws",
		m.config.Version,
		padding,
		len(m.items),
		start,
		end,
		padding,
		m.redraws,
	)
	if m.lastClicked >= 0 {
		left += fmt.Sprintf("%sclicked %d", padding, m.lastClicked)
	}

	right := fmt.Sprintf("%s to quit / %s for help", m.keyMap.Quit.Help().Key, m.keyMap.Help.Help().Key)
	toJoin := []string{left}
	if len(left)+len(padding)+len(right) < m.width {
		toJoin = append(toJoin, right)
	} else {
		toJoin = append(toJoin, strings.Repeat(" ", len(right)))
	}
	return style.TopBarStyle.Render(util.JoinWithEqualSpacing(m.width, toJoin...))
}

func (m Model) contentHeight() int {
	return max(0, m.height-m.topBarHeight)
}

// startup, shutdown, & bubble tea builtin messages
// ---

func (m Model) handleWindowSizeMsg(width, height int) (Model, tea.Cmd) {
	contentHeight := max(0, height-m.topBarHeight)
	m.root.SetHeight(contentHeight)
	paneHeight := contentHeight
	if m.config.PaneHeight > 0 {
		paneHeight = min(m.config.PaneHeight, contentHeight)
	}
	m.pane.SetHeight(paneHeight)

	// the list only sees the rows below the top bar
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(tea.WindowSizeMsg{Width: width, Height: contentHeight})
	return m, cmd
}

func cleanupCmd() tea.Cmd {
	return func() tea.Msg {
		return message.CleanupCompleteMsg{}
	}
}

func (m Model) withToast(text string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = toast.Show(text, toast.Info, constants.ToastDuration)
	return m, cmd
}

func (m Model) withErrorToast(text string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toast, cmd = toast.Show(text, toast.Error, constants.ToastDuration)
	return m, cmd
}

// tea.KeyPressMsg handling
// ---

func (m Model) handleKeyMsg(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	dev.Debugf("App keyMsg: %v", msg)
	defer dev.Debug("App keyMsg complete")

	var cmd tea.Cmd
	var cmds []tea.Cmd

	// #6: The user exits. The list is torn down so nothing it scheduled runs again
	if key.Matches(msg, m.keyMap.Quit) {
		if m.initialized {
			m.list.Remove()
		}
		return m, cleanupCmd()
	}

	// ignore key messages other than exit if an error is present
	if m.err != nil || !m.initialized {
		return m, nil
	}

	// if help text visible, pressing any key will dismiss it
	if m.helpText != "" {
		m.helpText = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keyMap.Help):
		m.helpText = help.MakeHelp(m.keyMap, m.helpStatus(), style.KeyHelpStyle)
		return m, nil

	case key.Matches(msg, m.keyMap.Enter):
		start, end := m.list.Range()
		return m.withToast(fmt.Sprintf("Rendering items %d to %d into %d slots", start, end, len(m.list.Slots())))

	case key.Matches(msg, m.keyMap.Title):
		m.titleIndex = (m.titleIndex + 1) % len(m.titles)
		return m.set(listview.WithModel[Item](m.titles[m.titleIndex]))

	case key.Matches(msg, m.keyMap.Taller):
		m.itemHeight++
		return m.set(listview.WithDefaultItemHeight[Item](m.itemHeight))

	case key.Matches(msg, m.keyMap.Shorter):
		if m.itemHeight <= 1 {
			return m, nil
		}
		m.itemHeight--
		return m.set(listview.WithDefaultItemHeight[Item](m.itemHeight))

	case key.Matches(msg, m.keyMap.More):
		m.items = append(m.items[:len(m.items):len(m.items)], makeItems(len(m.items), 100)...)
		return m.set(listview.WithItems(m.items))

	case key.Matches(msg, m.keyMap.Fewer):
		m.items = m.items[:max(0, len(m.items)-100)]
		return m.set(listview.WithItems(m.items))

	case key.Matches(msg, m.keyMap.Copy):
		return m, command.CopyContentToClipboardCmd(m.visibleContent())

	case key.Matches(msg, m.keyMap.Save):
		lines := make([]string, len(m.items))
		for i, item := range m.items {
			lines[i] = plainItemText(item)
		}
		return m, fileio.SaveCmd("", lines)
	}

	// #7: Everything else goes to the list: its key events and viewport navigation
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// set applies list options. Invalid options are a programming error here, shown like any other error
func (m Model) set(opts ...listview.Option[Item]) (Model, tea.Cmd) {
	cmd, err := m.list.Set(nil, opts...)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, cmd
}

func (m Model) helpStatus() help.Status {
	start, end := m.list.Range()
	kind := m.config.Viewport
	if vp := m.list.Viewport(); vp != nil {
		kind = vp.Kind()
	}
	return help.Status{
		Items:      len(m.items),
		ItemHeight: m.itemHeight,
		BatchSize:  m.config.BatchSize,
		Viewport:   kind.String(),
		Measured:   m.config.Measure,
		Start:      start,
		End:        end,
	}
}

// visibleContent returns the rendered content of the items in the list's current window
func (m Model) visibleContent() []string {
	var lines []string
	for _, s := range m.list.Slots() {
		if s.Occupied() {
			lines = append(lines, s.Content)
		}
	}
	return lines
}

func makeItems(from, n int) []Item {
	items := make([]Item, max(0, n))
	for i := range items {
		items[i] = Item{Text: from + i}
	}
	return items
}

func plainItemText(item Item) string {
	return fmt.Sprintf("Item %d", item.Text)
}
