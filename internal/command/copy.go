package command

import (
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/robinovitch61/vl/internal/constants"
	"strings"
)

type ContentCopiedToClipboardMsg struct {
	Content string
	Err     error
}

// CopyContentToClipboardCmd copies lines to the system clipboard, stripped of terminal styling
func CopyContentToClipboardCmd(lines []string) tea.Cmd {
	content := constants.AnsiRegex.ReplaceAllString(strings.Join(lines, "\n"), "")
	return func() tea.Msg {
		err := clipboard.WriteAll(content)
		return ContentCopiedToClipboardMsg{Content: content, Err: err}
	}
}
