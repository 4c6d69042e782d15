package style

import (
	"charm.land/lipgloss/v2"
)

var (
	foreground    = lipgloss.Color("#D0D0D0")
	altForeground = lipgloss.Color("#7D56F4")
	background    = lipgloss.Color("#1C1C1C")
	altBackground = lipgloss.Color("#3A3A3A")
)

var (
	Regular         = lipgloss.NewStyle()
	Bold            = Regular.Bold(true)
	Inverse         = Regular.Foreground(background).Background(foreground)
	TopBarStyle     = Bold.Foreground(foreground).Background(altBackground)
	HeaderStyle     = Bold.Foreground(altForeground)
	FooterStyle     = Regular.Faint(true)
	ItemStyle       = Regular
	ItemAltStyle    = Regular.Background(altBackground)
	ItemNoteStyle   = Regular.Faint(true).Italic(true)
	ToastStyle      = Inverse.Padding(0, 1)
	ErrorStyle      = Bold.Foreground(lipgloss.Color("#FF5F5F"))
	ErrorToastStyle = Bold.Foreground(background).Background(lipgloss.Color("#FF5F5F")).Padding(0, 1)
	KeyHelpStyle    = Bold.Foreground(background).Background(foreground).Underline(true)
)
