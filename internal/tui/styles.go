package tui

import (
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#4F4FB7")
	muted  = lipgloss.Color("#959595")

	// Frame around the whole form
	App = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Width(18)

	// Placeholder for an empty path field
	EmptyStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	FocusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted)

	FocusedButtonStyle = ButtonStyle.
				BorderForeground(accent).
				Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(muted)

	// Report pane, coloured by outcome
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))
)

// pickerStyles themes the file picker to match the form
func pickerStyles() filepicker.Styles {
	s := filepicker.DefaultStyles()
	s.Cursor = lipgloss.NewStyle().Foreground(accent)
	s.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accent)
	s.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#81A1C1")).Bold(true)
	s.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#CCCCCC"))
	s.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#D08770")).Italic(true)
	return s
}
