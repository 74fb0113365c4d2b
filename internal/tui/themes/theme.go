package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Label         lipgloss.Style
	Selected      lipgloss.Style
	Unselected    lipgloss.Style
	Income        lipgloss.Style
	Expense       lipgloss.Style
	Toggle        lipgloss.Style
	ToggleActive  lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#7FB77E"),
	Success:    lipgloss.Color("#10b981"),
	Error:      lipgloss.Color("#ef4444"),
	Foreground: lipgloss.Color("#fafafa"),
	Border:     lipgloss.Color("#404040"),
	Muted:      lipgloss.Color("#737373"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7FB77E")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#a3a3a3")).
		Width(10),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#7FB77E")).
		Foreground(lipgloss.Color("#1a1a1a")).
		Bold(true).
		Padding(0, 1),
	Unselected: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")).
		Padding(0, 1),

	// Transaction types
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ECDC4")).
		Bold(true),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF8C69")).
		Bold(true),
	Toggle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Padding(0, 1),
	ToggleActive: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#7FB77E")).
		Bold(true).
		Padding(0, 1),

	// Component styles
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(1, 2),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
}

// Plain is a theme without colors, for tests and dumb terminals.
var Plain = Theme{
	Title:         lipgloss.NewStyle().MarginBottom(1),
	Subtitle:      lipgloss.NewStyle().MarginBottom(1),
	Normal:        lipgloss.NewStyle(),
	Label:         lipgloss.NewStyle().Width(10),
	Selected:      lipgloss.NewStyle().Padding(0, 1),
	Unselected:    lipgloss.NewStyle().Padding(0, 1),
	Income:        lipgloss.NewStyle(),
	Expense:       lipgloss.NewStyle(),
	Toggle:        lipgloss.NewStyle().Padding(0, 1),
	ToggleActive:  lipgloss.NewStyle().Padding(0, 1),
	RoundedBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2),
	StatusSuccess: lipgloss.NewStyle(),
	StatusError:   lipgloss.NewStyle(),
	StatusInfo:    lipgloss.NewStyle(),
}
