package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary    = lipgloss.Color("#7C3AED") // Purple
	Secondary  = lipgloss.Color("#06B6D4") // Cyan
	Success    = lipgloss.Color("#10B981") // Green
	Warning    = lipgloss.Color("#F59E0B") // Amber
	Error      = lipgloss.Color("#EF4444") // Red
	Muted      = lipgloss.Color("#6B7280") // Gray
	Foreground = lipgloss.Color("#F9FAFB") // Light
	Border     = lipgloss.Color("#374151") // Border gray
	Selected   = lipgloss.Color("#4F46E5") // Indigo
)

// Styles
var (
	// App container
	AppStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Query input line
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)

	// Panels
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary).
			Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)

	// List items
	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Selected).
				Foreground(Foreground)

	// Entry fields
	EntryNameStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	EntryCommentStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Italic(true)

	EntryPathStyle = lipgloss.NewStyle().
			Foreground(Muted)

	CustomTagStyle = lipgloss.NewStyle().
			Foreground(Warning)

	IconMarkStyle = lipgloss.NewStyle().
			Foreground(Success)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Border)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Help bar
	HelpBarStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Scan spinner
	ProgressStyle = lipgloss.NewStyle().
			Foreground(Primary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
