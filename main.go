package main

import (
	"fmt"
	"os"
	"strings"

	"bragi/internal/config"
	"bragi/internal/custom"
	"bragi/internal/desktop"
	"bragi/internal/icons"
	"bragi/internal/launch"
	"bragi/internal/models"
	"bragi/internal/search"
	"bragi/internal/ui"
	"bragi/internal/ui/components"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version info (set by ldflags)
var (
	version   = "dev"
	buildTime = "unknown"
	debugMode = false // Enable with --debug flag
)

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if debugMode {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// Screen represents different screens in the app
type Screen int

const (
	ScreenScanning Screen = iota
	ScreenMain
	ScreenPreview
	ScreenHelp
)

// Model is the main application model
type Model struct {
	config   *config.Config
	entries  []*models.Entry // full entry set, write-once per scan
	view     []int           // current ranked view into entries
	resolver *icons.Resolver
	launcher launch.Launcher

	// UI components
	entryList  *components.EntryList
	preview    *components.EntryPreview
	spinner    spinner.Model
	help       help.Model
	helpVP     viewport.Model
	keys       ui.KeyMap
	queryInput textinput.Model

	// State
	screen Screen
	status string
	width  int
	height int
	err    error
}

// Messages
type scanCompleteMsg struct {
	entries []*models.Entry
	err     error
}

func New() *Model {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}

	homeDir, _ := os.UserHomeDir()
	theme := cfg.IconTheme
	if theme == "" {
		theme = icons.ActiveTheme(homeDir)
	}
	debugLog("Active icon theme: %s", theme)

	// The theme chain is built once here; entries resolve against it
	// lazily as they scroll into view.
	resolver := icons.NewResolver(theme, icons.BaseDirs(homeDir))
	debugLog("Theme chain: %v", resolver.Chain())

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.ProgressStyle

	ti := textinput.New()
	ti.Placeholder = "Type to search applications..."
	ti.Prompt = "> "
	ti.PromptStyle = ui.PromptStyle
	ti.CharLimit = 128
	ti.Width = 50
	ti.Focus()

	return &Model{
		config:     cfg,
		resolver:   resolver,
		launcher:   launch.New(),
		entryList:  components.NewEntryList(),
		preview:    components.NewEntryPreview(),
		spinner:    s,
		help:       help.New(),
		helpVP:     viewport.New(76, 20),
		keys:       ui.DefaultKeyMap(),
		queryInput: ti,
		screen:     ScreenScanning,
		status:     "Scanning...",
		width:      80,
		height:     24,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, textinput.Blink, m.scanEntries)
}

// scanEntries discovers desktop entries and appends user-defined custom
// entries. Runs once at startup and again on explicit rescan.
func (m *Model) scanEntries() tea.Msg {
	scanner := desktop.New(m.config.ExtraAppDirs)
	entries, err := scanner.Scan()
	if err != nil {
		return scanCompleteMsg{entries: entries, err: err}
	}

	entries = append(entries, custom.New("").Entries()...)
	debugLog("Scan produced %d entries", len(entries))
	return scanCompleteMsg{entries: entries}
}

// rerank recomputes the filtered view from the full entry set
func (m *Model) rerank() {
	m.view = search.Rank(m.entries, m.queryInput.Value())
	m.entryList.SetView(m.entries, m.view)
}

// resolveVisibleIcons resolves icons for entries currently scrolled into
// view. Each entry is touched at most once over its lifetime; repeat
// visibility is satisfied from the memoized result.
func (m *Model) resolveVisibleIcons() {
	for _, entry := range m.entryList.VisibleEntries() {
		m.resolver.ResolveEntry(entry)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.screen == ScreenPreview {
			var cmd tea.Cmd
			m.preview, cmd = m.preview.Update(msg)
			return m, cmd
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case scanCompleteMsg:
		m.screen = ScreenMain
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.err = nil
		m.entries = msg.entries
		m.rerank()
		m.entryList.ResetCursor()
		m.resolveVisibleIcons()
		m.status = fmt.Sprintf("%d applications", len(m.entries))
	}

	return m, nil
}

func (m *Model) updateSizes() {
	listHeight := m.height - 7
	if listHeight < 5 {
		listHeight = 5
	}
	m.entryList.Width = m.width - 4
	m.entryList.Height = listHeight
	m.preview.SetSize(m.width-4, m.height-4)
	m.queryInput.Width = m.width - 8
	m.helpVP.Width = m.width - 4
	m.helpVP.Height = m.height - 4
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case ScreenHelp:
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help):
			m.screen = ScreenMain
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.helpVP, cmd = m.helpVP.Update(msg)
		return m, cmd

	case ScreenPreview:
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Preview):
			m.screen = ScreenMain
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.preview.ScrollUp()
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.preview.ScrollDown()
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.preview.PageUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.preview.PageDown()
			return m, nil
		}
		return m, nil

	case ScreenScanning:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// ScreenMain
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.queryInput.Value() != "" {
			m.queryInput.SetValue("")
			m.rerank()
			m.entryList.ResetCursor()
			m.resolveVisibleIcons()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.entryList.MoveUp()
		m.resolveVisibleIcons()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.entryList.MoveDown()
		m.resolveVisibleIcons()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.entryList.PageUp()
		m.resolveVisibleIcons()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.entryList.PageDown()
		m.resolveVisibleIcons()
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.entryList.GoToFirst()
		m.resolveVisibleIcons()
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.entryList.GoToLast()
		m.resolveVisibleIcons()
		return m, nil

	case key.Matches(msg, m.keys.Launch):
		entry := m.entryList.Current()
		if entry == nil {
			return m, nil
		}
		debugLog("Launching %q: %s", entry.Name, entry.Exec)
		if err := m.launcher.Launch(entry.Exec); err != nil {
			m.status = fmt.Sprintf("Launch failed: %v", err)
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Preview):
		entry := m.entryList.Current()
		if entry == nil {
			return m, nil
		}
		m.resolver.ResolveEntry(entry)
		m.preview.SetEntry(entry)
		m.screen = ScreenPreview
		return m, nil

	case key.Matches(msg, m.keys.Rescan):
		m.screen = ScreenScanning
		m.status = "Scanning..."
		return m, tea.Batch(m.spinner.Tick, m.scanEntries)

	case key.Matches(msg, m.keys.Help):
		m.helpVP.SetContent(m.helpContent())
		m.screen = ScreenHelp
		return m, nil
	}

	// Everything else belongs to the query input
	before := m.queryInput.Value()
	var cmd tea.Cmd
	m.queryInput, cmd = m.queryInput.Update(msg)
	if m.queryInput.Value() != before {
		m.rerank()
		m.entryList.ResetCursor()
		m.resolveVisibleIcons()
	}
	return m, cmd
}

func (m *Model) View() string {
	switch m.screen {
	case ScreenScanning:
		return ui.AppStyle.Render(fmt.Sprintf("\n %s Scanning applications...\n", m.spinner.View()))

	case ScreenPreview:
		return ui.AppStyle.Render(m.preview.View())

	case ScreenHelp:
		title := ui.HeaderStyle.Render("bragi — keys")
		return ui.AppStyle.Render(title + "\n" + m.helpVP.View())
	}

	var b strings.Builder

	header := ui.HeaderStyle.Render("bragi") + ui.VersionStyle.Render(" "+version)
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(" " + m.queryInput.View())
	b.WriteString("\n")

	b.WriteString(m.entryList.View())
	b.WriteString("\n")

	status := m.status
	if m.err != nil {
		status = ui.ErrorStyle.Render(status)
	}
	statusBar := ui.StatusBarStyle.Render(status)
	helpBar := ui.HelpBarStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, statusBar, helpBar))

	return ui.AppStyle.Render(b.String())
}

func (m *Model) helpContent() string {
	var b strings.Builder
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-14s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func main() {
	// Check for flags
	for _, arg := range os.Args[1:] {
		switch arg {
		case "-v", "--version", "version":
			fmt.Printf("bragi %s (built %s)\n", version, buildTime)
			return
		case "-h", "--help", "help":
			fmt.Println("bragi - a terminal application launcher")
			fmt.Println()
			fmt.Println("Usage: bragi [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  -v, --version    Show version")
			fmt.Println("  -h, --help       Show this help")
			fmt.Println("  -d, --debug      Enable debug mode (logs to stderr)")
			fmt.Println()
			fmt.Println("Run without arguments to start the launcher.")
			return
		case "-d", "--debug", "debug":
			debugMode = true
			desktop.DebugMode = true
			fmt.Fprintln(os.Stderr, "[DEBUG] Debug mode enabled")
		}
	}

	p := tea.NewProgram(New(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
