package components

import (
	"fmt"
	"os"
	"strings"

	"bragi/internal/models"
	"bragi/internal/ui"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryPreview shows the selected entry's desktop file source with syntax
// highlighting, plus its parsed fields and resolved icon path.
type EntryPreview struct {
	viewport    viewport.Model
	highlighter *ui.Highlighter

	EntryName string
	Source    string
	IconPath  string

	Width  int
	Height int

	headerStyle  lipgloss.Style
	infoStyle    lipgloss.Style
	borderStyle  lipgloss.Style
	lineNumStyle lipgloss.Style
}

// NewEntryPreview creates a new preview component
func NewEntryPreview() *EntryPreview {
	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &EntryPreview{
		viewport:    vp,
		highlighter: ui.NewHighlighter(),
		Width:       80,
		Height:      20,
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#89b4fa")),
		infoStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")),
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#89b4fa")).
			Padding(0, 1),
		lineNumStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6c7086")).
			Width(4).
			Align(lipgloss.Right),
	}
}

// SetSize updates the viewport dimensions
func (p *EntryPreview) SetSize(width, height int) {
	p.Width = width
	p.Height = height

	contentHeight := height - 6
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	p.viewport.Width = contentWidth
	p.viewport.Height = contentHeight
}

// SetEntry loads an entry into the preview. The icon path shown is the
// entry's memoized resolution result; an unresolved entry shows nothing.
func (p *EntryPreview) SetEntry(entry *models.Entry) {
	p.EntryName = entry.Name
	p.Source = entry.Source
	p.IconPath = entry.IconPath

	data, err := os.ReadFile(entry.Source)
	if err != nil {
		p.viewport.SetContent(p.infoStyle.Render("source file unavailable"))
		p.viewport.GotoTop()
		return
	}

	lines := strings.Split(string(data), "\n")
	var b strings.Builder
	for i, line := range lines {
		lineNum := p.lineNumStyle.Render(fmt.Sprintf("%d", i+1))
		b.WriteString(lineNum + " │ " + p.highlighter.HighlightLine(line, entry.Source))
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}

	p.viewport.SetContent(b.String())
	p.viewport.GotoTop()
}

// Update handles messages for viewport scrolling
func (p *EntryPreview) Update(msg tea.Msg) (*EntryPreview, tea.Cmd) {
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View renders the preview
func (p *EntryPreview) View() string {
	var b strings.Builder

	b.WriteString(p.headerStyle.Render(p.EntryName))
	b.WriteString(p.infoStyle.Render("  " + ui.GetFileType(p.Source)))
	b.WriteString("\n")
	b.WriteString(p.infoStyle.Render(p.Source))
	b.WriteString("\n")

	icon := p.IconPath
	if icon == "" {
		icon = "(no icon found)"
	}
	b.WriteString(p.infoStyle.Render("icon: " + icon))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color("#313244")).
		Render(strings.Repeat("─", max(1, p.Width-4))))
	b.WriteString("\n")

	b.WriteString(p.viewport.View())

	return p.borderStyle.Width(p.Width).Height(p.Height).Render(b.String())
}

// ScrollUp scrolls up one line
func (p *EntryPreview) ScrollUp() {
	p.viewport.LineUp(1)
}

// ScrollDown scrolls down one line
func (p *EntryPreview) ScrollDown() {
	p.viewport.LineDown(1)
}

// PageUp scrolls up by a page
func (p *EntryPreview) PageUp() {
	p.viewport.ViewUp()
}

// PageDown scrolls down by a page
func (p *EntryPreview) PageDown() {
	p.viewport.ViewDown()
}
