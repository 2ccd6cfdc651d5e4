package components

import (
	"fmt"
	"strings"

	"bragi/internal/models"
	"bragi/internal/ui"
)

// EntryList renders the ranked view of application entries. It never holds
// entry pointers of its own ordering: the view is a slice of indices into
// the full entry set, replaced wholesale on every query change.
type EntryList struct {
	Entries []*models.Entry // full entry set, discovery order
	view    []int           // ranked/filtered indices into Entries
	Cursor  int             // position within View
	Width   int
	Height  int
	Focused bool
	Title   string
}

// NewEntryList creates a new entry list
func NewEntryList() *EntryList {
	return &EntryList{
		Width:   60,
		Height:  15,
		Focused: true,
		Title:   "Applications",
	}
}

// SetView replaces the entry set and ranked view, clamping the cursor
func (l *EntryList) SetView(entries []*models.Entry, view []int) {
	l.Entries = entries
	l.view = view
	if l.Cursor >= len(view) {
		l.Cursor = max(0, len(view)-1)
	}
}

// ResetCursor moves the cursor back to the top
func (l *EntryList) ResetCursor() {
	l.Cursor = 0
}

// MoveUp moves cursor up
func (l *EntryList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves cursor down
func (l *EntryList) MoveDown() {
	if l.Cursor < len(l.view)-1 {
		l.Cursor++
	}
}

// PageUp moves cursor up by a page
func (l *EntryList) PageUp() {
	pageSize := l.visibleHeight()
	l.Cursor -= pageSize
	if l.Cursor < 0 {
		l.Cursor = 0
	}
}

// PageDown moves cursor down by a page
func (l *EntryList) PageDown() {
	pageSize := l.visibleHeight()
	l.Cursor += pageSize
	if l.Cursor >= len(l.view) {
		l.Cursor = max(0, len(l.view)-1)
	}
}

// GoToFirst moves cursor to the first item
func (l *EntryList) GoToFirst() {
	l.Cursor = 0
}

// GoToLast moves cursor to the last item
func (l *EntryList) GoToLast() {
	if len(l.view) > 0 {
		l.Cursor = len(l.view) - 1
	}
}

// Current returns the entry under the cursor
func (l *EntryList) Current() *models.Entry {
	if l.Cursor < 0 || l.Cursor >= len(l.view) {
		return nil
	}
	return l.Entries[l.view[l.Cursor]]
}

// VisibleEntries returns the entries in the currently scrolled-in window.
// The model resolves icons lazily for exactly these.
func (l *EntryList) VisibleEntries() []*models.Entry {
	start, end := l.visibleRange()
	visible := make([]*models.Entry, 0, end-start)
	for i := start; i < end; i++ {
		visible = append(visible, l.Entries[l.view[i]])
	}
	return visible
}

func (l *EntryList) visibleHeight() int {
	h := l.Height - 3 // minus title and divider
	if h < 1 {
		h = 10
	}
	return h
}

func (l *EntryList) visibleRange() (int, int) {
	visibleHeight := l.visibleHeight()
	start := 0
	if l.Cursor >= visibleHeight {
		start = l.Cursor - visibleHeight + 1
	}
	end := min(start+visibleHeight, len(l.view))
	return start, end
}

// View renders the entry list
func (l *EntryList) View() string {
	var b strings.Builder

	title := l.Title
	if len(l.view) > 0 {
		title = fmt.Sprintf("%s (%d/%d)", l.Title, len(l.view), len(l.Entries))
	}
	b.WriteString(ui.PanelTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(ui.DividerStyle.Render(strings.Repeat("─", max(1, l.Width-2))))
	b.WriteString("\n")

	if len(l.view) == 0 {
		b.WriteString(ui.ItemStyle.Render("No matching applications"))
		return l.wrapInPanel(b.String())
	}

	startIdx, endIdx := l.visibleRange()

	if startIdx > 0 {
		b.WriteString(ui.MutedStyle.Render("  ↑ more"))
		b.WriteString("\n")
	}

	for i := startIdx; i < endIdx; i++ {
		entry := l.Entries[l.view[i]]
		b.WriteString(l.renderItem(entry, i == l.Cursor))
		if i < endIdx-1 {
			b.WriteString("\n")
		}
	}

	if endIdx < len(l.view) {
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render("  ↓ more"))
	}

	if len(l.view) > l.visibleHeight() {
		position := fmt.Sprintf(" %d/%d ", l.Cursor+1, len(l.view))
		b.WriteString("\n")
		b.WriteString(ui.MutedStyle.Render(position))
	}

	return l.wrapInPanel(b.String())
}

// renderItem renders a single entry line
func (l *EntryList) renderItem(entry *models.Entry, isCursor bool) string {
	// The marker distinguishes a resolved icon from "no icon found" and
	// from "not looked up yet"
	mark := " "
	switch {
	case entry.HasIcon():
		mark = ui.IconMarkStyle.Render("●")
	case entry.IconState == models.IconResolved:
		mark = ui.MutedStyle.Render("○")
	}

	name := entry.Name
	maxNameLen := l.Width - 30
	if maxNameLen < 10 {
		maxNameLen = 10
	}
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	comment := entry.DisplayComment()
	maxCommentLen := l.Width - len(name) - 12
	if maxCommentLen < 0 {
		maxCommentLen = 0
	}
	if len(comment) > maxCommentLen {
		if maxCommentLen > 3 {
			comment = comment[:maxCommentLen-3] + "..."
		} else {
			comment = ""
		}
	}

	tag := ""
	if entry.Custom {
		tag = " " + ui.CustomTagStyle.Render("[custom]")
	}

	content := fmt.Sprintf("%s %s  %s%s", mark, ui.EntryNameStyle.Render(name), ui.EntryCommentStyle.Render(comment), tag)

	if isCursor && l.Focused {
		return ui.SelectedItemStyle.Width(max(1, l.Width-4)).Render(content)
	}
	return ui.ItemStyle.Render(content)
}

// wrapInPanel wraps content in a panel border
func (l *EntryList) wrapInPanel(content string) string {
	style := ui.PanelStyle
	if l.Focused {
		style = ui.ActivePanelStyle
	}
	return style.Width(l.Width).Height(l.Height).Render(content)
}
