package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/twinpane/internal/textutil"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Navigation",
		entries: []helpOverlayEntry{
			{keys: "k/↑ j/↓", desc: "Move selection"},
			{keys: "l/→/↵", desc: "Enter directory / edit file"},
			{keys: "h/←", desc: "Parent directory"},
			{keys: "gg G", desc: "First / last entry"},
		},
	},
	{
		title: "Filter",
		entries: []helpOverlayEntry{
			{keys: "/", desc: "Filter current directory"},
			{keys: "↵", desc: "Keep filter"},
			{keys: "Esc", desc: "Restore previous view"},
		},
	},
	{
		title: "Files",
		entries: []helpOverlayEntry{
			{keys: "space", desc: "Mark / unmark"},
			{keys: "D", desc: "Delete marked entries"},
			{keys: "d", desc: "Delete selection"},
			{keys: "r", desc: "Rename selection"},
			{keys: "n / N", desc: "New file / directory"},
			{keys: "y", desc: "Yank path to clipboard"},
			{keys: "R Ctrl+L", desc: "Refresh directory"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q", desc: "Quit"},
			{keys: "Ctrl+C", desc: "Quit immediately"},
			{keys: "Ctrl+Z", desc: "Suspend to shell"},
			{keys: "?", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 32)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, formatHelpOverlayEntry(entry))
		}
	}
	return lines
}

func formatHelpOverlayEntry(entry helpOverlayEntry) string {
	key := textutil.Sanitize(entry.keys)
	desc := textutil.Sanitize(entry.desc)
	return fmt.Sprintf("  %s %s", textutil.Fit(key, 14), desc)
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	for y := 0; y < h; y++ {
		r.fillLine(0, y, w, baseStyle)
	}

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	r.fillLine(0, 0, w, headerStyle)
	titleStart := max(0, (w-textutil.DisplayWidth(title))/2)
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		r.drawTextLine(2, row, w-4, strings.TrimRight(line, " "), baseStyle)
		row++
	}

	if h > 0 {
		r.fillLine(0, h-1, w, headerStyle)
		r.drawTextLine(0, h-1, w, textutil.Fit("? toggle · Esc/q close", w), headerStyle)
	}
}
