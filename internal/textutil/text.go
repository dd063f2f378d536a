// Package textutil prepares untrusted text (file names, file contents) for a
// cell-based terminal.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// bidi and zero-width runes that can make a name render as something else.
var invisibleRunes = map[rune]string{
	0x061C: "<ALM>",
	0x200B: "<ZWSP>",
	0x200C: "<ZWNJ>",
	0x200D: "<ZWJ>",
	0x200E: "<LRM>",
	0x200F: "<RLM>",
	0x202A: "<LRE>",
	0x202B: "<RLE>",
	0x202C: "<PDF>",
	0x202D: "<LRO>",
	0x202E: "<RLO>",
	0x2066: "<LRI>",
	0x2067: "<RLI>",
	0x2068: "<FSI>",
	0x2069: "<PDI>",
	0xFEFF: "<BOM>",
}

// Sanitize replaces control characters so text cannot inject terminal escape
// sequences, and labels invisible formatting runes.
func Sanitize(text string) string {
	clean := true
	for _, r := range text {
		if needsEscape(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := invisibleRunes[r]; ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsEscape(r rune) bool {
	if _, ok := invisibleRunes[r]; ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}

// ExpandTabs replaces tabs with spaces up to the next tab stop, counting
// columns by display width.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	col := 0
	for _, r := range text {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += max(1, runewidth.RuneWidth(r))
	}
	return b.String()
}

// DisplayWidth reports how many terminal cells text occupies.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Fit truncates text to width cells, marking the cut with an ellipsis, and
// pads the result with spaces to exactly width cells.
func Fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, "…")
	}
	return runewidth.FillRight(text, width)
}
