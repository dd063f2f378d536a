package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawTextLine draws text starting at x and clips it at x+width. It returns
// the column after the last drawn cell.
func (r *Renderer) drawTextLine(x, y, width int, text string, style tcell.Style) int {
	limit := x + width
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w <= 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += w
	}
	return x
}

// fillLine paints cells [x, x+width) with style.
func (r *Renderer) fillLine(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		r.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// trimLeft keeps the end of text, which for paths is the most useful part,
// prefixing an ellipsis when anything was dropped.
func trimLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width == 1 {
		return "…"
	}

	runes := []rune(text)
	available := width - 1
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > available {
			break
		}
		used += w
		start--
	}
	return "…" + string(runes[start:])
}
