package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twinpane/internal/state"
	"github.com/kk-code-lab/twinpane/internal/textutil"
)

// minPreviewWidth is the narrowest terminal that still gets a preview pane.
const minPreviewWidth = 24

// Renderer handles all UI rendering
type Renderer struct {
	screen      tcell.Screen
	theme       ColorTheme
	highlighter *highlighter
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	theme := GetColorTheme()
	return &Renderer{
		screen:      screen,
		theme:       theme,
		highlighter: newHighlighter(theme.SyntaxStyle),
	}
}

// layout splits the screen into the listing pane, a one-column separator and
// the preview pane. Rows 1..h-3 hold the panes.
type layout struct {
	listWidth    int
	previewStart int
	previewWidth int
	paneRows     int
}

func computeLayout(w, h int) layout {
	l := layout{listWidth: w, paneRows: statepkg.ListRowsForHeight(h)}
	if w >= minPreviewWidth {
		l.listWidth = w / 2
		l.previewStart = l.listWidth + 1
		l.previewWidth = w - l.previewStart
	}
	return l
}

// PreviewRows reports how many preview lines fit on a screen of height h.
func PreviewRows(h int) int {
	return statepkg.ListRowsForHeight(h)
}

// Render draws the entire UI from vm
func (r *Renderer) Render(vm *statepkg.ViewModel) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || vm == nil {
		r.screen.Show()
		return
	}

	if vm.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	l := computeLayout(w, h)
	r.drawHeader(vm, w)
	r.drawListing(vm, l)
	if l.previewWidth > 0 {
		sepStyle := tcell.StyleDefault.Foreground(r.theme.SeparatorFg)
		for y := 1; y <= l.paneRows && y < h; y++ {
			r.screen.SetContent(l.listWidth, y, '│', nil, sepStyle)
		}
		r.drawPreview(vm, l)
	}
	if h >= 3 {
		r.drawStatusLine(vm, w, h-2)
	}
	if h >= 2 {
		r.drawFooter(vm, w, h-1)
	}

	r.screen.Show()
}

// drawHeader renders the top bar with the application name and current path.
func (r *Renderer) drawHeader(vm *statepkg.ViewModel, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillLine(0, 0, w, style)

	x := r.drawTextLine(0, 0, w, "twinpane ", style.Bold(true))

	var right []string
	if vm.FilterQuery != "" && vm.Mode != statepkg.ModeFilter {
		right = append(right, "filter: "+textutil.Sanitize(vm.FilterQuery))
	}
	if vm.MarkCount > 0 {
		right = append(right, fmt.Sprintf("%d marked", vm.MarkCount))
	}
	rightText := ""
	if len(right) > 0 {
		rightText = " " + strings.Join(right, " · ") + " "
	}
	rightWidth := textutil.DisplayWidth(rightText)

	path := trimLeft(textutil.Sanitize(vm.Path), w-x-rightWidth)
	r.drawTextLine(x, 0, w-x-rightWidth, path, style)
	if rightText != "" && w-rightWidth >= x {
		r.drawTextLine(w-rightWidth, 0, rightWidth, rightText, style)
	}
}

func (r *Renderer) drawListing(vm *statepkg.ViewModel, l layout) {
	if len(vm.Rows) == 0 {
		msg := "(empty)"
		if vm.FilterQuery != "" {
			msg = "(no matches)"
		}
		r.drawTextLine(1, 1, l.listWidth-1, msg, tcell.StyleDefault.Foreground(r.theme.SentinelFg))
		return
	}

	for i, row := range vm.Rows {
		if i >= l.paneRows {
			break
		}
		style := r.rowStyle(row)
		marker := " "
		if row.IsMarked {
			marker = "*"
		}
		name := textutil.Sanitize(row.Name)
		if row.IsDir {
			name += "/"
		} else if row.IsSymlink {
			name += "@"
		}
		text := textutil.Fit(marker+name, l.listWidth)
		r.drawTextLine(0, 1+i, l.listWidth, text, style)
	}
}

func (r *Renderer) rowStyle(row statepkg.RowView) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.theme.FileFg)
	switch {
	case row.IsMarked:
		style = style.Foreground(r.theme.MarkFg).Bold(true)
	case row.IsDir:
		style = style.Foreground(r.theme.DirectoryFg).Bold(true)
	case row.IsSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	case row.IsHidden:
		style = style.Foreground(r.theme.HiddenFg)
	}
	if row.IsSelected {
		style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}
	return style
}

func isSentinel(line string) bool {
	switch line {
	case statepkg.PreviewEmptyDirectory, statepkg.PreviewCannotOpen, statepkg.PreviewPermissionDenied:
		return true
	}
	return false
}

func (r *Renderer) drawPreview(vm *statepkg.ViewModel, l layout) {
	base := tcell.StyleDefault.Foreground(r.theme.PreviewFg)
	x, width := l.previewStart+1, l.previewWidth-1
	if width <= 0 {
		return
	}

	if len(vm.Preview) == 1 && isSentinel(vm.Preview[0]) {
		r.drawTextLine(x, 1, width, vm.Preview[0], base.Foreground(r.theme.SentinelFg))
		return
	}

	var styled [][]styledSegment
	if !vm.PreviewIsDir {
		styled = r.highlighter.highlight(vm.PreviewPath, vm.Preview, base)
	}

	for i, line := range vm.Preview {
		if i >= l.paneRows {
			break
		}
		y := 1 + i
		if styled != nil && i < len(styled) {
			cx := x
			for _, seg := range styled[i] {
				cx = r.drawTextLine(cx, y, x+width-cx, seg.text, seg.style)
			}
			continue
		}
		style := base
		if vm.PreviewIsDir && strings.HasSuffix(line, "/") {
			style = style.Foreground(r.theme.DirectoryFg)
		}
		r.drawTextLine(x, y, width, line, style)
	}
}

func (r *Renderer) drawStatusLine(vm *statepkg.ViewModel, w, y int) {
	style := tcell.StyleDefault
	if vm.Prompt != "" {
		promptStyle := style.Foreground(r.theme.PromptFg)
		prompt := textutil.Sanitize(vm.Prompt)
		end := r.drawTextLine(0, y, w, prompt, promptStyle)
		if end < w {
			r.screen.ShowCursor(end, y)
		}
		return
	}

	position := ""
	if vm.Total > 0 {
		selected := vm.Offset
		for i, row := range vm.Rows {
			if row.IsSelected {
				selected = vm.Offset + i
				break
			}
		}
		position = fmt.Sprintf(" %d/%d", selected+1, vm.Total)
	}
	posWidth := textutil.DisplayWidth(position)

	if vm.Status != "" {
		statusStyle := style
		if vm.StatusError {
			statusStyle = statusStyle.Foreground(r.theme.ErrorFg).Bold(true)
		}
		r.drawTextLine(0, y, w-posWidth, textutil.Fit(textutil.Sanitize(vm.Status), w-posWidth), statusStyle)
	}
	if position != "" && w-posWidth >= 0 {
		r.drawTextLine(w-posWidth, y, posWidth, position, style.Foreground(r.theme.FooterFg))
	}
}

func (r *Renderer) drawFooter(vm *statepkg.ViewModel, w, y int) {
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillLine(0, y, w, style)
	r.drawTextLine(0, y, w, buildFooterHelpText(vm), style)
}
