package render

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// styledSegment is a run of text drawn with one style.
type styledSegment struct {
	text  string
	style tcell.Style
}

// highlighter colours preview lines with chroma. Only files whose name a
// lexer recognises are coloured; everything else is drawn plain.
type highlighter struct {
	style *chroma.Style
}

func newHighlighter(styleName string) *highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{style: style}
}

// highlight splits lines into styled segments. It returns nil when path has
// no matching lexer or tokenising fails.
func (h *highlighter) highlight(path string, lines []string, base tcell.Style) [][]styledSegment {
	if h == nil || path == "" || len(lines) == 0 {
		return nil
	}
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		return nil
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return nil
	}

	tokenLines := chroma.SplitTokensIntoLines(iterator.Tokens())
	out := make([][]styledSegment, 0, len(lines))
	for i := range lines {
		var segments []styledSegment
		if i < len(tokenLines) {
			for _, token := range tokenLines[i] {
				text := strings.TrimRight(token.Value, "\n")
				if text == "" {
					continue
				}
				segments = append(segments, styledSegment{text: text, style: h.tokenStyle(token.Type, base)})
			}
		}
		out = append(out, segments)
	}
	return out
}

func (h *highlighter) tokenStyle(tokenType chroma.TokenType, base tcell.Style) tcell.Style {
	entry := h.style.Get(tokenType)
	style := base
	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewRGBColor(int32(entry.Colour.Red()), int32(entry.Colour.Green()), int32(entry.Colour.Blue())))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}
