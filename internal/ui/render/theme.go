package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HiddenFg    tcell.Color
	SelectionBg tcell.Color
	SelectionFg tcell.Color
	MarkFg      tcell.Color
	DirectoryFg tcell.Color
	SymlinkFg   tcell.Color
	FileFg      tcell.Color
	HeaderBg    tcell.Color
	HeaderFg    tcell.Color
	FooterBg    tcell.Color
	FooterFg    tcell.Color
	PreviewFg   tcell.Color
	SentinelFg  tcell.Color
	ErrorFg     tcell.Color
	PromptFg    tcell.Color
	SeparatorFg tcell.Color

	// SyntaxStyle is the chroma style used to colour file previews.
	SyntaxStyle string
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:  tcell.ColorDefault,
		Foreground:  tcell.ColorDefault,
		HiddenFg:    tcell.ColorLightSlateGray,
		SelectionBg: tcell.Color33,
		SelectionFg: tcell.ColorWhite,
		MarkFg:      tcell.Color214, // amber for marked entries
		DirectoryFg: tcell.Color33,
		SymlinkFg:   tcell.Color51,
		FileFg:      tcell.ColorDefault,
		HeaderBg:    tcell.Color236,
		HeaderFg:    tcell.ColorWhite,
		FooterBg:    tcell.ColorDefault,
		FooterFg:    tcell.ColorGray,
		PreviewFg:   tcell.ColorDefault,
		SentinelFg:  tcell.ColorGray,
		ErrorFg:     tcell.ColorRed,
		PromptFg:    tcell.Color44,
		SeparatorFg: tcell.Color240,
		SyntaxStyle: "nord",
	}
}
