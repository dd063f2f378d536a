package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/twinpane/internal/state"
)

// buildFooterHelpText returns the contextual footer hint string with leading/trailing padding.
func buildFooterHelpText(vm *statepkg.ViewModel) string {
	parts := footerHelpSegments(vm)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

func footerHelpSegments(vm *statepkg.ViewModel) []string {
	if vm == nil {
		return nil
	}

	switch vm.Mode {
	case statepkg.ModeFilter:
		return []string{
			"type: filter",
			"↵: apply",
			"Esc: cancel",
			"↑↓: move",
		}
	case statepkg.ModePrompt:
		return []string{
			"↵: confirm",
			"Esc: cancel",
		}
	case statepkg.ModeConfirm:
		return []string{
			"y: delete",
			"any other key: skip",
		}
	case statepkg.ModeEditingExternally:
		return nil
	}

	return []string{
		"hjkl/arrows: navigate",
		"gg/G: top/bottom",
		"/: filter",
		"space: mark",
		"d/D: delete",
		"r: rename",
		"n/N: new file/dir",
		"y: yank path",
		"?: help",
		"q: quit",
	}
}
