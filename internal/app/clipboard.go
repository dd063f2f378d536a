package app

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard receives yanked paths.
type Clipboard interface {
	WriteAll(text string) error
}

var errClipboardUnavailable = errors.New("clipboard unavailable")

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}
