package fs

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	sniffSize           = 4096
	maxNonPrintablePcnt = 30
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".a": {}, ".apk": {}, ".avi": {}, ".bin": {}, ".bmp": {},
	".bz2": {}, ".class": {}, ".dll": {}, ".doc": {}, ".docx": {}, ".dylib": {},
	".exe": {}, ".flac": {}, ".gif": {}, ".gz": {}, ".ico": {}, ".iso": {},
	".jar": {}, ".jpeg": {}, ".jpg": {}, ".mkv": {}, ".mov": {}, ".mp3": {},
	".mp4": {}, ".o": {}, ".ogg": {}, ".otf": {}, ".pdf": {}, ".png": {},
	".psd": {}, ".so": {}, ".tar": {}, ".tgz": {}, ".ttf": {}, ".wasm": {},
	".wav": {}, ".webp": {}, ".woff": {}, ".woff2": {}, ".xls": {}, ".xlsx": {},
	".xz": {}, ".zip": {}, ".zst": {},
}

// IsTextFile reports whether sample looks like text. Well-known binary
// extensions on path short-circuit the content sniffing.
func IsTextFile(path string, sample []byte) bool {
	if path != "" {
		if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok {
			return false
		}
	}
	if len(sample) == 0 {
		return true
	}
	if len(sample) > sniffSize {
		sample = sample[:sniffSize]
	}

	if hasUnicodeBOM(sample) {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	bad := 0
	for _, b := range sample {
		if !isTextByte(b) {
			bad++
		}
	}
	return bad*100/len(sample) < maxNonPrintablePcnt
}

// ReadTextSample returns the first bytes of r for text/binary sniffing.
func ReadTextSample(r io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, sniffSize))
}

// NewTextReader wraps r so UTF-8 and UTF-16 byte order marks are decoded
// into plain UTF-8. Content without a BOM passes through unchanged.
func NewTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

func hasUnicodeBOM(sample []byte) bool {
	switch {
	case bytes.HasPrefix(sample, []byte{0xEF, 0xBB, 0xBF}):
		return true
	case bytes.HasPrefix(sample, []byte{0xFF, 0xFE}), bytes.HasPrefix(sample, []byte{0xFE, 0xFF}):
		return true
	}
	return false
}

func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1B:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	default:
		return b >= 0x80
	}
}
