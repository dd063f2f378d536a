package state

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/textutil"
)

// Preview sentinels shown instead of content.
const (
	PreviewEmptyDirectory   = "[Empty Directory]"
	PreviewCannotOpen       = "[Error: Cannot open file]"
	PreviewPermissionDenied = "[Error: Permission Denied]"
)

// DefaultPreviewMaxBytes caps how much of a file the previewer reads.
const DefaultPreviewMaxBytes = 1 << 20

// Previewer produces the side pane content for a path.
type Previewer struct {
	// MaxBytes bounds the bytes read from a file. Zero means the default.
	MaxBytes int64
	// TabWidth used when expanding tabs. Zero means textutil.DefaultTabWidth.
	TabWidth int
}

// Lines returns at most limit preview lines for path. Nothing is read until
// the sequence is iterated, and iteration stops reading as soon as the
// consumer does.
func (p Previewer) Lines(path string, limit int) iter.Seq[string] {
	return func(yield func(string) bool) {
		if limit <= 0 {
			return
		}
		info, err := os.Stat(path)
		if err != nil {
			yield(PreviewCannotOpen)
			return
		}
		if info.IsDir() {
			p.directoryLines(path, limit, yield)
			return
		}
		p.fileLines(path, limit, yield)
	}
}

func (p Previewer) directoryLines(path string, limit int, yield func(string) bool) {
	entries, err := fsutil.ReadEntries(path)
	if err != nil {
		yield(PreviewPermissionDenied)
		return
	}
	if len(entries) == 0 {
		yield(PreviewEmptyDirectory)
		return
	}
	for i, entry := range entries {
		if i >= limit {
			return
		}
		name := textutil.Sanitize(entry.Name)
		if entry.IsDir {
			name += "/"
		}
		if !yield(name) {
			return
		}
	}
}

func (p Previewer) fileLines(path string, limit int, yield func(string) bool) {
	file, err := os.Open(path)
	if err != nil {
		yield(PreviewCannotOpen)
		return
	}
	defer func() { _ = file.Close() }()

	sample, err := fsutil.ReadTextSample(file)
	if err != nil || !fsutil.IsTextFile(path, sample) {
		yield(PreviewCannotOpen)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		yield(PreviewCannotOpen)
		return
	}

	maxBytes := p.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultPreviewMaxBytes
	}
	tabWidth := p.TabWidth
	if tabWidth <= 0 {
		tabWidth = textutil.DefaultTabWidth
	}

	scanner := bufio.NewScanner(fsutil.NewTextReader(io.LimitReader(file, maxBytes)))
	// A single line may span everything LimitReader lets through, and
	// UTF-16 input grows by up to half once decoded.
	scanner.Buffer(make([]byte, 0, min(maxBytes, 64*1024)), int(maxBytes)*2+1)
	count := 0
	for count < limit && scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		line = textutil.Sanitize(textutil.ExpandTabs(line, tabWidth))
		if !yield(line) {
			return
		}
		count++
	}
	if count < limit && scanner.Err() != nil {
		yield(PreviewCannotOpen)
	}
}
