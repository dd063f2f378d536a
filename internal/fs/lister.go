package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/text/unicode/norm"
)

type listKey struct {
	dir   string
	query string
}

// Lister reads directories into sorted listings and caches the result per
// directory and filter query until invalidated. It is not safe for concurrent
// use; the application loop owns it.
type Lister struct {
	ignore []glob.Glob
	cache  map[listKey][]Entry
}

// NewLister compiles the ignore patterns. Names matching any of them never
// appear in a listing.
func NewLister(ignorePatterns []string) (*Lister, error) {
	l := &Lister{cache: make(map[listKey][]Entry)}
	for _, pattern := range ignorePatterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		l.ignore = append(l.ignore, g)
	}
	return l, nil
}

// List returns the children of dir whose names contain query, in listing
// order. The returned slice is owned by the caller.
func (l *Lister) List(dir, query string) ([]Entry, error) {
	key := listKey{dir: filepath.Clean(dir), query: query}
	if cached, ok := l.cache[key]; ok {
		return slices.Clone(cached), nil
	}

	entries, err := ReadEntries(key.dir)
	if err != nil {
		return nil, err
	}

	visible := entries[:0]
	for _, e := range entries {
		if l.ignored(e.Name) {
			continue
		}
		if query != "" && !strings.Contains(e.Name, query) {
			continue
		}
		visible = append(visible, e)
	}

	l.cache[key] = slices.Clone(visible)
	return visible, nil
}

// Invalidate drops every cached listing of dir.
func (l *Lister) Invalidate(dir string) {
	dir = filepath.Clean(dir)
	for key := range l.cache {
		if key.dir == dir {
			delete(l.cache, key)
		}
	}
}

func (l *Lister) ignored(name string) bool {
	for _, g := range l.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// ReadEntries reads the direct children of dir, sorted with Less. It is the
// uncached primitive behind Lister.
func ReadEntries(dir string) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, newDirectoryError(dir, err)
	}
	if !info.IsDir() {
		return nil, &DirectoryError{Path: dir, Reason: ErrNotDirectory}
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newDirectoryError(dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		rawName := de.Name()
		fullPath := filepath.Join(dir, rawName)
		if isProtectedEntry(fullPath, rawName) {
			continue
		}

		info, err := de.Info()
		if err != nil {
			continue
		}

		isDir := de.IsDir()
		isSymlink := info.Mode()&os.ModeSymlink != 0
		if isSymlink {
			if target, err := os.Stat(fullPath); err == nil {
				isDir = target.IsDir()
			}
		}

		entries = append(entries, Entry{
			Name:      norm.NFC.String(rawName),
			RawName:   rawName,
			IsDir:     isDir,
			IsSymlink: isSymlink,
			Size:      info.Size(),
			Mode:      info.Mode(),
		})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		default:
			return 0
		}
	})
	return entries, nil
}
