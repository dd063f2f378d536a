package state

import (
	"path/filepath"
	"slices"
	"strings"
)

// MarkSet holds entries queued for batch deletion, keyed by absolute path so
// a mark never leaks onto a same-named entry in another directory. The zero
// value is ready to use.
type MarkSet struct {
	paths map[string]struct{}
}

// Toggle marks path when unmarked and unmarks it otherwise. It reports
// whether path is marked afterwards.
func (m *MarkSet) Toggle(path string) bool {
	path = filepath.Clean(path)
	if _, ok := m.paths[path]; ok {
		delete(m.paths, path)
		return false
	}
	if m.paths == nil {
		m.paths = make(map[string]struct{})
	}
	m.paths[path] = struct{}{}
	return true
}

func (m *MarkSet) Contains(path string) bool {
	_, ok := m.paths[filepath.Clean(path)]
	return ok
}

func (m *MarkSet) Len() int {
	return len(m.paths)
}

// Clear drops every mark.
func (m *MarkSet) Clear() {
	m.paths = nil
}

// Remove unmarks path and anything below it.
func (m *MarkSet) Remove(path string) {
	path = filepath.Clean(path)
	prefix := path + string(filepath.Separator)
	for p := range m.paths {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(m.paths, p)
		}
	}
}

// Rename moves marks under oldPath to newPath.
func (m *MarkSet) Rename(oldPath, newPath string) {
	oldPath, newPath = filepath.Clean(oldPath), filepath.Clean(newPath)
	prefix := oldPath + string(filepath.Separator)
	moved := make(map[string]string)
	for p := range m.paths {
		switch {
		case p == oldPath:
			moved[p] = newPath
		case strings.HasPrefix(p, prefix):
			moved[p] = filepath.Join(newPath, p[len(prefix):])
		}
	}
	for from, to := range moved {
		delete(m.paths, from)
		m.paths[to] = struct{}{}
	}
}

// Paths returns the marked paths in lexical order.
func (m *MarkSet) Paths() []string {
	out := make([]string, 0, len(m.paths))
	for p := range m.paths {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}
