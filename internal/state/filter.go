package state

import (
	"slices"
	"unicode"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// FilterSession is the in-progress filter query while the user is typing it.
// It remembers what was on screen before editing began so a cancel can put it
// back exactly.
type FilterSession struct {
	Active bool
	Query  string
	saved  filterSnapshot
}

type filterSnapshot struct {
	query    string
	listing  []FileEntry
	selected int
	scroll   int
}

// Begin starts editing with an empty query.
func (f *FilterSession) Begin(prevQuery string, listing []fsutil.Entry, nav NavigationState) {
	f.Active = true
	f.Query = ""
	f.saved = filterSnapshot{
		query:    prevQuery,
		listing:  slices.Clone(listing),
		selected: nav.SelectedIndex,
		scroll:   nav.ScrollOffset,
	}
}

// Append adds r to the query. Non-printable runes are ignored.
func (f *FilterSession) Append(r rune) bool {
	if !unicode.IsPrint(r) {
		return false
	}
	f.Query += string(r)
	return true
}

// Backspace drops the last rune of the query. It reports whether anything
// was removed.
func (f *FilterSession) Backspace() bool {
	if f.Query == "" {
		return false
	}
	runes := []rune(f.Query)
	f.Query = string(runes[:len(runes)-1])
	return true
}

// End leaves editing mode.
func (f *FilterSession) End() {
	*f = FilterSession{}
}
