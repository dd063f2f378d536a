package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// ChromeRows is the number of screen rows not available to the listing:
// the header, the status/prompt line and the key hint line.
const ChromeRows = 3

// ListRowsForHeight returns the listing viewport for a terminal of the given
// height.
func ListRowsForHeight(height int) int {
	return max(1, height-ChromeRows)
}

// Mode is the top-level state of the session state machine.
type Mode int

const (
	ModeBrowsing Mode = iota
	ModeFilter
	ModePrompt
	ModeConfirm
	ModeEditingExternally
)

func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeFilter:
		return "filter"
	case ModePrompt:
		return "prompt"
	case ModeConfirm:
		return "confirm"
	case ModeEditingExternally:
		return "editing"
	default:
		return "unknown"
	}
}

// PromptKind selects what a submitted prompt does.
type PromptKind int

const (
	PromptRename PromptKind = iota
	PromptNewFile
	PromptNewDirectory
)

// PromptState is a single-line text prompt.
type PromptState struct {
	Kind   PromptKind
	Target string // absolute path being renamed
	Input  string
}

// ConfirmState walks a queue of deletions, one y/n answer per item.
type ConfirmState struct {
	Batch   bool
	Queue   []string
	Index   int
	Deleted int
	Failed  int
	LastErr error
}

// Current returns the path awaiting an answer.
func (c *ConfirmState) Current() string {
	if c.Index < 0 || c.Index >= len(c.Queue) {
		return ""
	}
	return c.Queue[c.Index]
}

// Session is the complete in-memory state of one running browser. It is owned
// by the application loop and only mutated through Reducer.Reduce.
type Session struct {
	Mode        Mode
	Nav         NavigationState
	Listing     []FileEntry
	FilterQuery string
	Filter      FilterSession
	Marks       MarkSet
	Prompt      PromptState
	Confirm     ConfirmState
	EditingPath string
	HelpVisible bool

	Status      string
	StatusError bool

	ScreenWidth  int
	ScreenHeight int
}

// NewSession returns a browsing session rooted at path. The listing is
// empty until Reducer.Load runs.
func NewSession(path string, viewportHeight int) *Session {
	return &Session{
		Nav: NavigationState{
			CurrentPath:    filepath.Clean(path),
			ViewportHeight: viewportHeight,
		},
	}
}

// Selected returns the entry under the cursor, or nil for an empty listing.
func (s *Session) Selected() *FileEntry {
	idx := s.Nav.SelectedIndex
	if idx < 0 || idx >= len(s.Listing) {
		return nil
	}
	return &s.Listing[idx]
}

// SelectedPath returns the absolute path of the selected entry, or "".
func (s *Session) SelectedPath() string {
	entry := s.Selected()
	if entry == nil {
		return ""
	}
	return entry.Path(s.Nav.CurrentPath)
}

// ActiveQuery is the query the current listing was produced with.
func (s *Session) ActiveQuery() string {
	if s.Mode == ModeFilter {
		return s.Filter.Query
	}
	return s.FilterQuery
}

// SetStatus replaces the status line text.
func (s *Session) SetStatus(text string) {
	s.Status = text
	s.StatusError = false
}

// SetError shows text as an error on the status line.
func (s *Session) SetError(text string) {
	s.Status = text
	s.StatusError = true
}

func (s *Session) clearStatus() {
	s.Status = ""
	s.StatusError = false
}
