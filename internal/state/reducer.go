package state

import (
	"errors"
	"fmt"
	"path/filepath"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
	"github.com/kk-code-lab/twinpane/internal/logging"
	"github.com/sirupsen/logrus"
)

// Lister is the directory-read primitive the reducer relies on.
type Lister interface {
	List(dir, query string) ([]FileEntry, error)
	Invalidate(dir string)
}

// FileOps performs filesystem mutations.
type FileOps interface {
	CreateFile(dir, name string) error
	CreateDirectory(dir, name string) error
	Rename(oldPath, newName string) error
	Delete(path string) error
}

// EffectKind names work the application loop must do outside the reducer.
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectOpenEditor hands the terminal to the external editor for Path.
	// The loop must dispatch EditorExitedAction once the editor exits.
	EffectOpenEditor
	// EffectYank copies Path to the clipboard.
	EffectYank
	EffectQuit
)

// Effect is returned by Reduce alongside the session.
type Effect struct {
	Kind EffectKind
	Path string
}

// Reducer applies actions to a Session.
type Reducer struct {
	lister Lister
	ops    FileOps
	log    logrus.FieldLogger
}

// NewReducer creates a reducer. A nil logger discards output.
func NewReducer(lister Lister, ops FileOps, logger logrus.FieldLogger) *Reducer {
	return &Reducer{lister: lister, ops: ops, log: logging.OrDiscard(logger)}
}

// Load reads the session's current directory. Failing to read the starting
// directory is the one error the caller is expected to treat as fatal.
func (r *Reducer) Load(s *Session) error {
	entries, err := r.lister.List(s.Nav.CurrentPath, s.FilterQuery)
	if err != nil {
		return err
	}
	s.Listing = entries
	s.Nav.Clamp(len(s.Listing))
	return nil
}

// Reduce applies one action and restores the navigation invariants. Errors
// are recovered here and reported through the session's status line.
func (r *Reducer) Reduce(s *Session, action Action) (*Session, Effect) {
	var effect Effect

	switch a := action.(type) {
	case nil:
		return s, effect
	case QuitAction:
		return s, Effect{Kind: EffectQuit}
	case ResizeAction:
		s.ScreenWidth, s.ScreenHeight = a.Width, a.Height
		s.Nav.ViewportHeight = ListRowsForHeight(a.Height)
	case YankedAction:
		if a.Err != nil {
			r.log.WithError(a.Err).Warn("clipboard copy failed")
			s.SetError("Error: clipboard unavailable")
		} else {
			s.SetStatus("Copied " + a.Path)
		}
	case RefreshAction:
		if a.Dir == "" || filepath.Clean(a.Dir) == s.Nav.CurrentPath {
			r.refresh(s)
		}
	default:
		switch s.Mode {
		case ModeFilter:
			r.reduceFilter(s, action)
		case ModePrompt:
			r.reducePrompt(s, action)
		case ModeConfirm:
			r.reduceConfirm(s, action)
		case ModeEditingExternally:
			r.reduceEditing(s, action)
		default:
			effect = r.reduceBrowsing(s, action)
		}
	}

	s.Nav.Clamp(len(s.Listing))
	return s, effect
}

func (r *Reducer) reduceBrowsing(s *Session, action Action) Effect {
	s.clearStatus()

	switch action.(type) {
	case MoveUpAction:
		s.Nav.MoveUp()
	case MoveDownAction:
		s.Nav.MoveDown(len(s.Listing))
	case JumpTopAction:
		s.Nav.JumpTop()
	case JumpBottomAction:
		s.Nav.JumpBottom(len(s.Listing))

	case EnterAction:
		entry := s.Selected()
		if entry == nil {
			return Effect{}
		}
		path := entry.Path(s.Nav.CurrentPath)
		if !entry.IsDir {
			s.Mode = ModeEditingExternally
			s.EditingPath = path
			r.log.WithField("path", path).Debug("editor handoff")
			return Effect{Kind: EffectOpenEditor, Path: path}
		}
		r.changeDirectory(s, path)

	case LeaveAction:
		parent := filepath.Dir(s.Nav.CurrentPath)
		if parent == s.Nav.CurrentPath {
			return Effect{}
		}
		r.changeDirectory(s, parent)

	case ToggleMarkAction:
		if path := s.SelectedPath(); path != "" {
			s.Marks.Toggle(path)
		}

	case DeleteAction:
		if path := s.SelectedPath(); path != "" {
			s.Mode = ModeConfirm
			s.Confirm = ConfirmState{Queue: []string{path}}
		}

	case BatchDeleteAction:
		if s.Marks.Len() == 0 {
			s.SetStatus("No marked entries")
			return Effect{}
		}
		s.Mode = ModeConfirm
		s.Confirm = ConfirmState{Batch: true, Queue: s.Marks.Paths()}

	case RenameAction:
		if path := s.SelectedPath(); path != "" {
			s.Mode = ModePrompt
			s.Prompt = PromptState{Kind: PromptRename, Target: path}
		}
	case NewFileAction:
		s.Mode = ModePrompt
		s.Prompt = PromptState{Kind: PromptNewFile}
	case NewDirectoryAction:
		s.Mode = ModePrompt
		s.Prompt = PromptState{Kind: PromptNewDirectory}

	case StartFilterAction:
		s.Mode = ModeFilter
		s.Filter.Begin(s.FilterQuery, s.Listing, s.Nav)
		r.liveFilter(s)

	case HelpToggleAction:
		s.HelpVisible = !s.HelpVisible

	case YankPathAction:
		if path := s.SelectedPath(); path != "" {
			return Effect{Kind: EffectYank, Path: path}
		}
	}
	return Effect{}
}

// changeDirectory lists path with an empty filter and moves there. On failure
// the session stays where it was.
func (r *Reducer) changeDirectory(s *Session, path string) {
	r.lister.Invalidate(path)
	entries, err := r.lister.List(path, "")
	if err != nil {
		r.log.WithField("path", path).WithError(err).Warn("cannot change directory")
		s.SetError(errorMessage(err))
		return
	}
	s.Nav.CurrentPath = filepath.Clean(path)
	s.Listing = entries
	s.FilterQuery = ""
	s.Nav.Reset()
}

// relist re-reads the current directory with the active query.
func (r *Reducer) relist(s *Session) error {
	entries, err := r.lister.List(s.Nav.CurrentPath, s.ActiveQuery())
	if err != nil {
		return err
	}
	s.Listing = entries
	return nil
}

// refresh drops cached listings of the current directory and relists, keeping
// the cursor on the same entry when it survives. When the directory itself is
// gone the session climbs to the nearest readable ancestor. It reports false
// when it had to leave an error in the status line.
func (r *Reducer) refresh(s *Session) bool {
	selected := ""
	if entry := s.Selected(); entry != nil {
		selected = entry.Name
	}

	r.lister.Invalidate(s.Nav.CurrentPath)
	err := r.relist(s)
	if err == nil {
		if idx := indexOfName(s.Listing, selected); idx >= 0 {
			s.Nav.SelectedIndex = idx
		}
		return true
	}

	if !errors.Is(err, fsutil.ErrNotFound) || s.Mode != ModeBrowsing {
		s.SetError(errorMessage(err))
		return false
	}

	dir := s.Nav.CurrentPath
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			s.SetError(errorMessage(err))
			return false
		}
		dir = parent
		if entries, listErr := r.lister.List(dir, ""); listErr == nil {
			r.log.WithFields(logrus.Fields{"path": s.Nav.CurrentPath, "now": dir}).Info("current directory vanished")
			s.Nav.CurrentPath = dir
			s.Listing = entries
			s.FilterQuery = ""
			s.Nav.Reset()
			s.SetError("Directory removed, moved to " + dir)
			return true
		}
	}
}

func indexOfName(entries []FileEntry, name string) int {
	if name == "" {
		return -1
	}
	for i, e := range entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

func (r *Reducer) reduceFilter(s *Session, action Action) {
	switch a := action.(type) {
	case CharAction:
		if !s.Filter.Append(a.Char) {
			return
		}
		r.liveFilter(s)
	case BackspaceAction:
		if !s.Filter.Backspace() {
			return
		}
		r.liveFilter(s)
	case MoveUpAction:
		s.Nav.MoveUp()
	case MoveDownAction:
		s.Nav.MoveDown(len(s.Listing))

	case CancelAction:
		saved := s.Filter.saved
		s.Listing = saved.listing
		s.FilterQuery = saved.query
		s.Nav.SelectedIndex = saved.selected
		s.Nav.ScrollOffset = saved.scroll
		s.Filter.End()
		s.Mode = ModeBrowsing
		s.clearStatus()

	case SubmitAction:
		query := s.Filter.Query
		entries, err := r.lister.List(s.Nav.CurrentPath, query)
		if err != nil {
			s.SetError(errorMessage(err))
			return
		}
		s.Listing = entries
		s.FilterQuery = query
		s.Nav.Reset()
		s.Filter.End()
		s.Mode = ModeBrowsing
		s.clearStatus()
	}
}

func (r *Reducer) liveFilter(s *Session) {
	if err := r.relist(s); err != nil {
		s.SetError(errorMessage(err))
		return
	}
	s.clearStatus()
}

func (r *Reducer) reducePrompt(s *Session, action Action) {
	p := &s.Prompt
	switch a := action.(type) {
	case CharAction:
		if a.Char >= ' ' && a.Char != 0x7f {
			p.Input += string(a.Char)
		}
	case BackspaceAction:
		if runes := []rune(p.Input); len(runes) > 0 {
			p.Input = string(runes[:len(runes)-1])
		}
	case CancelAction:
		s.Mode = ModeBrowsing
		s.SetStatus("Cancelled.")
	case SubmitAction:
		s.Mode = ModeBrowsing
		r.submitPrompt(s, *p)
		s.Prompt = PromptState{}
	}
}

func (r *Reducer) submitPrompt(s *Session, p PromptState) {
	dir := s.Nav.CurrentPath
	switch p.Kind {
	case PromptNewFile, PromptNewDirectory:
		var err error
		what := "File"
		if p.Kind == PromptNewDirectory {
			what = "Directory"
			err = r.ops.CreateDirectory(dir, p.Input)
		} else {
			err = r.ops.CreateFile(dir, p.Input)
		}
		if err != nil {
			s.SetError(errorMessage(err))
			return
		}
		if err := r.relist(s); err != nil {
			s.SetError(errorMessage(err))
			return
		}
		s.SetStatus(what + " created!")

	case PromptRename:
		if err := r.ops.Rename(p.Target, p.Input); err != nil {
			s.SetError(errorMessage(err))
			return
		}
		s.Marks.Rename(p.Target, filepath.Join(filepath.Dir(p.Target), p.Input))
		if err := r.relist(s); err != nil {
			s.SetError(errorMessage(err))
			return
		}
		s.Nav.Reset()
		s.SetStatus("Renamed successfully!")
	}
}

func (r *Reducer) reduceConfirm(s *Session, action Action) {
	c := &s.Confirm
	yes := false
	switch a := action.(type) {
	case CharAction:
		yes = a.Char == 'y' || a.Char == 'Y'
	case SubmitAction, CancelAction:
	default:
		return
	}

	path := c.Current()
	if yes {
		if err := r.ops.Delete(path); err != nil {
			c.Failed++
			c.LastErr = err
			s.SetError(errorMessage(err))
		} else {
			c.Deleted++
			s.Marks.Remove(path)
		}
	}
	c.Index++
	if c.Index < len(c.Queue) {
		return
	}

	s.Mode = ModeBrowsing
	if c.Batch {
		s.Marks.Clear()
	}
	summary, failed := confirmSummary(c)
	s.Confirm = ConfirmState{}

	// A deleted entry may have been the current directory or an ancestor.
	before := s.Nav.CurrentPath
	if !r.refresh(s) {
		return
	}
	if s.Nav.CurrentPath != before {
		summary += ", moved to " + s.Nav.CurrentPath
	}
	s.Status, s.StatusError = summary, failed
}

func confirmSummary(c *ConfirmState) (string, bool) {
	if !c.Batch {
		switch {
		case c.Failed > 0:
			return errorMessage(c.LastErr), true
		case c.Deleted > 0:
			return "Deleted successfully!", false
		default:
			return "Cancelled.", false
		}
	}
	skipped := len(c.Queue) - c.Deleted - c.Failed
	if c.Failed > 0 {
		return fmt.Sprintf("Deleted %d, %d failed, %d skipped: %s", c.Deleted, c.Failed, skipped, errorMessage(c.LastErr)), true
	}
	return fmt.Sprintf("Deleted %d, %d skipped", c.Deleted, skipped), false
}

func (r *Reducer) reduceEditing(s *Session, action Action) {
	exited, ok := action.(EditorExitedAction)
	if !ok {
		return
	}
	s.Mode = ModeBrowsing
	s.EditingPath = ""
	if exited.Err != nil {
		r.log.WithError(exited.Err).Warn("editor failed")
		s.SetError("Error: cannot open editor: " + exited.Err.Error())
	} else {
		s.clearStatus()
	}
	r.refresh(s)
}

// errorMessage turns a typed error into a short status line message.
func errorMessage(err error) string {
	var dirErr *fsutil.DirectoryError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, fsutil.ErrAlreadyExists):
		return "Error: Already exists!"
	case errors.Is(err, fsutil.ErrEmptyName):
		return "Error: Name cannot be empty!"
	case errors.Is(err, fsutil.ErrInvalidName):
		return "Error: Invalid name!"
	case errors.Is(err, fsutil.ErrDelete):
		return "Error deleting " + filepath.Base(opPath(err)) + "!"
	case errors.Is(err, fsutil.ErrCreate):
		return "Error creating " + filepath.Base(opPath(err)) + "!"
	case errors.Is(err, fsutil.ErrRename):
		return "Error renaming " + filepath.Base(opPath(err)) + "!"
	case errors.As(err, &dirErr):
		return fmt.Sprintf("Error reading directory: %s: %v", dirErr.Path, dirErr.Reason)
	default:
		return "Error: " + err.Error()
	}
}

func opPath(err error) string {
	var opErr *fsutil.OpError
	if errors.As(err, &opErr) {
		return opErr.Path
	}
	return ""
}
