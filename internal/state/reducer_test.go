package state

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"

	fsutil "github.com/kk-code-lab/twinpane/internal/fs"
)

// ===== HELPERS =====

func writeTree(t *testing.T, root string, dirs, files []string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(root, f), []byte(f+"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
}

func newTestSession(t *testing.T, dir string, height int) (*Reducer, *Session) {
	t.Helper()
	lister, err := fsutil.NewLister(nil)
	if err != nil {
		t.Fatalf("NewLister: %v", err)
	}
	reducer := NewReducer(lister, fsutil.NewOps(lister, nil), nil)
	session := NewSession(dir, height)
	if err := reducer.Load(session); err != nil {
		t.Fatalf("Load(%s): %v", dir, err)
	}
	return reducer, session
}

func dispatch(r *Reducer, s *Session, actions ...Action) Effect {
	var effect Effect
	for _, a := range actions {
		_, effect = r.Reduce(s, a)
	}
	return effect
}

func typeText(text string) []Action {
	var actions []Action
	for _, ch := range text {
		actions = append(actions, CharAction{Char: ch})
	}
	return actions
}

func listingNames(s *Session) []string {
	out := make([]string, 0, len(s.Listing))
	for _, e := range s.Listing {
		out = append(out, e.Name)
	}
	return out
}

// ===== NAVIGATION =====

func TestReduceMoveDownFiveEntriesViewportThree(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"1", "2", "3", "4", "5"})
	r, s := newTestSession(t, dir, 3)

	dispatch(r, s, MoveDownAction{}, MoveDownAction{}, MoveDownAction{}, MoveDownAction{})

	if s.Nav.SelectedIndex != 4 || s.Nav.ScrollOffset != 2 {
		t.Fatalf("expected sel=4 scroll=2, got sel=%d scroll=%d", s.Nav.SelectedIndex, s.Nav.ScrollOffset)
	}
}

func TestReduceListingOrder(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"docs", ".git"}, []string{"main.go", ".env"})
	_, s := newTestSession(t, dir, 10)

	want := []string{".git", "docs", ".env", "main.go"}
	if got := listingNames(s); !reflect.DeepEqual(got, want) {
		t.Fatalf("listing = %v, want %v", got, want)
	}
}

func TestReduceJumpBottomSelectsLastEntry(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a", "b", "c", "d", "e", "f"})
	r, s := newTestSession(t, dir, 4)

	dispatch(r, s, JumpBottomAction{})
	if s.Nav.SelectedIndex != 5 || s.Nav.ScrollOffset != 2 {
		t.Fatalf("expected sel=5 scroll=2, got sel=%d scroll=%d", s.Nav.SelectedIndex, s.Nav.ScrollOffset)
	}

	dispatch(r, s, JumpTopAction{})
	if s.Nav.SelectedIndex != 0 || s.Nav.ScrollOffset != 0 {
		t.Fatalf("expected top, got sel=%d scroll=%d", s.Nav.SelectedIndex, s.Nav.ScrollOffset)
	}
}

func TestReduceEnterAndLeaveDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"docs"}, []string{"docs/guide.md", "docs/api.md", "readme"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, EnterAction{})
	if s.Nav.CurrentPath != filepath.Join(dir, "docs") {
		t.Fatalf("expected to enter docs, at %s", s.Nav.CurrentPath)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, []string{"api.md", "guide.md"}) {
		t.Fatalf("docs listing = %v", got)
	}

	dispatch(r, s, MoveDownAction{}, LeaveAction{})
	if s.Nav.CurrentPath != dir {
		t.Fatalf("expected to leave to %s, at %s", dir, s.Nav.CurrentPath)
	}
	if s.Nav.SelectedIndex != 0 || s.Nav.ScrollOffset != 0 {
		t.Errorf("leave should reset selection, got sel=%d scroll=%d", s.Nav.SelectedIndex, s.Nav.ScrollOffset)
	}
}

func TestReduceLeaveAtRootIsNoop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("root layout differs on windows")
	}
	r, s := newTestSession(t, "/", 10)
	before := listingNames(s)

	dispatch(r, s, LeaveAction{})
	if s.Nav.CurrentPath != "/" {
		t.Fatalf("expected to stay at /, at %s", s.Nav.CurrentPath)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, before) {
		t.Errorf("listing changed at root")
	}
}

func TestReduceEnterVanishedDirectoryKeepsState(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"gone"}, []string{"keep.txt"})
	r, s := newTestSession(t, dir, 10)
	before := listingNames(s)

	if err := os.Remove(filepath.Join(dir, "gone")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	dispatch(r, s, EnterAction{})

	if s.Nav.CurrentPath != dir {
		t.Fatalf("path changed to %s", s.Nav.CurrentPath)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, before) {
		t.Errorf("listing changed: %v", got)
	}
	if !s.StatusError || !strings.Contains(s.Status, "gone") {
		t.Errorf("expected directory error status, got %q", s.Status)
	}
}

func TestReduceResizeKeepsInvariants(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"})
	r, s := newTestSession(t, dir, 20)

	dispatch(r, s, JumpBottomAction{}, ResizeAction{Width: 80, Height: 6})
	if s.Nav.ViewportHeight != 3 {
		t.Fatalf("expected viewport 3, got %d", s.Nav.ViewportHeight)
	}
	checkNavInvariants(t, s.Nav, len(s.Listing))
	if s.Nav.SelectedIndex != 9 || s.Nav.ScrollOffset != 7 {
		t.Errorf("expected sel=9 scroll=7, got sel=%d scroll=%d", s.Nav.SelectedIndex, s.Nav.ScrollOffset)
	}
}

// ===== FILTER =====

func TestReduceFilterCancelRestoresExactView(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"alpha", "beta", "gamma", "delta"})
	r, s := newTestSession(t, dir, 2)
	dispatch(r, s, MoveDownAction{}, MoveDownAction{}, MoveDownAction{})

	before := append([]FileEntry(nil), s.Listing...)
	beforeNav := s.Nav

	dispatch(r, s, StartFilterAction{})
	if s.Mode != ModeFilter {
		t.Fatalf("expected filter mode, got %v", s.Mode)
	}
	dispatch(r, s, typeText("lph")...)
	if got := listingNames(s); !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Fatalf("live listing = %v", got)
	}

	dispatch(r, s, CancelAction{})
	if s.Mode != ModeBrowsing || s.FilterQuery != "" {
		t.Fatalf("expected browsing without filter, got mode=%v query=%q", s.Mode, s.FilterQuery)
	}
	if !reflect.DeepEqual(s.Listing, before) {
		t.Errorf("listing not restored: %v", listingNames(s))
	}
	if s.Nav != beforeNav {
		t.Errorf("nav not restored: %+v vs %+v", s.Nav, beforeNav)
	}
}

func TestReduceFilterSubmitKeepsQuery(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"alpha", "beta", "gamma", "Beta2"})
	r, s := newTestSession(t, dir, 10)
	dispatch(r, s, JumpBottomAction{}, StartFilterAction{})
	dispatch(r, s, typeText("etx")...)
	if len(s.Listing) != 0 {
		t.Fatalf("expected no matches for etx, got %v", listingNames(s))
	}

	dispatch(r, s, BackspaceAction{}, SubmitAction{})
	if s.FilterQuery != "et" {
		t.Fatalf("expected query et, got %q", s.FilterQuery)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, []string{"Beta2", "beta"}) {
		t.Fatalf("filtered listing = %v", got)
	}
	if s.Nav.SelectedIndex != 0 || s.Nav.ScrollOffset != 0 {
		t.Errorf("submit should reset selection")
	}

	// A cancelled second edit leaves the committed filter in place.
	dispatch(r, s, StartFilterAction{})
	dispatch(r, s, typeText("zzz")...)
	dispatch(r, s, CancelAction{})
	if s.FilterQuery != "et" || len(s.Listing) != 2 {
		t.Errorf("expected committed filter to survive, got query=%q listing=%v", s.FilterQuery, listingNames(s))
	}
}

func TestReduceFilterIsClearedOnDirectoryChange(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"src"}, []string{"src/a.go", "src/b.go"})
	r, s := newTestSession(t, dir, 10)
	dispatch(r, s, StartFilterAction{})
	dispatch(r, s, typeText("sr")...)
	dispatch(r, s, SubmitAction{}, EnterAction{})

	if s.FilterQuery != "" {
		t.Errorf("filter should reset on enter, got %q", s.FilterQuery)
	}
	if len(s.Listing) != 2 {
		t.Errorf("expected unfiltered listing, got %v", listingNames(s))
	}
}

// ===== MARKS AND FILE OPERATIONS =====

func TestReduceToggleMarkTwiceLeavesNoMark(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a", "b"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, ToggleMarkAction{}, ToggleMarkAction{})
	if s.Marks.Len() != 0 {
		t.Fatalf("expected no marks, got %v", s.Marks.Paths())
	}

	dispatch(r, s, ToggleMarkAction{}, MoveDownAction{}, ToggleMarkAction{})
	if s.Marks.Len() != 2 {
		t.Fatalf("expected two marks, got %v", s.Marks.Paths())
	}
}

func TestReduceRenameOntoExistingFails(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a.txt", "b.txt"})
	r, s := newTestSession(t, dir, 10)
	before := listingNames(s)

	dispatch(r, s, RenameAction{})
	dispatch(r, s, typeText("b.txt")...)
	dispatch(r, s, SubmitAction{})

	if s.Mode != ModeBrowsing {
		t.Fatalf("expected browsing, got %v", s.Mode)
	}
	if !s.StatusError || s.Status != "Error: Already exists!" {
		t.Errorf("unexpected status %q (error=%v)", s.Status, s.StatusError)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, before) {
		t.Errorf("listing changed: %v", got)
	}
	data, err := os.ReadFile(filepath.Join(dir, "b.txt"))
	if err != nil || string(data) != "b.txt\n" {
		t.Errorf("b.txt was modified: %q %v", data, err)
	}
}

func TestReduceRenameRekeysMark(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a.txt", "b.txt"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, ToggleMarkAction{}, RenameAction{})
	dispatch(r, s, typeText("c.txt")...)
	dispatch(r, s, SubmitAction{})

	if s.Status != "Renamed successfully!" {
		t.Fatalf("unexpected status %q", s.Status)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, []string{"b.txt", "c.txt"}) {
		t.Fatalf("listing = %v", got)
	}
	if !s.Marks.Contains(filepath.Join(dir, "c.txt")) || s.Marks.Len() != 1 {
		t.Errorf("mark not re-keyed: %v", s.Marks.Paths())
	}
}

func TestReducePromptCancel(t *testing.T) {
	dir := t.TempDir()
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, NewDirectoryAction{})
	dispatch(r, s, typeText("build")...)
	dispatch(r, s, CancelAction{})

	if s.Mode != ModeBrowsing || s.Status != "Cancelled." {
		t.Fatalf("mode=%v status=%q", s.Mode, s.Status)
	}
	if _, err := os.Stat(filepath.Join(dir, "build")); !os.IsNotExist(err) {
		t.Errorf("directory was created")
	}
}

func TestReduceCreateRejectsEmptyName(t *testing.T) {
	dir := t.TempDir()
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, NewFileAction{}, SubmitAction{})
	if !s.StatusError || s.Status != "Error: Name cannot be empty!" {
		t.Fatalf("unexpected status %q", s.Status)
	}
}

func TestReduceCreateThenDeleteLeavesEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, NewFileAction{})
	dispatch(r, s, typeText("notes.txt")...)
	dispatch(r, s, SubmitAction{})
	if s.Status != "File created!" {
		t.Fatalf("unexpected status %q", s.Status)
	}
	if got := listingNames(s); !reflect.DeepEqual(got, []string{"notes.txt"}) {
		t.Fatalf("listing = %v", got)
	}

	dispatch(r, s, DeleteAction{})
	if s.Mode != ModeConfirm {
		t.Fatalf("expected confirm mode, got %v", s.Mode)
	}
	dispatch(r, s, CharAction{Char: 'y'})

	if s.Status != "Deleted successfully!" {
		t.Errorf("unexpected status %q", s.Status)
	}
	if len(s.Listing) != 0 {
		t.Fatalf("expected empty listing, got %v", listingNames(s))
	}
	vm := BuildView(s, Previewer{}, 10)
	if !reflect.DeepEqual(vm.Preview, []string{PreviewEmptyDirectory}) {
		t.Errorf("preview = %v", vm.Preview)
	}
}

func TestReduceDeleteDeclined(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"keep.txt"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, DeleteAction{}, CharAction{Char: 'n'})
	if s.Mode != ModeBrowsing || s.Status != "Cancelled." {
		t.Fatalf("mode=%v status=%q", s.Mode, s.Status)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.txt")); err != nil {
		t.Errorf("file removed: %v", err)
	}
}

func TestReduceBatchDeleteContinuesPastFailure(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a", "b", "c"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, ToggleMarkAction{}, JumpBottomAction{}, ToggleMarkAction{}, BatchDeleteAction{})
	if s.Mode != ModeConfirm || len(s.Confirm.Queue) != 2 {
		t.Fatalf("expected confirm over two marks, got mode=%v queue=%v", s.Mode, s.Confirm.Queue)
	}

	// c disappears behind our back, so its deletion fails.
	if err := os.Remove(filepath.Join(dir, "c")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	dispatch(r, s, CharAction{Char: 'y'})
	if s.Mode != ModeConfirm {
		t.Fatalf("expected second confirmation")
	}
	vm := BuildView(s, Previewer{}, 5)
	if vm.Prompt != "Delete 'c'? (y/n): " {
		t.Errorf("prompt = %q", vm.Prompt)
	}
	dispatch(r, s, CharAction{Char: 'Y'})

	if s.Mode != ModeBrowsing {
		t.Fatalf("expected browsing, got %v", s.Mode)
	}
	if s.Marks.Len() != 0 {
		t.Errorf("marks not cleared: %v", s.Marks.Paths())
	}
	if got := listingNames(s); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("listing = %v", got)
	}
	if !s.StatusError || !strings.HasPrefix(s.Status, "Deleted 1, 1 failed, 0 skipped") {
		t.Errorf("unexpected status %q", s.Status)
	}
}

func TestReduceBatchDeleteWithoutMarks(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, BatchDeleteAction{})
	if s.Mode != ModeBrowsing || s.Status != "No marked entries" {
		t.Fatalf("mode=%v status=%q", s.Mode, s.Status)
	}
}

func TestReduceBatchDeleteOfCurrentDirectoryClimbsOut(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"a"}, []string{"a/x.txt"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, ToggleMarkAction{}, EnterAction{})
	if s.Nav.CurrentPath != filepath.Join(dir, "a") {
		t.Fatalf("expected to be inside a, got %s", s.Nav.CurrentPath)
	}
	dispatch(r, s, BatchDeleteAction{}, CharAction{Char: 'y'})

	if _, err := os.Stat(filepath.Join(dir, "a")); !os.IsNotExist(err) {
		t.Fatalf("a still exists: %v", err)
	}
	if s.Mode != ModeBrowsing {
		t.Fatalf("expected browsing, got %v", s.Mode)
	}
	if s.Nav.CurrentPath != dir {
		t.Errorf("path = %s, want %s", s.Nav.CurrentPath, dir)
	}
	if len(s.Listing) != 0 {
		t.Errorf("listing = %v", listingNames(s))
	}
	if len(s.Confirm.Queue) != 0 || s.Confirm.Index != 0 {
		t.Errorf("confirm state not reset: %+v", s.Confirm)
	}
	if s.StatusError || !strings.HasPrefix(s.Status, "Deleted 1, 0 skipped, moved to ") {
		t.Errorf("unexpected status %q (error=%v)", s.Status, s.StatusError)
	}
}

func TestReduceActsOnDecomposedFileNames(t *testing.T) {
	dir := t.TempDir()
	decomposed := "cafe\u0301.txt"
	writeTree(t, dir, nil, []string{decomposed})
	r, s := newTestSession(t, dir, 10)

	if got := listingNames(s); !reflect.DeepEqual(got, []string{"caf\u00e9.txt"}) {
		t.Fatalf("listing = %q", got)
	}
	if got := s.SelectedPath(); got != filepath.Join(dir, decomposed) {
		t.Fatalf("selected path = %q", got)
	}

	dispatch(r, s, ToggleMarkAction{})
	vm := BuildView(s, Previewer{}, 10)
	if !vm.Rows[0].IsMarked {
		t.Errorf("marked row not flagged")
	}
	if len(vm.Preview) == 0 || vm.Preview[0] != decomposed {
		t.Errorf("preview = %q", vm.Preview)
	}

	dispatch(r, s, DeleteAction{}, CharAction{Char: 'y'})
	if s.Status != "Deleted successfully!" {
		t.Fatalf("unexpected status %q", s.Status)
	}
	if len(s.Listing) != 0 {
		t.Errorf("listing = %q", listingNames(s))
	}
}

// ===== EDITOR, REFRESH, EFFECTS =====

func TestReduceEnterFileHandsOffToEditor(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"main.go", "z.txt"})
	r, s := newTestSession(t, dir, 10)

	effect := dispatch(r, s, EnterAction{})
	want := Effect{Kind: EffectOpenEditor, Path: filepath.Join(dir, "main.go")}
	if effect != want {
		t.Fatalf("effect = %+v, want %+v", effect, want)
	}
	if s.Mode != ModeEditingExternally {
		t.Fatalf("expected editing mode, got %v", s.Mode)
	}

	dispatch(r, s, MoveDownAction{})
	if s.Nav.SelectedIndex != 0 {
		t.Errorf("input must be ignored while the editor runs")
	}

	dispatch(r, s, EditorExitedAction{})
	if s.Mode != ModeBrowsing || s.Status != "" {
		t.Errorf("mode=%v status=%q", s.Mode, s.Status)
	}
	if s.Nav.CurrentPath != dir || s.Nav.SelectedIndex != 0 {
		t.Errorf("state changed across editor handoff")
	}
}

func TestReduceEditorFailureReported(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"main.go"})
	r, s := newTestSession(t, dir, 10)

	dispatch(r, s, EnterAction{}, EditorExitedAction{Err: errors.New("exec: \"nope\": not found")})
	if s.Mode != ModeBrowsing || !s.StatusError {
		t.Fatalf("mode=%v status=%q", s.Mode, s.Status)
	}
}

func TestReduceRefreshKeepsSelectionByName(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"b", "c"})
	r, s := newTestSession(t, dir, 10)
	dispatch(r, s, MoveDownAction{})

	writeTree(t, dir, nil, []string{"a"})
	dispatch(r, s, RefreshAction{Dir: dir})

	if got := listingNames(s); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("listing = %v", got)
	}
	if s.Nav.SelectedIndex != 2 {
		t.Errorf("expected selection to follow c to index 2, got %d", s.Nav.SelectedIndex)
	}
}

func TestReduceRefreshIgnoresOtherDirectories(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a"})
	r, s := newTestSession(t, dir, 10)

	writeTree(t, dir, nil, []string{"b"})
	dispatch(r, s, RefreshAction{Dir: filepath.Join(dir, "elsewhere")})
	if len(s.Listing) != 1 {
		t.Errorf("unexpected relist: %v", listingNames(s))
	}
}

func TestReduceRefreshClimbsOutOfRemovedDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, []string{"sub/deeper"}, nil)
	r, s := newTestSession(t, filepath.Join(dir, "sub", "deeper"), 10)

	if err := os.RemoveAll(filepath.Join(dir, "sub")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	dispatch(r, s, RefreshAction{})

	if s.Nav.CurrentPath != dir {
		t.Fatalf("expected to climb to %s, at %s", dir, s.Nav.CurrentPath)
	}
	if !s.StatusError {
		t.Errorf("expected a status explaining the move")
	}
}

func TestReduceYankAndQuitEffects(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, nil, []string{"a"})
	r, s := newTestSession(t, dir, 10)

	effect := dispatch(r, s, YankPathAction{})
	if effect.Kind != EffectYank || effect.Path != filepath.Join(dir, "a") {
		t.Fatalf("effect = %+v", effect)
	}
	dispatch(r, s, YankedAction{Path: effect.Path, Err: errors.New("no xclip")})
	if !s.StatusError || s.Status != "Error: clipboard unavailable" {
		t.Errorf("status = %q", s.Status)
	}

	if effect := dispatch(r, s, QuitAction{}); effect.Kind != EffectQuit {
		t.Errorf("expected quit effect, got %+v", effect)
	}
}

func TestLoadReportsMissingStartDirectory(t *testing.T) {
	lister, err := fsutil.NewLister(nil)
	if err != nil {
		t.Fatalf("NewLister: %v", err)
	}
	r := NewReducer(lister, fsutil.NewOps(lister, nil), nil)
	err = r.Load(NewSession(filepath.Join(t.TempDir(), "missing"), 10))
	if !errors.Is(err, fsutil.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
