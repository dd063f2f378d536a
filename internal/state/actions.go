package state

// Action is the base interface for all session transitions.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type MoveUpAction struct{}
type MoveDownAction struct{}
type JumpTopAction struct{}
type JumpBottomAction struct{}
type EnterAction struct{}
type LeaveAction struct{}

// ===== MARK / FILE ACTIONS =====

type ToggleMarkAction struct{}
type BatchDeleteAction struct{}
type DeleteAction struct{}
type RenameAction struct{}
type NewFileAction struct{}
type NewDirectoryAction struct{}

// ===== MODAL INPUT ACTIONS =====
// Routed by mode: filter query editing, prompt editing, confirmation answers.

type StartFilterAction struct{}
type CharAction struct {
	Char rune
}
type BackspaceAction struct{}
type SubmitAction struct{}
type CancelAction struct{}

// ===== VIEW / SYSTEM ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

// RefreshAction relists Dir when it is still the current directory. An empty
// Dir always refreshes.
type RefreshAction struct {
	Dir string
}

type YankPathAction struct{}

// YankedAction reports the outcome of copying Path to the clipboard.
type YankedAction struct {
	Path string
	Err  error
}

// EditorExitedAction ends the external editor handoff.
type EditorExitedAction struct {
	Err error
}

type HelpToggleAction struct{}

// SuspendAction stops the process and returns the terminal to the shell. The
// application loop handles it; the reducer never sees it.
type SuspendAction struct{}

type QuitAction struct{}
