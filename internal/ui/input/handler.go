package input

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twinpane/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	emit     func(statepkg.Action)
	session  *statepkg.Session // Reference to current session for mode checking
	pendingG bool
}

// NewInputHandler creates a new input handler. emit is called synchronously
// on the goroutine that calls ProcessEvent and must not block on it.
func NewInputHandler(emit func(statepkg.Action)) *InputHandler {
	return &InputHandler{
		emit: emit,
	}
}

// SetSession sets the session reference for mode checking
func (ih *InputHandler) SetSession(session *statepkg.Session) {
	ih.session = session
}

// ProcessEvent converts a tcell event into an Action. It returns false once
// the user asked to quit.
func (ih *InputHandler) ProcessEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.processKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		ih.emit(statepkg.ResizeAction{Width: w, Height: h})
		return true
	default:
		return true
	}
}

func (ih *InputHandler) mode() statepkg.Mode {
	if ih.session == nil {
		return statepkg.ModeBrowsing
	}
	return ih.session.Mode
}

func (ih *InputHandler) processKeyEvent(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		ih.emit(statepkg.QuitAction{})
		return false
	}

	if ih.session != nil && ih.session.HelpVisible {
		ih.pendingG = false
		switch {
		case ev.Key() == tcell.KeyEscape:
			ih.emit(statepkg.HelpToggleAction{})
		case ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'q'):
			ih.emit(statepkg.HelpToggleAction{})
		}
		return true
	}

	switch ih.mode() {
	case statepkg.ModeFilter:
		ih.processFilterKey(ev)
	case statepkg.ModePrompt, statepkg.ModeConfirm:
		ih.processTextKey(ev)
	case statepkg.ModeEditingExternally:
		// The editor owns the terminal.
	default:
		return ih.processBrowsingKey(ev)
	}
	return true
}

func (ih *InputHandler) processBrowsingKey(ev *tcell.EventKey) bool {
	pendingG := ih.pendingG
	ih.pendingG = false

	switch ev.Key() {
	case tcell.KeyUp:
		ih.emit(statepkg.MoveUpAction{})
	case tcell.KeyDown:
		ih.emit(statepkg.MoveDownAction{})
	case tcell.KeyRight, tcell.KeyEnter:
		ih.emit(statepkg.EnterAction{})
	case tcell.KeyLeft:
		ih.emit(statepkg.LeaveAction{})
	case tcell.KeyHome:
		ih.emit(statepkg.JumpTopAction{})
	case tcell.KeyEnd:
		ih.emit(statepkg.JumpBottomAction{})
	case tcell.KeyCtrlL:
		ih.emit(statepkg.RefreshAction{})
	case tcell.KeyCtrlZ:
		ih.emit(statepkg.SuspendAction{})
	case tcell.KeyRune:
		return ih.processBrowsingRune(ev.Rune(), pendingG)
	}
	return true
}

func (ih *InputHandler) processBrowsingRune(r rune, pendingG bool) bool {
	switch r {
	case 'k':
		ih.emit(statepkg.MoveUpAction{})
	case 'j':
		ih.emit(statepkg.MoveDownAction{})
	case 'l':
		ih.emit(statepkg.EnterAction{})
	case 'h':
		ih.emit(statepkg.LeaveAction{})
	case 'g':
		if pendingG {
			ih.emit(statepkg.JumpTopAction{})
		} else {
			ih.pendingG = true
		}
	case 'G':
		ih.emit(statepkg.JumpBottomAction{})
	case ' ':
		ih.emit(statepkg.ToggleMarkAction{})
	case 'D':
		ih.emit(statepkg.BatchDeleteAction{})
	case 'd':
		ih.emit(statepkg.DeleteAction{})
	case 'r':
		ih.emit(statepkg.RenameAction{})
	case 'n':
		ih.emit(statepkg.NewFileAction{})
	case 'N':
		ih.emit(statepkg.NewDirectoryAction{})
	case '/':
		ih.emit(statepkg.StartFilterAction{})
	case 'y':
		ih.emit(statepkg.YankPathAction{})
	case 'R':
		ih.emit(statepkg.RefreshAction{})
	case '?':
		ih.emit(statepkg.HelpToggleAction{})
	case 'q':
		ih.emit(statepkg.QuitAction{})
		return false
	}
	return true
}

func (ih *InputHandler) processFilterKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		ih.emit(statepkg.MoveUpAction{})
	case tcell.KeyDown:
		ih.emit(statepkg.MoveDownAction{})
	default:
		ih.processTextKey(ev)
	}
}

// processTextKey handles keys for the single-line inputs: filter query,
// prompts and y/n confirmations.
func (ih *InputHandler) processTextKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		ih.emit(statepkg.CancelAction{})
	case tcell.KeyEnter:
		ih.emit(statepkg.SubmitAction{})
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		ih.emit(statepkg.BackspaceAction{})
	case tcell.KeyRune:
		ih.emit(statepkg.CharAction{Char: ev.Rune()})
	}
}
