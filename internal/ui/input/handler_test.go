package input

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twinpane/internal/state"
)

func newHandler(mode statepkg.Mode) (*InputHandler, chan statepkg.Action, *statepkg.Session) {
	actionChan := make(chan statepkg.Action, 8)
	handler := NewInputHandler(func(a statepkg.Action) { actionChan <- a })
	session := &statepkg.Session{Mode: mode}
	handler.SetSession(session)
	return handler, actionChan, session
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func drain(actionChan chan statepkg.Action) []statepkg.Action {
	var out []statepkg.Action
	for {
		select {
		case action := <-actionChan:
			out = append(out, action)
		default:
			return out
		}
	}
}

func expectSingle(t *testing.T, actionChan chan statepkg.Action, want statepkg.Action) {
	t.Helper()
	got := drain(actionChan)
	if len(got) != 1 {
		t.Fatalf("expected exactly one action %T, got %v", want, got)
	}
	if !reflect.DeepEqual(got[0], want) {
		t.Fatalf("expected %#v, got %#v", want, got[0])
	}
}

func TestBrowsingKeyBindings(t *testing.T) {
	tests := []struct {
		name  string
		event *tcell.EventKey
		want  statepkg.Action
	}{
		{"k", runeKey('k'), statepkg.MoveUpAction{}},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), statepkg.MoveUpAction{}},
		{"j", runeKey('j'), statepkg.MoveDownAction{}},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), statepkg.MoveDownAction{}},
		{"l", runeKey('l'), statepkg.EnterAction{}},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), statepkg.EnterAction{}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), statepkg.EnterAction{}},
		{"h", runeKey('h'), statepkg.LeaveAction{}},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), statepkg.LeaveAction{}},
		{"G", runeKey('G'), statepkg.JumpBottomAction{}},
		{"space", runeKey(' '), statepkg.ToggleMarkAction{}},
		{"D", runeKey('D'), statepkg.BatchDeleteAction{}},
		{"d", runeKey('d'), statepkg.DeleteAction{}},
		{"r", runeKey('r'), statepkg.RenameAction{}},
		{"n", runeKey('n'), statepkg.NewFileAction{}},
		{"N", runeKey('N'), statepkg.NewDirectoryAction{}},
		{"slash", runeKey('/'), statepkg.StartFilterAction{}},
		{"y", runeKey('y'), statepkg.YankPathAction{}},
		{"R", runeKey('R'), statepkg.RefreshAction{}},
		{"ctrl-l", tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), statepkg.RefreshAction{}},
		{"question mark", runeKey('?'), statepkg.HelpToggleAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, actionChan, _ := newHandler(statepkg.ModeBrowsing)
			if !handler.ProcessEvent(tt.event) {
				t.Fatalf("handler reported quit")
			}
			expectSingle(t, actionChan, tt.want)
		})
	}
}

func TestDoubleGJumpsToTop(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeBrowsing)

	handler.ProcessEvent(runeKey('g'))
	if got := drain(actionChan); len(got) != 0 {
		t.Fatalf("single g should wait for a second key, got %v", got)
	}
	handler.ProcessEvent(runeKey('g'))
	expectSingle(t, actionChan, statepkg.JumpTopAction{})
}

func TestInterruptedGDoesNotJump(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeBrowsing)

	handler.ProcessEvent(runeKey('g'))
	handler.ProcessEvent(runeKey('j'))
	handler.ProcessEvent(runeKey('g'))

	got := drain(actionChan)
	if len(got) != 1 {
		t.Fatalf("expected only the j action, got %v", got)
	}
	if _, ok := got[0].(statepkg.MoveDownAction); !ok {
		t.Fatalf("expected MoveDownAction, got %T", got[0])
	}
}

func TestQuitKeys(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeBrowsing)
	if handler.ProcessEvent(runeKey('q')) {
		t.Fatalf("q should quit")
	}
	expectSingle(t, actionChan, statepkg.QuitAction{})

	for _, mode := range []statepkg.Mode{statepkg.ModeBrowsing, statepkg.ModeFilter, statepkg.ModePrompt, statepkg.ModeConfirm} {
		handler, actionChan, _ := newHandler(mode)
		if handler.ProcessEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
			t.Fatalf("ctrl-c should quit in %v", mode)
		}
		expectSingle(t, actionChan, statepkg.QuitAction{})
	}
}

func TestFilterModeTypesLetters(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeFilter)

	handler.ProcessEvent(runeKey('q'))
	expectSingle(t, actionChan, statepkg.CharAction{Char: 'q'})

	handler.ProcessEvent(runeKey('j'))
	expectSingle(t, actionChan, statepkg.CharAction{Char: 'j'})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.MoveDownAction{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.BackspaceAction{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.CancelAction{})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.SubmitAction{})
}

func TestConfirmModeForwardsAnswer(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeConfirm)

	handler.ProcessEvent(runeKey('y'))
	expectSingle(t, actionChan, statepkg.CharAction{Char: 'y'})

	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	expectSingle(t, actionChan, statepkg.CancelAction{})
}

func TestEditingModeIgnoresKeys(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeEditingExternally)

	handler.ProcessEvent(runeKey('j'))
	handler.ProcessEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if got := drain(actionChan); len(got) != 0 {
		t.Fatalf("expected no actions while editing, got %v", got)
	}
}

func TestHelpOverlaySwallowsKeys(t *testing.T) {
	handler, actionChan, session := newHandler(statepkg.ModeBrowsing)
	session.HelpVisible = true

	handler.ProcessEvent(runeKey('j'))
	if got := drain(actionChan); len(got) != 0 {
		t.Fatalf("expected keys to be swallowed, got %v", got)
	}

	if !handler.ProcessEvent(runeKey('q')) {
		t.Fatalf("q should close help, not quit")
	}
	expectSingle(t, actionChan, statepkg.HelpToggleAction{})
}

func TestResizeEvent(t *testing.T) {
	handler, actionChan, _ := newHandler(statepkg.ModeBrowsing)
	handler.ProcessEvent(tcell.NewEventResize(100, 40))
	expectSingle(t, actionChan, statepkg.ResizeAction{Width: 100, Height: 40})
}
