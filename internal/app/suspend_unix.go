//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/twinpane/internal/state"
)

// resumeSignals are delivered when the shell brings a stopped twinpane back
// to the foreground.
func resumeSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}

func (app *Application) suspendToShell() {
	// Return terminal control to the shell before stopping the process.
	_ = app.screen.Suspend()
	// Stop only this process so a wrapping shell function keeps job control.
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	if w, h := app.screen.Size(); w > 0 && h > 0 {
		app.handleAction(statepkg.ResizeAction{Width: w, Height: h})
	}
	// The directory may have changed while we were stopped.
	app.handleAction(statepkg.RefreshAction{})
	return true
}
