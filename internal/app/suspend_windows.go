//go:build windows

package app

import "os"

// Windows has no job control, so Ctrl-Z does nothing.

func resumeSignals() []os.Signal {
	return nil
}

func (app *Application) suspendToShell() {
}

func (app *Application) resumeAfterStop() bool {
	return false
}
