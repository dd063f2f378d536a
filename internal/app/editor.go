package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/gdamore/tcell/v2"
)

// EditorRunner opens a file in an external editor and blocks until it exits.
type EditorRunner interface {
	Edit(path string) error
}

var errNoEditor = errors.New("no editor configured (set $EDITOR or --editor)")

// terminalEditor hands the terminal to the editor process for the duration of
// the edit.
type terminalEditor struct {
	screen  tcell.Screen
	command []string
}

func newTerminalEditor(screen tcell.Screen, command []string) *terminalEditor {
	return &terminalEditor{screen: screen, command: command}
}

// Edit runs `<command...> <path>`. The editor's exit status is ignored; only a
// failure to start it is reported.
func (e *terminalEditor) Edit(path string) error {
	if len(e.command) == 0 {
		return errNoEditor
	}

	args := editorArgsWithFile(e.command, path)
	var tty *os.File
	if runtime.GOOS != "windows" {
		if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			tty = f
			defer func() {
				_ = tty.Close()
			}()
		}
	}

	if err := e.screen.Suspend(); err != nil {
		return fmt.Errorf("failed to suspend screen: %w", err)
	}

	cmd := exec.Command(args[0], args[1:]...)
	if tty != nil {
		cmd.Stdin = tty
		cmd.Stdout = tty
		cmd.Stderr = tty
	} else {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	runErr := cmd.Run()
	flushPendingInput()

	if err := e.screen.Resume(); err != nil {
		return fmt.Errorf("failed to resume screen: %w", err)
	}
	e.screen.Sync()

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return nil
	}
	return runErr
}

func editorArgsWithFile(command []string, filePath string) []string {
	args := make([]string, len(command)+1)
	copy(args, command)
	args[len(command)] = filePath
	return args
}
