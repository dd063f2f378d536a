//go:build windows

package app

import "golang.org/x/sys/windows"

// flushPendingInput drops keystrokes the editor left in the console buffer so
// they are not replayed as commands.
func flushPendingInput() {
	handle, err := windows.GetStdHandle(windows.STD_INPUT_HANDLE)
	if err != nil {
		return
	}
	_ = windows.FlushConsoleInputBuffer(handle)
}
