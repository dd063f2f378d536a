//go:build windows

package shellsetup

import (
	"os"

	"golang.org/x/sys/windows"
)

// DetectParentShellName returns the image name of the parent process, which
// is the shell when twinpane is started from a console.
func DetectParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}

	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(ppid))
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(handle)

	buffer := make([]uint16, windows.MAX_PATH)
	for {
		size := uint32(len(buffer))
		err = windows.QueryFullProcessImageName(handle, 0, &buffer[0], &size)
		if err == nil {
			return normalizeShellName(windows.UTF16ToString(buffer[:size]))
		}
		if err != windows.ERROR_INSUFFICIENT_BUFFER || len(buffer) >= 1<<15 {
			return ""
		}
		buffer = make([]uint16, len(buffer)*2)
	}
}
