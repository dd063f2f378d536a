//go:build windows

package fs

import (
	"os"
	"syscall"
)

const (
	fileAttributeSystem       = 0x04
	fileAttributeReparsePoint = 0x0400
)

// isProtectedEntry hides system reparse points such as the compatibility
// junctions Windows keeps in profile directories.
func isProtectedEntry(fullPath, name string) bool {
	attrs, err := fileAttributes(fullPath, name)
	if err != nil {
		return false
	}
	const mask = fileAttributeSystem | fileAttributeReparsePoint
	return attrs&mask == mask
}

func fileAttributes(fullPath, name string) (uint32, error) {
	target := fullPath
	if target == "" {
		target = name
	}
	if target == "" {
		return 0, os.ErrInvalid
	}

	ptr, err := syscall.UTF16PtrFromString(target)
	if err != nil {
		return 0, err
	}
	return syscall.GetFileAttributes(ptr)
}
