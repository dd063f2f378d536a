//go:build !windows

package fs

func isProtectedEntry(_, _ string) bool {
	return false
}
