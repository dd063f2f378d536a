//go:build !windows

package shellsetup

// DetectParentShellName is only needed where $SHELL is usually unset.
func DetectParentShellName() string {
	return ""
}
