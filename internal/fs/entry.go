package fs

import (
	"os"
	"path/filepath"
)

// Entry is one direct child of a listed directory.
// Name is NFC-normalised for display and filtering; RawName is the name as
// stored on disk and is what paths are built from.
type Entry struct {
	Name      string
	RawName   string
	IsDir     bool
	IsSymlink bool
	Size      int64
	Mode      os.FileMode
}

// IsHidden reports whether the entry name starts with a dot.
func (e Entry) IsHidden() bool {
	return IsHiddenName(e.Name)
}

// Path joins the on-disk entry name onto dir.
func (e Entry) Path(dir string) string {
	if e.RawName != "" {
		return filepath.Join(dir, e.RawName)
	}
	return filepath.Join(dir, e.Name)
}

// IsHiddenName reports whether name denotes a dotfile.
func IsHiddenName(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// Less orders entries: directories first, hidden before visible inside each
// group, then by name.
func Less(a, b Entry) bool {
	if a.IsDir != b.IsDir {
		return a.IsDir
	}
	ah, bh := a.IsHidden(), b.IsHidden()
	if ah != bh {
		return ah
	}
	return a.Name < b.Name
}
