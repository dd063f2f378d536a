package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/twinpane/internal/logging"
	"github.com/sirupsen/logrus"
)

// Ops performs create, rename and delete against the filesystem. Successful
// operations invalidate the affected directory in the Lister.
type Ops struct {
	lister *Lister
	log    logrus.FieldLogger
}

// NewOps returns an Ops bound to lister. A nil logger discards output.
func NewOps(lister *Lister, logger logrus.FieldLogger) *Ops {
	return &Ops{lister: lister, log: logging.OrDiscard(logger)}
}

// CreateFile creates an empty file named name inside dir.
func (o *Ops) CreateFile(dir, name string) error {
	return o.create(dir, name, func(path string) error {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		return f.Close()
	})
}

// CreateDirectory creates a directory named name inside dir.
func (o *Ops) CreateDirectory(dir, name string) error {
	return o.create(dir, name, func(path string) error {
		return os.Mkdir(path, 0o755)
	})
}

func (o *Ops) create(dir, name string, mk func(string) error) error {
	if err := validateName(name); err != nil {
		return &OpError{Op: "create", Path: filepath.Join(dir, name), Kind: err}
	}
	path := filepath.Join(dir, name)
	if exists(path) {
		return &OpError{Op: "create", Path: path, Kind: ErrAlreadyExists}
	}

	if err := mk(path); err != nil {
		kind := ErrCreate
		if errors.Is(err, fs.ErrExist) {
			kind = ErrAlreadyExists
		}
		o.log.WithField("path", path).WithError(err).Warn("create failed")
		return &OpError{Op: "create", Path: path, Kind: kind, Err: err}
	}

	o.log.WithField("path", path).Info("created")
	o.invalidate(dir)
	return nil
}

// Rename renames oldPath to newName within the same directory.
func (o *Ops) Rename(oldPath, newName string) error {
	if err := validateName(newName); err != nil {
		return &OpError{Op: "rename", Path: oldPath, Kind: err}
	}
	dir := filepath.Dir(oldPath)
	newPath := filepath.Join(dir, newName)
	if exists(newPath) {
		return &OpError{Op: "rename", Path: newPath, Kind: ErrAlreadyExists}
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		o.log.WithFields(logrus.Fields{"from": oldPath, "to": newPath}).WithError(err).Warn("rename failed")
		return &OpError{Op: "rename", Path: oldPath, Kind: ErrRename, Err: err}
	}

	o.log.WithFields(logrus.Fields{"from": oldPath, "to": newPath}).Info("renamed")
	o.invalidate(dir)
	return nil
}

// Delete removes path, recursively for directories.
func (o *Ops) Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		o.log.WithField("path", path).WithError(err).Warn("delete failed")
		return &OpError{Op: "delete", Path: path, Kind: ErrDelete, Err: err}
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		o.log.WithField("path", path).WithError(err).Warn("delete failed")
		return &OpError{Op: "delete", Path: path, Kind: ErrDelete, Err: err}
	}

	o.log.WithField("path", path).Info("deleted")
	o.invalidate(filepath.Dir(path))
	return nil
}

func (o *Ops) invalidate(dir string) {
	if o.lister != nil {
		o.lister.Invalidate(dir)
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if name == "." || name == ".." || strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return ErrInvalidName
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
