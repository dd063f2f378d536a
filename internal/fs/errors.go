package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Reasons carried by DirectoryError.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrNotDirectory     = errors.New("not a directory")
)

// Kinds carried by OpError.
var (
	ErrAlreadyExists = errors.New("already exists")
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrInvalidName   = errors.New("invalid name")
	ErrCreate        = errors.New("create failed")
	ErrRename        = errors.New("rename failed")
	ErrDelete        = errors.New("delete failed")
)

// DirectoryError reports a directory that could not be listed.
type DirectoryError struct {
	Path   string
	Reason error
	Err    error
}

func (e *DirectoryError) Error() string {
	if e.Err != nil && e.Err != e.Reason {
		return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("cannot read directory %s: %v", e.Path, e.Reason)
}

func (e *DirectoryError) Unwrap() []error {
	if e.Err == nil || e.Err == e.Reason {
		return []error{e.Reason}
	}
	return []error{e.Reason, e.Err}
}

func newDirectoryError(path string, err error) *DirectoryError {
	return &DirectoryError{Path: path, Reason: classify(err), Err: err}
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return ErrPermissionDenied
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, syscall.ENOTDIR):
		return ErrNotDirectory
	default:
		return err
	}
}

// OpError reports a failed file operation. Kind is one of the Err* kinds above.
type OpError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *OpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
}

func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
