package repository

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("task not found")
	ErrValidation = errors.New("validation failed")
)

// PersistenceError reports a failed write of the backing file. The
// in-memory state has already been updated when it is returned.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("save tasks to %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// LoadObserver receives errors discarded while loading the backing file.
type LoadObserver func(path string, err error)
