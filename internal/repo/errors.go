package repo

import (
	"errors"
	"fmt"
)

var ErrorNotFound = errors.New("not found")

// StorageError reports a failure talking to the database: connectivity,
// query or scan errors. Op names the repository operation that failed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
