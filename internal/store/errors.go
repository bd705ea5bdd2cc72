package store

import (
	"errors"
	"fmt"
)

var (
	// ErrStorage is returned for quota, driver, or corrupt-data failures.
	// Callers should treat it as fatal for the operation, not the process.
	ErrStorage = errors.New("storage failure")

	// ErrNotFound is returned when an operation targets an id absent from
	// the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidImport is returned when an import document is missing
	// required fields. No collection is overwritten when it is returned.
	ErrInvalidImport = errors.New("invalid import document")
)

// storageErr wraps a driver error as ErrStorage, keeping the detail text.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStorage, err)
}
