package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)
	ErrNoDataset      = fmt.Errorf("%w: dataset", ErrNotFound)

	// Input errors
	ErrEmptyUpload       = errors.New("uploaded file is empty")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrMalformedTable    = errors.New("malformed tabular data")
	ErrInvalidBinCount   = errors.New("bin count must be at least 1")
)

// Error constructors with context
func NewColumnNotFoundError(name string) error {
	return fmt.Errorf("%w %q", ErrColumnNotFound, name)
}

func NewUnsupportedFormatError(filename string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
}

func NewMalformedTableError(reason string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedTable, reason, cause)
	}
	return fmt.Errorf("%w: %s", ErrMalformedTable, reason)
}

func NewInvalidBinCountError(bins int) error {
	return fmt.Errorf("%w, got %d", ErrInvalidBinCount, bins)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInputError reports whether err was caused by what the user supplied
// rather than by the program.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyUpload) ||
		errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrMalformedTable) ||
		errors.Is(err, ErrInvalidBinCount)
}
