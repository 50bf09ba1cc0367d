package filemagic

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrInvalidPattern = errors.New("invalid filter pattern")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrNoSignatures   = errors.New("no signatures to match against")
)

// SourceError records a failure reading content for identification
type SourceError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError reports whether err was caused by reading the content
// rather than by identification itself
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}
