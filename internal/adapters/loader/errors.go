package loader

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel kinds for loader errors. The first three stop a load; the rest
// describe rows that are skipped.
var (
	ErrFileNotFound   = errors.New("file not found")
	ErrMissingColumns = errors.New("missing required columns")
	ErrReadFile       = errors.New("read file failed")
	ErrMissingValue   = errors.New("missing value")
	ErrInvalidValue   = errors.New("invalid value")
)

// HeaderError reports the required columns absent from a file's header.
type HeaderError struct {
	Path    string
	Missing []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("file %q is missing required columns: %s", e.Path, strings.Join(e.Missing, ", "))
}

func (e *HeaderError) Unwrap() error { return ErrMissingColumns }

// FieldError ties a conversion failure to its column. Want names the
// expected kind of value, e.g. "integer".
type FieldError struct {
	Column string
	Value  string
	Want   string
	Err    error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingValue) {
		return fmt.Sprintf("%s: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s %q", e.Column, e.Want, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }
