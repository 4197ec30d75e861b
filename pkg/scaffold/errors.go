package scaffold

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingParts is returned when the document has no "parts" array
	ErrMissingParts = errors.New("invalid JSON: missing 'parts'")

	// ErrMalformedPart is wrapped by every PartError
	ErrMalformedPart = errors.New("malformed part")
)

// PartError describes a part record that lacks a required field or has one
// of the wrong shape.
type PartError struct {
	Index  int
	Field  string
	Reason string
}

func (e *PartError) Error() string {
	return fmt.Sprintf("part %d: field %q %s", e.Index, e.Field, e.Reason)
}

func (e *PartError) Unwrap() error {
	return ErrMalformedPart
}
