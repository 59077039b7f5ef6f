package rustdoc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidJSON is returned when the input is not syntactically valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON document")
	// ErrMissingIndex is returned when the document has no top-level "index".
	ErrMissingIndex = errors.New(`document has no "index" object`)
	// ErrIndexNotObject is returned when "index" exists but is not an object.
	ErrIndexNotObject = errors.New(`"index" is not an object`)
)

// SchemaError describes an index entry whose shape can't be used.
type SchemaError struct {
	ID     string
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("index entry %q: %s", e.ID, e.Reason)
	}
	return fmt.Sprintf("index entry %q: field %q %s", e.ID, e.Field, e.Reason)
}
