package ctf

import (
	"errors"
	"fmt"
)

// ErrTraceNotFound is returned when no directory with a metadata marker
// exists at or below the given root.
var ErrTraceNotFound = errors.New("no trace found: missing metadata marker")

// DecodeError reports that the engine failed to extract a field payload.
// A decode error aborts the whole enumeration pass; the trace is left at an
// indeterminate iteration position and must be reopened before reuse.
type DecodeError struct {
	Field string    // field name, may be empty for inner definitions
	Kind  FieldKind // declared kind of the failing leg
	Err   error     // the engine's extraction error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("decode %s field %q: %v", e.Kind, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TypeMismatchError reports that a typed accessor was invoked against a value
// of a different kind. This is a contract violation on the caller's side, not
// a recoverable runtime condition.
type TypeMismatchError struct {
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: want %s, got %s", e.Want, e.Got)
}
