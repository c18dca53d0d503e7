package oerror

import "fmt"

// OomphError is a plain string error. Sentinel values are compared with errors.Is after wrapping.
type OomphError struct {
	Err string
}

func NewOomphError(err string) *OomphError {
	return &OomphError{Err: err}
}

// New formats an error message and returns it as an OomphError.
func New(format string, args ...any) *OomphError {
	if len(args) == 0 {
		return &OomphError{Err: format}
	}
	return &OomphError{Err: fmt.Sprintf(format, args...)}
}

func (e *OomphError) Error() string {
	return e.Err
}

var (
	// ErrUnknownActor is returned when a handle does not resolve to a registered actor.
	ErrUnknownActor = NewOomphError("unknown actor")
	// ErrDuplicateActor is returned when an actor is registered under a handle already in use.
	ErrDuplicateActor = NewOomphError("duplicate actor")
	// ErrMissingShape is returned by a shape catalog that has no shape for an actor.
	ErrMissingShape = NewOomphError("missing collision shape")
	// ErrInvalidShape is returned for shapes with degenerate extents or an internal shape not contained in
	// the external one.
	ErrInvalidShape = NewOomphError("invalid collision shape")
)
