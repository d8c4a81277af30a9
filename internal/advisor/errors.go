package advisor

import "errors"

// ErrProgramNotFound is returned when the referenced program does not exist.
var ErrProgramNotFound = errors.New("program not found")

// InvalidProfileError reports a profile whose values fall outside their
// declared scales. Callers map it to a client error, not a server failure.
type InvalidProfileError struct {
	Cause error
}

func (e *InvalidProfileError) Error() string {
	return "invalid profile: " + e.Cause.Error()
}

func (e *InvalidProfileError) Unwrap() error {
	return e.Cause
}
