package table

import "fmt"

// AccessError is raised when a handle id is not present in the table, or an
// exported name has no binding. It is the Go counterpart of the taxonomy's
// access-error (spec.md §7): raised by Access, Release, and Fetch.
type AccessError struct {
	Reason string
}

func (e *AccessError) Error() string {
	return e.Reason
}

func newUnknownIDError(id fmt.Stringer) *AccessError {
	return &AccessError{Reason: fmt.Sprintf("unknown id: %s", id)}
}

func newUnknownNameError(name string) *AccessError {
	return &AccessError{Reason: fmt.Sprintf("unknown name: %q", name)}
}
