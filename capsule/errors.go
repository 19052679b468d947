package capsule

import "fmt"

// ConstructionError is raised when a wire envelope is missing its "serial"
// key, carries an unrecognized one, or has a malformed payload for the
// variant it names. It is local only: it never crosses the wire, and a
// handler that encounters one terminates the connection (spec.md §7).
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "capsule construction error: " + e.Reason
}

// WrapTypeError is raised when Wrap is given a host value with no matching
// capsule variant (spec.md §4.2).
type WrapTypeError struct {
	Type any
}

func (e *WrapTypeError) Error() string {
	return fmt.Sprintf("no capsule variant can wrap %T", e.Type)
}
