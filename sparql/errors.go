package sparql

import "errors"

// CycleError reports a rejected nesting attachment.
//
// It is raised exactly when AddNestedPattern or AddNestedSelect would make
// a pattern reachable from itself: self-attachment, or re-attachment of an
// existing ancestor as a descendant. The offending append does not take
// effect; the builder is left exactly as it was before the call.
//
// CycleError is the only error kind the builder produces. All other caller
// misuse (malformed term strings, a UNION child with no preceding sibling,
// a SELECT with no WHERE pattern) is not validated: the builder trusts
// input and renders structurally consistent text.
type CycleError struct {
	// Message is a human-readable description of the rejected attachment.
	Message string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return "CYCLE_DETECTED: " + e.Message
}

// IsCycleError returns true if the error is a cycle detection error.
// Uses errors.As to handle wrapped errors.
func IsCycleError(err error) bool {
	var ce *CycleError
	return errors.As(err, &ce)
}
