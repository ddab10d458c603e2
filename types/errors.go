package types

// The finance subsystem reports failures as one of three kinds. Handlers map
// them onto HTTP statuses, everything else bubbles up as an internal error.

// ValidationError rejects bad input (non-positive amount, malformed or
// absent date range). The code is a client-facing error identifier.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

// NotFoundError reports a lookup for a record that does not exist.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return e.Code
}

// RetrievalError wraps a storage failure. Reads never degrade partially, a
// RetrievalError from any source fails the whole call.
type RetrievalError struct {
	Code string
	Err  error
}

func (e *RetrievalError) Error() string {
	return e.Code
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}
