package opensearch

import (
	"fmt"
	"strings"
)

// Sentinel errors for the request pipeline.
var (
	// ErrMissingArgument reports a required parameter or URL path segment
	// that was absent at bind time. No transport call is made.
	ErrMissingArgument = fmt.Errorf("missing required argument")

	// ErrSerialization reports a body that could not be converted to its
	// wire format. No transport call is made.
	ErrSerialization = fmt.Errorf("serialization failed")
)

// StatusCoder is implemented by errors that carry an HTTP status code.
type StatusCoder interface {
	StatusCode() int
}

// SerializationError wraps the cause of a body encoding failure. It
// matches ErrSerialization under errors.Is.
type SerializationError struct {
	Err error
}

// Error returns the serialization failure message.
func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed: %v", e.Err)
}

// Unwrap returns the underlying encoding error.
func (e *SerializationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSerialization.
func (e *SerializationError) Is(target error) bool { return target == ErrSerialization }

// TransportError is a protocol-level failure reported by the default
// transport for non-2xx responses. The client propagates it unchanged;
// interpreting or retrying it is the caller's decision.
type TransportError struct {
	Status int
	Body   []byte
}

// Error returns the status and a trimmed copy of the response body.
func (e *TransportError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	if body == "" {
		return fmt.Sprintf("server returned %d", e.Status)
	}
	return fmt.Sprintf("server returned %d: %s", e.Status, body)
}

// StatusCode returns the HTTP status code.
func (e *TransportError) StatusCode() int { return e.Status }

func missingArgument(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingArgument, name)
}
