package agent

import "errors"

// ErrorKind is the closed set of failure categories the system produces.
// Transports branch on the kind; the detail string is diagnostic only.
type ErrorKind string

const (
	// KindMissingField means a required request field was empty (400)
	KindMissingField ErrorKind = "missing_field"

	// KindUnconfigured means the LLM credential is absent; callers
	// short-circuit to the degraded-mode payload before any network call
	KindUnconfigured ErrorKind = "unconfigured"

	// KindProviderError means the completion provider call failed (500)
	KindProviderError ErrorKind = "provider_error"

	// KindEmptyResponse means the provider returned no usable content
	KindEmptyResponse ErrorKind = "empty_response"

	// KindTransportSend means a chat message could not be delivered
	KindTransportSend ErrorKind = "transport_send"

	// KindTransportCleanup means placeholder deletion failed; logged and swallowed
	KindTransportCleanup ErrorKind = "transport_cleanup"
)

// Error carries an error kind plus an opaque diagnostic detail.
// Tests and transports assert on Kind, never on provider wording.
type Error struct {
	Kind   ErrorKind
	Detail string
}

// NewError creates an Error with the given kind and diagnostic detail
func NewError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Detail == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Detail
}

// KindOf returns the kind of err, or "" if err is not an agent error
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// DetailOf returns the diagnostic detail of err.
// Non-agent errors fall back to their message.
func DetailOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
