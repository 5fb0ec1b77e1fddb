package osshttp

import (
	"errors"
	"fmt"
)

var (
	// ErrObjectRequiresBucket is returned when dispatching a request which addresses an object without a bucket.
	ErrObjectRequiresBucket = errors.New("an object may only be addressed within a bucket")

	// ErrAmbiguousBody is returned when dispatching a request which supplies both an in-memory body and a streaming
	// producer; they're mutually exclusive.
	ErrAmbiguousBody = errors.New("an in-memory body and a streaming producer are mutually exclusive")

	// ErrExpectedNonEmptyEndpoint is returned when creating a client with an endpoint which doesn't contain a host.
	ErrExpectedNonEmptyEndpoint = errors.New("expected an endpoint with a non-empty host")
)

// ServerError is returned when the service responds with an unexpected status code i.e. one greater than or equal to
// 300. It's immutable once constructed and is the sole error representation for server side failures.
type ServerError struct {
	// StatusCode is the status code of the failed response.
	StatusCode int

	// RequestID is the server assigned request id, extracted from the response header (falling back to the parsed
	// error body); may be empty.
	RequestID string

	// Code is the vendor error code parsed from the error body e.g. 'NoSuchKey'; empty when the body couldn't be
	// parsed.
	Code string

	// Message is the human readable message parsed from the error body; empty when the body couldn't be parsed.
	Message string

	// Body is the raw error body, retained for diagnostics even when parsing succeeded.
	Body []byte

	method   Method
	resource string
}

func (e *ServerError) Error() string {
	msg := fmt.Sprintf("unexpected status code %d executing '%s' request to '%s'", e.StatusCode, e.method, e.resource)

	switch {
	case e.Code != "" && e.Message != "":
		msg += fmt.Sprintf(": %s: %s", e.Code, e.Message)
	case e.Code != "":
		msg += fmt.Sprintf(": %s", e.Code)
	case len(e.Body) != 0:
		msg += fmt.Sprintf(": %s", e.Body)
	default:
		msg += ", check the logs for more details"
	}

	if e.RequestID != "" {
		msg += fmt.Sprintf(" (request id '%s')", e.RequestID)
	}

	return msg
}

// SocketClosedInFlightError is returned if the client socket was closed during an active request. This is usually due
// to the socket being closed by the remote host in the event of a fatal error.
type SocketClosedInFlightError struct {
	method   Method
	resource string
}

func (e *SocketClosedInFlightError) Error() string {
	return fmt.Sprintf("error executing '%s' request to '%s' socket closed in flight, check the logs for more details",
		e.method, e.resource)
}

// UnexpectedEndOfBodyError is returned if the length of the response body does not match the expected length. This may
// happen in the event that the 'Content-Length' header value is incorrectly set.
type UnexpectedEndOfBodyError struct {
	method   Method
	resource string
	expected int64
	got      int
}

func (e *UnexpectedEndOfBodyError) Error() string {
	return fmt.Sprintf("unexpected EOF whilst reading response body for '%s' request to '%s', expected %d bytes but "+
		"got %d", e.method, e.resource, e.expected, e.got)
}
