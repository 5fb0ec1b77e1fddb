package osshttp

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestHandlers is a readability wrapper around the handlers for a test service.
type TestHandlers map[string]http.HandlerFunc

// Add a new handler, note that the method is required to ensure unique handlers for each path.
func (e TestHandlers) Add(method, path string, handler http.HandlerFunc) {
	e[fmt.Sprintf("%s:%s", method, path)] = handler
}

// Handle utility function which handles the provided request returning a boolean indicating whether a handler was
// found.
func (e TestHandlers) Handle(writer http.ResponseWriter, request *http.Request) bool {
	handler, ok := e[fmt.Sprintf("%s:%s", request.Method, request.URL.Path)]
	if !ok {
		return false
	}

	handler(writer, request)

	return true
}

// NewTestHandler creates the most basic type of handler which will respond with the provided status/body, minting a
// fresh request id the way the service does.
func NewTestHandler(t *testing.T, status int, body []byte) http.HandlerFunc {
	return NewTestHandlerWithRequestID(t, status, uuid.NewString(), body)
}

// NewTestHandlerWithRequestID creates a handler which will respond with the provided status/body using a fixed request
// id.
func NewTestHandlerWithRequestID(t *testing.T, status int, requestID string, body []byte) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set(HeaderRequestID, requestID)
		writer.WriteHeader(status)

		_, err := writer.Write(body)
		require.NoError(t, err)
	}
}

// NewTestHandlerWithEcho creates a handler which responds with the request body it received; used to assert on exactly
// which bytes arrived at the service.
func NewTestHandlerWithEcho(t *testing.T, onBody func(body []byte, header http.Header)) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		body, err := io.ReadAll(request.Body)
		require.NoError(t, err)

		onBody(body, request.Header)

		writer.Header().Set(HeaderRequestID, uuid.NewString())
		writer.WriteHeader(http.StatusOK)

		_, err = writer.Write(body)
		require.NoError(t, err)
	}
}
