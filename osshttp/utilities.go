package osshttp

import (
	"bufio"
	"crypto/md5"
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// ContentMD5 returns the base64 encoded MD5 digest of the given data, the format expected by the 'Content-MD5' header.
func ContentMD5(data []byte) string {
	digest := md5.Sum(data)

	return base64.StdEncoding.EncodeToString(digest[:])
}

// readBody returns the entire response body returning an informative error in the case where the response body is less
// than the expected length.
func readBody(method Method, resource string, reader io.Reader, contentLength int64) ([]byte, error) {
	body, err := io.ReadAll(bufio.NewReader(reader))
	if err == nil {
		return body, nil
	}

	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &UnexpectedEndOfBodyError{
			method:   method,
			resource: resource,
			expected: contentLength,
			got:      len(body),
		}
	}

	return nil, err
}

// handleRequestError converts a failed request (hard failure as returned by the standard library) into a more
// useful/user friendly error where possible.
//
// NOTE: Network level errors (connection failures, timeouts, DNS failures) carry no server side diagnostic payload and
// are surfaced as-is.
func handleRequestError(method Method, resource string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SocketClosedInFlightError{method: method, resource: resource}
	}

	return err
}

// handleResponseError converts a failed response (soft failure i.e. the request itself was dispatched successfully)
// into a structured error.
//
// This function always succeeds in producing a 'ServerError'; a body which isn't the vendor's structured error
// document degrades gracefully to the raw text.
func handleResponseError(method Method, resource string, statusCode int, header http.Header, body []byte) error {
	serverError := &ServerError{
		StatusCode: statusCode,
		RequestID:  header.Get(HeaderRequestID),
		Body:       body,
		method:     method,
		resource:   resource,
	}

	type overlay struct {
		Code      string `json:"Code"`
		Message   string `json:"Message"`
		RequestID string `json:"RequestId"`
	}

	var decoded overlay

	// Purposely ignored, the service isn't guaranteed to return a parseable error document (or a body at all) and the
	// raw body is retained either way.
	if jErr := jsoniter.Unmarshal(body, &decoded); jErr == nil {
		serverError.Code = decoded.Code
		serverError.Message = decoded.Message

		if serverError.RequestID == "" {
			serverError.RequestID = decoded.RequestID
		}
	}

	return serverError
}
