package osshttp

import "time"

const (
	// Version is the release version of the SDK, it's interpolated into the default 'User-Agent'.
	Version = "1.0.0"

	// DefaultConnectTimeout is the default timeout for establishing a connection to the storage service.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultReadTimeout is the default timeout for a complete request/response exchange including reading the body; a
	// stalled stream hangs the request until this timeout fires.
	DefaultReadTimeout = 120 * time.Second

	// ConnectTimeoutEnvVar is the environment variable that may be used to override the connect timeout.
	ConnectTimeoutEnvVar = "OSS_CLIENT_CONNECT_TIMEOUT"

	// ReadTimeoutEnvVar is the environment variable that may be used to override the read timeout.
	ReadTimeoutEnvVar = "OSS_CLIENT_READ_TIMEOUT"

	// TimeoutsEnvVar is the environment variable that should be used to supply configurable timeouts for the
	// underlying HTTP transport. If it is not provided then the default values are used.
	TimeoutsEnvVar = "OSS_CLIENT_HTTP_TIMEOUTS"
)

const (
	// HeaderAuthorization carries the access key id and the request signature.
	HeaderAuthorization = "Authorization"

	// HeaderContentMD5 is the base64 encoded MD5 digest of an in-memory request body; never set for streaming bodies.
	HeaderContentMD5 = "Content-MD5"

	// HeaderContentType is the content type of the request body, it takes part in canonicalization.
	HeaderContentType = "Content-Type"

	// HeaderDate is the wall-clock date the request was signed at, it takes part in canonicalization.
	HeaderDate = "Date"

	// HeaderUserAgent identifies the SDK and runtime to the service.
	HeaderUserAgent = "User-Agent"

	// HeaderRequestID is the server assigned identifier returned on every response, it's preserved into errors for
	// support/diagnostics correlation.
	HeaderRequestID = "X-Oss-Request-Id"

	// DefaultContentType is used for requests which don't explicitly provide a content type.
	DefaultContentType = "application/octet-stream"
)
