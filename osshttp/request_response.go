package osshttp

import (
	"net/http"
	"net/url"

	"github.com/evergrid/osskit/osstream"
)

// Method is a readability wrapper around the HTTP methods accepted by the storage service.
type Method string

const (
	MethodGet     Method = http.MethodGet
	MethodPut     Method = http.MethodPut
	MethodPost    Method = http.MethodPost
	MethodDelete  Method = http.MethodDelete
	MethodHead    Method = http.MethodHead
	MethodOptions Method = http.MethodOptions
)

// Request encapsulates the parameters/options which are required when sending a request to the storage service.
type Request struct {
	// Method is the HTTP method the request is dispatched with.
	Method Method

	// Bucket is the bucket being addressed, may be empty for service level requests.
	Bucket string

	// Object is the object key being addressed; an object may only be addressed within a bucket.
	Object string

	// SubResources are named resource modifiers (e.g. 'acl', 'uploadId') which are postfixed to the request URL and,
	// unlike plain query parameters, take part in canonicalization.
	SubResources url.Values

	// QueryParameters are encoded and postfixed to the request URL.
	QueryParameters url.Values

	// Header contains overrides/additions to the defaulted request headers. Vendor prefixed headers provided here take
	// part in canonicalization.
	Header http.Header

	// Body is an in-memory request body; dispatched with a 'Content-MD5' header.
	//
	// NOTE: Mutually exclusive with 'Producer'.
	Body []byte

	// Producer supplies a streaming request body; dispatched using chunked transfer encoding without buffering the
	// payload in memory.
	//
	// NOTE: Mutually exclusive with 'Body'.
	Producer osstream.ProducerFunc
}

// Validate returns an error if the request breaks one of the structural invariants, performed before any I/O takes
// place.
func (r *Request) Validate() error {
	if r.Object != "" && r.Bucket == "" {
		return ErrObjectRequiresBucket
	}

	if r.Body != nil && r.Producer != nil {
		return ErrAmbiguousBody
	}

	return nil
}

// Resource returns the canonical resource path for this request, used for signing, logging and error reporting.
func (r *Request) Resource() string {
	if r.Bucket == "" {
		return "/"
	}

	return "/" + r.Bucket + "/" + r.Object
}

// Response encapsulates a response from the storage service.
type Response struct {
	// StatusCode is the status code of the response.
	StatusCode int

	// Header is the full response header mapping.
	Header http.Header

	// Body is the buffered response body; nil when the body was streamed to a chunk callback instead.
	Body []byte
}

// RequestID returns the server assigned request id, may be empty.
func (r *Response) RequestID() string {
	return r.Header.Get(HeaderRequestID)
}

// ChunkFunc is invoked zero or more times with decoded body chunks as they arrive off the wire on the success path.
//
// NOTE: The chunk is only valid for the duration of the call, implementations must copy the bytes they wish to retain.
// Returning a non-nil error aborts the stream and the error is returned from 'Execute'.
type ChunkFunc func(chunk []byte) error
