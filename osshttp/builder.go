package osshttp

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evergrid/osskit/ossauth"
	"github.com/evergrid/osskit/osstream"
	"github.com/evergrid/osskit/ratelimit"
)

// prepare converts the request into a raw HTTP request which can be dispatched to the service: headers are defaulted,
// the body source is attached and the request is signed. Pure construction, no I/O is performed.
func (c *Client) prepare(ctx context.Context, request *Request) (*http.Request, error) {
	header := make(http.Header)

	for key, values := range request.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}

	if header.Get(HeaderDate) == "" {
		header.Set(HeaderDate, time.Now().UTC().Format(http.TimeFormat))
	}

	if header.Get(HeaderContentType) == "" {
		header.Set(HeaderContentType, DefaultContentType)
	}

	// Set the 'User-Agent' so that we can trace how these requests are handled by the service
	header.Set(HeaderUserAgent, c.userAgent)

	credentials := c.provider.GetCredentials()
	if credentials.SecurityToken != "" {
		header.Set(ossauth.HeaderSecurityToken, credentials.SecurityToken)
	}

	body := c.bodySource(ctx, request, header)

	// Signing must see the final header set, any header added after this point wouldn't be covered by the signature
	c.sign(request, header, credentials)

	req, err := http.NewRequestWithContext(ctx, string(request.Method), c.resolveURL(request), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = header

	if request.Producer != nil {
		req.TransferEncoding = []string{"chunked"}
		req.ContentLength = -1
	}

	return req, nil
}

// bodySource returns the reader the request body is pulled from, defaulting the body related headers; in-memory bodies
// are dispatched with a 'Content-MD5' header, streaming bodies use chunked transfer encoding instead.
func (c *Client) bodySource(ctx context.Context, request *Request, header http.Header) io.Reader {
	switch {
	case request.Producer != nil:
		var body io.Reader = osstream.NewStream(request.Producer)

		if c.limiter != nil {
			body = ratelimit.NewRateLimitedReader(ctx, body, c.limiter)
		}

		return body
	case request.Body != nil:
		header.Set(HeaderContentMD5, ContentMD5(request.Body))

		return bytes.NewReader(request.Body)
	}

	return nil
}

// sign computes the request signature and populates the 'Authorization' header.
//
// NOTE: Missing credentials skip signing entirely and the request is dispatched unauthenticated; this is an explicit,
// observable code path rather than a silent default.
func (c *Client) sign(request *Request, header http.Header, credentials ossauth.Credentials) {
	if credentials.Empty() {
		c.logger.Debugf("(OSS) (%s) No credentials provided, dispatching request to '%s' unauthenticated",
			request.Method, request.Resource())

		return
	}

	canonical := ossauth.CanonicalString(ossauth.CanonicalRequest{
		Method:       string(request.Method),
		Header:       header,
		Bucket:       request.Bucket,
		Object:       request.Object,
		SubResources: request.SubResources,
	})

	header.Set(HeaderAuthorization,
		ossauth.Authorization(credentials.AccessKeyID, ossauth.Sign(credentials.AccessKeySecret, canonical)))
}

// resolveURL returns the URL the request is dispatched to; buckets are addressed in virtual-hosted style i.e. as a
// subdomain of the endpoint, unless the client is configured with a custom (CNAME) domain which is already mapped to
// the bucket.
func (c *Client) resolveURL(request *Request) string {
	host := c.endpoint.Host
	if request.Bucket != "" && !c.cname {
		host = request.Bucket + "." + host
	}

	resolved := url.URL{
		Scheme:   c.endpoint.Scheme,
		Host:     host,
		Path:     "/" + request.Object,
		RawQuery: mergeQuery(request.SubResources, request.QueryParameters).Encode(),
	}

	return resolved.String()
}

// mergeQuery merges the sub-resources and the explicit query parameters into the query set dispatched on the URL.
func mergeQuery(subResources, parameters url.Values) url.Values {
	merged := make(url.Values, len(subResources)+len(parameters))

	for _, values := range []url.Values{subResources, parameters} {
		for key, value := range values {
			merged[key] = value
		}
	}

	return merged
}
