// Package osshttp implements the HTTP transport core of the SDK: it builds signed requests against the storage
// service's REST API, streams request/response bodies without buffering them fully in memory and normalizes server
// errors into a uniform error model.
package osshttp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/evergrid/osskit/envvar"
	"github.com/evergrid/osskit/log"
	"github.com/evergrid/osskit/netutil"
	"github.com/evergrid/osskit/ossauth"
	"github.com/evergrid/osskit/ptrutil"
)

// ClientOptions encapsulates the options for creating a new client.
type ClientOptions struct {
	// Endpoint is the address of the storage service e.g. 'oss-cn-hangzhou.aliyuncs.com'; a 'https://' scheme is
	// assumed when omitted.
	Endpoint string

	// CNAME indicates that the endpoint is a custom domain which is already mapped to a bucket, in which case requests
	// are dispatched to the endpoint host verbatim instead of using a bucket subdomain.
	CNAME bool

	// Provider supplies the credentials used to sign requests; defaults to sourcing them from the environment.
	// Requests are dispatched unauthenticated when no credentials are available.
	Provider ossauth.Provider

	// UserAgent overrides the default SDK user agent.
	UserAgent string

	// ConnectTimeout/ReadTimeout override the default transport timeouts.
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	// TLSConfig is the TLS configuration used when communicating over HTTPS.
	TLSConfig *tls.Config

	// UploadLimiter throttles the rate at which streaming upload bodies are pulled off their producer.
	UploadLimiter *rate.Limiter

	// Logger is the logger requests/responses and failures are logged to.
	Logger log.Logger

	// ReqResLogLevel is the level at which to log the dispatching and receiving of requests/responses.
	ReqResLogLevel log.Level
}

// Client dispatches requests to the storage service.
//
// Configuration is read-only once constructed and a client may be used from multiple goroutines, however, each request
// owns its own body stream; streams are never shared.
type Client struct {
	client   *http.Client
	endpoint *url.URL
	cname    bool

	provider  ossauth.Provider
	userAgent string
	limiter   *rate.Limiter

	logger         log.WrappedLogger
	reqResLogLevel log.Level
}

// NewClient creates a new client which will dispatch requests to the provided endpoint using the given credentials.
func NewClient(options ClientOptions) (*Client, error) {
	connectTimeout := options.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = DefaultConnectTimeout
	}

	if timeout, ok := envvar.GetDuration(ConnectTimeoutEnvVar); ok {
		connectTimeout = timeout

		log.Infof("(OSS) Set connect timeout to: %s", connectTimeout)
	}

	readTimeout := options.ReadTimeout
	if readTimeout == 0 {
		readTimeout = DefaultReadTimeout
	}

	if timeout, ok := envvar.GetDuration(ReadTimeoutEnvVar); ok {
		readTimeout = timeout

		log.Infof("(OSS) Set read timeout to: %s", readTimeout)
	}

	timeouts, err := envvar.GetHTTPTimeouts(TimeoutsEnvVar, netutil.HTTPTimeouts{Dialer: ptrutil.ToPtr(connectTimeout)})
	if err != nil {
		return nil, fmt.Errorf("failed to get HTTP timeouts: %w", err)
	}

	endpoint, err := parseEndpoint(options.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint: %w", err)
	}

	provider := options.Provider
	if provider == nil {
		provider = &ossauth.Environment{}
	}

	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = fmt.Sprintf("osskit/%s (%s/%s;%s)", Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	}

	client := &Client{
		client: &http.Client{
			Timeout:   readTimeout,
			Transport: netutil.NewHTTPTransport(options.TLSConfig, timeouts),
		},
		endpoint:       endpoint,
		cname:          options.CNAME,
		provider:       provider,
		userAgent:      userAgent,
		limiter:        options.UploadLimiter,
		logger:         log.NewWrappedLogger(options.Logger),
		reqResLogLevel: options.ReqResLogLevel,
	}

	return client, nil
}

// parseEndpoint parses the given endpoint defaulting the scheme to HTTPS when omitted.
func parseEndpoint(endpoint string) (*url.URL, error) {
	if !strings.Contains(endpoint, "://") {
		endpoint = "https://" + endpoint
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	if parsed.Host == "" {
		return nil, ErrExpectedNonEmptyEndpoint
	}

	return parsed, nil
}

// Execute the given request to completion; the response body is streamed to 'onChunk' when provided, otherwise it's
// buffered into the returned response.
//
// An unexpected status code i.e. one greater than or equal to 300 results in a '*ServerError' alongside the response;
// the routing decision is made from the status line alone, before any body bytes are processed. No retries are
// performed at this layer, that's the responsibility of the layers above.
func (c *Client) Execute(ctx context.Context, request *Request, onChunk ChunkFunc) (*Response, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	prepared, err := c.prepare(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	resp, err := c.perform(prepared, request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	response := &Response{StatusCode: resp.StatusCode, Header: resp.Header}

	// The error path buffers the whole body so a complete diagnostic can be produced
	if !netutil.IsSuccess(resp.StatusCode) {
		return response, c.handleFailure(request, resp, response)
	}

	if onChunk == nil {
		response.Body, err = readBody(request.Method, request.Resource(), resp.Body, resp.ContentLength)
		if err != nil {
			return response, fmt.Errorf("failed to read response body: %w", err)
		}

		return response, nil
	}

	err = streamBody(resp.Body, onChunk)
	if err != nil {
		return response, err
	}

	return response, nil
}

// perform synchronously dispatches the provided request returning the raw response and any error that occurred during
// the process.
func (c *Client) perform(req *http.Request, request *Request) (*http.Response, error) {
	c.logger.Log(c.reqResLogLevel, "(OSS) (%s) Dispatching request to '%s'", req.Method, req.URL)

	resp, err := c.client.Do(req)
	if err == nil {
		c.logger.Log(c.reqResLogLevel, "(OSS) (%s) (%d) Received response from '%s'", req.Method, resp.StatusCode,
			req.URL)

		return resp, nil
	}

	c.logger.Errorf("(OSS) (%s) Failed to perform request to '%s': %s", req.Method, req.URL, err)

	return nil, handleRequestError(request.Method, request.Resource(), err)
}

// handleFailure buffers the error body and converts the failed response into a structured error.
//
// We don't log at error level because we expect some requests to fail and be explicitly handled by the caller, for
// example when checking whether an object exists.
func (c *Client) handleFailure(request *Request, resp *http.Response, response *Response) error {
	// A failure to read the error body is purposefully discarded, a structured error with whatever diagnostics are
	// available is always produced.
	body, _ := io.ReadAll(resp.Body)
	response.Body = body

	err := handleResponseError(request.Method, request.Resource(), resp.StatusCode, resp.Header, body)

	c.logger.Warnf("(OSS) (%s) Request to '%s' failed with status code %d", request.Method, request.Resource(),
		resp.StatusCode)

	return err
}

// streamBody delivers decoded body chunks to the given callback as they arrive off the wire; the full payload is never
// buffered in memory.
func streamBody(body io.Reader, onChunk ChunkFunc) error {
	buffer := make([]byte, 32*1024)

	for {
		n, err := body.Read(buffer)

		if n > 0 {
			if cErr := onChunk(buffer[:n]); cErr != nil {
				return fmt.Errorf("failed to process chunk: %w", cErr)
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
	}
}
