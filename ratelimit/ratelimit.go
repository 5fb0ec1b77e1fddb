package ratelimit

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/evergrid/osskit/maths"
)

// RateLimitedReader will use its limiter as a rate limit on the number of bytes read; it's used to throttle streaming
// upload bodies before they reach the wire.
type RateLimitedReader struct {
	ctx     context.Context
	r       io.Reader
	limiter *rate.Limiter
}

var _ io.Reader = (*RateLimitedReader)(nil)

// NewRateLimitedReader creates a new RateLimitedReader which respects "limiter" in terms of the number of bytes read.
func NewRateLimitedReader(ctx context.Context, r io.Reader, limiter *rate.Limiter) *RateLimitedReader {
	return &RateLimitedReader{ctx: ctx, r: r, limiter: limiter}
}

// Read will read into p whilst respecting the rate limit.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n <= 0 {
		return n, err
	}

	if lErr := waitChunked(r.ctx, r.limiter, n); lErr != nil {
		return n, lErr
	}

	return n, err
}

// Close closes the underlying reader when it's also a closer, streaming bodies rely on this to release their producer.
func (r *RateLimitedReader) Close() error {
	closer, ok := r.r.(io.Closer)
	if !ok {
		return nil
	}

	return closer.Close()
}

// waitChunked waits for n tokens in chunks of the limiter's burst size. This is because rate.Limiter will only allow
// at most its burst number of tokens to be drained at once, so if we want more then several calls to wait are
// required.
func waitChunked(ctx context.Context, limiter *rate.Limiter, n int) error {
	maxChunkSize := limiter.Burst()

	for n > 0 {
		waitFor := maths.Min(n, maxChunkSize)
		if lErr := limiter.WaitN(ctx, waitFor); lErr != nil {
			return fmt.Errorf("could not wait for limiter: %w", lErr)
		}

		n -= waitFor
	}

	return nil
}
