// Package osstream bridges a producer which writes a request body incrementally, to the pull based 'io.Reader'
// interface consumed by the HTTP transport; production and consumption interleave without buffering the whole payload.
package osstream

import (
	"errors"
	"io"
	"sync"
)

// ErrStreamClosed is returned to the producer when writing to a stream which has been abandoned by the consumer, for
// example because the transport failed before consuming the full body.
var ErrStreamClosed = errors.New("stream has been closed by the consumer")

// ProducerFunc writes the body to the given writer incrementally, in an arbitrary, possibly bursty pattern. It's run
// in its own goroutine; returning a non-nil error aborts the stream and the error propagates out of the consumer's
// next read.
//
// NOTE: Producers must not assume they always run to completion, a write to an abandoned stream fails with
// 'ErrStreamClosed'.
type ProducerFunc func(writer io.Writer) error

// Stream adapts a single producer to a single consumer using a synchronous handoff; each write blocks until the
// consumer has taken the bytes, giving natural backpressure whilst preserving write ordering.
//
// A stream must not be shared by multiple concurrent readers, each streaming upload owns its own.
type Stream struct {
	chunks chan []byte
	done   chan struct{}
	closed chan struct{}

	leftover []byte
	err      error

	closeOnce sync.Once
}

var _ io.ReadCloser = (*Stream)(nil)

// NewStream creates a stream and starts the given producer; the returned stream is the consumer side and is handed to
// the HTTP transport as a request body.
func NewStream(producer ProducerFunc) *Stream {
	stream := &Stream{
		chunks: make(chan []byte),
		done:   make(chan struct{}),
		closed: make(chan struct{}),
	}

	go stream.produce(producer)

	return stream
}

// produce runs the producer to completion recording its error, if any; 'done' is only closed once no write can be in
// flight, so a closed 'done' means the stream is fully drained bar the leftover bytes.
func (s *Stream) produce(producer ProducerFunc) {
	s.err = producer(&streamWriter{stream: s})

	close(s.done)
}

// Read returns buffered bytes if there are any, otherwise it blocks until the producer hands over its next write or
// finishes. Once the producer has finished and the buffer is drained, 'io.EOF' is returned.
func (s *Stream) Read(p []byte) (int, error) {
	if len(s.leftover) != 0 {
		n := copy(p, s.leftover)
		s.leftover = s.leftover[n:]

		return n, nil
	}

	select {
	case chunk := <-s.chunks:
		n := copy(p, chunk)
		s.leftover = chunk[n:]

		return n, nil
	case <-s.done:
		if s.err != nil {
			return 0, s.err
		}

		return 0, io.EOF
	case <-s.closed:
		return 0, ErrStreamClosed
	}
}

// Close abandons the stream; the producer isn't interrupted, its next write fails with 'ErrStreamClosed'.
//
// NOTE: The HTTP transport closes the request body once the request completes (or fails) meaning abandoned producers
// don't leak their goroutine blocked on a write.
func (s *Stream) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })

	return nil
}

// streamWriter is the producer side of the stream.
type streamWriter struct {
	stream *Stream
}

var _ io.Writer = (*streamWriter)(nil)

// Write hands the given bytes over to the consumer, blocking until they've been taken; bytes are copied since the
// producer is free to reuse its buffer once the write returns.
func (w *streamWriter) Write(p []byte) (int, error) {
	// Zero length writes are accepted, there's nothing to hand over and they don't terminate the stream
	if len(p) == 0 {
		return 0, nil
	}

	chunk := make([]byte, len(p))
	copy(chunk, p)

	select {
	case w.stream.chunks <- chunk:
		return len(p), nil
	case <-w.stream.closed:
		return 0, ErrStreamClosed
	}
}
