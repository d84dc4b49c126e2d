package s3

import (
	"context"
	"io"

	"golang.org/x/time/rate"
)

// throttleChunk bounds the size of a single limiter reservation. WaitN
// rejects requests larger than the limiter burst, so writes are split
// into chunks no bigger than this.
const throttleChunk = 256 * 1024

// throttledWriter limits the byte rate flowing into the wrapped writer.
type throttledWriter struct {
	ctx     context.Context
	w       io.Writer
	limiter *rate.Limiter
}

func newThrottledWriter(ctx context.Context, w io.Writer, bytesPerSecond int) *throttledWriter {
	burst := bytesPerSecond
	if burst < throttleChunk {
		burst = throttleChunk
	}

	return &throttledWriter{
		ctx:     ctx,
		w:       w,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSecond), burst),
	}
}

func (t *throttledWriter) Write(p []byte) (int, error) {
	written := 0

	for len(p) > 0 {
		n := len(p)
		if n > throttleChunk {
			n = throttleChunk
		}

		if err := t.limiter.WaitN(t.ctx, n); err != nil {
			return written, err
		}

		m, err := t.w.Write(p[:n])
		written += m
		if err != nil {
			return written, err
		}

		p = p[n:]
	}

	return written, nil
}
