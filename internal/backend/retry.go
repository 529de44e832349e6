package backend

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned when every attempt of Retry failed.
var ErrExhausted = errors.New("retries exhausted")

// Retry calls fn up to attempts times, pacing calls interval apart. It
// returns nil on the first success. When every attempt fails the last error
// is returned wrapped with ErrExhausted; a cancelled ctx ends the loop early
// with the context error.
func Retry(ctx context.Context, attempts int, interval time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}
	pace := newThrottle(interval)
	var last error
	for i := 0; i < attempts; i++ {
		if err := pace.wait(ctx); err != nil {
			if last == nil {
				return err
			}
			return fmt.Errorf("%w: %w", err, last)
		}
		if last = fn(ctx); last == nil {
			return nil
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempts, last)
}
