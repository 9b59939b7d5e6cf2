package mirror

import (
	"context"
	"time"
)

// LogFunc receives printf-style progress messages.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the pauses between download attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retry runs fn once, then once more after each delay for as long as it
// keeps failing. Cancellation of ctx ends the loop with ctx.Err().
func Retry(ctx context.Context, name string, delays []time.Duration, logf LogFunc, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	for i, delay := range delays {
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if logf != nil {
			logf("retry %s (attempt %d): %v", name, i+2, err)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		err = fn(ctx)
	}
	return err
}
