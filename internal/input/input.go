// Package input provides the platform bindings that deliver synthetic
// pointer events to the operating system. Windows goes through user32
// SendInput; every other platform uses robotgo. Calls surface OS errors
// as-is, with no retries.
package input

import (
	"context"
	"time"
)

// Sleep suspends the calling goroutine for d, returning early with the
// context's error if ctx is cancelled first.
func (s *Sink) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
