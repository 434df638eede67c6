// Package humanoid synthesizes human-like pointer movement and composes it
// with discrete button and wheel events. Trajectories follow a cubic Bezier
// with randomized symmetric control points plus deterministic hash-noise
// jitter; playback paces waypoints onto an injected platform sink.
package humanoid

import (
	"context"
	"time"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// Sink is the low-level capability set the motion core consumes from the
// host environment. Platform bindings implement it; tests substitute a
// recording mock. Sleep is routed through the sink so tests control time.
//
// Sink calls are fire-and-forget from the core's perspective: no retries,
// failures are surfaced once per operation and do not roll back motion that
// already happened.
type Sink interface {
	// CursorPosition reports the current pointer location.
	CursorPosition() (schemas.Point, error)
	// ScreenBounds reports the display dimensions used for clamping.
	ScreenBounds() (width, height int, err error)
	// SetCursorPosition performs an immediate absolute position set.
	SetCursorPosition(p schemas.Point) error
	// DispatchMouseEvent delivers one discrete input event.
	DispatchMouseEvent(data schemas.MouseEventData) error
	// Sleep suspends the calling goroutine for d, honoring ctx cancellation.
	Sleep(ctx context.Context, d time.Duration) error
}

// MoveOptions tunes a single move. A nil *MoveOptions means all defaults.
type MoveOptions struct {
	// Duration of the whole move. Zero or negative falls back to the
	// configured default.
	Duration time.Duration
	// Linear disables the curved, jittered path and interpolates straight
	// to the target.
	Linear bool
}

func (o *MoveOptions) duration(fallback time.Duration) time.Duration {
	if o == nil || o.Duration <= 0 {
		return fallback
	}
	return o.Duration
}

func (o *MoveOptions) linear() bool {
	return o != nil && o.Linear
}
