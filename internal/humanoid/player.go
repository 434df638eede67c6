package humanoid

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// clampPoint bounds each axis independently to [0, dimension-1].
func clampPoint(p schemas.Point, width, height int) schemas.Point {
	if p.X < 0 {
		p.X = 0
	} else if p.X > width-1 {
		p.X = width - 1
	}
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y > height-1 {
		p.Y = height - 1
	}
	return p
}

// play walks the waypoint sequence in order, clamping each waypoint to the
// screen, setting the cursor position and sleeping interval between steps.
// It returns the number of waypoints consumed.
//
// Cancellation is cooperative with per-waypoint granularity: the context and
// the interrupt flag are checked before every step, so the latency bound for
// a stop request is one interval. A stop via the interrupt flag is a normal
// outcome and returns a nil error alongside the shortened count.
//
// Sink positioning failures are non-fatal: playback continues, the first
// failure is remembered and returned once after the loop so partial motion
// is never rolled back. There are no retries.
//
// Callers must hold m.mu.
func (m *Mouse) play(ctx context.Context, path []schemas.Point, interval time.Duration) (int, error) {
	width, height, err := m.sink.ScreenBounds()
	haveBounds := err == nil
	if !haveBounds {
		m.logger.Warn("screen bounds unavailable, skipping clamp", zap.Error(err))
	}

	var firstErr error
	for i, wp := range path {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if m.interrupted.Load() {
			m.logger.Debug("playback interrupted",
				zap.Int("consumed", i),
				zap.Int("total", len(path)))
			return i, nil
		}

		if haveBounds {
			wp = clampPoint(wp, width, height)
		}
		if err := m.sink.SetCursorPosition(wp); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("humanoid: cursor positioning failed at %s: %w", wp, err)
			m.logger.Warn("cursor positioning failed, continuing playback",
				zap.Int("waypoint", i), zap.Error(err))
		}

		if err := m.sink.Sleep(ctx, interval); err != nil {
			return i + 1, err
		}
	}
	return len(path), firstErr
}
