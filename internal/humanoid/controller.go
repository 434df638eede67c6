package humanoid

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
	"github.com/zhuchkkll-blip/nbClass/internal/config"
)

// Mouse is the action controller. It composes planned trajectories with
// discrete button and wheel events on top of an injected Sink.
//
// All public operations execute as blocking sequences of sink calls and
// sleeps on the calling goroutine; there is no internal parallelism. One
// operation runs at a time per instance. The interrupt flag is the only
// state shared across goroutines: Stop and Reset may be called from another
// goroutine while a move is in flight and take effect at the next waypoint
// boundary.
type Mouse struct {
	// mu serializes operations. Methods that read or advance rng state must
	// hold it.
	mu     sync.Mutex
	cfg    config.MotionConfig
	logger *zap.Logger
	sink   Sink
	rng    *rand.Rand

	// interrupted is cleared at construction, set by Stop, cleared by Reset
	// and read before every playback step.
	interrupted atomic.Bool
}

// New creates a Mouse controller. A nil logger is replaced with a no-op
// logger. Configuration values are normalized rather than rejected.
func New(cfg config.MotionConfig, logger *zap.Logger, sink Sink) *Mouse {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg.Normalize()
	return &Mouse{
		cfg:    cfg,
		logger: logger,
		sink:   sink,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewTestMouse creates a controller with a deterministic rng for tests.
func NewTestMouse(sink Sink, seed int64) *Mouse {
	m := New(config.DefaultMotion(), zap.NewNop(), sink)
	m.rng = rand.New(rand.NewSource(seed))
	return m
}

// Stop requests cooperative cancellation of the operation in flight. It is
// honored at the next waypoint boundary, not mid-step, and stays in effect
// until Reset is called. Safe to call from any goroutine.
func (m *Mouse) Stop() {
	m.interrupted.Store(true)
}

// Reset clears a previous Stop so subsequent operations run to completion.
func (m *Mouse) Reset() {
	m.interrupted.Store(false)
}

// MoveTo moves the pointer from its current position to target. With default
// options the path is curved and jittered and the move takes the configured
// default duration. A stopped or context-cancelled move leaves the pointer
// at the last waypoint reached; the partial motion is considered successful.
func (m *Mouse) MoveTo(ctx context.Context, target schemas.Point, opts *MoveOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.moveTo(ctx, target, opts)
}

// moveTo is the non-locking core of MoveTo; callers hold m.mu.
func (m *Mouse) moveTo(ctx context.Context, target schemas.Point, opts *MoveOptions) error {
	start, err := m.sink.CursorPosition()
	if err != nil {
		return fmt.Errorf("humanoid: cursor position query failed: %w", err)
	}

	duration := opts.duration(m.cfg.MoveDuration)
	steps := int(duration.Seconds() * float64(m.cfg.FPS))
	if steps < 1 {
		steps = 1
	}
	interval := duration / time.Duration(steps)
	humanlike := m.cfg.Humanlike && !opts.linear()

	path := m.planPath(start, target, steps, humanlike)
	consumed, err := m.play(ctx, path, interval)

	m.logger.Debug("move finished",
		zap.Stringer("from", start),
		zap.Stringer("to", target),
		zap.Int("steps", steps),
		zap.Int("consumed", consumed),
		zap.Bool("humanlike", humanlike))
	return err
}

// Click presses and releases a button with a randomized hold interval. If
// target is non-nil the pointer first moves there with default options;
// otherwise the click happens wherever the pointer currently is.
func (m *Mouse) Click(ctx context.Context, target *schemas.Point, button schemas.MouseButton) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("click",
		zap.String("gesture_id", uuid.NewString()),
		zap.String("button", string(button)))
	return m.click(ctx, target, button)
}

// click is the non-locking click core; callers hold m.mu.
//
// Positioning failures during the approach are non-fatal: the press/release
// pair is still issued at whatever position was reached, and the first error
// is reported once at the end.
func (m *Mouse) click(ctx context.Context, target *schemas.Point, button schemas.MouseButton) error {
	var reported error
	if target != nil {
		if err := m.moveTo(ctx, *target, nil); err != nil {
			if ctx.Err() != nil {
				return err
			}
			reported = err
		}
	}

	if err := m.dispatchButton(schemas.MousePress, button); err != nil && reported == nil {
		reported = err
	}

	hold := m.randDuration(m.cfg.ClickHoldMinMs, m.cfg.ClickHoldMaxMs)
	if err := m.sink.Sleep(ctx, hold); err != nil {
		// Release before bailing so the button is not left stuck down.
		_ = m.dispatchButton(schemas.MouseRelease, button)
		return err
	}

	if err := m.dispatchButton(schemas.MouseRelease, button); err != nil && reported == nil {
		reported = err
	}
	return reported
}

// DoubleClick performs two clicks separated by a randomized gap. Only the
// first click may move the pointer; the second fires at the position the
// first one ended at.
func (m *Mouse) DoubleClick(ctx context.Context, target *schemas.Point, button schemas.MouseButton) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("double click",
		zap.String("gesture_id", uuid.NewString()),
		zap.String("button", string(button)))

	var reported error
	if err := m.click(ctx, target, button); err != nil {
		if ctx.Err() != nil {
			return err
		}
		reported = err
	}
	gap := m.randDuration(m.cfg.DoubleClickGapMinMs, m.cfg.DoubleClickGapMaxMs)
	if err := m.sink.Sleep(ctx, gap); err != nil {
		return err
	}
	if err := m.click(ctx, nil, button); err != nil && reported == nil {
		reported = err
	}
	return reported
}

// Drag moves to from, presses button, holds briefly, moves to to over
// duration and releases. The release always matches the pressed button.
func (m *Mouse) Drag(ctx context.Context, from, to schemas.Point, duration time.Duration, button schemas.MouseButton) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("drag",
		zap.String("gesture_id", uuid.NewString()),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Duration("duration", duration),
		zap.String("button", string(button)))

	var reported error
	if err := m.moveTo(ctx, from, nil); err != nil {
		if ctx.Err() != nil {
			return err
		}
		reported = err
	}

	if err := m.dispatchButton(schemas.MousePress, button); err != nil && reported == nil {
		reported = err
	}

	hold := time.Duration(m.cfg.DragHoldMs) * time.Millisecond
	if err := m.sink.Sleep(ctx, hold); err != nil {
		_ = m.dispatchButton(schemas.MouseRelease, button)
		return err
	}

	if err := m.moveTo(ctx, to, &MoveOptions{Duration: duration}); err != nil {
		if ctx.Err() != nil {
			// Drop what we grabbed even on cancellation.
			_ = m.dispatchButton(schemas.MouseRelease, button)
			return err
		}
		if reported == nil {
			reported = err
		}
	}

	if err := m.dispatchButton(schemas.MouseRelease, button); err != nil && reported == nil {
		reported = err
	}
	return reported
}

// Scroll injects a single wheel event. Positive clicks scroll up, negative
// down; the magnitude is clicks times the configured wheel-delta unit.
func (m *Mouse) Scroll(ctx context.Context, clicks int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delta := clicks * m.cfg.WheelDelta
	m.logger.Debug("scroll", zap.Int("clicks", clicks), zap.Int("delta", delta))
	return m.sink.DispatchMouseEvent(schemas.MouseEventData{
		Type:       schemas.MouseWheel,
		WheelDelta: delta,
	})
}

// ButtonDown injects a single raw press with no timing attached. Pairing
// with ButtonUp is the caller's responsibility; consecutive downs are
// forwarded as issued.
func (m *Mouse) ButtonDown(ctx context.Context, button schemas.MouseButton) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchButton(schemas.MousePress, button)
}

// ButtonUp injects a single raw release with no timing attached.
func (m *Mouse) ButtonUp(ctx context.Context, button schemas.MouseButton) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchButton(schemas.MouseRelease, button)
}

func (m *Mouse) dispatchButton(kind schemas.MouseEventType, button schemas.MouseButton) error {
	return m.sink.DispatchMouseEvent(schemas.MouseEventData{
		Type:   kind,
		Button: button,
	})
}

// randDuration draws uniformly from [minMs, maxMs] milliseconds. Callers
// hold m.mu.
func (m *Mouse) randDuration(minMs, maxMs int) time.Duration {
	if maxMs <= minMs {
		return time.Duration(minMs) * time.Millisecond
	}
	ms := float64(minMs) + m.rng.Float64()*float64(maxMs-minMs)
	return time.Duration(ms * float64(time.Millisecond))
}
