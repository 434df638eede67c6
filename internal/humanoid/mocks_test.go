package humanoid

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// mockSink implements the Sink interface for testing. It records every call
// in order and never actually sleeps, so playback runs instantly.
//
// Mock callbacks run while the Mouse under test holds its own mutex; they
// must not call back into locking Mouse methods. Stop/Reset are safe because
// the interrupt flag is atomic.
type mockSink struct {
	mu        sync.Mutex
	positions []schemas.Point
	events    []schemas.MouseEventData
	sleeps    []time.Duration
	// ops records the interleaving of position sets and dispatched events,
	// which the per-kind slices cannot show.
	ops []string

	cursor    schemas.Point
	cursorErr error

	width     int
	height    int
	boundsErr error

	setErr      error
	dispatchErr error

	setCalls int
	// onSetPosition, when set, runs after each position set with the
	// 1-based call count. Used to trigger Stop or context cancellation
	// mid-playback.
	onSetPosition func(call int)
}

func newMockSink() *mockSink {
	return &mockSink{width: 1920, height: 1080}
}

func (m *mockSink) CursorPosition() (schemas.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cursorErr != nil {
		return schemas.Point{}, m.cursorErr
	}
	return m.cursor, nil
}

func (m *mockSink) ScreenBounds() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.boundsErr != nil {
		return 0, 0, m.boundsErr
	}
	return m.width, m.height, nil
}

func (m *mockSink) SetCursorPosition(p schemas.Point) error {
	m.mu.Lock()
	m.setCalls++
	call := m.setCalls
	m.positions = append(m.positions, p)
	m.ops = append(m.ops, "set")
	m.cursor = p
	hook := m.onSetPosition
	err := m.setErr
	m.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	return err
}

func (m *mockSink) DispatchMouseEvent(data schemas.MouseEventData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, data)
	m.ops = append(m.ops, fmt.Sprintf("event:%s:%s", data.Type, data.Button))
	return m.dispatchErr
}

func (m *mockSink) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	return nil
}

// Accessors copy under the lock to stay race-detector clean.

func (m *mockSink) recordedPositions() []schemas.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]schemas.Point, len(m.positions))
	copy(out, m.positions)
	return out
}

func (m *mockSink) recordedEvents() []schemas.MouseEventData {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]schemas.MouseEventData, len(m.events))
	copy(out, m.events)
	return out
}

func (m *mockSink) recordedSleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.sleeps))
	copy(out, m.sleeps)
	return out
}

func (m *mockSink) recordedOps() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.ops))
	copy(out, m.ops)
	return out
}
