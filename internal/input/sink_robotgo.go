//go:build !windows

package input

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// wheelDetentUnit is the Win32 wheel-delta convention the core speaks;
// robotgo scrolls in whole detents, so deltas are divided back down.
const wheelDetentUnit = 120

// Sink delivers synthetic input through robotgo's portable bindings.
type Sink struct{}

// New returns the robotgo-backed input sink.
func New() *Sink {
	return &Sink{}
}

// CursorPosition reports the current pointer location.
func (s *Sink) CursorPosition() (schemas.Point, error) {
	x, y := robotgo.Location()
	return schemas.Point{X: x, Y: y}, nil
}

// ScreenBounds reports the primary display dimensions.
func (s *Sink) ScreenBounds() (int, int, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("input: robotgo reported invalid screen size %dx%d", w, h)
	}
	return w, h, nil
}

// SetCursorPosition performs an immediate absolute position set.
func (s *Sink) SetCursorPosition(p schemas.Point) error {
	robotgo.Move(p.X, p.Y)
	return nil
}

// DispatchMouseEvent delivers one discrete button or wheel event.
func (s *Sink) DispatchMouseEvent(data schemas.MouseEventData) error {
	switch data.Type {
	case schemas.MousePress:
		return robotgo.Toggle(buttonName(data.Button), "down")
	case schemas.MouseRelease:
		return robotgo.Toggle(buttonName(data.Button), "up")
	case schemas.MouseWheel:
		robotgo.Scroll(0, data.WheelDelta/wheelDetentUnit)
		return nil
	default:
		return fmt.Errorf("input: unsupported mouse event type %q", data.Type)
	}
}

// buttonName maps the shared button enum onto robotgo's naming, which calls
// the middle button "center".
func buttonName(b schemas.MouseButton) string {
	switch b {
	case schemas.ButtonRight:
		return "right"
	case schemas.ButtonMiddle:
		return "center"
	default:
		return "left"
	}
}
