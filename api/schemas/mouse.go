// Package schemas defines the shared data types exchanged between the
// motion core and the platform input bindings.
package schemas

import "fmt"

// Point is a screen-space pixel coordinate. It is an immutable value type.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String renders the point as "(x, y)" for logs and error messages.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MouseEventType defines the type of a mouse event.
type MouseEventType string

const (
	MouseMove    MouseEventType = "mouseMoved"
	MousePress   MouseEventType = "mousePressed"
	MouseRelease MouseEventType = "mouseReleased"
	MouseWheel   MouseEventType = "mouseWheel"
)

// MouseButton identifies the physical button a press or release refers to.
type MouseButton string

const (
	ButtonNone   MouseButton = "none"
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// ParseMouseButton maps a user-supplied button name to a MouseButton.
// Unknown names fall back to the left button, matching common automation
// tooling defaults.
func ParseMouseButton(name string) MouseButton {
	switch MouseButton(name) {
	case ButtonRight:
		return ButtonRight
	case ButtonMiddle:
		return ButtonMiddle
	default:
		return ButtonLeft
	}
}

// MouseEventData encapsulates one discrete synthetic input event as handed
// to a platform sink. X/Y carry the cursor position the event applies to;
// WheelDelta is only meaningful for MouseWheel events and is expressed in
// platform wheel-delta units (one detent = 120).
type MouseEventData struct {
	Type       MouseEventType `json:"type"`
	X          int            `json:"x"`
	Y          int            `json:"y"`
	Button     MouseButton    `json:"button"`
	WheelDelta int            `json:"wheelDelta,omitempty"`
}
