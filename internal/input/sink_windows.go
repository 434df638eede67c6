//go:build windows

package input

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// Win32 constants for SendInput and GetSystemMetrics.
const (
	mouseEventfLeftDown   = 0x0002
	mouseEventfLeftUp     = 0x0004
	mouseEventfRightDown  = 0x0008
	mouseEventfRightUp    = 0x0010
	mouseEventfMiddleDown = 0x0020
	mouseEventfMiddleUp   = 0x0040
	mouseEventfWheel      = 0x0800

	smCxScreen = 0
	smCyScreen = 1

	inputMouse = 0
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos     = user32.NewProc("GetCursorPos")
	procSetCursorPos     = user32.NewProc("SetCursorPos")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procSendInput        = user32.NewProc("SendInput")
)

type point32 struct {
	X int32
	Y int32
}

// mouseInput mirrors the Win32 MOUSEINPUT struct.
type mouseInput struct {
	Dx        int32
	Dy        int32
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// mousePacket mirrors the Win32 INPUT struct for a mouse event. The explicit
// pad aligns the embedded union to 8 bytes on 64-bit Windows.
type mousePacket struct {
	Type uint32
	_    uint32
	Mi   mouseInput
}

// Sink delivers synthetic input through the Win32 user32 API.
type Sink struct{}

// New returns the Windows input sink.
func New() *Sink {
	return &Sink{}
}

// CursorPosition reports the current pointer location.
func (s *Sink) CursorPosition() (schemas.Point, error) {
	var pt point32
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return schemas.Point{}, fmt.Errorf("input: GetCursorPos failed: %w", err)
	}
	return schemas.Point{X: int(pt.X), Y: int(pt.Y)}, nil
}

// ScreenBounds reports the primary display dimensions.
func (s *Sink) ScreenBounds() (int, int, error) {
	w, _, _ := procGetSystemMetrics.Call(smCxScreen)
	h, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if w == 0 || h == 0 {
		return 0, 0, errors.New("input: GetSystemMetrics reported zero screen size")
	}
	return int(w), int(h), nil
}

// SetCursorPosition performs an immediate absolute position set.
func (s *Sink) SetCursorPosition(p schemas.Point) error {
	ret, _, err := procSetCursorPos.Call(uintptr(int32(p.X)), uintptr(int32(p.Y)))
	if ret == 0 {
		return fmt.Errorf("input: SetCursorPos%s failed: %w", p, err)
	}
	return nil
}

// DispatchMouseEvent delivers one discrete button or wheel event via
// SendInput.
func (s *Sink) DispatchMouseEvent(data schemas.MouseEventData) error {
	flags, mouseData, err := eventFlags(data)
	if err != nil {
		return err
	}
	packet := mousePacket{
		Type: inputMouse,
		Mi: mouseInput{
			MouseData: mouseData,
			Flags:     flags,
		},
	}
	sent, _, callErr := procSendInput.Call(1, uintptr(unsafe.Pointer(&packet)), unsafe.Sizeof(packet))
	if sent != 1 {
		return fmt.Errorf("input: SendInput failed for %s event: %w", data.Type, callErr)
	}
	return nil
}

func eventFlags(data schemas.MouseEventData) (flags, mouseData uint32, err error) {
	switch data.Type {
	case schemas.MouseWheel:
		// Wheel magnitude travels as a signed value in the mouseData field.
		return mouseEventfWheel, uint32(int32(data.WheelDelta)), nil
	case schemas.MousePress:
		switch data.Button {
		case schemas.ButtonRight:
			return mouseEventfRightDown, 0, nil
		case schemas.ButtonMiddle:
			return mouseEventfMiddleDown, 0, nil
		default:
			return mouseEventfLeftDown, 0, nil
		}
	case schemas.MouseRelease:
		switch data.Button {
		case schemas.ButtonRight:
			return mouseEventfRightUp, 0, nil
		case schemas.ButtonMiddle:
			return mouseEventfMiddleUp, 0, nil
		default:
			return mouseEventfLeftUp, 0, nil
		}
	default:
		return 0, 0, fmt.Errorf("input: unsupported mouse event type %q", data.Type)
	}
}
