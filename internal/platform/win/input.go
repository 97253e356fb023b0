//go:build windows

package win

import (
	"fmt"
	"unsafe"

	"noteremote/internal/platform"
)

const (
	wheelDelta = 120

	mouseEventWheel = 0x0800
	keyEventKeyUp   = 0x0002

	vkUp   = 0x26
	vkDown = 0x28
)

// mouseInput mirrors MOUSEINPUT; keybdInput mirrors KEYBDINPUT. Both input
// structs are padded to the full INPUT size so SendInput sees the union the
// C header declares.
type mouseInput struct {
	dx        int32
	dy        int32
	mouseData uint32
	flags     uint32
	time      uint32
	extraInfo uintptr
}

type keybdInput struct {
	vk        uint16
	scan      uint16
	flags     uint32
	time      uint32
	extraInfo uintptr
}

type inputMouse struct {
	typ uint32 // INPUT_MOUSE = 0
	_   uint32
	mi  mouseInput
}

type inputKeyboard struct {
	typ uint32 // INPUT_KEYBOARD = 1
	_   uint32
	ki  keybdInput
	_   [8]byte
}

// Input injects wheel and keyboard events through SendInput.
type Input struct{}

// WheelAt moves the cursor to the coordinate and injects steps wheel
// detents there. Positive steps rotate away from the user (scroll up).
func (Input) WheelAt(x, y, steps int) error {
	if steps == 0 {
		return nil
	}
	procSetCursorPos.Call(uintptr(x), uintptr(y))

	in := inputMouse{
		typ: 0,
		mi: mouseInput{
			mouseData: uint32(int32(steps * wheelDelta)),
			flags:     mouseEventWheel,
		},
	}
	sent, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if sent == 0 {
		return fmt.Errorf("wheel input rejected: %w", err)
	}
	return nil
}

// PressKey injects repeats full press-release cycles of the key.
func (Input) PressKey(key platform.Key, repeats int) error {
	vk := uint16(vkUp)
	if key == platform.KeyDown {
		vk = vkDown
	}
	if repeats < 1 {
		repeats = 1
	}

	for i := 0; i < repeats; i++ {
		for _, flags := range []uint32{0, keyEventKeyUp} {
			in := inputKeyboard{
				typ: 1,
				ki:  keybdInput{vk: vk, flags: flags},
			}
			sent, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
			if sent == 0 {
				return fmt.Errorf("key input rejected: %w", err)
			}
		}
	}
	return nil
}
