//go:build windows

package win

import (
	"fmt"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// win32Window reads window attributes straight from user32 each call, so a
// stale handle is noticed at the first access rather than cached over.
type win32Window struct {
	hwnd uintptr
}

var _ platform.Window = win32Window{}

func (w win32Window) Handle() model.Handle { return model.Handle(w.hwnd) }
func (w win32Window) IsVisible() bool      { return isWindowVisible(w.hwnd) }

func (w win32Window) Title() (string, error) {
	if err := w.check(); err != nil {
		return "", err
	}
	return windowText(w.hwnd), nil
}

func (w win32Window) ClassName() (string, error) {
	if err := w.check(); err != nil {
		return "", err
	}
	return windowClassName(w.hwnd), nil
}

func (w win32Window) ProcessID() (uint32, error) {
	if err := w.check(); err != nil {
		return 0, err
	}
	return windowProcessID(w.hwnd), nil
}

func (w win32Window) check() error {
	if !isWindow(w.hwnd) {
		return fmt.Errorf("window %#x: %w", w.hwnd, platform.ErrVanished)
	}
	return nil
}

// Desktop opens windows by handle and locates their scrollable content.
type Desktop struct {
	client *Client
}

var _ platform.Desktop = (*Desktop)(nil)

// OpenWindow validates the handle still names a live window.
func (d *Desktop) OpenWindow(h model.Handle) (platform.Window, error) {
	if h == 0 || !isWindow(uintptr(h)) {
		return nil, fmt.Errorf("window %#x: %w", uintptr(h), platform.ErrVanished)
	}
	return win32Window{hwnd: uintptr(h)}, nil
}

// FindScrollContainer locates the window's navigation container: the first
// Tree descendant, or failing that the first List.
func (d *Desktop) FindScrollContainer(w platform.Window) (platform.Container, error) {
	var out platform.Container
	err := d.client.do(func() error {
		root, err := d.client.elementFromHandle(uintptr(w.Handle()))
		if err != nil {
			return err
		}

		for _, controlType := range []int32{controlTypeTree, controlTypeList} {
			cond, err := d.client.controlTypeCondition(controlType)
			if err != nil {
				return err
			}
			found, err := findFirst(root, treeScopeDescendants, cond)
			if err != nil {
				return err
			}
			if found != nil {
				out = newContainer(d.client, found)
				return nil
			}
		}
		return fmt.Errorf("window %#x has no tree or list container", uintptr(w.Handle()))
	})
	return out, err
}
