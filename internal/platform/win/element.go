//go:build windows

package win

import (
	"syscall"
	"unsafe"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// uiaElement adapts an IUIAutomationElement to the platform Element
// interface. Pattern objects are fetched per call and released before
// returning, so the wrapper holds only the element reference. Every method
// body runs on the client's COM thread.
type uiaElement struct {
	client *Client
	el     *iElement
}

var _ platform.Element = (*uiaElement)(nil)

func (e *uiaElement) Name() string {
	var name string
	if err := e.client.do(func() error {
		var err error
		name, err = currentName(e.el)
		return err
	}); err != nil {
		return ""
	}
	return name
}

func (e *uiaElement) Rect() (model.Rect, error) {
	var r model.Rect
	err := e.client.do(func() error {
		left, top, right, bottom, err := currentRect(e.el)
		if err != nil {
			return err
		}
		r = model.Rect{Left: int(left), Top: int(top), Right: int(right), Bottom: int(bottom)}
		return nil
	})
	return r, err
}

func (e *uiaElement) ScrollIntoView() error {
	return e.client.do(func() error {
		p, err := currentPattern(e.el, patternScrollItem)
		if err != nil {
			return err
		}
		si := (*iScrollItem)(p)
		hr, _, _ := syscall.SyscallN(si.vtbl.scrollIntoView, uintptr(p))
		release(uintptr(p), si.vtbl.release)
		if int32(hr) < 0 {
			return hrError("ScrollIntoView", hr)
		}
		return nil
	})
}

func (e *uiaElement) IsSelected() (bool, error) {
	var selected bool
	err := e.client.do(func() error {
		p, err := currentPattern(e.el, patternSelectionItem)
		if err != nil {
			return err
		}
		si := (*iSelectionItem)(p)
		var v int32
		hr, _, _ := syscall.SyscallN(si.vtbl.getCurIsSelected, uintptr(p), uintptr(unsafe.Pointer(&v)))
		release(uintptr(p), si.vtbl.release)
		if int32(hr) < 0 {
			return hrError("get_CurrentIsSelected", hr)
		}
		selected = v != 0
		return nil
	})
	return selected, err
}

func (e *uiaElement) Select() error {
	return e.client.do(func() error {
		p, err := currentPattern(e.el, patternSelectionItem)
		if err != nil {
			return err
		}
		si := (*iSelectionItem)(p)
		hr, _, _ := syscall.SyscallN(si.vtbl.selectElement, uintptr(p))
		release(uintptr(p), si.vtbl.release)
		if int32(hr) < 0 {
			return hrError("SelectionItem.Select", hr)
		}
		return nil
	})
}

func (e *uiaElement) Invoke() error {
	return e.client.do(func() error {
		p, err := currentPattern(e.el, patternInvoke)
		if err != nil {
			return err
		}
		inv := (*iInvoke)(p)
		hr, _, _ := syscall.SyscallN(inv.vtbl.invoke, uintptr(p))
		release(uintptr(p), inv.vtbl.release)
		if int32(hr) < 0 {
			return hrError("Invoke", hr)
		}
		return nil
	})
}

// uiaContainer is a scrollable container element: the Tree or List that
// holds the items being centered.
type uiaContainer struct {
	uiaElement
}

var _ platform.Container = (*uiaContainer)(nil)

func newContainer(c *Client, el *iElement) *uiaContainer {
	return &uiaContainer{uiaElement{client: c, el: el}}
}

// ScrollByPattern drives the container's ScrollPattern vertically by one
// small or large increment in the given direction.
func (c *uiaContainer) ScrollByPattern(dir model.Direction, small bool) error {
	return c.client.do(func() error {
		p, err := currentPattern(c.el, patternScroll)
		if err != nil {
			return err
		}
		sp := (*iScroll)(p)

		vertical := scrollLargeIncrement
		switch {
		case dir == model.ScrollUp && small:
			vertical = scrollSmallDecrement
		case dir == model.ScrollUp:
			vertical = scrollLargeDecrement
		case small:
			vertical = scrollSmallIncrement
		}

		hr, _, _ := syscall.SyscallN(sp.vtbl.scroll, uintptr(p), uintptr(scrollNoAmount), uintptr(vertical))
		release(uintptr(p), sp.vtbl.release)
		if int32(hr) < 0 {
			return hrError("Scroll", hr)
		}
		return nil
	})
}

// WheelScroll and WheelInput exist for toolkits that expose scroll methods
// directly on the container object. UI Automation has no such surface, so
// both defer to the coordinate-wheel fallback.
func (c *uiaContainer) WheelScroll(steps int) error { return platform.ErrNotSupported }

func (c *uiaContainer) WheelInput(steps int) error { return platform.ErrNotSupported }

// Selection lists the currently selected descendants, preferring a direct
// IsSelected property scan over the SelectionPattern.
func (c *uiaContainer) Selection() ([]platform.Element, error) {
	var out []platform.Element
	err := c.client.do(func() error {
		cond, err := c.client.isSelectedCondition()
		if err != nil {
			return err
		}
		items, err := findAll(c.el, treeScopeDescendants, cond)
		if err != nil {
			return err
		}
		out = c.wrapAll(items)
		return nil
	})
	return out, err
}

// SelectionPattern asks the container's SelectionPattern for its current
// selection.
func (c *uiaContainer) SelectionPattern() ([]platform.Element, error) {
	var out []platform.Element
	err := c.client.do(func() error {
		p, err := currentPattern(c.el, patternSelection)
		if err != nil {
			return err
		}
		sp := (*iSelection)(p)
		defer release(uintptr(p), sp.vtbl.release)

		var arr *iElementArray
		hr, _, _ := syscall.SyscallN(sp.vtbl.getCurrentSelection, uintptr(p), uintptr(unsafe.Pointer(&arr)))
		if int32(hr) < 0 {
			return hrError("GetCurrentSelection", hr)
		}
		if arr == nil {
			return nil
		}
		defer release(uintptr(unsafe.Pointer(arr)), arr.vtbl.release)

		var length int32
		hr, _, _ = syscall.SyscallN(arr.vtbl.getLength, uintptr(unsafe.Pointer(arr)), uintptr(unsafe.Pointer(&length)))
		if int32(hr) < 0 {
			return hrError("ElementArray.Length", hr)
		}
		var items []*iElement
		for i := int32(0); i < length; i++ {
			var item *iElement
			hr, _, _ = syscall.SyscallN(arr.vtbl.getElement, uintptr(unsafe.Pointer(arr)), uintptr(i), uintptr(unsafe.Pointer(&item)))
			if int32(hr) < 0 || item == nil {
				continue
			}
			items = append(items, item)
		}
		out = c.wrapAll(items)
		return nil
	})
	return out, err
}

// Children lists the container's direct children.
func (c *uiaContainer) Children() ([]platform.Element, error) {
	var out []platform.Element
	err := c.client.do(func() error {
		cond, err := c.client.trueCondition()
		if err != nil {
			return err
		}
		items, err := findAll(c.el, treeScopeChildren, cond)
		if err != nil {
			return err
		}
		out = c.wrapAll(items)
		return nil
	})
	return out, err
}

// Items lists descendants of the named control type ("TreeItem" or
// "ListItem").
func (c *uiaContainer) Items(controlType string) ([]platform.Element, error) {
	id := int32(controlTypeTreeItem)
	if controlType == "ListItem" {
		id = controlTypeListItem
	}
	var out []platform.Element
	err := c.client.do(func() error {
		cond, err := c.client.controlTypeCondition(id)
		if err != nil {
			return err
		}
		items, err := findAll(c.el, treeScopeDescendants, cond)
		if err != nil {
			return err
		}
		out = c.wrapAll(items)
		return nil
	})
	return out, err
}

func (c *uiaContainer) Focus() error {
	return c.client.do(func() error {
		return setFocus(c.el)
	})
}

func (c *uiaContainer) wrapAll(items []*iElement) []platform.Element {
	out := make([]platform.Element, 0, len(items))
	for _, item := range items {
		out = append(out, &uiaElement{client: c.client, el: item})
	}
	return out
}
