package platform

import "noteremote/internal/model"

// Enumerator lists visible top-level windows on the desktop.
type Enumerator interface {
	// Enumerate returns every currently visible top-level window. When
	// titleFilters is non-empty, only windows whose title contains at least
	// one filter substring (case-insensitive) are returned; this is a
	// performance optimization, not a correctness filter, so callers that
	// need exact semantics must re-check. Windows that fail to be inspected
	// are silently skipped — enumeration as a whole never fails, it returns
	// an empty list in the worst case.
	Enumerate(titleFilters []string) []model.WindowInfo
}

// ProcessInspector resolves process metadata by pid.
type ProcessInspector interface {
	// ExecutablePath returns the full image path of the process, or "" when
	// the pid is zero, the process cannot be opened, or the path cannot be
	// read. The error return is reserved for unexpected internal failures;
	// the ordinary "cannot resolve" outcomes are ("", nil).
	ExecutablePath(pid uint32) (string, error)
}

// Window is a live reference to an open top-level window.
type Window interface {
	Handle() model.Handle
	IsVisible() bool
	Title() (string, error)
	ClassName() (string, error)
	ProcessID() (uint32, error)
}

// Element is one node of the target window's accessibility tree, exposed as
// a capability-typed object. Capabilities the element does not support
// return an error wrapping ErrNotSupported; an element that disappeared
// mid-operation returns an error wrapping ErrVanished.
type Element interface {
	// Name returns the element's display text, best-effort ("" on failure).
	Name() string
	Rect() (model.Rect, error)
	ScrollIntoView() error
	IsSelected() (bool, error)
	Select() error
	// Invoke activates the element, the fallback when Select is refused.
	Invoke() error
}

// Container is a scrollable Tree or List control.
type Container interface {
	Element

	// ScrollByPattern applies the native scroll pattern once, by a small or
	// large increment in the given direction.
	ScrollByPattern(dir model.Direction, small bool) error
	// WheelScroll is the container-provided wheel convenience method.
	WheelScroll(steps int) error
	// WheelInput is the container-provided raw wheel-input method.
	WheelInput(steps int) error

	// Selection returns the selected elements via the dedicated selection
	// query. SelectionPattern is the lower-level pattern interface tried
	// when the dedicated query yields nothing.
	Selection() ([]Element, error)
	SelectionPattern() ([]Element, error)

	// Children returns the container's immediate children; Items returns
	// all descendants of the given control type ("TreeItem", "ListItem").
	Children() ([]Element, error)
	Items(controlType string) ([]Element, error)

	Focus() error
}

// Desktop opens live window references and the automation tree behind them.
type Desktop interface {
	OpenWindow(h model.Handle) (Window, error)
	// FindScrollContainer locates the first Tree control inside the window,
	// falling back to the first List control.
	FindScrollContainer(w Window) (Container, error)
}

// Key is an injectable keyboard key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
)

// Input simulates mouse-wheel and keyboard input at the OS level.
type Input interface {
	// WheelAt injects wheel rotation at a screen coordinate. Positive steps
	// scroll up, negative scroll down.
	WheelAt(x, y, steps int) error
	PressKey(key Key, repeats int) error
}
