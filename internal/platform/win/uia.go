//go:build windows

package win

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"noteremote/internal/platform"
)

// Minimal UI Automation COM client: just the interfaces and vtable slots
// the resolver and the centering engine need. Vtables are laid out per
// UIAutomationClient.h; only the leading slots up to the last one we call
// are named, the rest are never dereferenced.

var (
	ole32              = windows.NewLazySystemDLL("ole32.dll")
	oleaut32           = windows.NewLazySystemDLL("oleaut32.dll")
	procCoInitializeEx = ole32.NewProc("CoInitializeEx")
	procCoCreateInst   = ole32.NewProc("CoCreateInstance")
	procSysFreeString  = oleaut32.NewProc("SysFreeString")
)

var (
	clsidCUIAutomation = windows.GUID{Data1: 0xff48dba4, Data2: 0x60ef, Data3: 0x4201, Data4: [8]byte{0xaa, 0x87, 0x54, 0x10, 0x3e, 0xef, 0x59, 0x4e}}
	iidIUIAutomation   = windows.GUID{Data1: 0x30cbe57d, Data2: 0xd9d0, Data3: 0x452a, Data4: [8]byte{0xab, 0x13, 0x7a, 0xc5, 0xac, 0x48, 0x25, 0xee}}
)

// UIA ids used by this client.
const (
	propControlType        = 30003
	propName               = 30005
	propSelItemIsSelected  = 30079
	patternInvoke          = 10000
	patternSelection       = 10001
	patternScroll          = 10004
	patternSelectionItem   = 10010
	patternScrollItem      = 10017
	controlTypeList        = 50008
	controlTypeListItem    = 50007
	controlTypeTree        = 50023
	controlTypeTreeItem    = 50024
	treeScopeChildren      = 2
	treeScopeDescendants   = 4
	scrollLargeDecrement   = 0
	scrollSmallDecrement   = 1
	scrollNoAmount         = 2
	scrollSmallIncrement   = 3
	scrollLargeIncrement   = 4
	coinitApartmentThread  = 0x2
	hrElementNotAvailable  = 0x80040201
	variantTypeI4          = 3
	variantTypeBool        = 11
	variantBoolTrue        = 0xffff
)

// variant is a VARIANT wide enough for the integer and boolean payloads we
// pass to CreatePropertyCondition.
type variant struct {
	vt  uint16
	_   [3]uint16
	val int64
	_   int64
}

func i4Variant(v int32) variant { return variant{vt: variantTypeI4, val: int64(v)} }
func boolVariant(v bool) variant {
	if v {
		return variant{vt: variantTypeBool, val: variantBoolTrue}
	}
	return variant{vt: variantTypeBool}
}

type iUIAutomationVtbl struct {
	queryInterface              uintptr
	addRef                      uintptr
	release                     uintptr
	compareElements             uintptr
	compareRuntimeIds           uintptr
	getRootElement              uintptr
	elementFromHandle           uintptr
	elementFromPoint            uintptr
	getFocusedElement           uintptr
	getRootElementBuildCache    uintptr
	elementFromHandleBuildCache uintptr
	elementFromPointBuildCache  uintptr
	getFocusedElementBuildCache uintptr
	createTreeWalker            uintptr
	getControlViewWalker        uintptr
	getContentViewWalker        uintptr
	getRawViewWalker            uintptr
	getRawViewCondition         uintptr
	getControlViewCondition     uintptr
	getContentViewCondition     uintptr
	createCacheRequest          uintptr
	createTrueCondition         uintptr
	createFalseCondition        uintptr
	createPropertyCondition     uintptr
}

type iUIAutomation struct{ vtbl *iUIAutomationVtbl }

type iCondition struct{ vtbl *uintptr } // opaque, only passed back in

type iElementVtbl struct {
	queryInterface          uintptr
	addRef                  uintptr
	release                 uintptr
	setFocus                uintptr
	getRuntimeId            uintptr
	findFirst               uintptr
	findAll                 uintptr
	findFirstBuildCache     uintptr
	findAllBuildCache       uintptr
	buildUpdatedCache       uintptr
	getCurrentPropertyValue uintptr
	getCurrentPropValueEx   uintptr
	getCachedPropertyValue  uintptr
	getCachedPropValueEx    uintptr
	getCurrentPatternAs     uintptr
	getCachedPatternAs      uintptr
	getCurrentPattern       uintptr
	getCachedPattern        uintptr
	getCachedParent         uintptr
	getCachedChildren       uintptr
	getCurProcessID         uintptr
	getCurControlType       uintptr
	getCurLocalizedCtrlType uintptr
	getCurName              uintptr
	getCurAcceleratorKey    uintptr
	getCurAccessKey         uintptr
	getCurHasKeyboardFocus  uintptr
	getCurIsKeybdFocusable  uintptr
	getCurIsEnabled         uintptr
	getCurAutomationID      uintptr
	getCurClassName         uintptr
	getCurHelpText          uintptr
	getCurCulture           uintptr
	getCurIsControlElement  uintptr
	getCurIsContentElement  uintptr
	getCurIsPassword        uintptr
	getCurNativeWindowHdl   uintptr
	getCurItemType          uintptr
	getCurIsOffscreen       uintptr
	getCurOrientation       uintptr
	getCurFrameworkID       uintptr
	getCurIsRequiredForForm uintptr
	getCurItemStatus        uintptr
	getCurBoundingRectangle uintptr
}

type iElement struct{ vtbl *iElementVtbl }

type iElementArrayVtbl struct {
	queryInterface uintptr
	addRef         uintptr
	release        uintptr
	getLength      uintptr
	getElement     uintptr
}

type iElementArray struct{ vtbl *iElementArrayVtbl }

type iScrollVtbl struct {
	queryInterface uintptr
	addRef         uintptr
	release        uintptr
	scroll         uintptr
}

type iScroll struct{ vtbl *iScrollVtbl }

type iScrollItemVtbl struct {
	queryInterface uintptr
	addRef         uintptr
	release        uintptr
	scrollIntoView uintptr
}

type iScrollItem struct{ vtbl *iScrollItemVtbl }

type iSelectionVtbl struct {
	queryInterface      uintptr
	addRef              uintptr
	release             uintptr
	getCurrentSelection uintptr
}

type iSelection struct{ vtbl *iSelectionVtbl }

type iSelectionItemVtbl struct {
	queryInterface      uintptr
	addRef              uintptr
	release             uintptr
	selectElement       uintptr
	addToSelection      uintptr
	removeFromSelection uintptr
	getCurIsSelected    uintptr
}

type iSelectionItem struct{ vtbl *iSelectionItemVtbl }

type iInvokeVtbl struct {
	queryInterface uintptr
	addRef         uintptr
	release        uintptr
	invoke         uintptr
}

type iInvoke struct{ vtbl *iInvokeVtbl }

// Client wraps the process-wide IUIAutomation instance. Constructed once at
// provider setup and passed down; not a package singleton. The automation
// object is apartment-threaded, so every COM call is funneled through the
// runner's locked OS thread via do.
type Client struct {
	auto *iUIAutomation
	run  *threadRunner

	conditions   map[int32]*iCondition // COM-thread confined, reused per scan
	trueCond     *iCondition
	selectedCond *iCondition
}

// NewClient initializes COM on a dedicated locked thread and creates the
// automation object there.
func NewClient() (*Client, error) {
	c := &Client{conditions: make(map[int32]*iCondition)}
	run, err := newThreadRunner(func() error {
		hr, _, _ := procCoInitializeEx.Call(0, coinitApartmentThread)
		// S_FALSE (1) means COM was already initialized on this thread.
		if int32(hr) < 0 {
			return fmt.Errorf("CoInitializeEx failed: %#x", uint32(hr))
		}

		var auto *iUIAutomation
		hr, _, _ = procCoCreateInst.Call(
			uintptr(unsafe.Pointer(&clsidCUIAutomation)),
			0,
			windows.CLSCTX_INPROC_SERVER,
			uintptr(unsafe.Pointer(&iidIUIAutomation)),
			uintptr(unsafe.Pointer(&auto)),
		)
		if int32(hr) < 0 || auto == nil {
			return fmt.Errorf("CoCreateInstance(CUIAutomation) failed: %#x", uint32(hr))
		}
		c.auto = auto
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.run = run
	return c, nil
}

// do runs fn on the COM thread. The vtable helpers below must only be
// reached from inside a do callback.
func (c *Client) do(fn func() error) error { return c.run.do(fn) }

// hrError converts a failed HRESULT into the platform error taxonomy.
func hrError(op string, hr uintptr) error {
	if uint32(hr) == hrElementNotAvailable {
		return fmt.Errorf("%s: %w", op, platform.ErrVanished)
	}
	return fmt.Errorf("%s failed: %#x", op, uint32(hr))
}

func (c *Client) elementFromHandle(hwnd uintptr) (*iElement, error) {
	var el *iElement
	hr, _, _ := syscall.SyscallN(c.auto.vtbl.elementFromHandle,
		uintptr(unsafe.Pointer(c.auto)), hwnd, uintptr(unsafe.Pointer(&el)))
	if int32(hr) < 0 || el == nil {
		return nil, hrError("ElementFromHandle", hr)
	}
	return el, nil
}

// controlTypeCondition returns (and caches) a property condition matching
// the given control type.
func (c *Client) controlTypeCondition(controlType int32) (*iCondition, error) {
	if cond, ok := c.conditions[controlType]; ok {
		return cond, nil
	}

	v := i4Variant(controlType)
	var cond *iCondition
	hr, _, _ := syscall.SyscallN(c.auto.vtbl.createPropertyCondition,
		uintptr(unsafe.Pointer(c.auto)),
		propControlType,
		uintptr(unsafe.Pointer(&v)),
		uintptr(unsafe.Pointer(&cond)))
	if int32(hr) < 0 || cond == nil {
		return nil, hrError("CreatePropertyCondition", hr)
	}
	c.conditions[controlType] = cond
	return cond, nil
}

// isSelectedCondition returns the cached IsSelected=true property condition.
func (c *Client) isSelectedCondition() (*iCondition, error) {
	if c.selectedCond != nil {
		return c.selectedCond, nil
	}

	v := boolVariant(true)
	var cond *iCondition
	hr, _, _ := syscall.SyscallN(c.auto.vtbl.createPropertyCondition,
		uintptr(unsafe.Pointer(c.auto)),
		propSelItemIsSelected,
		uintptr(unsafe.Pointer(&v)),
		uintptr(unsafe.Pointer(&cond)))
	if int32(hr) < 0 || cond == nil {
		return nil, hrError("CreatePropertyCondition", hr)
	}
	c.selectedCond = cond
	return cond, nil
}

// trueCondition returns the cached match-everything condition.
func (c *Client) trueCondition() (*iCondition, error) {
	if c.trueCond != nil {
		return c.trueCond, nil
	}

	var cond *iCondition
	hr, _, _ := syscall.SyscallN(c.auto.vtbl.createTrueCondition,
		uintptr(unsafe.Pointer(c.auto)), uintptr(unsafe.Pointer(&cond)))
	if int32(hr) < 0 || cond == nil {
		return nil, hrError("CreateTrueCondition", hr)
	}
	c.trueCond = cond
	return cond, nil
}

func findFirst(el *iElement, scope int32, cond *iCondition) (*iElement, error) {
	var found *iElement
	hr, _, _ := syscall.SyscallN(el.vtbl.findFirst,
		uintptr(unsafe.Pointer(el)), uintptr(scope),
		uintptr(unsafe.Pointer(cond)), uintptr(unsafe.Pointer(&found)))
	if int32(hr) < 0 {
		return nil, hrError("FindFirst", hr)
	}
	return found, nil // may be nil: no match
}

func findAll(el *iElement, scope int32, cond *iCondition) ([]*iElement, error) {
	var arr *iElementArray
	hr, _, _ := syscall.SyscallN(el.vtbl.findAll,
		uintptr(unsafe.Pointer(el)), uintptr(scope),
		uintptr(unsafe.Pointer(cond)), uintptr(unsafe.Pointer(&arr)))
	if int32(hr) < 0 {
		return nil, hrError("FindAll", hr)
	}
	if arr == nil {
		return nil, nil
	}
	defer release(uintptr(unsafe.Pointer(arr)), arr.vtbl.release)

	var length int32
	hr, _, _ = syscall.SyscallN(arr.vtbl.getLength,
		uintptr(unsafe.Pointer(arr)), uintptr(unsafe.Pointer(&length)))
	if int32(hr) < 0 {
		return nil, hrError("ElementArray.Length", hr)
	}

	out := make([]*iElement, 0, length)
	for i := int32(0); i < length; i++ {
		var item *iElement
		hr, _, _ = syscall.SyscallN(arr.vtbl.getElement,
			uintptr(unsafe.Pointer(arr)), uintptr(i), uintptr(unsafe.Pointer(&item)))
		if int32(hr) < 0 || item == nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

// currentPattern fetches a pattern interface from an element. A nil result
// with a successful HRESULT means the element does not support the pattern.
func currentPattern(el *iElement, patternID int32) (unsafe.Pointer, error) {
	var pattern unsafe.Pointer
	hr, _, _ := syscall.SyscallN(el.vtbl.getCurrentPattern,
		uintptr(unsafe.Pointer(el)), uintptr(patternID), uintptr(unsafe.Pointer(&pattern)))
	if int32(hr) < 0 {
		return nil, hrError("GetCurrentPattern", hr)
	}
	if pattern == nil {
		return nil, platform.ErrNotSupported
	}
	return pattern, nil
}

func currentName(el *iElement) (string, error) {
	var bstr *uint16
	hr, _, _ := syscall.SyscallN(el.vtbl.getCurName,
		uintptr(unsafe.Pointer(el)), uintptr(unsafe.Pointer(&bstr)))
	if int32(hr) < 0 {
		return "", hrError("get_CurrentName", hr)
	}
	if bstr == nil {
		return "", nil
	}
	defer procSysFreeString.Call(uintptr(unsafe.Pointer(bstr)))
	return windows.UTF16PtrToString(bstr), nil
}

func currentRect(el *iElement) (left, top, right, bottom int32, err error) {
	var rect struct{ left, top, right, bottom int32 }
	hr, _, _ := syscall.SyscallN(el.vtbl.getCurBoundingRectangle,
		uintptr(unsafe.Pointer(el)), uintptr(unsafe.Pointer(&rect)))
	if int32(hr) < 0 {
		return 0, 0, 0, 0, hrError("get_CurrentBoundingRectangle", hr)
	}
	return rect.left, rect.top, rect.right, rect.bottom, nil
}

func setFocus(el *iElement) error {
	hr, _, _ := syscall.SyscallN(el.vtbl.setFocus, uintptr(unsafe.Pointer(el)))
	if int32(hr) < 0 {
		return hrError("SetFocus", hr)
	}
	return nil
}

func release(obj uintptr, releaseSlot uintptr) {
	syscall.SyscallN(releaseSlot, obj)
}
