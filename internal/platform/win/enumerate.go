//go:build windows

package win

import (
	"strings"
	"syscall"
	"unsafe"

	"noteremote/internal/model"
)

// Enumerator lists visible top-level windows via EnumWindows.
type Enumerator struct{}

// enumState carries one Enumerate call's filters and results through the
// EnumWindows lParam.
type enumState struct {
	filters []string
	results []model.WindowInfo
}

// enumProc is created once at init: NewCallback allocates from a fixed
// process-wide table that is never reclaimed, so a per-call callback would
// exhaust it in a long-lived server process.
var enumProc = syscall.NewCallback(func(hwnd, lparam uintptr) uintptr {
	const keepGoing = 1
	state := (*enumState)(unsafe.Pointer(lparam))

	if !isWindowVisible(hwnd) {
		return keepGoing
	}

	title := windowText(hwnd)
	if len(state.filters) > 0 {
		lower := strings.ToLower(title)
		matched := false
		for _, f := range state.filters {
			if strings.Contains(lower, f) {
				matched = true
				break
			}
		}
		if !matched {
			return keepGoing
		}
	}

	state.results = append(state.results, model.WindowInfo{
		Handle:    model.Handle(hwnd),
		Title:     title,
		ClassName: windowClassName(hwnd),
		ProcessID: windowProcessID(hwnd),
	})
	return keepGoing
})

// Enumerate snapshots every visible top-level window. Windows that cannot
// be inspected yield zero fields and stay in the list; enumeration itself
// never fails. When titleFilters is non-empty, only windows whose title
// contains one of the filters (case-insensitive) are kept, a scan-cost
// optimization; callers re-check exact semantics.
func (Enumerator) Enumerate(titleFilters []string) []model.WindowInfo {
	state := &enumState{}
	for _, f := range titleFilters {
		if f != "" {
			state.filters = append(state.filters, strings.ToLower(f))
		}
	}

	procEnumWindows.Call(enumProc, uintptr(unsafe.Pointer(state)))
	return state.results
}
