//go:build windows

package win

import (
	"errors"

	"golang.org/x/sys/windows"
)

// Inspector resolves process image paths with query-limited access rights.
type Inspector struct{}

// ExecutablePath opens the process read-only, reads its full image path,
// and releases the handle on every exit path. A pid of zero, a process that
// cannot be opened (denied, already exited), or an unreadable path all
// yield ("", nil) — absence, not failure. The buffer is doubled and the
// read retried once when the first attempt reports it was too small.
func (Inspector) ExecutablePath(pid uint32) (string, error) {
	if pid == 0 {
		return "", nil
	}

	h, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, pid)
	if err != nil {
		return "", nil
	}
	defer windows.CloseHandle(h)

	size := uint32(512)
	for attempt := 0; attempt < 2; attempt++ {
		buf := make([]uint16, size)
		n := size
		err := windows.QueryFullProcessImageName(h, 0, &buf[0], &n)
		if err == nil {
			return windows.UTF16ToString(buf[:n]), nil
		}
		if !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
			return "", nil
		}
		size *= 2
	}
	return "", nil
}
