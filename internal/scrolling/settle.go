package scrolling

import (
	"time"

	"noteremote/internal/model"
)

// WaitRectSettle polls rect until two consecutive samples agree within the
// settle tolerance on both top and bottom edges, or until the timeout
// elapses. UI elements animate into position after a scroll-into-view
// command, and measuring mid-animation yields wrong offsets.
//
// This is a best-effort delay with no result: callers proceed regardless of
// whether settling was observed or the timeout fired, and sampling errors
// end the wait early with whatever state the UI is in.
func (e *Engine) WaitRectSettle(rect func() (model.Rect, error), timeout, interval time.Duration) {
	start := e.now()

	prev, err := rect()
	if err != nil {
		return
	}

	for e.now().Sub(start) < timeout {
		e.sleep(interval)
		cur, err := rect()
		if err != nil {
			return
		}
		if abs(cur.Top-prev.Top) < settleTolerance && abs(cur.Bottom-prev.Bottom) < settleTolerance {
			return
		}
		prev = cur
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
