package scrolling

import (
	"time"

	"github.com/rs/zerolog"

	"noteremote/internal/platform"
)

// Timing and convergence constants. Scroll effects are visually
// asynchronous and discrete while pixel offsets are continuous, so every
// loop here is bounded: settle-waits by a timeout, the centering loop by an
// iteration cap, repeats by a clamp.
const (
	// SettleTimeout bounds how long to wait for an element's rectangle to
	// stop moving after a scroll-into-view command.
	SettleTimeout = 300 * time.Millisecond
	// PollInterval is the spacing between rectangle samples and the pause
	// after each scroll attempt.
	PollInterval = 30 * time.Millisecond
	// settleTolerance is the per-edge movement (in pixels) below which two
	// consecutive samples count as settled.
	settleTolerance = 2

	// CenterTolerance is the vertical offset (in pixels) within which an
	// element counts as centered.
	CenterTolerance = 10
	// MaxRepeats caps the per-attempt scroll step count to avoid overshoot.
	MaxRepeats = 5
	// MaxIterations caps the measure-scroll-remeasure feedback loop;
	// unbounded correction risks oscillation.
	MaxIterations = 3
	// pixelsPerStep converts a pixel misalignment into a scroll step count.
	pixelsPerStep = 150
)

// Engine performs the scrolling primitives: settle-waiting, the strategy
// chain, and the centering feedback loop. The clock and sleep functions are
// injectable so tests run without real delays.
type Engine struct {
	Input platform.Input
	Log   zerolog.Logger

	// Tolerance, MaxRepeats, and MaxIterations override the package
	// defaults when positive.
	Tolerance     int
	Repeats       int
	Iterations    int
	SettleTimeout time.Duration
	Poll          time.Duration

	Sleep func(time.Duration)
	Now   func() time.Time
}

// NewEngine returns an Engine with production timing.
func NewEngine(input platform.Input, log zerolog.Logger) *Engine {
	return &Engine{Input: input, Log: log}
}

func (e *Engine) sleep(d time.Duration) {
	if e.Sleep != nil {
		e.Sleep(d)
		return
	}
	time.Sleep(d)
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Engine) tolerance() int {
	if e.Tolerance > 0 {
		return e.Tolerance
	}
	return CenterTolerance
}

func (e *Engine) maxRepeats() int {
	if e.Repeats > 0 {
		return e.Repeats
	}
	return MaxRepeats
}

func (e *Engine) maxIterations() int {
	if e.Iterations > 0 {
		return e.Iterations
	}
	return MaxIterations
}

func (e *Engine) settleTimeout() time.Duration {
	if e.SettleTimeout > 0 {
		return e.SettleTimeout
	}
	return SettleTimeout
}

func (e *Engine) pollInterval() time.Duration {
	if e.Poll > 0 {
		return e.Poll
	}
	return PollInterval
}
