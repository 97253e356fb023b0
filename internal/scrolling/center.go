package scrolling

import (
	"math"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// Outcome is the result of one centering call.
//
// Centered keeps the lenient historical contract: it is true once the loop
// completes, whether it converged or merely exhausted its iteration budget.
// Converged and FinalOffset expose the distinction for callers that care.
type Outcome struct {
	Centered    bool                     `yaml:"centered"     json:"centered"`
	Converged   bool                     `yaml:"converged"    json:"converged"`
	FinalOffset int                      `yaml:"final_offset" json:"final_offset"`
	Attempts    []model.CenteringAttempt `yaml:"attempts,omitempty" json:"attempts,omitempty"`
}

// CenterElement scrolls the container so the element's vertical midpoint
// aligns with the container's, within the center tolerance.
//
// The element is first asked to scroll itself into view; an element without
// that capability cannot even be guaranteed attached to the visible tree,
// so the operation fails immediately. After a settle wait, the loop
// measures the offset from center, converts it into a clamped step count,
// fires the pattern scroll (wheel chain as fallback), pauses one poll
// interval, and re-measures — at most MaxIterations times.
func (e *Engine) CenterElement(el platform.Element, c platform.Container) Outcome {
	if err := el.ScrollIntoView(); err != nil {
		e.Log.Debug().Err(err).Msg("scroll into view unavailable")
		return Outcome{}
	}

	e.WaitRectSettle(el.Rect, e.settleTimeout(), e.pollInterval())

	offset, _, _, ok := e.measureOffset(el, c)
	if !ok {
		return Outcome{}
	}

	tolerance := e.tolerance()
	out := Outcome{Centered: true, FinalOffset: offset}

	if abs(offset) <= tolerance {
		out.Converged = true
		return out
	}

	for i := 0; i < e.maxIterations(); i++ {
		if abs(offset) <= tolerance {
			break
		}

		dir := model.ScrollUp
		if offset > 0 {
			dir = model.ScrollDown
		}
		repeats := e.clampRepeats(offset)

		attempt := model.CenteringAttempt{
			Offset:    offset,
			Direction: dir,
			Repeats:   repeats,
			Strategy:  model.StrategyPattern,
		}

		if !e.ScrollByPattern(c, dir, true, repeats) {
			// Wheel steps are signed: negative drives the view down.
			steps := repeats
			if offset > 0 {
				steps = -repeats
			}
			attempt.Strategy, _ = e.WheelScroll(c, steps)
		}

		e.sleep(e.pollInterval())

		next, cr, er, measured := e.measureOffset(el, c)
		if !measured {
			out.Centered = false
			out.Attempts = append(out.Attempts, attempt)
			return out
		}
		offset = next
		attempt.Container, attempt.Element = cr, er
		out.Attempts = append(out.Attempts, attempt)
	}

	out.FinalOffset = offset
	out.Converged = abs(offset) <= tolerance
	return out
}

// measureOffset samples both rectangles and returns elementCenterY minus
// containerCenterY. ok is false when either target vanished mid-operation.
func (e *Engine) measureOffset(el platform.Element, c platform.Container) (offset int, cr, er model.Rect, ok bool) {
	cr, err := c.Rect()
	if err != nil {
		return 0, cr, er, false
	}
	er, err = el.Rect()
	if err != nil {
		return 0, cr, er, false
	}
	return er.CenterY() - cr.CenterY(), cr, er, true
}

// clampRepeats converts a pixel misalignment into a scroll step count:
// larger misalignment means more steps, bounded to [1, MaxRepeats] to avoid
// overshoot.
func (e *Engine) clampRepeats(offset int) int {
	steps := int(math.Round(math.Abs(float64(offset)) / pixelsPerStep))
	if steps < 1 {
		return 1
	}
	if limit := e.maxRepeats(); steps > limit {
		return limit
	}
	return steps
}
