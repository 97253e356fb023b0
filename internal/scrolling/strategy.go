package scrolling

import (
	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// ScrollByPattern drives the container's native scroll pattern: repeats
// small (or large) increments in the requested direction. Returns false
// when the container does not expose the pattern or the pattern fails,
// which hands control to the wheel fallback.
func (e *Engine) ScrollByPattern(c platform.Container, dir model.Direction, small bool, repeats int) bool {
	if repeats < 1 {
		repeats = 1
	}
	for i := 0; i < repeats; i++ {
		if err := c.ScrollByPattern(dir, small); err != nil {
			if !platform.IsNotSupported(err) {
				e.Log.Debug().Err(err).Str("direction", dir.String()).Msg("scroll pattern failed")
			}
			return false
		}
	}
	return true
}

// WheelScroll walks the ordered wheel fallback chain until one strategy
// succeeds. Positive steps scroll up, negative scroll down. The chain is:
//
//  1. the container's wheel convenience method;
//  2. the container's raw wheel-input method;
//  3. wheel injection at the container's center point;
//  4. keyboard: focus the container and send Up/Down key presses.
//
// A strategy that reports ErrNotSupported or fails transiently is treated
// as unavailable and the next one fires; ErrVanished aborts the chain,
// since the remaining strategies would poke at a dead target. Returns the
// strategy that executed and whether any succeeded.
func (e *Engine) WheelScroll(c platform.Container, steps int) (model.Strategy, bool) {
	if steps == 0 {
		return model.StrategyNone, true
	}

	if err := c.WheelScroll(steps); err == nil {
		return model.StrategyWheelMethod, true
	} else if platform.IsVanished(err) {
		return model.StrategyNone, false
	}

	if err := c.WheelInput(steps); err == nil {
		return model.StrategyWheelInput, true
	} else if platform.IsVanished(err) {
		return model.StrategyNone, false
	}

	if rect, err := c.Rect(); err == nil {
		if err := e.Input.WheelAt(rect.CenterX(), rect.CenterY(), steps); err == nil {
			return model.StrategyWheelCoords, true
		} else if platform.IsVanished(err) {
			return model.StrategyNone, false
		}
	} else if platform.IsVanished(err) {
		return model.StrategyNone, false
	}

	if err := c.Focus(); err == nil {
		key := platform.KeyUp
		if steps < 0 {
			key = platform.KeyDown
		}
		if err := e.Input.PressKey(key, abs(steps)); err == nil {
			return model.StrategyKeyboard, true
		}
	}

	e.Log.Debug().Int("steps", steps).Msg("all wheel strategies exhausted")
	return model.StrategyNone, false
}
