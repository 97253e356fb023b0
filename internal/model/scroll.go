package model

// Direction is a vertical scroll direction.
type Direction int

const (
	ScrollUp Direction = iota
	ScrollDown
)

func (d Direction) String() string {
	if d == ScrollDown {
		return "down"
	}
	return "up"
}

// Strategy names the scrolling technique that actually executed during one
// centering attempt.
type Strategy string

const (
	StrategyNone        Strategy = ""
	StrategyPattern     Strategy = "pattern"
	StrategyWheelMethod Strategy = "wheel-method"
	StrategyWheelInput  Strategy = "wheel-input"
	StrategyWheelCoords Strategy = "wheel-coords"
	StrategyKeyboard    Strategy = "keyboard"
)

// CenteringAttempt records one iteration of the centering loop: what was
// measured, what was decided, and which strategy fired. Attempts exist only
// for the duration of one centering call and are surfaced for logging and
// diagnostics.
type CenteringAttempt struct {
	Container Rect      `yaml:"container" json:"container"`
	Element   Rect      `yaml:"element"   json:"element"`
	Offset    int       `yaml:"offset"    json:"offset"`
	Direction Direction `yaml:"-"         json:"-"`
	Repeats   int       `yaml:"repeats"   json:"repeats"`
	Strategy  Strategy  `yaml:"strategy"  json:"strategy"`
}
