package scrolling

import (
	"time"

	"github.com/rs/zerolog"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// fakeElement is a scriptable Element for engine tests. Its rect is mutable
// so scroll fakes can move it.
type fakeElement struct {
	name     string
	rect     model.Rect
	rectErr  error
	selected bool

	rectCalls           int
	scrollIntoViewErr   error
	scrollIntoViewCalls int
	selectedErr         error
	selectErr           error
	invokeErr           error
	selectCalls         int
	invokeCalls         int
}

func (f *fakeElement) Name() string { return f.name }

func (f *fakeElement) Rect() (model.Rect, error) {
	f.rectCalls++
	if f.rectErr != nil {
		return model.Rect{}, f.rectErr
	}
	return f.rect, nil
}

func (f *fakeElement) ScrollIntoView() error {
	f.scrollIntoViewCalls++
	return f.scrollIntoViewErr
}

func (f *fakeElement) IsSelected() (bool, error) {
	if f.selectedErr != nil {
		return false, f.selectedErr
	}
	return f.selected, nil
}

func (f *fakeElement) Select() error {
	f.selectCalls++
	return f.selectErr
}

func (f *fakeElement) Invoke() error {
	f.invokeCalls++
	return f.invokeErr
}

type patternCall struct {
	dir   model.Direction
	small bool
}

// fakeContainer is a scriptable Container. onScroll, when set, runs after
// every successful scroll so tests can move the tracked element.
type fakeContainer struct {
	fakeElement

	patternErr   error
	patternCalls []patternCall

	wheelScrollErr   error
	wheelInputErr    error
	wheelScrollSteps []int
	wheelInputSteps  []int

	selection           []platform.Element
	selectionErr        error
	selectionPattern    []platform.Element
	selectionPatternErr error
	children            []platform.Element
	childrenErr         error
	items               map[string][]platform.Element

	focusErr   error
	focusCalls int

	onScroll func()
}

func (f *fakeContainer) ScrollByPattern(dir model.Direction, small bool) error {
	f.patternCalls = append(f.patternCalls, patternCall{dir, small})
	if f.patternErr != nil {
		return f.patternErr
	}
	if f.onScroll != nil {
		f.onScroll()
	}
	return nil
}

func (f *fakeContainer) WheelScroll(steps int) error {
	f.wheelScrollSteps = append(f.wheelScrollSteps, steps)
	if f.wheelScrollErr != nil {
		return f.wheelScrollErr
	}
	if f.onScroll != nil {
		f.onScroll()
	}
	return nil
}

func (f *fakeContainer) WheelInput(steps int) error {
	f.wheelInputSteps = append(f.wheelInputSteps, steps)
	if f.wheelInputErr != nil {
		return f.wheelInputErr
	}
	if f.onScroll != nil {
		f.onScroll()
	}
	return nil
}

func (f *fakeContainer) Selection() ([]platform.Element, error) {
	return f.selection, f.selectionErr
}

func (f *fakeContainer) SelectionPattern() ([]platform.Element, error) {
	return f.selectionPattern, f.selectionPatternErr
}

func (f *fakeContainer) Children() ([]platform.Element, error) {
	return f.children, f.childrenErr
}

func (f *fakeContainer) Items(controlType string) ([]platform.Element, error) {
	return f.items[controlType], nil
}

func (f *fakeContainer) Focus() error {
	f.focusCalls++
	return f.focusErr
}

type wheelAtCall struct {
	x, y, steps int
}

type pressKeyCall struct {
	key     platform.Key
	repeats int
}

type fakeInput struct {
	wheelAtErr  error
	pressKeyErr error
	wheelAts    []wheelAtCall
	pressKeys   []pressKeyCall
}

func (f *fakeInput) WheelAt(x, y, steps int) error {
	f.wheelAts = append(f.wheelAts, wheelAtCall{x, y, steps})
	return f.wheelAtErr
}

func (f *fakeInput) PressKey(key platform.Key, repeats int) error {
	f.pressKeys = append(f.pressKeys, pressKeyCall{key, repeats})
	return f.pressKeyErr
}

// fakeClock drives the engine's time without real sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

func testEngine(input *fakeInput) (*Engine, *fakeClock) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	e := NewEngine(input, zerolog.Nop())
	e.Sleep = clock.Sleep
	e.Now = clock.Now
	return e, clock
}
