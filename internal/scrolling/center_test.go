package scrolling

import (
	"errors"
	"testing"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// centeringFixture wires a container spanning y 0..600 (center 300) and an
// element offset pixels below/above that center. Each successful scroll
// moves the element up to 60px toward the center, mimicking a list that
// scrolls by rows.
func centeringFixture(offset int) (*fakeContainer, *fakeElement) {
	c := &fakeContainer{}
	c.rect = model.Rect{Left: 0, Top: 0, Right: 200, Bottom: 600}

	el := &fakeElement{name: "row"}
	el.rect = model.Rect{Left: 0, Top: 290 + offset, Right: 200, Bottom: 310 + offset}

	c.onScroll = func() {
		step := el.rect.CenterY() - 300
		if step > 60 {
			step = 60
		}
		if step < -60 {
			step = -60
		}
		el.rect.Top -= step
		el.rect.Bottom -= step
	}
	return c, el
}

func TestCenterElementAlreadyCenteredScrollsNothing(t *testing.T) {
	input := &fakeInput{}
	e, _ := testEngine(input)
	c, el := centeringFixture(0)

	out := e.CenterElement(el, c)

	if !out.Centered || !out.Converged {
		t.Fatalf("outcome = %+v, want centered and converged", out)
	}
	if len(out.Attempts) != 0 {
		t.Fatalf("%d attempts recorded, want none", len(out.Attempts))
	}
	if len(c.patternCalls) != 0 || len(c.wheelScrollSteps) != 0 || len(input.wheelAts) != 0 {
		t.Fatal("an already-centered element must trigger zero scrolls")
	}
	if el.scrollIntoViewCalls != 1 {
		t.Fatalf("scroll-into-view fired %d times, want 1", el.scrollIntoViewCalls)
	}
}

func TestCenterElementWithinToleranceIsCentered(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(9) // inside the 10px default tolerance

	out := e.CenterElement(el, c)
	if !out.Converged || len(c.patternCalls) != 0 {
		t.Fatalf("offset within tolerance must not scroll: %+v", out)
	}
	if out.FinalOffset != 9 {
		t.Fatalf("final offset = %d, want 9", out.FinalOffset)
	}
}

func TestCenterElementConvergesViaPattern(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(40)

	out := e.CenterElement(el, c)

	if !out.Centered || !out.Converged {
		t.Fatalf("outcome = %+v, want convergence", out)
	}
	if abs(out.FinalOffset) > CenterTolerance {
		t.Fatalf("final offset %d exceeds tolerance", out.FinalOffset)
	}
	if len(out.Attempts) == 0 || out.Attempts[0].Strategy != model.StrategyPattern {
		t.Fatalf("expected a pattern attempt, got %+v", out.Attempts)
	}
	if out.Attempts[0].Direction != model.ScrollDown {
		t.Fatalf("element below center must scroll down, got %v", out.Attempts[0].Direction)
	}
}

func TestCenterElementIterationBound(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(500)
	c.onScroll = nil // scrolls succeed but nothing moves

	out := e.CenterElement(el, c)

	if len(out.Attempts) != MaxIterations {
		t.Fatalf("%d attempts, want exactly %d", len(out.Attempts), MaxIterations)
	}
	if !out.Centered {
		t.Fatal("budget exhaustion still reports centered (lenient contract)")
	}
	if out.Converged {
		t.Fatal("an unmoved element cannot be converged")
	}
	if out.FinalOffset != 500 {
		t.Fatalf("final offset = %d, want unchanged 500", out.FinalOffset)
	}
}

func TestCenterElementNoScrollIntoViewFails(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(100)
	el.scrollIntoViewErr = platform.ErrNotSupported

	out := e.CenterElement(el, c)
	if out.Centered || out.Converged || len(out.Attempts) != 0 {
		t.Fatalf("outcome = %+v, want immediate failure", out)
	}
	if len(c.patternCalls) != 0 {
		t.Fatal("no scrolling without scroll-into-view")
	}
}

func TestCenterElementVanishedMidLoopFails(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(200)
	c.onScroll = func() {
		el.rectErr = platform.ErrVanished
	}

	out := e.CenterElement(el, c)
	if out.Centered {
		t.Fatalf("outcome = %+v, a vanished element cannot report centered", out)
	}
	if len(out.Attempts) != 1 {
		t.Fatalf("%d attempts, want the single one that hit the vanish", len(out.Attempts))
	}
}

func TestCenterElementFallsToWheelWhenPatternUnsupported(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(40)
	c.patternErr = platform.ErrNotSupported

	out := e.CenterElement(el, c)
	if !out.Converged {
		t.Fatalf("outcome = %+v, want convergence via wheel", out)
	}
	if len(out.Attempts) == 0 || out.Attempts[0].Strategy != model.StrategyWheelMethod {
		t.Fatalf("expected wheel-method attempts, got %+v", out.Attempts)
	}
	// Element below center: wheel steps must be negative (scroll down).
	if len(c.wheelScrollSteps) == 0 || c.wheelScrollSteps[0] >= 0 {
		t.Fatalf("wheel steps = %v, want negative for a downward correction", c.wheelScrollSteps)
	}
}

func TestClampRepeats(t *testing.T) {
	e, _ := testEngine(&fakeInput{})

	cases := []struct {
		offset int
		want   int
	}{
		{10, 1},
		{150, 1},
		{-150, 1},
		{225, 2},
		{750, 5},
		{-750, 5},
		{10000, 5},
	}
	for _, c := range cases {
		if got := e.clampRepeats(c.offset); got != c.want {
			t.Errorf("clampRepeats(%d) = %d, want %d", c.offset, got, c.want)
		}
	}
}

func TestClampRepeatsHonorsOverride(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	e.Repeats = 2

	if got := e.clampRepeats(10000); got != 2 {
		t.Fatalf("clampRepeats with override = %d, want 2", got)
	}
}

func TestCenterElementIdempotent(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(120)

	first := e.CenterElement(el, c)
	if !first.Converged {
		t.Fatalf("first pass did not converge: %+v", first)
	}

	scrollsBefore := len(c.patternCalls)
	second := e.CenterElement(el, c)
	if !second.Converged {
		t.Fatalf("second pass did not converge: %+v", second)
	}
	if len(second.Attempts) != 0 {
		t.Fatalf("second pass recorded %d attempts, want none", len(second.Attempts))
	}
	if len(c.patternCalls) != scrollsBefore {
		t.Fatal("centering a centered element must not scroll again")
	}
}

func TestCenterErrorNonVanishedMeasureFailure(t *testing.T) {
	e, _ := testEngine(&fakeInput{})
	c, el := centeringFixture(50)
	el.rectErr = errors.New("transient")

	out := e.CenterElement(el, c)
	if out.Centered {
		t.Fatal("unmeasurable element cannot report centered")
	}
}
