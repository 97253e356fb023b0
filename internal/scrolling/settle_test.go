package scrolling

import (
	"errors"
	"testing"
	"time"

	"noteremote/internal/model"
)

func TestWaitRectSettleReturnsWhenStable(t *testing.T) {
	e, clock := testEngine(&fakeInput{})

	el := &fakeElement{rect: model.Rect{Top: 100, Bottom: 120}}
	start := clock.now

	e.WaitRectSettle(el.Rect, 300*time.Millisecond, 30*time.Millisecond)

	// One baseline sample, one confirming sample, one sleep.
	if el.rectCalls != 2 {
		t.Fatalf("rect sampled %d times, want 2", el.rectCalls)
	}
	if waited := clock.now.Sub(start); waited != 30*time.Millisecond {
		t.Fatalf("waited %v, want one interval", waited)
	}
}

func TestWaitRectSettleWaitsOutMovement(t *testing.T) {
	e, _ := testEngine(&fakeInput{})

	el := &fakeElement{rect: model.Rect{Top: 0, Bottom: 20}}
	moves := 0
	rect := func() (model.Rect, error) {
		// Keep moving for three samples, then hold still.
		if moves < 3 {
			moves++
			el.rect.Top += 10
			el.rect.Bottom += 10
		}
		return el.rect, nil
	}

	e.WaitRectSettle(rect, 300*time.Millisecond, 30*time.Millisecond)
	if moves != 3 {
		t.Fatalf("settle returned after %d moving samples, want all 3 consumed", moves)
	}
}

func TestWaitRectSettleTimeoutBoundsTheWait(t *testing.T) {
	e, clock := testEngine(&fakeInput{})

	rect := func() (model.Rect, error) {
		// Never settles: every sample lands somewhere new.
		return model.Rect{Top: int(clock.now.UnixNano()), Bottom: 0}, nil
	}

	start := clock.now
	e.WaitRectSettle(rect, 300*time.Millisecond, 30*time.Millisecond)

	if waited := clock.now.Sub(start); waited > 330*time.Millisecond {
		t.Fatalf("waited %v, must stop at the timeout", waited)
	}
}

func TestWaitRectSettleStopsOnSampleError(t *testing.T) {
	e, clock := testEngine(&fakeInput{})

	calls := 0
	rect := func() (model.Rect, error) {
		calls++
		if calls >= 2 {
			return model.Rect{}, errors.New("gone")
		}
		return model.Rect{Top: calls * 100}, nil
	}

	start := clock.now
	e.WaitRectSettle(rect, 300*time.Millisecond, 30*time.Millisecond)
	if calls != 2 {
		t.Fatalf("sampling error must end the wait, got %d calls", calls)
	}
	if waited := clock.now.Sub(start); waited > 30*time.Millisecond {
		t.Fatalf("waited %v after error, want at most one interval", waited)
	}
}
