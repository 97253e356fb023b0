package scrolling

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

type sessionWindow struct{}

func (sessionWindow) Handle() model.Handle       { return 0x99 }
func (sessionWindow) IsVisible() bool            { return true }
func (sessionWindow) Title() (string, error)     { return "OneNote", nil }
func (sessionWindow) ClassName() (string, error) { return "ApplicationFrameWindow", nil }
func (sessionWindow) ProcessID() (uint32, error) { return 7, nil }

// sessionDesktop hands out containers and counts lookups so caching is
// observable.
type sessionDesktop struct {
	container *fakeContainer
	findErr   error
	findCalls int
}

func (d *sessionDesktop) OpenWindow(h model.Handle) (platform.Window, error) {
	return sessionWindow{}, nil
}

func (d *sessionDesktop) FindScrollContainer(w platform.Window) (platform.Container, error) {
	d.findCalls++
	if d.findErr != nil {
		return nil, d.findErr
	}
	return d.container, nil
}

func testSession(desk *sessionDesktop) *Session {
	s := &Session{
		Desktop: desk,
		Engine:  NewEngine(&fakeInput{}, zerolog.Nop()),
		Log:     zerolog.Nop(),
	}
	clock := &fakeClock{now: time.Unix(0, 0)}
	s.Engine.Sleep = clock.Sleep
	s.Engine.Now = clock.Now
	return s
}

func selectedFixture() *fakeContainer {
	c, el := centeringFixture(0)
	el.selected = true
	c.selection = []platform.Element{el}
	return c
}

func TestSessionCachesContainer(t *testing.T) {
	desk := &sessionDesktop{container: selectedFixture()}
	s := testSession(desk)

	s.CenterSelection(sessionWindow{})
	s.CenterSelection(sessionWindow{})

	if desk.findCalls != 1 {
		t.Fatalf("container located %d times across two operations, want 1", desk.findCalls)
	}
}

func TestSessionRelocatesStaleContainer(t *testing.T) {
	stale := selectedFixture()
	desk := &sessionDesktop{container: stale}
	s := testSession(desk)

	s.CenterSelection(sessionWindow{})

	// The cached container dies; the next operation must locate a fresh one.
	stale.rectErr = platform.ErrVanished
	fresh := selectedFixture()
	desk.container = fresh

	result := s.CenterSelection(sessionWindow{})
	if desk.findCalls != 2 {
		t.Fatalf("container located %d times, want relocation after staleness", desk.findCalls)
	}
	if !result.OK {
		t.Fatalf("result = %+v, want success with the fresh container", result)
	}
}

func TestSessionResetForcesRelocation(t *testing.T) {
	desk := &sessionDesktop{container: selectedFixture()}
	s := testSession(desk)

	s.CenterSelection(sessionWindow{})
	s.Reset()
	s.CenterSelection(sessionWindow{})

	if desk.findCalls != 2 {
		t.Fatalf("container located %d times, want 2 after reset", desk.findCalls)
	}
}

func TestCenterSelectionReportsItemName(t *testing.T) {
	c, el := centeringFixture(0)
	el.name = "Weekly Sync"
	el.selected = true
	c.selection = []platform.Element{el}
	desk := &sessionDesktop{container: c}
	s := testSession(desk)

	result := s.CenterSelection(sessionWindow{})
	if !result.OK || result.Item != "Weekly Sync" {
		t.Fatalf("result = %+v, want OK with the row name", result)
	}
	if !result.Outcome.Converged {
		t.Fatalf("outcome = %+v, want convergence", result.Outcome)
	}
}

func TestCenterSelectionNoContainerFailsSoftly(t *testing.T) {
	desk := &sessionDesktop{findErr: errors.New("no tree or list")}
	s := testSession(desk)

	result := s.CenterSelection(sessionWindow{})
	if result.OK || result.Item != "" {
		t.Fatalf("result = %+v, want a soft failure", result)
	}
}

func TestCenterSelectionNoSelectionFailsSoftly(t *testing.T) {
	c, _ := centeringFixture(0) // nothing selected anywhere
	desk := &sessionDesktop{container: c}
	s := testSession(desk)

	result := s.CenterSelection(sessionWindow{})
	if result.OK {
		t.Fatalf("result = %+v, want failure without a selection", result)
	}
}

func TestSelectItemCentersWhenAsked(t *testing.T) {
	c, el := centeringFixture(40)
	el.name = "Projects"
	c.items = map[string][]platform.Element{"TreeItem": {el}}
	c.selection = []platform.Element{el}
	desk := &sessionDesktop{container: c}
	s := testSession(desk)

	result, err := s.SelectItem(sessionWindow{}, "projects", false, true)
	if err != nil {
		t.Fatalf("SelectItem: %v", err)
	}
	if !result.OK || result.Item != "Projects" {
		t.Fatalf("result = %+v, want the selected row centered", result)
	}
	if el.selectCalls != 1 {
		t.Fatalf("Select fired %d times, want 1", el.selectCalls)
	}
	if !result.Outcome.Converged {
		t.Fatalf("outcome = %+v, want the centering pass to converge", result.Outcome)
	}
}

func TestSelectItemWithoutCenterSkipsScrolling(t *testing.T) {
	c, el := centeringFixture(500)
	el.name = "Inbox"
	c.items = map[string][]platform.Element{"TreeItem": {el}}
	desk := &sessionDesktop{container: c}
	s := testSession(desk)

	result, err := s.SelectItem(sessionWindow{}, "Inbox", false, false)
	if err != nil || !result.OK {
		t.Fatalf("got (%+v, %v), want plain selection success", result, err)
	}
	if len(c.patternCalls) != 0 {
		t.Fatal("selection without centering must not scroll")
	}
}

func TestSelectItemNoMatchErrors(t *testing.T) {
	c, _ := centeringFixture(0)
	desk := &sessionDesktop{container: c}
	s := testSession(desk)

	if _, err := s.SelectItem(sessionWindow{}, "missing", false, false); err == nil {
		t.Fatal("selecting a missing row must error")
	}
}
