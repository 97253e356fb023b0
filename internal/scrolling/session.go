package scrolling

import (
	"fmt"

	"github.com/rs/zerolog"

	"noteremote/internal/platform"
)

// Result is what the status surface displays after a centering operation:
// whether it succeeded and the display name of the row that was centered.
type Result struct {
	OK      bool    `yaml:"ok"             json:"ok"`
	Item    string  `yaml:"item,omitempty" json:"item,omitempty"`
	Outcome Outcome `yaml:"outcome"        json:"outcome"`
}

// Session owns the per-connection automation state: the desktop backend,
// the engine, and the cached scroll container. The container reference is
// the only shared mutable state; it is replaced wholesale, never partially
// mutated, and a Session must only be driven by one operation at a time —
// callers enforce that with an in-flight guard.
type Session struct {
	Desktop platform.Desktop
	Engine  *Engine
	Log     zerolog.Logger

	container platform.Container
}

// NewSession builds a Session over the platform provider.
func NewSession(p *platform.Provider, log zerolog.Logger) *Session {
	return &Session{
		Desktop: p.Desktop,
		Engine:  NewEngine(p.Input, log),
		Log:     log,
	}
}

// Reset drops the cached container, forcing the next operation to locate it
// again. Called on disconnect and after the target window is replaced.
func (s *Session) Reset() {
	s.container = nil
}

// scrollContainer returns the cached Tree/List container, locating it on
// first use. A container that has gone stale is dropped and located once
// more.
func (s *Session) scrollContainer(w platform.Window) (platform.Container, error) {
	if s.container != nil {
		if _, err := s.container.Rect(); err == nil {
			return s.container, nil
		}
		s.container = nil
	}

	c, err := s.Desktop.FindScrollContainer(w)
	if err != nil {
		return nil, fmt.Errorf("locate scroll container: %w", err)
	}
	s.container = c
	return c, nil
}

// CenterSelection brings the window's currently selected row to the
// vertical center of its Tree/List container and reports the row's name.
// Failures never propagate as errors past this boundary; they come back as
// an unsuccessful Result.
func (s *Session) CenterSelection(w platform.Window) Result {
	c, err := s.scrollContainer(w)
	if err != nil {
		s.Log.Warn().Err(err).Msg("center: no scroll container")
		return Result{}
	}

	item, err := s.Engine.SelectedItem(c)
	if err != nil {
		s.Log.Warn().Err(err).Msg("center: no selected item")
		if platform.IsVanished(err) {
			s.Reset()
		}
		return Result{}
	}

	name := item.Name()
	outcome := s.Engine.CenterElement(item, c)

	result := Result{OK: outcome.Centered, Outcome: outcome}
	if result.OK {
		result.Item = name
	}

	s.Log.Info().
		Bool("ok", result.OK).
		Bool("converged", outcome.Converged).
		Int("final_offset", outcome.FinalOffset).
		Str("item", name).
		Msg("center selection finished")
	return result
}

// SelectItem finds a row by text (exact normalized match, or fuzzy when
// requested), selects it, and optionally recenters it. Returns the matched
// row's display name.
func (s *Session) SelectItem(w platform.Window, text string, fuzzy, center bool) (Result, error) {
	c, err := s.scrollContainer(w)
	if err != nil {
		return Result{}, err
	}

	var (
		name string
		ok   bool
	)
	if fuzzy {
		name, ok = s.Engine.SelectByTextFuzzy(c, text)
	} else {
		name, ok = s.Engine.SelectByText(c, text)
	}
	if !ok {
		return Result{}, fmt.Errorf("no row matches %q", text)
	}

	if !center {
		return Result{OK: true, Item: name}, nil
	}
	return s.CenterSelection(w), nil
}
