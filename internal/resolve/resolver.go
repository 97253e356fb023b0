package resolve

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// DefaultMinScore is the minimum match score a candidate must reach before
// the resolver will reconnect to it. Tuned empirically; configurable.
const DefaultMinScore = 30

// ErrNoMatch is returned when no live window matches the signature well
// enough. The caller retries later (next user action or periodic reconnect).
var ErrNoMatch = errors.New("no window matches the stored signature")

// Resolver re-acquires a previously connected window from its signature.
type Resolver struct {
	Enumerator platform.Enumerator
	Inspector  platform.ProcessInspector
	Desktop    platform.Desktop
	Target     Target
	Weights    Weights
	MinScore   int
	SelfPID    uint32
	Log        zerolog.Logger
}

// NewResolver builds a Resolver over the platform provider with default
// weights and threshold.
func NewResolver(p *platform.Provider, target Target, log zerolog.Logger) *Resolver {
	return &Resolver{
		Enumerator: p.Enumerator,
		Inspector:  p.Inspector,
		Desktop:    p.Desktop,
		Target:     target,
		Weights:    DefaultWeights(),
		MinScore:   DefaultMinScore,
		SelfPID:    p.SelfPID,
		Log:        log,
	}
}

// Resolve finds the best live window for the signature.
//
// Fast path: when the recorded handle still refers to a visible window it is
// returned immediately, without a desktop scan — in the common case the app
// was never closed and the handle is still valid. Any failure opening the
// recorded handle falls through silently to the scored scan.
//
// Scored fallback: every visible window is enumerated (unfiltered — the
// stored title may have changed) and scored against the signature. The
// maximum-scoring candidate is tracked with a strict greater-than
// comparison, so the earliest-enumerated window wins ties. A best candidate
// below MinScore, or a best candidate whose window cannot be opened, yields
// ErrNoMatch; there is no further fallback.
func (r *Resolver) Resolve(sig model.WindowSignature) (platform.Window, error) {
	if sig.Handle != 0 {
		if w, err := r.Desktop.OpenWindow(sig.Handle); err == nil && w.IsVisible() {
			r.Log.Debug().Uint64("handle", uint64(sig.Handle)).Msg("reconnected via recorded handle")
			return w, nil
		}
	}

	scorer := &Scorer{Target: r.Target, Weights: r.Weights, Inspector: r.Inspector, Log: r.Log}

	var best *model.WindowInfo
	bestScore := ScoreFailed

	for _, candidate := range r.Enumerator.Enumerate(nil) {
		c := candidate
		if score := scorer.Score(c, sig); score > bestScore {
			best, bestScore = &c, score
		}
	}

	if best == nil || bestScore < r.MinScore {
		r.Log.Debug().Int("best_score", bestScore).Int("min_score", r.MinScore).
			Msg("no candidate reached the reconnect threshold")
		return nil, ErrNoMatch
	}

	w, err := r.Desktop.OpenWindow(best.Handle)
	if err != nil || !w.IsVisible() {
		return nil, fmt.Errorf("best candidate (score %d) could not be opened: %w", bestScore, ErrNoMatch)
	}

	r.Log.Info().
		Uint64("handle", uint64(best.Handle)).
		Str("title", best.Title).
		Int("score", bestScore).
		Msg("reconnected via scored scan")
	return w, nil
}

// EnumerateTarget lists live windows that classify as the target app. The
// enumeration is keyword-filtered for speed; the classifier then applies the
// exact rules.
func (r *Resolver) EnumerateTarget() []model.WindowInfo {
	classifier := &Classifier{Target: r.Target, Inspector: r.Inspector, SelfPID: r.SelfPID}

	var out []model.WindowInfo
	for _, info := range r.Enumerator.Enumerate(r.Target.Keywords) {
		if classifier.IsTargetWindow(info) {
			out = append(out, info)
		}
	}
	return out
}

// ScoreAgainst scores every currently visible window against the signature,
// preserving enumeration order. Used by the status surface to explain why a
// reconnect did or did not happen.
func (r *Resolver) ScoreAgainst(sig model.WindowSignature) []model.ScoredCandidate {
	scorer := &Scorer{Target: r.Target, Weights: r.Weights, Inspector: r.Inspector, Log: r.Log}

	var out []model.ScoredCandidate
	for _, candidate := range r.Enumerator.Enumerate(nil) {
		out = append(out, model.ScoredCandidate{
			Window: candidate,
			Score:  scorer.Score(candidate, sig),
		})
	}
	return out
}
