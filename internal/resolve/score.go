package resolve

import (
	"strings"

	"github.com/rs/zerolog"

	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// Weights are the per-criterion points of the additive match score. No
// single window property is authoritative — any one of them may have changed
// since the signature was captured — so identity is the sum of weak signals.
// The defaults were tuned empirically against the OneNote window taxonomy
// and are configurable for other target applications.
type Weights struct {
	Handle           int // candidate handle equals the recorded handle
	Executable       int // executable basename equals the recorded one
	TargetExecutable int // executable is one of the target app's binaries
	TitleKeyword     int // title contains a target keyword
	Class            int // class name equals the recorded one
	ProcessID        int // pid equals the recorded one
	TitleSubstring   int // recorded title is a substring of the live title
	SharedKeyword    int // both titles contain the same target keyword
	ModernClass      int // class is the modern app container class
}

// DefaultWeights returns the empirically tuned point values.
func DefaultWeights() Weights {
	return Weights{
		Handle:           100,
		Executable:       50,
		TargetExecutable: 50,
		TitleKeyword:     25,
		Class:            10,
		ProcessID:        8,
		TitleSubstring:   6,
		SharedKeyword:    4,
		ModernClass:      5,
	}
}

// Scorer computes match scores between enumerated windows and a stored
// signature.
type Scorer struct {
	Target    Target
	Weights   Weights
	Inspector platform.ProcessInspector
	Log       zerolog.Logger
}

// ScoreFailed is the score assigned when scoring itself fails. It is
// strictly below zero so a crashed candidate loses even against a candidate
// that matched nothing.
const ScoreFailed = -1

// Score computes the additive match score of one candidate against the
// signature. It is a pure function of its inputs and the inspector's
// answers; ties between equally scored candidates are broken by the caller
// keeping the first-enumerated one.
func (s *Scorer) Score(candidate model.WindowInfo, sig model.WindowSignature) int {
	title := strings.ToLower(candidate.Title)

	exePath, err := s.Inspector.ExecutablePath(candidate.ProcessID)
	if err != nil {
		s.Log.Debug().
			Uint32("pid", candidate.ProcessID).
			Err(err).
			Msg("process inspection failed while scoring")
		return ScoreFailed
	}
	exeName := exeBaseName(exePath)

	score := 0

	if sig.Handle != 0 && candidate.Handle == sig.Handle {
		score += s.Weights.Handle
	}
	if sig.ExecutableName != "" && exeName == sig.ExecutableName {
		score += s.Weights.Executable
	}
	if s.Target.MatchesExecutable(exeName) {
		score += s.Weights.TargetExecutable
	}
	if s.Target.TitleHasKeyword(candidate.Title) {
		score += s.Weights.TitleKeyword
	}
	if sig.ClassName != "" && candidate.ClassName == sig.ClassName {
		score += s.Weights.Class
	}
	if sig.ProcessID != 0 && candidate.ProcessID == sig.ProcessID {
		score += s.Weights.ProcessID
	}

	if prev := strings.ToLower(sig.Title); prev != "" {
		if strings.Contains(title, prev) {
			score += s.Weights.TitleSubstring
		} else {
			for _, kw := range s.Target.Keywords {
				k := strings.ToLower(kw)
				if k != "" && strings.Contains(prev, k) && strings.Contains(title, k) {
					score += s.Weights.SharedKeyword
					break
				}
			}
		}
	}

	if s.Target.ModernClass != "" && candidate.ClassName == s.Target.ModernClass {
		score += s.Weights.ModernClass
	}

	s.Log.Debug().
		Uint64("handle", uint64(candidate.Handle)).
		Str("title", candidate.Title).
		Int("score", score).
		Msg("scored window candidate")

	return score
}
