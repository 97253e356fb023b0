package resolve

import (
	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// Classifier decides whether an enumerated window belongs to the target
// application. Window classes are unreliable across OS versions (legacy vs.
// modern app hosting), so classification degrades from cheap, specific
// checks to an authoritative executable check that is only paid when the
// cheaper rules are inconclusive.
type Classifier struct {
	Target    Target
	Inspector platform.ProcessInspector
	SelfPID   uint32
}

// IsTargetWindow applies the classification rules in order, first match
// wins:
//
//  1. the calling process's own windows are never the target;
//  2. a legacy desktop window class is accepted outright;
//  3. the modern container class is accepted when the title also carries a
//     target keyword;
//  4. otherwise a keyword title is accepted only when the owning process's
//     executable is one of the target's known binaries — keyword-only
//     matching accepts unrelated windows that merely mention the app's name.
func (c *Classifier) IsTargetWindow(info model.WindowInfo) bool {
	if info.ProcessID != 0 && info.ProcessID == c.SelfPID {
		return false
	}

	if c.Target.MatchesLegacyClass(info.ClassName) {
		return true
	}

	hasKeyword := c.Target.TitleHasKeyword(info.Title)

	if info.ClassName == c.Target.ModernClass && hasKeyword {
		return true
	}

	if hasKeyword {
		path, err := c.Inspector.ExecutablePath(info.ProcessID)
		if err == nil && c.Target.MatchesExecutable(exeBaseName(path)) {
			return true
		}
	}

	return false
}
