package resolve

import (
	"path/filepath"
	"strings"
)

// Target describes how to recognize the controlled application's windows.
// The defaults match the OneNote desktop apps, but everything here is
// configuration: another application only needs different keywords, classes,
// and executable names.
type Target struct {
	// Keywords are title substrings that suggest the target app, in any
	// language variant the app ships ("onenote", "원노트").
	Keywords []string
	// ExecutableNames are the lower-cased basenames of the app's known
	// binaries ("onenote.exe", "onenoteim.exe").
	ExecutableNames []string
	// ModernClass is the window class the modern app host uses
	// ("ApplicationFrameWindow"). It is shared with unrelated store apps,
	// so it only counts together with a title keyword.
	ModernClass string
	// LegacyClassSubstring identifies the legacy desktop app's window class
	// by substring ("omain").
	LegacyClassSubstring string
}

// TitleHasKeyword reports whether the title contains any target keyword,
// case-insensitively.
func (t Target) TitleHasKeyword(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range t.Keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// MatchesExecutable reports whether the lower-cased executable basename
// matches one of the target's known binaries.
func (t Target) MatchesExecutable(exeName string) bool {
	if exeName == "" {
		return false
	}
	lower := strings.ToLower(exeName)
	for _, name := range t.ExecutableNames {
		if name != "" && strings.Contains(lower, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

// MatchesLegacyClass reports whether the class name belongs to the legacy
// desktop app (substring match, case-insensitive).
func (t Target) MatchesLegacyClass(class string) bool {
	if t.LegacyClassSubstring == "" {
		return false
	}
	return strings.Contains(strings.ToLower(class), strings.ToLower(t.LegacyClassSubstring))
}

// exeBaseName returns the lower-cased basename of an executable path, or ""
// when the path is empty.
func exeBaseName(path string) string {
	if path == "" {
		return ""
	}
	return strings.ToLower(filepath.Base(path))
}
