package cmd

import (
	"strings"
	"testing"

	"noteremote/internal/model"
)

func candidateWindows() []model.WindowInfo {
	return []model.WindowInfo{
		{Handle: 0x10, Title: "Work - OneNote", ClassName: "ApplicationFrameWindow", ProcessID: 7},
		{Handle: 0x20, Title: "Personal - OneNote", ClassName: "ApplicationFrameWindow", ProcessID: 8},
		{Handle: 0x30, Title: "Legacy notebook", ClassName: "Framework::OMain", ProcessID: 9},
	}
}

func TestPickWindowByHandle(t *testing.T) {
	w, err := pickWindow(candidateWindows(), 0x20, "")
	if err != nil {
		t.Fatalf("pickWindow: %v", err)
	}
	if w.Handle != 0x20 {
		t.Fatalf("picked %#x, want 0x20", uintptr(w.Handle))
	}
}

func TestPickWindowByTitleSubstring(t *testing.T) {
	w, err := pickWindow(candidateWindows(), 0, "personal")
	if err != nil {
		t.Fatalf("pickWindow: %v", err)
	}
	if w.Handle != 0x20 {
		t.Fatalf("picked %#x, want the personal notebook window", uintptr(w.Handle))
	}
}

func TestPickWindowSingleCandidateNoFilter(t *testing.T) {
	single := candidateWindows()[:1]
	w, err := pickWindow(single, 0, "")
	if err != nil {
		t.Fatalf("pickWindow: %v", err)
	}
	if w.Handle != 0x10 {
		t.Fatalf("picked %#x, want the only candidate", uintptr(w.Handle))
	}
}

func TestPickWindowAmbiguousListsCandidates(t *testing.T) {
	_, err := pickWindow(candidateWindows(), 0, "onenote")
	if err == nil {
		t.Fatal("two matching windows must be an error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "0x10") || !strings.Contains(msg, "0x20") {
		t.Fatalf("ambiguity error must list the candidates:\n%s", msg)
	}
	if strings.Contains(msg, "0x30") {
		t.Fatalf("non-matching window must not be listed:\n%s", msg)
	}
}

func TestPickWindowNoMatch(t *testing.T) {
	if _, err := pickWindow(candidateWindows(), 0, "zzz"); err == nil {
		t.Fatal("no matching window must be an error")
	}
	if _, err := pickWindow(nil, 0, ""); err == nil {
		t.Fatal("empty candidate list must be an error")
	}
}

func TestParamHelpers(t *testing.T) {
	params := map[string]interface{}{
		"title":  "Work",
		"fuzzy":  true,
		"handle": float64(0x20), // JSON numbers arrive as float64
	}

	if got := stringParam(params, "title", ""); got != "Work" {
		t.Errorf("stringParam = %q", got)
	}
	if got := stringParam(params, "missing", "d"); got != "d" {
		t.Errorf("stringParam default = %q", got)
	}
	if !boolParam(params, "fuzzy", false) {
		t.Error("boolParam should read true")
	}
	if boolParam(params, "missing", false) {
		t.Error("boolParam default should hold")
	}
	if got := uint64Param(params, "handle", 0); got != 0x20 {
		t.Errorf("uint64Param = %#x, want 0x20", got)
	}
	if got := uint64Param(params, "missing", 7); got != 7 {
		t.Errorf("uint64Param default = %d, want 7", got)
	}
}
