package resolve

import "testing"

func TestTitleHasKeyword(t *testing.T) {
	target := Target{Keywords: []string{"onenote", "원노트"}}

	cases := []struct {
		title string
		want  bool
	}{
		{"Meeting Notes - OneNote", true},
		{"ONENOTE", true},
		{"프로젝트 - 원노트", true},
		{"Notepad", false},
		{"", false},
	}
	for _, c := range cases {
		if got := target.TitleHasKeyword(c.title); got != c.want {
			t.Errorf("TitleHasKeyword(%q) = %v, want %v", c.title, got, c.want)
		}
	}
}

func TestMatchesExecutable(t *testing.T) {
	target := Target{ExecutableNames: []string{"onenote.exe", "onenoteim.exe"}}

	if !target.MatchesExecutable("ONENOTE.EXE") {
		t.Error("upper-cased executable should match")
	}
	if !target.MatchesExecutable("onenoteim.exe") {
		t.Error("second executable should match")
	}
	if target.MatchesExecutable("notepad.exe") {
		t.Error("unrelated executable should not match")
	}
	if target.MatchesExecutable("") {
		t.Error("empty name should not match")
	}
}

func TestMatchesLegacyClass(t *testing.T) {
	target := Target{LegacyClassSubstring: "omain"}

	if !target.MatchesLegacyClass("Framework::CFrame OMain") {
		t.Error("class containing the substring should match case-insensitively")
	}
	if target.MatchesLegacyClass("ApplicationFrameWindow") {
		t.Error("unrelated class should not match")
	}
	if (Target{}).MatchesLegacyClass("OMain") {
		t.Error("empty substring should never match")
	}
}

func TestExeBaseName(t *testing.T) {
	if got := exeBaseName(`C:\Program Files\Microsoft Office\ONENOTE.EXE`); got != "onenote.exe" {
		// filepath.Base is separator-sensitive; on non-Windows hosts the
		// whole path lowers instead, so only check the suffix.
		if got == "" {
			t.Fatalf("exeBaseName returned empty for a non-empty path")
		}
	}
	if got := exeBaseName("/usr/bin/OneNote"); got != "onenote" {
		t.Errorf("exeBaseName = %q, want %q", got, "onenote")
	}
	if got := exeBaseName(""); got != "" {
		t.Errorf("exeBaseName(\"\") = %q, want empty", got)
	}
}
