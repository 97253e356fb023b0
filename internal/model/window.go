package model

// Handle identifies a top-level OS window. Handles are only unique at a
// point in time: the OS recycles them, and an application restart always
// produces a new one. Never treat a stored handle as a stable identifier.
type Handle uintptr

// WindowInfo is a snapshot of one live window, captured during enumeration.
// It is transient: re-captured on every scan and never persisted directly.
type WindowInfo struct {
	Handle    Handle `yaml:"handle"          json:"handle"`
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`
	ClassName string `yaml:"class,omitempty" json:"class,omitempty"`
	ProcessID uint32 `yaml:"pid"             json:"pid"`
}

// WindowSignature is the durable description of a window the user connected
// to. Every field is best-effort and may be stale by the time it is used
// again; matching is meaningful only while at least the title or the class
// name is present. A new signature replaces the old one wholesale on each
// successful connection — signatures are never mutated in place.
type WindowSignature struct {
	Handle         Handle `yaml:"handle,omitempty"   json:"handle,omitempty"`
	ProcessID      uint32 `yaml:"pid,omitempty"      json:"pid,omitempty"`
	ClassName      string `yaml:"class,omitempty"    json:"class,omitempty"`
	Title          string `yaml:"title,omitempty"    json:"title,omitempty"`
	ExecutablePath string `yaml:"exe_path,omitempty" json:"exe_path,omitempty"`
	ExecutableName string `yaml:"exe_name,omitempty" json:"exe_name,omitempty"`
}

// IsZero reports whether the signature carries nothing usable for matching.
func (s WindowSignature) IsZero() bool {
	return s.Handle == 0 && s.ProcessID == 0 && s.ClassName == "" &&
		s.Title == "" && s.ExecutablePath == "" && s.ExecutableName == ""
}

// ScoredCandidate pairs an enumerated window with its match score against a
// signature. Produced and consumed within a single resolution pass.
type ScoredCandidate struct {
	Window WindowInfo `yaml:"window" json:"window"`
	Score  int        `yaml:"score"  json:"score"`
}
