package resolve

import (
	"noteremote/internal/model"
	"noteremote/internal/platform"
)

// BuildSignature captures a durable description of a live window at the
// moment of successful connection. Each field read is independently guarded:
// a window that refuses to report its title still yields a signature with
// its class, pid, and executable populated. Missing fields stay zero.
func BuildSignature(w platform.Window, inspector platform.ProcessInspector) model.WindowSignature {
	var sig model.WindowSignature

	sig.Handle = w.Handle()

	if pid, err := w.ProcessID(); err == nil {
		sig.ProcessID = pid
	}
	if title, err := w.Title(); err == nil {
		sig.Title = title
	}
	if class, err := w.ClassName(); err == nil {
		sig.ClassName = class
	}

	if sig.ProcessID != 0 {
		if path, err := inspector.ExecutablePath(sig.ProcessID); err == nil && path != "" {
			sig.ExecutablePath = path
			sig.ExecutableName = exeBaseName(path)
		}
	}

	return sig
}
