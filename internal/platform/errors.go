package platform

import "errors"

// Capability error taxonomy. Every automation call resolves to one of three
// outcomes, and the scrolling fallback chains branch on which one occurred:
//
//   - ErrNotSupported: the element/container does not expose the capability.
//     The caller moves on to the next strategy.
//   - ErrVanished: the target disappeared mid-operation (window closed, row
//     virtualized away). The caller aborts the whole operation.
//   - anything else: a transient failure; the caller may retry once or treat
//     the strategy as unavailable.
var (
	ErrNotSupported = errors.New("capability not supported")
	ErrVanished     = errors.New("target vanished")
)

// IsNotSupported reports whether err means the capability is absent.
func IsNotSupported(err error) bool { return errors.Is(err, ErrNotSupported) }

// IsVanished reports whether err means the target disappeared.
func IsVanished(err error) bool { return errors.Is(err, ErrVanished) }
