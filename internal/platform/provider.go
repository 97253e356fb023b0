package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the OS backends for the current platform. It is
// constructed once at startup and passed down to the resolver and the
// scrolling engine — there is no ambient singleton.
type Provider struct {
	Enumerator Enumerator
	Inspector  ProcessInspector
	Desktop    Desktop
	Input      Input

	// SelfPID is the calling process's pid, used to keep the tool from ever
	// classifying its own windows as the target.
	SelfPID uint32
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("noteremote is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
