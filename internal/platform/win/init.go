//go:build windows

package win

import (
	"golang.org/x/sys/windows"

	"noteremote/internal/platform"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		client, err := NewClient()
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Enumerator: Enumerator{},
			Inspector:  Inspector{},
			Desktop:    &Desktop{client: client},
			Input:      Input{},
			SelfPID:    windows.GetCurrentProcessId(),
		}, nil
	}
}
