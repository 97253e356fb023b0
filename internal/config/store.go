package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"noteremote/internal/model"
)

// Store persists the connection signature between sessions. The filesystem
// is abstracted so tests run against an in-memory fs. The signature file is
// replaced wholesale on every save — stores never patch a signature.
type Store struct {
	FS   afero.Fs
	Path string
}

// NewStore returns a Store over the real filesystem.
func NewStore(path string) *Store {
	return &Store{FS: afero.NewOsFs(), Path: path}
}

// Load reads the stored signature. ok is false when no signature has been
// saved yet.
func (s *Store) Load() (sig model.WindowSignature, ok bool, err error) {
	data, err := afero.ReadFile(s.FS, s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.WindowSignature{}, false, nil
		}
		return model.WindowSignature{}, false, fmt.Errorf("read signature: %w", err)
	}

	if err := json.Unmarshal(data, &sig); err != nil {
		return model.WindowSignature{}, false, fmt.Errorf("decode signature: %w", err)
	}
	return sig, !sig.IsZero(), nil
}

// Save writes the signature, creating the parent directory if needed.
func (s *Store) Save(sig model.WindowSignature) error {
	if err := s.FS.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("create signature dir: %w", err)
	}

	data, err := json.MarshalIndent(sig, "", "  ")
	if err != nil {
		return fmt.Errorf("encode signature: %w", err)
	}

	if err := afero.WriteFile(s.FS, s.Path, data, 0o600); err != nil {
		return fmt.Errorf("write signature: %w", err)
	}
	return nil
}

// Clear removes the stored signature. Clearing an absent signature is not
// an error.
func (s *Store) Clear() error {
	if err := s.FS.Remove(s.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove signature: %w", err)
	}
	return nil
}
