package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName = "svcman"
	cacheFileName = "cache.json"
)

// ErrFormat marks a registry file that exists but cannot be parsed.
// There is no partial recovery; callers treat this as fatal.
var ErrFormat = errors.New("malformed registry file")

// Store reads and writes the registry as a pretty-printed JSON file.
// The zero value is not usable; construct with DefaultStore or NewStore.
type Store struct {
	path string
}

// DefaultStore resolves the registry location under the user's config
// directory (<home>/.config/svcman/cache.json). The location is derived
// from the environment on every call and never cached.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	return NewStore(filepath.Join(home, ".config", configDirName, cacheFileName)), nil
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the registry from disk. A missing file is an empty
// registry; a file that cannot be parsed is ErrFormat.
func (s *Store) Load() (Registry, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Registry{}, nil
		}
		return nil, fmt.Errorf("read registry %s: %w", s.path, err)
	}
	var reg Registry
	if err := json.Unmarshal(b, &reg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFormat, s.path, err)
	}
	return reg, nil
}

// Save serializes the full registry and overwrites the file.
func (s *Store) Save(reg Registry) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	b, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize registry: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write registry %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create config directory %s: %w", dir, err)
	}
	return nil
}
