// Package settings persists tool configuration as a TOML file of sections
// holding string key/value pairs.
package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Store is a section/key/value settings file. Missing sections and keys are
// seeded from defaults on load; values already on disk win.
type Store struct {
	path string
	data map[string]map[string]string
}

// Load reads the settings file at path. A missing file is not an error: the
// store starts from defaults and is created on the first Persist.
func Load(path string, defaults map[string]map[string]string) (*Store, error) {
	s := &Store{path: path, data: make(map[string]map[string]string)}

	if _, err := toml.DecodeFile(path, &s.data); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	for section, keys := range defaults {
		if s.data[section] == nil {
			s.data[section] = make(map[string]string)
		}
		for k, v := range keys {
			if _, ok := s.data[section][k]; !ok {
				s.data[section][k] = v
			}
		}
	}

	return s, nil
}

// Get returns the value stored under section/key, or "" when absent.
func (s *Store) Get(section, key string) string {
	return s.data[section][key]
}

// Set stores value under section/key in memory. Persist writes it to disk.
func (s *Store) Set(section, key, value string) {
	if s.data[section] == nil {
		s.data[section] = make(map[string]string)
	}
	s.data[section][key] = value
}

// Persist writes the store back to its file.
func (s *Store) Persist() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.data); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
