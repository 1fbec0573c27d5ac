package selection

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/capability"
	"github.com/ElsiKora/Setup-Wizard-sub001/pkg/emit"
)

// Store loads a previously persisted selection. Load returns a nil slice and
// no error when nothing was saved.
type Store interface {
	Load() ([]capability.FeatureID, error)
}

const savedVersion = 1

type savedSelection struct {
	Version   int       `yaml:"version"`
	Features  []string  `yaml:"features"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`
}

// FileStore persists the selection as YAML.
type FileStore struct {
	Path string
}

// NewFileStore returns a store for the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the saved selection
func (s *FileStore) Load() ([]capability.FeatureID, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read saved selection: %w", err)
	}

	var saved savedSelection
	if err := yaml.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse saved selection %s: %w", s.Path, err)
	}
	if saved.Version > savedVersion {
		return nil, fmt.Errorf("saved selection %s has unsupported version %d", s.Path, saved.Version)
	}

	ids := make([]capability.FeatureID, 0, len(saved.Features))
	for _, f := range saved.Features {
		ids = append(ids, capability.FeatureID(f))
	}
	return ids, nil
}

// Save writes ids, creating the parent directory when needed.
func (s *FileStore) Save(ids []capability.FeatureID) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create selection directory: %w", err)
	}

	saved := savedSelection{
		Version:   savedVersion,
		Features:  make([]string, len(ids)),
		UpdatedAt: time.Now().UTC(),
	}
	for i, id := range ids {
		saved.Features[i] = string(id)
	}

	data, err := yaml.Marshal(&saved)
	if err != nil {
		return fmt.Errorf("failed to marshal selection: %w", err)
	}

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write selection file: %w", err)
	}
	return nil
}

// ConfigFlagStore recovers a selection from a previously generated
// configuration file by reading its enabled flags back.
type ConfigFlagStore struct {
	Path     string
	Registry *capability.Registry
}

// Load returns the features whose flags are enabled in the config file. Flags
// the registry does not know are returned as-is so the resolver can reject the
// set as a whole.
func (s *ConfigFlagStore) Load() ([]capability.FeatureID, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read existing config: %w", err)
	}

	flags := emit.ParseFlags(string(data))
	if len(flags) == 0 {
		return nil, nil
	}

	ids := make([]capability.FeatureID, 0, len(flags))
	for _, flag := range flags {
		if id, ok := s.Registry.FeatureByFlag(flag); ok {
			ids = append(ids, id)
			continue
		}
		ids = append(ids, capability.FeatureID(flag))
	}
	return ids, nil
}

// Stores tries each store in order and returns the first saved selection.
type Stores []Store

func (ss Stores) Load() ([]capability.FeatureID, error) {
	for _, s := range ss {
		ids, err := s.Load()
		if err != nil {
			return nil, err
		}
		if ids != nil {
			return ids, nil
		}
	}
	return nil, nil
}
