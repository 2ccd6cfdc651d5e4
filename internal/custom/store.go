// Package custom persists user-defined launcher entries alongside the
// scanned desktop entries.
package custom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bragi/internal/config"
	"bragi/internal/models"

	"gopkg.in/yaml.v3"
)

// Definition is the YAML shape of one user-defined entry
type Definition struct {
	Name    string `yaml:"name"`
	Exec    string `yaml:"exec"`
	Comment string `yaml:"comment,omitempty"`
	Icon    string `yaml:"icon,omitempty"`
}

// file is the root YAML structure
type file struct {
	Entries []Definition `yaml:"entries"`
}

// Store persists custom entry definitions in a YAML file
type Store struct {
	path string
}

// New creates a store backed by path; an empty path uses the default
// location under the config dir.
func New(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = config.EntriesPath()
	}
	return &Store{path: path}
}

// Load returns all custom definitions. A missing file yields an empty set.
func (s *Store) Load() ([]Definition, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Definition{}, nil
		}
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Entries == nil {
		return []Definition{}, nil
	}
	return f.Entries, nil
}

// Entries loads the definitions as launcher entries, skipping invalid ones
func (s *Store) Entries() []*models.Entry {
	defs, err := s.Load()
	if err != nil {
		return nil
	}

	var entries []*models.Entry
	for _, def := range defs {
		def, err := sanitize(def)
		if err != nil {
			continue
		}
		entries = append(entries, &models.Entry{
			Name:    def.Name,
			Exec:    def.Exec,
			Comment: def.Comment,
			Icon:    def.Icon,
			Source:  s.path,
			Custom:  true,
		})
	}
	return entries
}

// Add appends a definition to the store
func (s *Store) Add(def Definition) error {
	def, err := sanitize(def)
	if err != nil {
		return err
	}

	existing, err := s.Load()
	if err != nil {
		return err
	}

	for _, d := range existing {
		if strings.EqualFold(d.Name, def.Name) {
			return fmt.Errorf("custom entry named %q already exists", def.Name)
		}
	}

	existing = append(existing, def)
	return s.save(existing)
}

func (s *Store) save(defs []Definition) error {
	data, err := yaml.Marshal(file{Entries: defs})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func sanitize(def Definition) (Definition, error) {
	def.Name = strings.TrimSpace(def.Name)
	def.Exec = strings.TrimSpace(def.Exec)
	def.Comment = strings.TrimSpace(def.Comment)
	def.Icon = strings.TrimSpace(def.Icon)

	if def.Name == "" {
		return def, fmt.Errorf("name is required")
	}
	if def.Exec == "" {
		return def, fmt.Errorf("exec is required")
	}
	return def, nil
}
