// Package dixconfig loads the YAML run profile described in
// spec.md §6: the search/evaluation parameters and store location for
// one dixgraph run.
package dixconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StoreConfig selects and locates the persistence backend.
type StoreConfig struct {
	Driver string `yaml:"driver"` // "memory" or "sqlite"
	Path   string `yaml:"path"`
}

// Profile is one run's worth of search and evaluation parameters.
type Profile struct {
	Cutoff        int         `yaml:"cutoff"`
	NIter         int         `yaml:"n_iter"`
	ShortlistSize int         `yaml:"shortlist_size"`
	TopN          int         `yaml:"topn"`
	Store         StoreConfig `yaml:"store"`
}

// defaults mirror the original tool's hard-coded defaults (cutoff=4,
// n_iter=3, shortlist_size=10).
func defaults() Profile {
	return Profile{
		Cutoff:        4,
		NIter:         3,
		ShortlistSize: 10,
		Store:         StoreConfig{Driver: "memory"},
	}
}

// Load reads a YAML run profile from path, filling in defaults for any
// field the file leaves unset.
func Load(path string) (Profile, error) {
	p := defaults()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("load run profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("load run profile: %w", err)
	}
	return p, nil
}
