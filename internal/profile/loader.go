package profile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses the profile document.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if p.Hero.Headline == "" {
		return nil, errors.New("profile has no hero headline")
	}
	return &p, nil
}

// Source hands out the current profile. Implemented by the file
// watcher and by Static for tests and one-shot tools.
type Source interface {
	Current() *Profile
}

type staticSource struct {
	p *Profile
}

func (s staticSource) Current() *Profile { return s.p }

// Static wraps a fixed profile as a Source.
func Static(p *Profile) Source { return staticSource{p: p} }
