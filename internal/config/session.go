package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Session holds the render settings that apply to a whole invocation.
// A Session is passed by value into every printer; it is never mutated
// while rendering.
type Session struct {
	// Verbose switches every renderer to the fully explicit debug output:
	// inference variables show their ids, regions print their internal
	// form and default type arguments are never elided.
	Verbose bool `yaml:"verbose"`

	// Color controls terminal highlighting in the command line tool.
	// One of "auto" (default), "always" or "never".
	Color string `yaml:"color,omitempty"`
}

// DefaultSession returns the concise, auto-colour session.
func DefaultSession() Session {
	return Session{Color: ColorAuto}
}

// LoadSession reads and parses a tyrender.yaml file.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseSession(data, path)
}

// ParseSession parses session config content from bytes.
// The path argument is used only for error messages.
func ParseSession(data []byte, path string) (*Session, error) {
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	s.setDefaults()
	if err := s.validate(path); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindSession searches for a session config starting from dir and walking
// up to parent directories.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindSession(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range SessionFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// ApplyEnv overrides fields from the environment. lookup has the
// signature of os.LookupEnv.
func (s *Session) ApplyEnv(lookup func(string) (string, bool)) error {
	v, ok := lookup(VerboseEnvVar)
	if !ok {
		return nil
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		s.Verbose = true
	case "", "0", "false", "no", "off":
		s.Verbose = false
	default:
		return fmt.Errorf("%s: invalid value %q", VerboseEnvVar, v)
	}
	return nil
}

func (s *Session) setDefaults() {
	if s.Color == "" {
		s.Color = ColorAuto
	}
}

func (s *Session) validate(path string) error {
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("%s: color must be one of auto, always, never (got %q)", path, s.Color)
}
