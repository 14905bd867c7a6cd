// Package config holds the tool's file conventions and the traitmix.yaml
// project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level traitmix.yaml configuration.
type Config struct {
	// Out is the directory for generated files. Empty means next to the input.
	Out string `yaml:"out,omitempty"`

	// Cache is the path of the persistent registry cache database.
	// Empty disables the cache unless -cache is passed on the command line.
	Cache string `yaml:"cache,omitempty"`

	// Extensions overrides the recognized source file extensions.
	Extensions []string `yaml:"extensions,omitempty"`
}

// LoadConfig reads and parses a traitmix.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses traitmix.yaml content from bytes.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	cfg.setDefaults()
	return &cfg, nil
}

// FindConfig searches for traitmix.yaml starting from dir and walking up
// to parent directories. Returns the path to the config file and nil error
// if found, or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%s: extensions[%d]: %q must start with '.'", path, i, ext)
		}
	}
	return nil
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), SourceFileExtensions...)
	}
}

// IsSourceFile reports whether path has one of the recognized extensions.
func (c *Config) IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// OutputPath returns the emitted file path for an input file, honoring the
// configured output directory.
func (c *Config) OutputPath(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(filepath.Base(input), ext)
	name := base + GeneratedSuffix + ext
	if c.Out != "" {
		return filepath.Join(c.Out, name)
	}
	return filepath.Join(filepath.Dir(input), name)
}
