// Package config handles orbit configuration loading.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nicdgonzalez/orbit/internal/project"
)

const (
	// SearchPathEnv holds the colon-separated project roots.
	SearchPathEnv = "ORBIT_PATH"
	// ConfigFileEnv overrides the config file location.
	ConfigFileEnv = "ORBIT_CONFIG"
	// InsideTmuxEnv is set by tmux in every process it spawns.
	InsideTmuxEnv = "TMUX"
)

// ErrInvalidConfig is returned when the config file cannot be parsed.
var ErrInvalidConfig = errors.New("invalid config file")

// Config represents orbit's settings.
type Config struct {
	SearchPath []string `yaml:"path"`
	Tmux       string   `yaml:"tmux"`
	Finder     string   `yaml:"finder"`
	FinderArgs []string `yaml:"finder_args"`
	Shell      string   `yaml:"shell"`

	// Source is the file the settings were read from, empty if none.
	Source string `yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Tmux:   "tmux",
		Finder: "fzf",
		Shell:  "bash",
	}
}

// Dir returns the orbit directory under the user's config directory.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "orbit"), nil
}

// FilePath returns the config file location, honoring ORBIT_CONFIG.
func FilePath() (string, error) {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return project.ExpandHome(path), nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file, if any, and applies environment overrides.
func Load() (*Config, error) {
	cfg := Default()

	path, err := FilePath()
	if err == nil {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := cfg.parse(data); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
			}
			cfg.Source = path
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if searchPath, ok := os.LookupEnv(SearchPathEnv); ok {
		cfg.SearchPath = project.SplitSearchPath(searchPath)
	}

	return cfg, nil
}

// Parse decodes YAML settings on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.parse(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (c *Config) parse(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	// Empty values in the file fall back to defaults.
	def := Default()
	if c.Tmux == "" {
		c.Tmux = def.Tmux
	}
	if c.Finder == "" {
		c.Finder = def.Finder
	}
	if c.Shell == "" {
		c.Shell = def.Shell
	}
	return nil
}

// Roots returns the search path with ~ expanded and empty entries removed.
func (c *Config) Roots() []string {
	var roots []string
	for _, root := range c.SearchPath {
		if root == "" {
			continue
		}
		roots = append(roots, project.ExpandHome(root))
	}
	return roots
}

// InsideTmux reports whether orbit runs inside a tmux client.
func InsideTmux() bool {
	_, ok := os.LookupEnv(InsideTmuxEnv)
	return ok
}
