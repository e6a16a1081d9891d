// Package bootstrap locates the script orbit runs inside a newly created
// session, and writes project scripts for `orbit init`.
package bootstrap

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ScriptName is the bootstrap script's file name, both inside a project
	// and under the config directory.
	ScriptName = "orbit.sh"

	configSubdir = "orbit"
)

// ErrNoConfigDir is returned when the user's config directory cannot be
// determined.
var ErrNoConfigDir = errors.New("unable to determine the user's config directory")

// DefaultTemplate is written to the global fallback path on first use.
//
//go:embed templates/orbit.sh
var DefaultTemplate string

// Resolver picks the bootstrap script for a project directory.
type Resolver struct {
	// ConfigDir returns the user's configuration directory. Defaults to
	// os.UserConfigDir.
	ConfigDir func() (string, error)
}

// NewResolver creates a resolver backed by os.UserConfigDir.
func NewResolver() *Resolver {
	return &Resolver{ConfigDir: os.UserConfigDir}
}

// FallbackPath returns <config dir>/orbit/orbit.sh.
func (r *Resolver) FallbackPath() (string, error) {
	configDir := r.ConfigDir
	if configDir == nil {
		configDir = os.UserConfigDir
	}

	dir, err := configDir()
	if err != nil || dir == "" {
		return "", ErrNoConfigDir
	}
	return filepath.Join(dir, configSubdir, ScriptName), nil
}

// Resolve returns the project's own orbit.sh when present, else the global
// fallback, writing the default template there if it does not exist yet.
func (r *Resolver) Resolve(projectDir string) (string, error) {
	local := filepath.Join(projectDir, ScriptName)
	if exists(local) {
		return local, nil
	}

	fallback, err := r.FallbackPath()
	if err != nil {
		return "", err
	}
	if exists(fallback) {
		return fallback, nil
	}

	if err := os.MkdirAll(filepath.Dir(fallback), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(fallback, []byte(DefaultTemplate), 0755); err != nil {
		return "", fmt.Errorf("failed to write default bootstrap script: %w", err)
	}

	return fallback, nil
}

// Command builds the shell command that runs script inside a session.
// The script is piped into shell so it needs no execute bit.
func Command(script, shell string) string {
	if shell == "" {
		shell = "bash"
	}
	return fmt.Sprintf("cat %s | %s", ShellQuote(script), shell)
}

// ShellQuote wraps s in single quotes for POSIX shells.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
