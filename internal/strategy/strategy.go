// Package strategy detects what kind of project a directory holds so
// `orbit init` can suggest matching setup commands.
package strategy

import (
	"fmt"
	"os"
	"path/filepath"
)

// DetectionResult holds the outcome of one strategy's detection.
type DetectionResult struct {
	Strategy   string
	Confidence int
	Evidence   string
}

// Strategy defines the interface that all project strategies must implement.
type Strategy interface {
	// Name returns the strategy name (e.g., "go", "node", "python")
	Name() string

	// Detect inspects projectPath and returns confidence (0-100) and
	// the evidence it was based on.
	Detect(projectPath string) (int, string, error)

	// Snippet returns shell lines to run when a session for the project is
	// first created. It may be empty.
	Snippet(projectPath string) string
}

// BaseStrategy provides common functionality for all strategies.
type BaseStrategy struct {
	name string
}

// Name returns the strategy name.
func (s *BaseStrategy) Name() string {
	return s.name
}

// FormatError creates a formatted error message for strategy operations.
func FormatError(strategy, operation string, err error) error {
	return fmt.Errorf("strategy %s: %s: %w", strategy, operation, err)
}

func fileExists(projectPath, name string) bool {
	_, err := os.Stat(filepath.Join(projectPath, name))
	return err == nil
}
