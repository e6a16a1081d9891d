package strategy

import (
	"path/filepath"
)

// GoStrategy implements the Strategy interface for Go projects.
type GoStrategy struct {
	BaseStrategy
}

// NewGoStrategy creates a new Go strategy.
func NewGoStrategy() *GoStrategy {
	return &GoStrategy{
		BaseStrategy: BaseStrategy{name: "go"},
	}
}

// Detect looks for go.mod, then for loose .go files.
func (s *GoStrategy) Detect(projectPath string) (int, string, error) {
	if fileExists(projectPath, "go.mod") {
		return 90, "go.mod", nil
	}

	matches, err := filepath.Glob(filepath.Join(projectPath, "*.go"))
	if err != nil {
		return 0, "", FormatError("go", "detect", err)
	}
	if len(matches) > 0 {
		return 50, "*.go files", nil
	}
	return 0, "", nil
}

// Snippet downloads module dependencies.
func (s *GoStrategy) Snippet(projectPath string) string {
	if !fileExists(projectPath, "go.mod") {
		return ""
	}
	return "go mod download"
}
