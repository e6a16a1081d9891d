package bootstrap

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/nicdgonzalez/orbit/internal/strategy"
)

// ErrAlreadyInitialized is returned by Init when the project already has a
// bootstrap script and Force is not set.
var ErrAlreadyInitialized = errors.New("orbit.sh already exists")

//go:embed templates/project.sh.tmpl
var projectTemplate string

var projectTmpl = template.Must(template.New("project").Parse(projectTemplate))

// InitOptions controls Init.
type InitOptions struct {
	// Force overwrites an existing orbit.sh.
	Force bool
	// Detector picks setup commands for the project. Nil disables detection.
	Detector *strategy.Detector
}

// InitResult describes the script written by Init.
type InitResult struct {
	Path     string
	Strategy string
}

type projectData struct {
	Name     string
	Strategy string
	Evidence string
	Snippet  string
}

// Init writes a bootstrap script into projectDir.
func Init(projectDir string, opts InitOptions) (*InitResult, error) {
	path := filepath.Join(projectDir, ScriptName)
	if exists(path) && !opts.Force {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyInitialized, path)
	}

	content, strategyName, err := RenderProjectScript(projectDir, opts.Detector)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, content, 0755); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return &InitResult{Path: path, Strategy: strategyName}, nil
}

// RenderProjectScript renders the project bootstrap template for
// projectDir. It returns the detected strategy name alongside the script.
func RenderProjectScript(projectDir string, detector *strategy.Detector) ([]byte, string, error) {
	data := projectData{Name: filepath.Base(projectDir)}

	if detector != nil {
		strat, result, err := detector.DetectBest(projectDir)
		if err != nil {
			return nil, "", fmt.Errorf("failed to detect project type: %w", err)
		}
		if result.Strategy != "generic" {
			data.Strategy = result.Strategy
			data.Evidence = result.Evidence
			data.Snippet = strat.Snippet(projectDir)
		}
	}

	var buf bytes.Buffer
	if err := projectTmpl.Execute(&buf, data); err != nil {
		return nil, "", fmt.Errorf("failed to render bootstrap script: %w", err)
	}
	return buf.Bytes(), data.Strategy, nil
}
