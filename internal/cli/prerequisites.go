package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/nicdgonzalez/orbit/internal/config"
)

// Prerequisite represents a required CLI tool
type Prerequisite struct {
	Name        string // Command name (e.g., "tmux", "fzf")
	Required    bool   // Whether attach can run without it
	Description string // Human-readable description
	InstallURL  string // URL for installation instructions
}

// Prerequisites returns the tools attach needs, honoring configured
// binaries.
func Prerequisites(cfg *config.Config) []Prerequisite {
	return []Prerequisite{
		{
			Name:        cfg.Tmux,
			Required:    true,
			Description: "terminal multiplexer",
			InstallURL:  "https://github.com/tmux/tmux/wiki/Installing",
		},
		{
			Name:        cfg.Finder,
			Required:    true,
			Description: "fuzzy finder",
			InstallURL:  "https://github.com/junegunn/fzf#installation",
		},
		{
			Name:        cfg.Shell,
			Required:    false, // Only used when a session is created
			Description: "shell for bootstrap scripts",
		},
	}
}

// ValidateRequired checks that all required prerequisites are on PATH.
// Returns nil if all required tools are found, otherwise an error listing
// what's missing.
func ValidateRequired(prereqs []Prerequisite) error {
	var missing []string

	for _, prereq := range prereqs {
		if !prereq.Required {
			continue
		}
		if _, err := exec.LookPath(prereq.Name); err != nil {
			missing = append(missing, fmt.Sprintf("  - %s (%s)\n    Install: %s",
				prereq.Name, prereq.Description, prereq.InstallURL))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required CLI tools:\n%s", strings.Join(missing, "\n"))
	}
	return nil
}
