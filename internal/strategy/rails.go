package strategy

import (
	"os"
	"path/filepath"
	"strings"
)

// RailsStrategy implements the Strategy interface for Ruby on Rails projects.
type RailsStrategy struct {
	BaseStrategy
}

// NewRailsStrategy creates a new Rails strategy.
func NewRailsStrategy() *RailsStrategy {
	return &RailsStrategy{
		BaseStrategy: BaseStrategy{name: "rails"},
	}
}

// Detect looks for a Gemfile that depends on rails.
func (s *RailsStrategy) Detect(projectPath string) (int, string, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, "Gemfile"))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, "", nil
		}
		return 0, "", FormatError("rails", "read Gemfile", err)
	}

	if !gemfileHasRails(string(data)) {
		return 0, "", nil
	}
	if fileExists(projectPath, filepath.Join("config", "application.rb")) {
		return 95, "Gemfile (rails), config/application.rb", nil
	}
	return 80, "Gemfile (rails)", nil
}

// Snippet installs gems.
func (s *RailsStrategy) Snippet(projectPath string) string {
	return "bundle install"
}

func gemfileHasRails(gemfile string) bool {
	for _, line := range strings.Split(gemfile, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, `gem "rails"`) || strings.HasPrefix(line, `gem 'rails'`) {
			return true
		}
	}
	return false
}
