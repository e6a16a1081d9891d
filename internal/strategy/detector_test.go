package strategy

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
}

func TestListStrategies(t *testing.T) {
	got := NewDetector().ListStrategies()
	want := []string{"generic", "go", "node", "python", "rails", "rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListStrategies() = %v, want %v", got, want)
	}
}

func TestGetStrategy(t *testing.T) {
	d := NewDetector()
	if s, err := d.GetStrategy("go"); err != nil || s.Name() != "go" {
		t.Errorf("GetStrategy(go) = %v, %v", s, err)
	}
	if _, err := d.GetStrategy("cobol"); err == nil {
		t.Error("GetStrategy(cobol) expected error")
	}
}

func TestDetectBest(t *testing.T) {
	tests := []struct {
		name         string
		files        map[string]string
		wantStrategy string
		wantSnippet  string
	}{
		{
			name:         "empty directory",
			files:        nil,
			wantStrategy: "generic",
			wantSnippet:  "",
		},
		{
			name:         "go module",
			files:        map[string]string{"go.mod": "module example.com/x\n"},
			wantStrategy: "go",
			wantSnippet:  "go mod download",
		},
		{
			name:         "node with pnpm",
			files:        map[string]string{"package.json": "{}", "pnpm-lock.yaml": ""},
			wantStrategy: "node",
			wantSnippet:  "pnpm install",
		},
		{
			name:         "node without lockfile",
			files:        map[string]string{"package.json": "{}"},
			wantStrategy: "node",
			wantSnippet:  "npm install",
		},
		{
			name:         "python requirements",
			files:        map[string]string{"requirements.txt": "requests\n"},
			wantStrategy: "python",
			wantSnippet:  "[ -d .venv ] || python3 -m venv .venv\n.venv/bin/pip install -r requirements.txt",
		},
		{
			name:         "rust",
			files:        map[string]string{"Cargo.toml": "[package]\n"},
			wantStrategy: "rust",
			wantSnippet:  "cargo fetch",
		},
		{
			name: "rails beats node",
			files: map[string]string{
				"Gemfile":               "source 'https://rubygems.org'\ngem 'rails', '~> 7.1'\n",
				"config/application.rb": "",
				"package.json":          "{}",
			},
			wantStrategy: "rails",
			wantSnippet:  "bundle install",
		},
		{
			name:         "gemfile without rails",
			files:        map[string]string{"Gemfile": "gem 'sinatra'\n"},
			wantStrategy: "generic",
			wantSnippet:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)

			strat, result, err := NewDetector().DetectBest(dir)
			if err != nil {
				t.Fatalf("DetectBest() error = %v", err)
			}
			if result.Strategy != tt.wantStrategy || strat.Name() != tt.wantStrategy {
				t.Errorf("DetectBest() = %s, want %s", result.Strategy, tt.wantStrategy)
			}
			if got := strat.Snippet(dir); got != tt.wantSnippet {
				t.Errorf("Snippet() = %q, want %q", got, tt.wantSnippet)
			}
		})
	}
}

func TestRunDetection_Sorted(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"go.mod":       "module x\n",
		"package.json": "{}",
	})

	results, err := NewDetector().RunDetection(dir)
	if err != nil {
		t.Fatalf("RunDetection() error = %v", err)
	}

	var names []string
	for _, r := range results {
		names = append(names, r.Strategy)
	}
	want := []string{"go", "node", "generic"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("RunDetection() order = %v, want %v", names, want)
	}
}

func TestRunDetection_MissingDir(t *testing.T) {
	if _, err := NewDetector().RunDetection(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("RunDetection() expected error for missing directory")
	}
}
