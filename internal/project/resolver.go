// Package project discovers candidate project directories.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidPath is returned when a search path root is missing or is
	// not a directory.
	ErrInvalidPath = errors.New("expected path to be a directory")

	// ErrReadDir is returned when a root's listing cannot be opened.
	ErrReadDir = errors.New("failed to read directory contents")
)

// SplitSearchPath splits a colon-separated search path into roots.
// Empty segments are dropped and a leading ~ is expanded to the home
// directory. An empty string yields no roots.
func SplitSearchPath(searchPath string) []string {
	var roots []string
	for _, segment := range strings.Split(searchPath, ":") {
		if segment == "" {
			continue
		}
		roots = append(roots, ExpandHome(segment))
	}
	return roots
}

// ExpandHome expands "~" and "~/..." to the user's home directory.
// Paths that do not start with ~ are returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

// Resolve returns every immediate subdirectory of every root, roots in
// order. Entries that cannot be stat'd are skipped.
func Resolve(roots []string) ([]string, error) {
	var candidates []string

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			return nil, fmt.Errorf("%w: %s", ErrInvalidPath, root)
		}

		dirs, err := subdirectories(root)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, dirs...)
	}

	return candidates, nil
}

func subdirectories(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadDir, root, err)
	}

	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())

		// Stat rather than entry.IsDir so symlinked projects are followed.
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		}
	}

	return dirs, nil
}

// Collisions groups candidates that share a base name. Only names with more
// than one candidate are returned.
func Collisions(candidates []string) map[string][]string {
	byName := make(map[string][]string)
	for _, c := range candidates {
		name := filepath.Base(c)
		byName[name] = append(byName[name], c)
	}

	for name, paths := range byName {
		if len(paths) < 2 {
			delete(byName, name)
		}
	}
	return byName
}
