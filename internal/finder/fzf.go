// Package finder lets the user pick one candidate through an external
// fuzzy finder.
package finder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nicdgonzalez/orbit/internal/exec"
)

// ErrFinderFailed is returned when the finder could not run or exited with
// an unexpected status.
var ErrFinderFailed = errors.New("fuzzy finder failed")

// fzf exit statuses that mean "nothing was selected".
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

// Picker selects one line out of a list of candidates.
type Picker interface {
	// Select returns the chosen candidate, or ok == false when the user
	// selected nothing.
	Select(ctx context.Context, candidates []string, query string) (choice string, ok bool, err error)
}

// Fzf runs fzf as the picker.
type Fzf struct {
	Executor exec.CommandExecutor
	// Binary defaults to "fzf".
	Binary string
	// ExtraArgs are appended after the built-in flags.
	ExtraArgs []string
}

// NewFzf creates an fzf picker using the real executor.
func NewFzf(binary string, extraArgs []string) *Fzf {
	return &Fzf{
		Executor:  exec.NewRealExecutor(),
		Binary:    binary,
		ExtraArgs: extraArgs,
	}
}

// Args returns the fzf arguments for the given query. --select-1 lets an
// unambiguous query skip the UI; --exit-0 returns immediately when nothing
// matches.
func (f *Fzf) Args(query string) []string {
	args := []string{"--query", query, "--select-1", "--exit-0"}
	return append(args, f.ExtraArgs...)
}

// Select feeds candidates to fzf on stdin and reads the chosen line back.
func (f *Fzf) Select(ctx context.Context, candidates []string, query string) (string, bool, error) {
	binary := f.Binary
	if binary == "" {
		binary = "fzf"
	}

	input := strings.NewReader(strings.Join(candidates, "\n"))
	out, err := f.Executor.RunWithInput(ctx, input, binary, f.Args(query)...)
	if err != nil {
		switch exec.ExitCode(err) {
		case exitNoMatch, exitInterrupted:
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: %w", ErrFinderFailed, err)
	}

	choice := strings.TrimRight(string(out), "\r\n")
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}
