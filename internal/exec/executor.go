// Package exec provides an abstraction over command execution for testability.
// Production code uses RealExecutor, which shells out through os/exec, while
// tests inject a MockExecutor that records calls and returns canned responses.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// Run executes a command and returns stdout, stderr, and any error.
	Run(ctx context.Context, dir string, name string, args ...string) (stdout, stderr []byte, err error)

	// RunWithInput feeds stdin to a command and returns its stdout.
	// Stderr stays attached to the terminal so interactive tools that draw
	// their UI there keep working.
	RunWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error)

	// Interactive runs a command with all standard streams attached to the
	// terminal and blocks until it exits.
	Interactive(ctx context.Context, name string, args ...string) error
}

// ExitError reports a command that ran but exited with a non-zero status.
type ExitError struct {
	Name   string
	Code   int
	Stderr []byte
}

func (e *ExitError) Error() string {
	msg := strings.TrimSpace(string(e.Stderr))
	if msg == "" {
		return fmt.Sprintf("%s exited with status %d", e.Name, e.Code)
	}
	return fmt.Sprintf("%s exited with status %d: %s", e.Name, e.Code, msg)
}

// ExitCode returns the exit status carried by err, or -1 when err does not
// describe a finished process.
func ExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}

// RealExecutor executes commands using os/exec.
type RealExecutor struct{}

// NewRealExecutor returns a new RealExecutor.
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Run executes a command and returns stdout, stderr, and any error.
func (e *RealExecutor) Run(ctx context.Context, dir string, name string, args ...string) (stdout, stderr []byte, err error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	return stdoutBuf.Bytes(), stderrBuf.Bytes(), wrapExit(name, err, stderrBuf.Bytes())
}

// RunWithInput feeds stdin to a command and returns its stdout.
func (e *RealExecutor) RunWithInput(ctx context.Context, stdin io.Reader, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stderr = os.Stderr

	var stdoutBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf

	err := cmd.Run()
	return stdoutBuf.Bytes(), wrapExit(name, err, nil)
}

// Interactive runs a command attached to the current terminal.
func (e *RealExecutor) Interactive(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return wrapExit(name, cmd.Run(), nil)
}

// wrapExit converts *exec.ExitError into the package's ExitError so callers
// (and mocks) only deal with one type.
func wrapExit(name string, err error, stderr []byte) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Name: name, Code: exitErr.ExitCode(), Stderr: stderr}
	}
	return err
}
