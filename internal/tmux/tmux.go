// Package tmux drives the tmux binary for orbit's session operations.
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/nicdgonzalez/orbit/internal/exec"
)

// Client runs tmux commands through a CommandExecutor.
type Client struct {
	Executor exec.CommandExecutor
	// Binary defaults to "tmux".
	Binary string
}

// NewClient creates a tmux client using the real executor.
func NewClient(binary string) *Client {
	return &Client{Executor: exec.NewRealExecutor(), Binary: binary}
}

// SessionTarget anchors a session name so tmux matches it exactly instead
// of treating it as a prefix or pattern.
func SessionTarget(name string) string {
	return "=" + name
}

// PaneTarget addresses the active pane of the named session.
func PaneTarget(name string) string {
	return "=" + name + ":"
}

func (c *Client) binary() string {
	if c.Binary == "" {
		return "tmux"
	}
	return c.Binary
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, []byte, error) {
	return c.Executor.Run(ctx, "", c.binary(), args...)
}

// HasSession reports whether a session with exactly this name exists.
// tmux exits 1 when it does not.
func (c *Client) HasSession(ctx context.Context, name string) (bool, error) {
	_, _, err := c.run(ctx, "has-session", "-t", SessionTarget(name))
	if err == nil {
		return true, nil
	}
	if exec.ExitCode(err) == 1 {
		return false, nil
	}
	return false, fmt.Errorf("tmux has-session: %w", err)
}

// NewSession creates a detached session rooted at dir. It returns false
// without error when tmux reports that the session already exists.
func (c *Client) NewSession(ctx context.Context, name, dir string) (bool, error) {
	_, stderr, err := c.run(ctx, "new-session", "-d", "-s", name, "-c", dir)
	if err == nil {
		return true, nil
	}
	if bytes.Contains(stderr, []byte("duplicate session")) {
		return false, nil
	}
	return false, fmt.Errorf("tmux new-session: %w", err)
}

// SessionPath returns the working directory the session was started in.
func (c *Client) SessionPath(ctx context.Context, name string) (string, error) {
	out, _, err := c.run(ctx, "display-message", "-p", "-t", SessionTarget(name), "#{session_path}")
	if err != nil {
		return "", fmt.Errorf("tmux display-message: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// SendCommand types command literally into the session's active pane and
// presses Enter.
func (c *Client) SendCommand(ctx context.Context, name, command string) error {
	target := PaneTarget(name)
	if _, _, err := c.run(ctx, "send-keys", "-t", target, "-l", command); err != nil {
		return fmt.Errorf("tmux send-keys: %w", err)
	}
	if _, _, err := c.run(ctx, "send-keys", "-t", target, "Enter"); err != nil {
		return fmt.Errorf("tmux send-keys Enter: %w", err)
	}
	return nil
}

// Attach attaches the current terminal to the session and blocks until the
// client detaches.
func (c *Client) Attach(ctx context.Context, name string) error {
	return c.Executor.Interactive(ctx, c.binary(), "attach-session", "-t", SessionTarget(name))
}

// SwitchClient moves the current tmux client to the session.
func (c *Client) SwitchClient(ctx context.Context, name string) error {
	return c.Executor.Interactive(ctx, c.binary(), "switch-client", "-t", SessionTarget(name))
}

// DetachClient detaches the current tmux client.
func (c *Client) DetachClient(ctx context.Context) error {
	if _, _, err := c.run(ctx, "detach-client"); err != nil {
		return fmt.Errorf("tmux detach-client: %w", err)
	}
	return nil
}
