// Package cli handles command-line parsing and execution.
package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nicdgonzalez/orbit/internal/bootstrap"
	"github.com/nicdgonzalez/orbit/internal/config"
	"github.com/nicdgonzalez/orbit/internal/logger"
	"github.com/nicdgonzalez/orbit/internal/session"
	"github.com/nicdgonzalez/orbit/internal/tmux"
)

var (
	debugMode             bool
	version, commit, date = "dev", "none", "unknown"
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbit",
		Short: "A session manager for tmux",
		Long: `orbit finds your projects, lets you pick one with a fuzzy finder and
drops you into a tmux session rooted at it. New sessions run a bootstrap
script once: the project's own orbit.sh, or a global default.

Projects are the immediate subdirectories of every directory listed in
ORBIT_PATH (colon separated).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return setupLogging() },
	}

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the orbit state directory")
	cmd.Version = version
	cmd.SetVersionTemplate(versionTemplate())

	cmd.AddCommand(newAttachCmd(), newDetachCmd(), newInitCmd())
	return cmd
}

// Execute runs the root command
func Execute(ctx context.Context) error {
	defer logger.Close()
	return newRootCmd().ExecuteContext(ctx)
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("orbit %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("orbit %s\n", version)
}

func setupLogging() error {
	if !debugMode {
		return nil
	}

	path, err := logger.DefaultLogPath()
	if err != nil {
		return fmt.Errorf("failed to locate log file: %w", err)
	}
	logger.SetDebug(true)
	return logger.Init(path)
}

// loadConfig loads settings and records where they came from.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Get().Debug("config loaded", "source", cfg.Source, "roots", cfg.Roots(), "tmux", cfg.Tmux, "finder", cfg.Finder)
	return cfg, nil
}

func newManager(cfg *config.Config) *session.Manager {
	m := session.NewManager(tmux.NewClient(cfg.Tmux), bootstrap.NewResolver(), cfg.Shell)
	if dir, err := logger.StateDir(); err == nil {
		m.LockDir = filepath.Join(dir, "locks")
	}
	return m
}
