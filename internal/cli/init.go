package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nicdgonzalez/orbit/internal/bootstrap"
	"github.com/nicdgonzalez/orbit/internal/logger"
	"github.com/nicdgonzalez/orbit/internal/strategy"
	"github.com/nicdgonzalez/orbit/internal/ui"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize a new orbit project in the current directory",
		Long: `Write an orbit.sh bootstrap script into the project directory (the
current directory by default). orbit runs it once whenever it creates a
session for the project. Setup commands are suggested based on the files
found in the project.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing orbit.sh without asking")
	return cmd
}

func runInit(dir string, force bool) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	opts := bootstrap.InitOptions{Force: force, Detector: strategy.NewDetector()}
	result, err := bootstrap.Init(abs, opts)
	if errors.Is(err, bootstrap.ErrAlreadyInitialized) {
		if !ui.AskYesNo(fmt.Sprintf("%s already exists. Overwrite?", filepath.Join(abs, bootstrap.ScriptName)), false) {
			ui.Warn("Kept the existing %s", bootstrap.ScriptName)
			return nil
		}
		opts.Force = true
		result, err = bootstrap.Init(abs, opts)
	}
	if err != nil {
		return err
	}

	logger.Get().Info("project initialized", "path", result.Path, "strategy", result.Strategy)
	if result.Strategy != "" {
		ui.Info("Detected %s project", ui.Bold(result.Strategy))
	}
	ui.Success("Created %s", result.Path)
	return nil
}
