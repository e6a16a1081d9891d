package cli

import (
	"github.com/spf13/cobra"

	"github.com/nicdgonzalez/orbit/internal/finder"
	"github.com/nicdgonzalez/orbit/internal/launcher"
)

func newAttachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attach [query]",
		Short: "Open a tmux session",
		Long: `Pick a project with the fuzzy finder and attach to its tmux session,
creating it first if needed. The query pre-filters the list; when exactly
one project matches it is opened without showing the finder.

Inside tmux the current client is switched instead of nesting a new one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAttach,
	}
}

func runAttach(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) == 1 {
		query = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := ValidateRequired(Prerequisites(cfg)); err != nil {
		return err
	}

	l := launcher.New(cfg.Roots(), finder.NewFzf(cfg.Finder, cfg.FinderArgs), newManager(cfg))
	_, err = l.Launch(cmd.Context(), query)
	return err
}
