package cli

import (
	"github.com/spf13/cobra"
)

func newDetachCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detach",
		Short: "Close the current tmux session",
		Long:  "Detach the current tmux client. The session keeps running.",
		Args:  cobra.NoArgs,
		RunE:  runDetach,
	}
}

func runDetach(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return newManager(cfg).Detach(cmd.Context())
}
