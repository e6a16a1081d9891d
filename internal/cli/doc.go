// Package cli implements orbit's command line.
//
// The root command carries the global flags and dispatches to three
// subcommands:
//
//	orbit attach [query]   pick a project and open its tmux session
//	orbit detach           detach the current tmux client
//	orbit init [dir]       write a bootstrap script into a project
//
// Global flags:
//
//	--debug     write debug logs to $XDG_STATE_HOME/orbit/orbit.log
//	--version   print version information
//
// Errors are returned from Execute unprinted; the caller reports them once.
// Settings come from config.Load, so ORBIT_PATH and the optional config
// file apply to every subcommand.
//
// Example:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//	if err := cli.Execute(ctx); err != nil {
//	    ui.Error("%v", err)
//	    os.Exit(1)
//	}
package cli
