// Package ui provides terminal output formatting for orbit.
//
// This package handles all user-facing output with consistent styling:
//   - Error reporting with a bold red "error:" prefix
//   - Info, success and warning messages
//   - A yes/no prompt for confirming destructive actions
//
// All output goes to ui.Out (defaults to os.Stderr) and prompts read from
// ui.In (defaults to os.Stdin) to allow testing and redirection. Stdout is
// left alone so orbit never interferes with what tmux draws.
//
// Example usage:
//
//	ui.Info("Detected %s project", "go")
//	if ui.AskYesNo("Overwrite orbit.sh?", false) {
//	    ui.Success("Wrote %s", path)
//	}
//
//	ui.Error("%v", err)
//
// Output styling:
//   - Error:   error: bold red prefix
//   - Info:    → Cyan arrow
//   - Success: ✔ Green checkmark
//   - Warn:    ○ Yellow circle
package ui
