// Package config loads orbit's settings.
//
// Settings come from an optional YAML file and the environment, with the
// environment winning:
//
//	# ~/.config/orbit/config.yaml
//	path:
//	  - ~/src
//	  - ~/work
//	tmux: tmux
//	finder: fzf
//	finder_args: ["--height", "40%", "--reverse"]
//	shell: bash
//
// ORBIT_PATH, when set, replaces the path list; ORBIT_CONFIG points at a
// different file. A missing file is not an error; an unreadable or
// malformed one is.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	candidates, err := project.Resolve(cfg.Roots())
package config
