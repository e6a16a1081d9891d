// Package session turns a project directory into a tmux session.
//
// This package handles:
//   - Session naming: the directory's base name with every character that
//     is not a letter or digit replaced by "-"
//   - Disambiguation when another directory already owns that name
//   - Create-if-absent with exactly-once bootstrap
//   - Attaching, or switching when already inside tmux
//
// The first Open for a directory creates a detached session and types the
// bootstrap command into it. Every later Open finds the session and leaves
// it alone, so the bootstrap script runs at most once per session.
//
// Example usage:
//
//	m := session.NewManager(tmux.NewClient("tmux"), bootstrap.NewResolver(), "bash")
//	sess, err := m.Open(ctx, "/home/u/src/my-api")
//	if err != nil {
//	    return err
//	}
//	return m.Connect(ctx, sess.Name)
//
// Session names:
//
//	/home/u/src/my-api      → my-api
//	/home/u/src/my project! → my-project-
//	/home/u/work/my-api     → my-api-<8 hex chars> (when my-api is taken)
package session
