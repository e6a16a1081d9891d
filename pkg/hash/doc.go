// Package hash provides short, stable identifiers derived from paths.
//
// orbit names tmux sessions after the base name of the project directory.
// When two project directories share a base name, the second session gets
// a suffix taken from PathHash so both can exist side by side:
//
//	hash.PathHash("/work/api")   // 8 hex characters, stable across runs
//	hash.Suffixed("api", "/work/api")
//	// Returns: "api-" + hash.PathHash("/work/api")
//
// The hash is the first 8 characters of MD5(path): short enough to read in
// a status line, long enough that collisions between a user's projects are
// not a practical concern.
package hash
