// Package project discovers candidate project directories for orbit.
//
// A search path is a colon-separated list of root directories, usually
// taken from ORBIT_PATH. Every immediate subdirectory of every root is a
// candidate for the fuzzy finder:
//
//	ORBIT_PATH=~/src:~/work
//
//	~/src/api      → candidate
//	~/src/web      → candidate
//	~/work/infra   → candidate
//
// Roots are scanned in the order given. Within a root the order is whatever
// the filesystem yields. Candidates are never deduplicated, so two roots
// with a child of the same name produce two candidates; Collisions reports
// such pairs so callers can log them.
//
// Example usage:
//
//	roots := project.SplitSearchPath(os.Getenv("ORBIT_PATH"))
//	candidates, err := project.Resolve(roots)
//	if errors.Is(err, project.ErrInvalidPath) {
//	    // a root is missing or not a directory
//	}
package project
