// Package session manages tmux sessions for project directories.
package session

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
)

// Name derives a tmux-safe session name from the last element of dir:
// every rune that is not a letter or digit becomes "-". Name is idempotent.
//
// dir must name a directory below the filesystem root. Project discovery
// never yields ".", ".." or "/", so Name panics on them.
func Name(dir string) string {
	base := filepath.Base(dir)
	if base == "." || base == ".." || base == string(filepath.Separator) || base == "" {
		panic(fmt.Sprintf("session: cannot derive a name from %q", dir))
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return '-'
	}, base)
}
