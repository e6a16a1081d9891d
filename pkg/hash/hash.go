// Package hash provides hashing utilities for path-based identifiers.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"path/filepath"
)

// PathHash generates an 8-character hash from a path string.
func PathHash(path string) string {
	return MD5Sum(path)[:8]
}

// Suffixed appends the path hash of path to name. The path is cleaned
// first, so trailing slashes do not change the result.
func Suffixed(name, path string) string {
	return name + "-" + PathHash(filepath.Clean(path))
}

// MD5Sum returns the full MD5 hash of a string.
func MD5Sum(s string) string {
	hasher := md5.New()
	_, _ = io.WriteString(hasher, s)
	return hex.EncodeToString(hasher.Sum(nil))
}
