// Package logfind locates files referenced in build output on the local
// filesystem.
//
// CI logs reference absolute paths from the build machine, which rarely
// exist on the machine doing the parsing. When a referenced path does not
// exist verbatim, Resolve searches progressively shorter suffixes of it
// until an existing file is found.
package logfind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	// ErrNoPathInText means no path-like token was found in the input.
	ErrNoPathInText = errors.New("no path found in text")

	// ErrNotFound means no suffix of the referenced path exists as a
	// regular file.
	ErrNotFound = errors.New("no file found at path")
)

// A path token is alphanumerics plus -_./ with at least one '/'.
var pathPattern = regexp.MustCompile(`[a-zA-Z0-9_./-]+/[a-zA-Z0-9_.-]+`)

// ExtractPath returns the first path-like token in s.
func ExtractPath(s string) (string, error) {
	m := pathPattern.FindString(s)
	if m == "" {
		return "", fmt.Errorf("%w: %q", ErrNoPathInText, s)
	}
	return m, nil
}

// FromFirstSlash returns the substring of s starting at the first '/'.
// Build output often glues a prefix onto an absolute path; this recovers
// the absolute part.
func FromFirstSlash(s string) (string, error) {
	i := strings.IndexByte(s, '/')
	if i < 0 {
		return "", fmt.Errorf("%w: no '/' in %q", ErrNoPathInText, s)
	}
	return s[i:], nil
}

// Resolve finds the file named by path on the local filesystem and returns
// its canonical form. A path that does not exist as given is retried with
// leading components dropped one at a time, each remaining suffix probed
// both relative to the working directory and rooted at /.
func Resolve(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return canonicalizeFile(path)
	}
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		suffix := strings.Join(parts[i:], "/")
		if suffix == "" {
			continue
		}
		if _, err := os.Stat(suffix); err == nil {
			return canonicalizeFile(suffix)
		}
		rooted := "/" + suffix
		if _, err := os.Stat(rooted); err == nil {
			return canonicalizeFile(rooted)
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, path)
}

// canonicalizeFile returns the absolute, symlink-free form of a path that
// must name a regular file.
func canonicalizeFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrNotFound, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
