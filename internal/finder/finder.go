package finder

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/simon/tsh/internal/deps"
)

// ErrNoDirectories means enumeration ran cleanly but produced zero usable
// candidates. Distinct from a search subprocess failing outright.
var ErrNoDirectories = errors.New("no directories found")

// CommandError reports a search subprocess that exited non-zero or could
// not be spawned.
type CommandError struct {
	Op  string
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Paths under dependency caches, VCS metadata, cache/tmp trees, and the
// macOS user library are never useful session targets.
var excludeRe = regexp.MustCompile(`/node_modules/|/\.git/|/\.cache/|/tmp/|/Library/`)

// Enumerator lists directories via an external recursive search tool.
// FastBin is the fd binary when available; resolved once at construction,
// not re-probed per search.
type Enumerator struct {
	FindBin string
	FastBin string
}

func NewEnumerator() *Enumerator {
	e := &Enumerator{FindBin: "find"}
	if deps.Available("fd") {
		e.FastBin = "fd"
	}
	return e
}

// DefaultBase returns the home directory, falling back to the working
// directory when home cannot be resolved.
func DefaultBase() (string, error) {
	if home, err := os.UserHomeDir(); err == nil {
		return home, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve search base: %w", err)
	}
	return wd, nil
}

// NamedRoots finds every directory under base whose name matches one of
// the given patterns, in pattern order. The top-level name match always
// uses find; fd only speeds up the nested enumeration afterwards.
func (e *Enumerator) NamedRoots(base string, names []string) ([]string, error) {
	var roots []string
	for _, name := range names {
		out, err := exec.Command(e.FindBin, base, "-type", "d", "-name", name).Output()
		if err != nil {
			return nil, &CommandError{Op: fmt.Sprintf("%s command for %s", e.FindBin, name), Err: err}
		}
		roots = append(roots, splitLines(out)...)
	}

	if len(roots) == 0 {
		return nil, ErrNoDirectories
	}
	return roots, nil
}

// UnderAll enumerates every subdirectory of each root, concatenated in
// root order.
func (e *Enumerator) UnderAll(roots []string) ([]string, error) {
	var dirs []string
	for _, root := range roots {
		bin, args := e.FindBin, []string{root, "-type", "d"}
		if e.FastBin != "" {
			bin, args = e.FastBin, []string{".", root}
		}

		out, err := exec.Command(bin, args...).Output()
		if err != nil {
			return nil, &CommandError{Op: fmt.Sprintf("%s command for %s", bin, root), Err: err}
		}
		dirs = append(dirs, splitLines(out)...)
	}

	if len(dirs) == 0 {
		return nil, ErrNoDirectories
	}
	return dirs, nil
}

// Under enumerates every subdirectory of base, dropping noise paths.
func (e *Enumerator) Under(base string) ([]string, error) {
	bin, args := e.FindBin, []string{base, "-type", "d"}
	if e.FastBin != "" {
		bin, args = e.FastBin, []string{".", "--type", "d", base}
	}

	out, err := exec.Command(bin, args...).Output()
	if err != nil {
		return nil, &CommandError{Op: fmt.Sprintf("%s command for %s", bin, base), Err: err}
	}

	dirs := filterExcluded(splitLines(out))
	if len(dirs) == 0 {
		return nil, ErrNoDirectories
	}
	return dirs, nil
}

// splitLines breaks subprocess output into non-empty lines.
func splitLines(out []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// filterExcluded drops paths matching the exclusion pattern.
func filterExcluded(paths []string) []string {
	var kept []string
	for _, p := range paths {
		if !excludeRe.MatchString(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
