package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type SessionInfo struct {
	Name          string
	AttachedCount int
	Created       time.Time
}

// FindTmux locates the tmux binary.
func FindTmux() (string, error) {
	return exec.LookPath("tmux")
}

// InTmux reports whether the current process runs inside a tmux session.
// Presence of the variable is the signal; its value is irrelevant.
func InTmux() bool {
	return os.Getenv("TMUX") != ""
}

// SessionName derives the session name for a directory: the final path
// element with dots replaced by underscores (tmux treats dots as window
// separators in target names). Directories differing only in those
// characters share a name; that collision is accepted.
func SessionName(dir string) string {
	return strings.ReplaceAll(filepath.Base(dir), ".", "_")
}

// HasSession checks if a tmux session exists.
func HasSession(name string) bool {
	tmuxBin, err := FindTmux()
	if err != nil {
		return false
	}

	cmd := exec.Command(tmuxBin, "has-session", "-t", name)
	return cmd.Run() == nil
}

// ListSessions returns all tmux sessions on the default server.
func ListSessions() ([]SessionInfo, error) {
	tmuxBin, err := FindTmux()
	if err != nil {
		return nil, fmt.Errorf("tmux not found: %w", err)
	}

	cmd := exec.Command(tmuxBin, "list-sessions", "-F", "#{session_name}|#{session_attached}|#{session_created}")
	out, err := cmd.Output()
	if err != nil {
		// "no server running" — not an error for us
		return nil, nil
	}

	return parseSessionList(string(out)), nil
}

// parseSessionList parses tmux list-sessions output into SessionInfo structs.
func parseSessionList(output string) []SessionInfo {
	var sessions []SessionInfo
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			continue
		}

		attached, _ := strconv.Atoi(parts[1])
		createdUnix, _ := strconv.ParseInt(parts[2], 10, 64)

		sessions = append(sessions, SessionInfo{
			Name:          parts[0],
			AttachedCount: attached,
			Created:       time.Unix(createdUnix, 0),
		})
	}
	return sessions
}

// NewSession creates a detached tmux session rooted at dir.
func NewSession(name, dir string) error {
	tmuxBin, err := FindTmux()
	if err != nil {
		return err
	}

	cmd := exec.Command(tmuxBin, "new-session", "-d", "-s", name, "-c", dir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// SwitchClient moves the current tmux client to the named session.
func SwitchClient(name string) error {
	tmuxBin, err := FindTmux()
	if err != nil {
		return err
	}

	return exec.Command(tmuxBin, "switch-client", "-t", name).Run()
}

// AttachSession runs tmux attach as a child process (returns on detach).
func AttachSession(name string) error {
	tmuxBin, err := FindTmux()
	if err != nil {
		return err
	}

	cmd := exec.Command(tmuxBin, "attach-session", "-t", name)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// NewAttachedSession creates the named session rooted at dir, or attaches
// if it already exists, in one tmux call.
func NewAttachedSession(name, dir string) error {
	tmuxBin, err := FindTmux()
	if err != nil {
		return err
	}

	cmd := exec.Command(tmuxBin, "new-session", "-A", "-s", name, "-c", dir)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
