package deps

import (
	"fmt"
	"os/exec"
	"strings"
)

// MissingError reports every required executable that could not be found
// on PATH, not just the first one.
type MissingError struct {
	Missing []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing dependencies: %s", strings.Join(e.Missing, ", "))
}

// Check verifies that every named executable resolves on PATH.
func Check(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Missing: missing}
	}
	return nil
}

// Available reports whether a single executable resolves on PATH.
// Used for optional tools where absence just selects a fallback.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
