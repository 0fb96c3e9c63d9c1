package selector

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Selector runs an external fuzzy picker over a list of candidates.
// The picker reads candidates from stdin and writes the chosen line to
// stdout; its interactive UI goes straight to the terminal.
type Selector struct {
	bin  string
	args []string
}

func New(bin string, args ...string) *Selector {
	return &Selector{bin: bin, args: args}
}

// Pick streams candidates to the picker and returns the trimmed choice.
// A picker that exits non-zero (user abort) or prints nothing yields
// ok=false with no error: cancellation is not a failure.
func (s *Selector) Pick(candidates []string) (choice string, ok bool, err error) {
	cmd := exec.Command(s.bin, s.args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", false, fmt.Errorf("open %s stdin: %w", s.bin, err)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return "", false, fmt.Errorf("start %s: %w", s.bin, err)
	}

	writeErr := writeCandidates(stdin, candidates)
	if cerr := stdin.Close(); writeErr == nil {
		writeErr = cerr
	}

	waitErr := cmd.Wait()

	// The picker may stop reading as soon as the user decides; a broken
	// pipe mid-stream is part of normal operation.
	if writeErr != nil && !errors.Is(writeErr, syscall.EPIPE) {
		return "", false, fmt.Errorf("write to %s: %w", s.bin, writeErr)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run %s: %w", s.bin, waitErr)
	}

	choice = strings.TrimSpace(out.String())
	if choice == "" {
		return "", false, nil
	}
	return choice, true, nil
}

func writeCandidates(w io.Writer, candidates []string) error {
	for _, c := range candidates {
		if _, err := w.Write([]byte(c + "\n")); err != nil {
			return err
		}
	}
	return nil
}
