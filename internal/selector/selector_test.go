package selector

import (
	"testing"
)

func TestPickReturnsTrimmedChoice(t *testing.T) {
	// head -n1 stands in for a picker that chooses the first candidate
	s := New("head", "-n", "1")

	choice, ok, err := s.Pick([]string{"/home/u/proj", "/home/u/work"})
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if !ok {
		t.Fatal("Pick() ok = false, want true")
	}
	if choice != "/home/u/proj" {
		t.Errorf("Pick() = %q, want /home/u/proj", choice)
	}
}

func TestPickCancelledIsNotAnError(t *testing.T) {
	// false exits non-zero without reading, like a picker abort
	s := New("false")

	choice, ok, err := s.Pick([]string{"/home/u/proj"})
	if err != nil {
		t.Fatalf("Pick() error: %v, want nil on cancellation", err)
	}
	if ok {
		t.Errorf("Pick() = %q, ok = true, want no selection", choice)
	}
}

func TestPickBlankOutputIsNoSelection(t *testing.T) {
	// true exits zero with no output
	s := New("true")

	choice, ok, err := s.Pick([]string{"/home/u/proj"})
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if ok {
		t.Errorf("Pick() = %q, ok = true, want no selection", choice)
	}
}

func TestPickSurfacesWhitespaceTrim(t *testing.T) {
	// cat echoes the single candidate back including its newline
	s := New("cat")

	choice, ok, err := s.Pick([]string{"/home/u/proj"})
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if !ok || choice != "/home/u/proj" {
		t.Errorf("Pick() = %q, ok = %v, want trimmed /home/u/proj", choice, ok)
	}
}

func TestPickMissingBinary(t *testing.T) {
	s := New("tsh-no-such-picker")

	_, _, err := s.Pick([]string{"/home/u/proj"})
	if err == nil {
		t.Fatal("Pick() error = nil, want spawn failure")
	}
}
