package deps

import (
	"errors"
	"testing"
)

func TestCheckAllPresent(t *testing.T) {
	// sh is always on PATH in test environments
	if err := Check("sh"); err != nil {
		t.Fatalf("Check(sh) = %v, want nil", err)
	}
}

func TestCheckCollectsAllMissing(t *testing.T) {
	err := Check("sh", "tsh-definitely-not-a-binary", "tsh-also-not-a-binary")
	if err == nil {
		t.Fatal("expected error for missing binaries")
	}

	var me *MissingError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MissingError, got %T", err)
	}
	if len(me.Missing) != 2 {
		t.Fatalf("Missing = %v, want both missing names", me.Missing)
	}
	if me.Missing[0] != "tsh-definitely-not-a-binary" || me.Missing[1] != "tsh-also-not-a-binary" {
		t.Fatalf("Missing = %v, wrong names or order", me.Missing)
	}
}

func TestAvailable(t *testing.T) {
	if !Available("sh") {
		t.Error("Available(sh) = false, want true")
	}
	if Available("tsh-definitely-not-a-binary") {
		t.Error("Available(nonexistent) = true, want false")
	}
}
