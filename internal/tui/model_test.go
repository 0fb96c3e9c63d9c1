package tui

import (
	"testing"
	"time"

	"github.com/simon/tsh/internal/tmux"
)

func TestApplyFilter(t *testing.T) {
	m := NewModel()
	m.sessions = []tmux.SessionInfo{
		{Name: "proj"},
		{Name: "scratch"},
		{Name: "proj_api"},
	}

	m.input.SetValue("proj")
	m.applyFilter()

	if len(m.filtered) != 2 {
		t.Fatalf("filtered = %d sessions, want 2", len(m.filtered))
	}
	if m.filtered[0].Name != "proj" || m.filtered[1].Name != "proj_api" {
		t.Errorf("filtered = %v, want proj and proj_api", m.filtered)
	}
}

func TestApplyFilterClampsCursor(t *testing.T) {
	m := NewModel()
	m.sessions = []tmux.SessionInfo{
		{Name: "proj"},
		{Name: "scratch"},
	}
	m.cursor = 1

	m.input.SetValue("proj")
	m.applyFilter()

	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after filter shrank the list", m.cursor)
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
		{49 * time.Hour, "2d"},
	}

	for _, tt := range tests {
		if got := formatAge(tt.d); got != tt.want {
			t.Errorf("formatAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
