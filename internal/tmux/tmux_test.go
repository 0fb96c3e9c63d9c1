package tmux

import (
	"testing"
	"time"
)

func TestSessionName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"/home/u/proj", "proj"},
		{"/home/u/a.b.c", "a_b_c"},
		{"/home/u/.config", "_config"},
		{"a.b.c", "a_b_c"},
		{"/with.dots/in.parents/clean", "clean"},
		{"/home/u/proj/", "proj"},
	}

	for _, tt := range tests {
		if got := SessionName(tt.dir); got != tt.want {
			t.Errorf("SessionName(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		exists bool
		inside bool
		want   Action
	}{
		{"existing session from inside switches", true, true, Switch},
		{"existing session from outside attaches", true, false, Attach},
		{"new session from inside creates then switches", false, true, CreateSwitch},
		{"new session from outside creates and attaches in one call", false, false, CreateAttach},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.exists, tt.inside); got != tt.want {
				t.Errorf("Decide(%v, %v) = %v, want %v", tt.exists, tt.inside, got, tt.want)
			}
		})
	}
}

func TestInTmux(t *testing.T) {
	t.Setenv("TMUX", "")
	if InTmux() {
		t.Error("InTmux() = true with empty TMUX")
	}

	t.Setenv("TMUX", "/tmp/tmux-1000/default,1234,0")
	if !InTmux() {
		t.Error("InTmux() = false with TMUX set")
	}
}

func TestParseSessionList(t *testing.T) {
	out := "proj|1|1700000000\nscratch|0|1700000100\nbad-line\n"

	sessions := parseSessionList(out)
	if len(sessions) != 2 {
		t.Fatalf("parseSessionList() = %d sessions, want 2", len(sessions))
	}

	if sessions[0].Name != "proj" || sessions[0].AttachedCount != 1 {
		t.Errorf("sessions[0] = %+v, want proj attached=1", sessions[0])
	}
	if !sessions[0].Created.Equal(time.Unix(1700000000, 0)) {
		t.Errorf("sessions[0].Created = %v, want unix 1700000000", sessions[0].Created)
	}
	if sessions[1].Name != "scratch" || sessions[1].AttachedCount != 0 {
		t.Errorf("sessions[1] = %+v, want scratch attached=0", sessions[1])
	}
}

func TestParseSessionListEmpty(t *testing.T) {
	if got := parseSessionList(""); got != nil {
		t.Errorf("parseSessionList(\"\") = %v, want nil", got)
	}
}
