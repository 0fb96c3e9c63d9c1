package tmux

import "fmt"

// Action is one of the four terminal transitions for connecting a
// directory to a session.
type Action int

const (
	// Switch moves the current client to an existing session.
	Switch Action = iota
	// Attach attaches to an existing session from outside tmux.
	Attach
	// CreateSwitch creates a detached session, then switches to it.
	CreateSwitch
	// CreateAttach creates-or-attaches in a single tmux call.
	CreateAttach
)

// Decide maps the two facts that matter — does the session exist, and is
// the caller nested inside tmux — onto an Action. A client cannot attach
// from within tmux; it has to hand off via switch-client instead, which
// is why the table has four entries rather than two.
func Decide(exists, inside bool) Action {
	switch {
	case exists && inside:
		return Switch
	case exists:
		return Attach
	case inside:
		return CreateSwitch
	default:
		return CreateAttach
	}
}

// Connect ends the run inside a session named after dir: existing
// sessions are switched or attached to, missing ones created first. The
// nesting fact is read once and held for the whole decision.
func Connect(dir string) error {
	name := SessionName(dir)
	inside := InTmux()
	exists := HasSession(name)

	if exists {
		fmt.Printf("Session %q already exists, attaching...\n", name)
	} else {
		fmt.Printf("Creating new session %q...\n", name)
	}

	switch Decide(exists, inside) {
	case Switch:
		if err := SwitchClient(name); err != nil {
			return fmt.Errorf("failed to switch tmux client: %w", err)
		}
	case Attach:
		if err := AttachSession(name); err != nil {
			return fmt.Errorf("failed to attach to tmux session: %w", err)
		}
	case CreateSwitch:
		if err := NewSession(name, dir); err != nil {
			return fmt.Errorf("failed to create tmux session: %w", err)
		}
		if err := SwitchClient(name); err != nil {
			return fmt.Errorf("failed to switch tmux client: %w", err)
		}
	case CreateAttach:
		if err := NewAttachedSession(name, dir); err != nil {
			return fmt.Errorf("failed to create and attach to tmux session: %w", err)
		}
	}

	return nil
}
