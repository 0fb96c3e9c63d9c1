package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/simon/tsh/internal/tmux"
)

const pollInterval = 1500 * time.Millisecond

type tickMsg time.Time

type Model struct {
	sessions      []tmux.SessionInfo
	filtered      []tmux.SessionInfo
	cursor        int
	input         textinput.Model
	width, height int
	AttachTarget  string // set when user confirms attach
	quitting      bool
	err           error
}

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return Model{input: ti}
}

func tickCmd() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		refreshSessions,
		tickCmd(),
	)
}

func refreshSessions() tea.Msg {
	sessions, err := tmux.ListSessions()
	if err != nil {
		return err
	}
	return sessions
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case []tmux.SessionInfo:
		m.sessions = msg
		m.applyFilter()
		return m, nil

	case error:
		m.err = msg
		return m, nil

	case tickMsg:
		return m, tea.Batch(tickCmd(), refreshSessions)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if key.Matches(msg, keys.CtrlC) {
		m.quitting = true
		return m, tea.Quit
	}

	// Escape clears the filter, or quits when it is already empty
	if key.Matches(msg, keys.Escape) {
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.input.SetValue("")
		m.applyFilter()
		return m, nil
	}

	// q quits only when the filter is empty
	if key.Matches(msg, keys.Quit) && m.input.Value() == "" {
		m.quitting = true
		return m, tea.Quit
	}

	// Navigation: only when input is empty
	if m.input.Value() == "" {
		if key.Matches(msg, keys.Up) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}
		if key.Matches(msg, keys.Down) {
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	if key.Matches(msg, keys.Enter) {
		if sel := m.selectedSession(); sel != nil {
			m.AttachTarget = sel.Name
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	// Default: update text input and refilter
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = m.sessions
	} else {
		lower := strings.ToLower(query)
		m.filtered = nil
		for _, s := range m.sessions {
			if strings.Contains(strings.ToLower(s.Name), lower) {
				m.filtered = append(m.filtered, s)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m Model) selectedSession() *tmux.SessionInfo {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	s := m.filtered[m.cursor]
	return &s
}
