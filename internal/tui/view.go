package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	hlBgColor   = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(hlBgColor)

	attachedStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	ageStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

// formatAge formats a session age for display.
func formatAge(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
	return fmt.Sprintf("%dd", int(d.Hours())/24)
}

func (m Model) View() string {
	if m.quitting && m.AttachTarget == "" {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("tsh sessions"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(fmt.Sprintf("  Error: %v\n\n", m.err))
	case len(m.sessions) == 0:
		b.WriteString("  No tmux sessions. Run: tsh\n\n")
	default:
		// Measure the name column from data, then clamp
		wName := len("NAME")
		for _, s := range m.filtered {
			if w := lipgloss.Width(s.Name); w > wName {
				wName = w
			}
		}
		if wName > 32 {
			wName = 32
		}

		header := "    " + pad("NAME", wName) + "  " + pad("ATTACHED", 8) + "  AGE"
		b.WriteString(headerStyle.Render(header))
		b.WriteString("\n")

		for i, s := range m.filtered {
			name := s.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}

			attached := "-"
			if s.AttachedCount > 0 {
				attached = attachedStyle.Render(fmt.Sprintf("yes (%d)", s.AttachedCount))
			}

			row := " " + pad(name, wName) + "  " + pad(attached, 8) + "  " + ageStyle.Render(formatAge(time.Since(s.Created)))

			if i == m.cursor {
				b.WriteString(cursorStyle.Render(" >"))
				b.WriteString(selectedRowStyle.Render(row))
			} else {
				b.WriteString("  ")
				b.WriteString(row)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(inputLabelStyle.Render(" > "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("enter attach  type to filter  j/k navigate  q quit"))
	b.WriteString("\n")

	return b.String()
}
