package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/simon/tsh/internal/deps"
	"github.com/simon/tsh/internal/tmux"
	"github.com/simon/tsh/internal/tui"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Pick an existing tmux session interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := deps.Check("tmux"); err != nil {
			return err
		}

		for {
			m := tui.NewModel()
			p := tea.NewProgram(m, tea.WithAltScreen())

			finalModel, err := p.Run()
			if err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}

			final := finalModel.(tui.Model)
			if final.AttachTarget == "" {
				return nil
			}

			if tmux.InTmux() {
				return tmux.SwitchClient(final.AttachTarget)
			}

			// Attach as child process; returns when user detaches
			_ = tmux.AttachSession(final.AttachTarget)
			// Loop restarts the picker
		}
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
