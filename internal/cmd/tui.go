package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msbee/msbee/internal/scan"
	"github.com/msbee/msbee/internal/tui/tasks"
)

var tuiCmd = &cobra.Command{
	Use:     "tui",
	GroupID: GroupTasks,
	Short:   "Browse available tasks interactively",
	Long: `Open a full-screen list of the tasks you can work on now.

Keys:
  j/k, ↑/↓   move
  enter      show where the task lives
  r          rescan the vault
  ?          help
  q          quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	root, err := vaultRoot()
	if err != nil {
		return err
	}

	m := tasks.New(func() *scan.Result {
		return scanVault(root, time.Now())
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
