package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msbee/msbee/internal/report"
	"github.com/msbee/msbee/internal/vault"
)

var dailyDate string

var dailyCmd = &cobra.Command{
	Use:     "daily",
	GroupID: GroupNotes,
	Short:   "Write today's available tasks into the daily note",
	Long: `Put the available tasks under a "## 🐝 MsBee" heading in today's daily
note, <vault>/<daily_path>/<YYYY-MM-DD>.md. An existing section is replaced;
otherwise it is appended. The daily note must already exist.

Examples:
  msbee daily
  msbee daily --date 2025-01-31`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	dailyCmd.Flags().StringVar(&dailyDate, "date", "", "Day to write, as YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	now := time.Now()
	if dailyDate != "" {
		day, err := time.ParseInLocation("2006-01-02", dailyDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", dailyDate, err)
		}
		now = day
	}

	root, err := vaultRoot()
	if err != nil {
		return err
	}

	unlock, err := vault.Lock(cmd.Context(), root)
	if err != nil {
		if errors.Is(err, vault.ErrLocked) {
			return fmt.Errorf("cannot write daily note in %s: %w", root, err)
		}
		return err
	}
	defer func() { _ = unlock() }()

	res := scanVault(root, now)
	path := vault.DailyNotePath(root, cfg.DailyPath, now)
	found, err := vault.UpdateDailyNote(path, report.DailySection(res.Available, root))
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("Daily note not found: %s\n", path)
		return nil
	}
	fmt.Printf("Updated: %s\n", report.RelPath(root, path))
	return nil
}
