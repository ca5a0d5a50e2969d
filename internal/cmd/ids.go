package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msbee/msbee/internal/report"
	"github.com/msbee/msbee/internal/task"
	"github.com/msbee/msbee/internal/vault"
)

var (
	idsDryRun bool
	idsCheck  bool
)

var idsCmd = &cobra.Command{
	Use:     "ids",
	GroupID: GroupNotes,
	Short:   "Give every open task a stable id",
	Long: `Append a short id ("🆔 a1B2c3") to every open task that has none.

The id goes in front of any trailing task metadata (➕ created, 📅 due,
⏭️ blocked by, ⛔ depends on), otherwise at the end of the line. Notes are
rewritten only when they change, atomically, while holding the vault lock.
A note keeps its encoding (UTF-8, with or without BOM, or UTF-16) and the
ending of every line. Notes that are not valid UTF-8 or UTF-16 are skipped
with a warning.

With --check nothing is written and the exit code is 1 when any note
would change, for use in scripts and hooks.

Examples:
  msbee ids --dry-run   # Show which notes would change
  msbee ids --check     # Exit 1 if some task lacks an id
  msbee ids`,
	Args: cobra.NoArgs,
	RunE: runIDs,
}

func init() {
	idsCmd.Flags().BoolVarP(&idsDryRun, "dry-run", "n", false, "Report changes without writing")
	idsCmd.Flags().BoolVar(&idsCheck, "check", false, "Like --dry-run, but exit 1 when any note would change")
	rootCmd.AddCommand(idsCmd)
}

func runIDs(cmd *cobra.Command, args []string) error {
	dryRun := idsDryRun || idsCheck
	root, err := vaultRoot()
	if err != nil {
		return err
	}

	if !dryRun {
		unlock, err := vault.Lock(cmd.Context(), root)
		if err != nil {
			if errors.Is(err, vault.ErrLocked) {
				return fmt.Errorf("cannot add ids in %s: %w", root, err)
			}
			return err
		}
		defer func() { _ = unlock() }()
	}

	files := vault.Collect(root, vault.CollectOptions{
		Extension: cfg.Extension,
		Exclude:   cfg.Exclude,
		Logger:    logger,
	})

	verb := "Updated"
	if dryRun {
		verb = "Would update"
	}
	var changed, failed int
	for _, path := range files {
		n, err := vault.AddIDs(path, task.NewID, !dryRun)
		if errors.Is(err, vault.ErrUnsupportedEncoding) {
			logger.Warn("skipping note", "path", path, "err", err)
			continue
		}
		if err != nil {
			logger.Warn("cannot add ids", "path", path, "err", err)
			failed++
			continue
		}
		if n > 0 {
			changed++
			logger.Debug("ids added", "path", path, "tasks", n)
			fmt.Printf("%s: %s\n", verb, report.RelPath(root, path))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d notes could not be updated", failed)
	}
	if idsCheck && changed > 0 {
		return NewSilentExit(1)
	}
	return nil
}
