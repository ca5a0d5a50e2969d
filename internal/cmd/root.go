// Package cmd implements the msbee command line.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msbee/msbee/internal/config"
	"github.com/msbee/msbee/internal/logging"
	"github.com/msbee/msbee/internal/style"
	"github.com/msbee/msbee/internal/ui"
)

// Command groups shown in help.
const (
	GroupTasks = "tasks"
	GroupNotes = "notes"
	GroupDiag  = "diag"
)

var (
	vaultFlag    string
	configFlag   string
	logLevelFlag string
)

// Settings resolved before any command runs.
var (
	cfg    *config.Config
	logger = logging.Discard()
)

var rootCmd = &cobra.Command{
	Use:   "msbee",
	Short: "List the checklist tasks you can work on now",
	Long: `msbee scans a folder of markdown notes (an Obsidian vault) for checklist
items and lists the ones that are not done and not scheduled for later.

A task is a line such as "- [ ] Call dentist". A start date postpones it:
either "start: 2025-01-01" on the task line itself, or alone on the line
right below it. Tasks starting today or earlier are listed.

Run without a subcommand, msbee behaves like 'msbee scan'.

Examples:
  msbee                      # Scan the vault around the current directory
  msbee --vault ~/notes      # Scan a specific vault
  msbee scan --json          # Machine-readable output`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runScan,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupTasks, Title: "Tasks:"},
		&cobra.Group{ID: GroupNotes, Title: "Notes:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)
	rootCmd.SetHelpCommandGroupID(GroupDiag)
	rootCmd.SetCompletionCommandGroupID(GroupDiag)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&vaultFlag, "vault", "", "Vault directory (default: nearest .obsidian vault, else the current directory)")
	pf.StringVar(&configFlag, "config", "", "Config file (default: "+config.DefaultPath()+")")
	pf.StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")
}

// noConfigCommands work without a readable config, so a broken config file
// can still be diagnosed.
var noConfigCommands = map[string]bool{
	"version":                       true,
	"help":                          true,
	"completion":                    true,
	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

func needsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if noConfigCommands[c.Name()] {
			return false
		}
	}
	return true
}

// setup loads the configuration and builds the logger and theme.
func setup(cmd *cobra.Command, _ []string) error {
	if !needsConfig(cmd) {
		return nil
	}
	c, err := config.Load(configFlag, config.Overrides{Vault: vaultFlag, LogLevel: logLevelFlag})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	l, err := logging.New(cmd.ErrOrStderr(), c.LogLevel)
	if err != nil {
		return err
	}

	cfg = c
	logger = l
	ui.InitTheme(cfg.Theme)
	logger.Debug("config loaded", "vault", cfg.Vault, "extension", cfg.Extension, "theme", ui.CurrentTheme())
	return nil
}

// vaultRoot resolves the vault for the current directory.
func vaultRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	root, err := cfg.ResolveVault(wd)
	if err != nil {
		return "", err
	}
	logger.Debug("vault resolved", "root", root)
	return root, nil
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		style.PrintError("%v", err)
		return 1
	}
	return 0
}
