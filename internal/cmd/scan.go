package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/msbee/msbee/internal/report"
	"github.com/msbee/msbee/internal/scan"
	"github.com/msbee/msbee/internal/ui"
)

var (
	scanFormat  string
	scanJSON    bool
	scanNoPager bool
)

var scanCmd = &cobra.Command{
	Use:     "scan",
	GroupID: GroupTasks,
	Short:   "List tasks that are not done and not scheduled for later",
	Long: `Scan every note in the vault and list the open checklist items whose
start date is today or earlier, or that have no start date.

Output formats:
  text       one summary line, then "- [ ] <text> (start: <date|no date>)"
  json       {"count": N, "tasks": [...]} with source file and line
  markdown   the text report, rendered for the terminal when it is a TTY
  html       the text report as an HTML fragment

Unreadable folders and files are logged and skipped; the scan itself
always succeeds.

Examples:
  msbee scan
  msbee scan --json | jq '.tasks[].text'
  msbee scan --format html > today.html`,
	RunE: runScan,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, scanCmd} {
		c.Flags().StringVarP(&scanFormat, "format", "f", string(report.FormatText), "Output format: text, json, markdown or html")
		c.Flags().BoolVar(&scanJSON, "json", false, "Output as JSON (same as --format json)")
		c.Flags().BoolVar(&scanNoPager, "no-pager", false, "Print directly instead of through a pager")
	}
	rootCmd.AddCommand(scanCmd)
}

// scanVault runs one scan of root with the loaded settings.
func scanVault(root string, now time.Time) *scan.Result {
	res := scan.Run(scan.Options{
		Root:      root,
		Extension: cfg.Extension,
		Exclude:   cfg.Exclude,
		Now:       now,
		Logger:    logger,
	})
	logger.Info("scan finished", "files", len(res.Files), "skipped", len(res.Skipped),
		"tasks", len(res.Tasks), "available", len(res.Available))
	return res
}

func runScan(cmd *cobra.Command, args []string) error {
	format := report.FormatText
	if scanJSON {
		format = report.FormatJSON
	} else if scanFormat != "" {
		f, err := report.ParseFormat(scanFormat)
		if err != nil {
			return err
		}
		format = f
	}

	root, err := vaultRoot()
	if err != nil {
		return err
	}
	res := scanVault(root, time.Now())

	switch format {
	case report.FormatJSON:
		return report.JSON(os.Stdout, res.Available, root)
	case report.FormatMarkdown:
		_, err := fmt.Fprint(os.Stdout, ui.RenderMarkdown(report.Markdown(res.Available)))
		return err
	case report.FormatHTML:
		_, err := fmt.Fprint(os.Stdout, report.HTML(res.Available))
		return err
	default:
		return ui.ToPager(report.Text(res.Available), ui.PagerOptions{NoPager: scanNoPager})
	}
}
