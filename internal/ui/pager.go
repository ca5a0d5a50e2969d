package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// PagerOptions configures ToPager.
type PagerOptions struct {
	// NoPager disables paging (--no-pager).
	NoPager bool
}

// ToPager writes content to stdout, through a pager when stdout is a
// terminal and content does not fit on one screen. MSBEE_NO_PAGER disables
// paging; MSBEE_PAGER, then PAGER, choose the command.
func ToPager(content string, opts PagerOptions) error {
	if !usePager(opts, IsTerminal()) || fitsScreen(content, Height()) {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}

	parts := strings.Fields(pagerCommand())
	if len(parts) == 0 {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}

	cmd := exec.Command(parts[0], parts[1:]...) //nolint:gosec // G204: pager chosen by the user
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if os.Getenv("LESS") == "" {
		cmd.Env = append(os.Environ(), "LESS=-RFX")
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running pager %s: %w", parts[0], err)
	}
	return nil
}

func usePager(opts PagerOptions, tty bool) bool {
	if opts.NoPager || os.Getenv("MSBEE_NO_PAGER") != "" {
		return false
	}
	return tty
}

func pagerCommand() string {
	if p := os.Getenv("MSBEE_PAGER"); p != "" {
		return p
	}
	if p := os.Getenv("PAGER"); p != "" {
		return p
	}
	return "less"
}

// fitsScreen leaves one line for the prompt. An unknown height never fits.
func fitsScreen(content string, height int) bool {
	if height <= 0 {
		return false
	}
	return lineCount(content) <= height-1
}

func lineCount(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(strings.TrimSuffix(content, "\n"), "\n") + 1
}
