// Package scan runs the vault pipeline: collect note files, read and parse
// each one, then keep the tasks that can be worked on now.
package scan

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/msbee/msbee/internal/logging"
	"github.com/msbee/msbee/internal/task"
	"github.com/msbee/msbee/internal/vault"
)

// Options describes one scan.
type Options struct {
	Root      string
	Extension string
	Exclude   []string

	// Now is the moment availability is judged against. Zero means time.Now().
	Now time.Time

	// Logger receives unreadable directories and files. Nil discards them.
	Logger *log.Logger
}

// Result is the outcome of a scan. Tasks holds every task found, in file
// discovery order and then line order; Available is the subset to report.
type Result struct {
	Root      string
	Files     []string
	Skipped   []string
	Tasks     []task.Task
	Available []task.Task
}

// Run scans the vault. Files that cannot be read are logged, listed in
// Skipped and contribute no tasks; Run itself never fails.
func Run(opts Options) *Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	res := &Result{Root: opts.Root}
	res.Files = vault.Collect(opts.Root, vault.CollectOptions{
		Extension: opts.Extension,
		Exclude:   opts.Exclude,
		Logger:    logger,
	})

	for _, path := range res.Files {
		text, err := vault.ReadNote(path)
		if err != nil {
			logger.Warn("cannot read file", "path", path, "err", err)
			res.Skipped = append(res.Skipped, path)
			continue
		}

		tasks := task.Parse(text)
		logger.Debug("scanned", "path", path, "tasks", len(tasks))
		for _, t := range tasks {
			t.Source = path
			res.Tasks = append(res.Tasks, t)
		}
	}

	res.Available = task.Available(res.Tasks, now)
	return res
}
