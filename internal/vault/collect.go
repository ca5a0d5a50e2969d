// Package vault finds, reads and updates the note files of a vault.
package vault

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultExtension is the suffix of note files.
const DefaultExtension = ".md"

// CollectOptions controls which files Collect returns.
type CollectOptions struct {
	// Extension is the required file name suffix. Empty means DefaultExtension.
	Extension string

	// Exclude drops any file whose path relative to the root contains one of
	// these fragments, e.g. "Templates".
	Exclude []string

	// Logger receives directories that could not be read. Nil discards them.
	Logger *log.Logger
}

// Collect walks root depth-first and returns the note files under it in
// discovery order. A directory that cannot be read is logged and skipped;
// the walk carries on with its siblings. Symlinked directories are not
// followed.
func Collect(root string, opts CollectOptions) []string {
	c := collector{root: root, opts: opts}
	if c.opts.Extension == "" {
		c.opts.Extension = DefaultExtension
	}
	c.walk(root)
	return c.paths
}

type collector struct {
	root  string
	opts  CollectOptions
	paths []string
}

func (c *collector) walk(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if c.opts.Logger != nil {
			c.opts.Logger.Warn("cannot read directory", "path", dir, "err", err)
		}
		return
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if e.IsDir() {
			c.walk(path)
			continue
		}
		if !strings.HasSuffix(e.Name(), c.opts.Extension) || c.excluded(path) {
			continue
		}
		c.paths = append(c.paths, path)
	}
}

func (c *collector) excluded(path string) bool {
	if len(c.opts.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(c.root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)
	for _, frag := range c.opts.Exclude {
		if frag != "" && strings.Contains(rel, frag) {
			return true
		}
	}
	return false
}
