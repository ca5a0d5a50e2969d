package vault

import (
	"fmt"
	"strings"

	"github.com/msbee/msbee/internal/task"
	"github.com/msbee/msbee/internal/util"
)

// AddIDs gives the open tasks of the note at path an id where they lack one.
// The file is rewritten only when something changed, and only when write is
// set. Its encoding and each line's ending are kept. It returns the number of
// lines that gained an id.
func AddIDs(path string, newID func() string, write bool) (int, error) {
	note, err := LoadNote(path)
	if err != nil {
		return 0, err
	}

	lines := strings.Split(note.Text, "\n")
	crlf := make([]bool, len(lines))
	for i, l := range lines {
		if strings.HasSuffix(l, "\r") {
			lines[i] = strings.TrimSuffix(l, "\r")
			crlf[i] = true
		}
	}

	updated, changed := task.AddIDs(lines, newID)
	if changed == 0 || !write {
		return changed, nil
	}

	for i := range updated {
		if crlf[i] {
			updated[i] += "\r"
		}
	}
	data, err := note.Encode(strings.Join(updated, "\n"))
	if err != nil {
		return 0, err
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return changed, nil
}
