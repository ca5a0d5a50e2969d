package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/msbee/msbee/internal/util"
)

// SectionHeading opens the msbee section of a daily note.
const SectionHeading = "## 🐝 MsBee"

// DefaultDailyDir is where daily notes live, relative to the vault root.
const DefaultDailyDir = "daily"

// DailyNotePath returns the daily note for day, named YYYY-MM-DD.md.
func DailyNotePath(root, dailyDir string, day time.Time) string {
	if dailyDir == "" {
		dailyDir = DefaultDailyDir
	}
	if !filepath.IsAbs(dailyDir) {
		dailyDir = filepath.Join(root, dailyDir)
	}
	return filepath.Join(dailyDir, day.Format("2006-01-02")+DefaultExtension)
}

// UpsertSection puts content under SectionHeading in note. An existing section
// runs up to the next "## " heading or the end of the note and is replaced;
// otherwise the section is appended after a blank line.
func UpsertSection(note, content string) string {
	return upsertSection(note, content, "\n")
}

// upsertSection is UpsertSection for notes whose lines end in eol.
func upsertSection(note, content, eol string) string {
	section := SectionHeading + eol + content

	start := strings.Index(note, SectionHeading)
	if start < 0 {
		return strings.TrimSpace(note) + eol + eol + section
	}

	end := len(note)
	bodyStart := start + len(SectionHeading)
	if next := strings.Index(note[bodyStart:], "\n## "); next >= 0 {
		end = bodyStart + next
		if end > bodyStart && note[end-1] == '\r' {
			end--
		}
		// Keep a blank line between the section and the heading that follows.
		if !strings.HasSuffix(section, eol) {
			section += eol
		}
	}
	return note[:start] + section + note[end:]
}

// UpdateDailyNote writes content into the msbee section of the note at path.
// It reports false without writing when the note does not exist. The note
// keeps its encoding, and content follows the note's line endings.
func UpdateDailyNote(path, content string) (bool, error) {
	note, err := LoadNote(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading daily note: %w", err)
	}

	eol := note.LineEnding()
	if eol != "\n" {
		content = strings.ReplaceAll(content, "\n", eol)
	}
	updated := upsertSection(note.Text, content, eol)
	if updated == note.Text {
		return true, nil
	}
	data, err := note.Encode(updated)
	if err != nil {
		return false, err
	}
	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return false, fmt.Errorf("writing daily note: %w", err)
	}
	return true, nil
}
