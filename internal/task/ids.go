package task

import (
	"encoding/binary"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// IDMarker tags a task id, as in "Call dentist 🆔 a1B2c3".
const IDMarker = "🆔"

// IDLength is the number of characters in a generated id.
const IDLength = 6

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// metadataMarkers start the trailing metadata of a task line. An id is
// inserted in front of the first of them.
var metadataMarkers = []string{"➕", "📅", "⏭️", "⛔", IDMarker}

// NewID returns a random base62 id of IDLength characters.
func NewID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8])
	b := make([]byte, IDLength)
	for i := range b {
		b[i] = idAlphabet[n%uint64(len(idAlphabet))]
		n /= uint64(len(idAlphabet))
	}
	return string(b)
}

// HasID reports whether line already carries an id.
func HasID(line string) bool {
	return strings.Contains(line, IDMarker+" ")
}

// AddIDs gives every open checklist item in lines that lacks an id a new one
// from newID. Other lines are returned unchanged. It reports how many lines
// were changed.
func AddIDs(lines []string, newID func() string) ([]string, int) {
	out := make([]string, len(lines))
	changed := 0
	for i, line := range lines {
		out[i] = line
		if done, _, ok := matchItem(line); !ok || done || HasID(line) {
			continue
		}
		out[i] = insertID(line, newID())
		changed++
	}
	return out, changed
}

// insertID places " 🆔 <id>" before the first metadata marker of line, or at
// the end when there is none.
func insertID(line, id string) string {
	tag := " " + IDMarker + " " + id
	if at := metadataStart(line); at >= 0 {
		return line[:at] + tag + line[at:]
	}
	return strings.TrimRightFunc(line, unicode.IsSpace) + tag
}

// metadataStart returns the offset of the whitespace run preceding the first
// marker that is followed by whitespace and a value, or -1.
func metadataStart(line string) int {
	best := -1
	for _, m := range metadataMarkers {
		for from := 0; from < len(line); {
			j := strings.Index(line[from:], m)
			if j < 0 {
				break
			}
			at := from + j
			if hasValue(line[at+len(m):]) && (best < 0 || at < best) {
				best = at
				break
			}
			from = at + len(m)
		}
	}
	if best < 0 {
		return -1
	}
	for best > 0 {
		r, size := utf8.DecodeLastRuneInString(line[:best])
		if !unicode.IsSpace(r) {
			break
		}
		best -= size
	}
	return best
}

// hasValue reports whether s is whitespace followed by a non-space rune.
func hasValue(s string) bool {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)
	return len(rest) < len(s) && rest != ""
}
