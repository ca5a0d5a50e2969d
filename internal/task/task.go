// Package task extracts checklist items from note text and decides which of
// them can be worked on today.
package task

// NoDate is printed in place of a start date when a task has none.
const NoDate = "no date"

// Task is one checklist item found in a note.
//
// Text, Done and Start come from the note text. Line is the 1-based line the
// item was found on and Source the file it came from; Parse fills Line, the
// caller that knows the file fills Source.
type Task struct {
	Text  string
	Done  bool
	Start string // YYYY-MM-DD as written, empty when absent

	Source string
	Line   int
}

// HasStart reports whether the task carries a start date annotation.
func (t Task) HasStart() bool {
	return t.Start != ""
}

// StartLabel returns the start date, or NoDate when there is none.
func (t Task) StartLabel() string {
	if t.Start == "" {
		return NoDate
	}
	return t.Start
}
