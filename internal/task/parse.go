package task

import (
	"strings"
	"unicode"
)

// startKey introduces a start date annotation.
const startKey = "start:"

// dateLen is the length of a YYYY-MM-DD date.
const dateLen = len("2006-01-02")

// Parse returns the checklist items in text, in document order.
//
// A start date is taken from a "start: YYYY-MM-DD" annotation anywhere in the
// item text, or failing that from a line directly below the item that holds
// nothing but the annotation. The line below is not consumed: it is still
// examined as a possible item of its own.
func Parse(text string) []Task {
	lines := splitLines(text)

	var tasks []Task
	for i, line := range lines {
		done, body, ok := matchItem(line)
		if !ok {
			continue
		}

		t := Task{Text: body, Done: done, Line: i + 1}
		if date, ok := findStart(body); ok {
			t.Start = date
		} else if i+1 < len(lines) {
			if date, ok := matchStartLine(lines[i+1]); ok {
				t.Start = date
			}
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// matchItem recognises a checklist line:
//
//	[ws] ("-" | "*") ws+ "[" ("" | " " | "x" | "X") "]" ws+ text
//
// text must be non-empty once trimmed. Any other bracket content rejects the
// line.
func matchItem(line string) (done bool, text string, ok bool) {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	if s == "" || (s[0] != '-' && s[0] != '*') {
		return false, "", false
	}

	s, ok = skipSpace(s[1:])
	if !ok || !strings.HasPrefix(s, "[") {
		return false, "", false
	}
	s = s[1:]

	var mark byte
	switch {
	case strings.HasPrefix(s, "]"):
		s = s[1:]
	case len(s) >= 2 && s[1] == ']' && (s[0] == ' ' || s[0] == 'x' || s[0] == 'X'):
		mark = s[0]
		s = s[2:]
	default:
		return false, "", false
	}

	s, ok = skipSpace(s)
	if !ok {
		return false, "", false
	}
	text = strings.TrimSpace(s)
	if text == "" {
		return false, "", false
	}
	return mark == 'x' || mark == 'X', text, true
}

// skipSpace strips leading whitespace and reports whether there was any.
func skipSpace(s string) (string, bool) {
	rest := strings.TrimLeftFunc(s, unicode.IsSpace)
	return rest, len(rest) < len(s)
}

// findStart returns the date of the first "start:" annotation in text that is
// followed by a well-shaped date.
func findStart(text string) (string, bool) {
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], startKey)
		if j < 0 {
			return "", false
		}
		at := i + j + len(startKey)
		rest := strings.TrimLeftFunc(text[at:], unicode.IsSpace)
		if hasDatePrefix(rest) {
			return rest[:dateLen], true
		}
		i = at
	}
	return "", false
}

// matchStartLine accepts a line consisting solely of a start annotation.
func matchStartLine(line string) (string, bool) {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, startKey) {
		return "", false
	}
	s = strings.TrimLeftFunc(s[len(startKey):], unicode.IsSpace)
	if len(s) != dateLen || !hasDatePrefix(s) {
		return "", false
	}
	return s, true
}

// hasDatePrefix checks the shape DDDD-DD-DD on the first ten bytes of s.
// Calendar validity is not checked.
func hasDatePrefix(s string) bool {
	if len(s) < dateLen {
		return false
	}
	for i := 0; i < dateLen; i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}
