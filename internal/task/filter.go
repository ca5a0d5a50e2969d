package task

import "time"

// IsAvailable reports whether a task with the given start date can be worked
// on at now. Tasks without a start date are always available; otherwise the
// start day must be today or earlier in now's location.
//
// Out-of-range days and months roll over the way time.Date does, so
// 2024-02-30 is treated as 2024-03-01. A start that is not a date at all is
// never available.
func IsAvailable(start string, now time.Time) bool {
	if start == "" {
		return true
	}
	day, ok := startDay(start, now.Location())
	if !ok {
		return false
	}
	tomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	return day.Before(tomorrow)
}

// Include reports whether t belongs in the report: not done and available.
func Include(t Task, now time.Time) bool {
	return !t.Done && IsAvailable(t.Start, now)
}

// Available returns the tasks that Include accepts, keeping their order.
func Available(tasks []Task, now time.Time) []Task {
	var out []Task
	for _, t := range tasks {
		if Include(t, now) {
			out = append(out, t)
		}
	}
	return out
}

func startDay(s string, loc *time.Location) (time.Time, bool) {
	if len(s) != dateLen || !hasDatePrefix(s) {
		return time.Time{}, false
	}
	year := digits(s[0:4])
	month := digits(s[5:7])
	day := digits(s[8:10])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
