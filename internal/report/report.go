// Package report renders scan results for the terminal, for scripts and for
// daily notes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/msbee/msbee/internal/task"
)

// Format selects how a report is rendered.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Formats lists the accepted formats in help order.
var Formats = []Format{FormatText, FormatJSON, FormatMarkdown, FormatHTML}

// ParseFormat accepts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatNames())
}

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Summary is the first line of a text report.
func Summary(n int) string {
	return fmt.Sprintf("found %d tasks that are not done and not scheduled for later:", n)
}

// Line renders one task the way the text report lists it.
func Line(t task.Task) string {
	return fmt.Sprintf("- [ ] %s (start: %s)", t.Text, t.StartLabel())
}

// Text renders the plain report: the summary, then one line per task.
func Text(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString(Summary(len(tasks)))
	b.WriteByte('\n')
	for _, t := range tasks {
		b.WriteString(Line(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// Markdown renders the report as a markdown document. The list is separated
// from the summary so that renderers treat it as a list.
func Markdown(tasks []task.Task) string {
	var b strings.Builder
	b.WriteString(Summary(len(tasks)))
	b.WriteString("\n\n")
	for _, t := range tasks {
		b.WriteString(Line(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// htmlFlags drops raw HTML from task text and keeps the text's punctuation
// as written.
const htmlFlags = (html.CommonFlags | html.SkipHTML) &^
	(html.Smartypants | html.SmartypantsFractions | html.SmartypantsDashes | html.SmartypantsLatexDashes)

// HTML renders the markdown report to an HTML fragment.
func HTML(tasks []task.Task) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: htmlFlags})
	return string(markdown.ToHTML([]byte(Markdown(tasks)), p, r))
}

type jsonReport struct {
	Count int        `json:"count"`
	Tasks []jsonTask `json:"tasks"`
}

type jsonTask struct {
	Text   string  `json:"text"`
	Done   bool    `json:"done"`
	Start  *string `json:"start"`
	Source string  `json:"source,omitempty"`
	Line   int     `json:"line,omitempty"`
}

// JSON writes the report as an indented JSON object. Source paths are made
// relative to root when possible.
func JSON(w io.Writer, tasks []task.Task, root string) error {
	out := jsonReport{Count: len(tasks), Tasks: make([]jsonTask, 0, len(tasks))}
	for _, t := range tasks {
		jt := jsonTask{Text: t.Text, Done: t.Done, Source: RelPath(root, t.Source), Line: t.Line}
		if t.HasStart() {
			start := t.Start
			jt.Start = &start
		}
		out.Tasks = append(out.Tasks, jt)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// DailySection renders the task list written into a daily note. The lines are
// plain bullets so that a later scan does not pick them up as tasks.
func DailySection(tasks []task.Task, root string) string {
	if len(tasks) == 0 {
		return "Nothing to do right now.\n"
	}
	var b strings.Builder
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s (in %s)\n", t.Text, RelPath(root, t.Source))
	}
	return b.String()
}

// RelPath returns path relative to root, using forward slashes, or path
// unchanged when it is not below root.
func RelPath(root, path string) string {
	if root == "" || path == "" {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
