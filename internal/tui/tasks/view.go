package tasks

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/msbee/msbee/internal/report"
	"github.com/msbee/msbee/internal/ui"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "254", Dark: "236"}).
			Bold(true)

	dateStyle   = lipgloss.NewStyle().Foreground(ui.ColorAccent)
	detailStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted).PaddingLeft(6)
)

// headerLines is the title, the status line and the blank line below them.
const headerLines = 3

// renderView renders the entire view.
func (m Model) renderView() string {
	var b strings.Builder
	width := m.viewWidth()

	title := ui.RenderTitle(ui.Bee() + " MsBee")
	if m.root != "" {
		title += " " + ui.RenderMuted(m.root)
	}
	b.WriteString(ansi.Truncate(title, width, "..."))
	b.WriteString("\n")
	b.WriteString(ui.RenderMuted(m.status()))
	b.WriteString("\n\n")

	rows, _, _ := m.bodyRows()
	start, end := 0, len(rows)
	if visible := m.bodyHeight(); visible > 0 {
		start = min(m.offset, max(0, len(rows)-visible))
		end = min(len(rows), start+visible)
	}
	for _, row := range rows[start:end] {
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	return b.String()
}

func (m Model) footer() string {
	if m.showHelp {
		return m.help.View(m.keys)
	}
	return ui.RenderMuted("j/k:navigate  enter:details  r:rescan  q:quit  ?:help")
}

// bodyHeight is the number of list rows that fit between header and
// footer, or 0 when the window size is not known yet.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	footer := 1 + strings.Count(m.footer(), "\n") + 1
	return max(1, m.height-headerLines-footer)
}

func (m Model) viewWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

// bodyRows renders the task list one screen line per entry. first and last
// are the rows occupied by the selected task.
func (m Model) bodyRows() (rows []string, first, last int) {
	if len(m.tasks) == 0 {
		if !m.scanning {
			rows = append(rows, "Nothing to do right now.")
		}
		return rows, 0, 0
	}

	width := m.viewWidth()
	for i, t := range m.tasks {
		if i == m.cursor {
			first = len(rows)
		}

		label := t.StartLabel()
		text := truncate(t.Text, width-ansi.StringWidth(label)-16)
		line := fmt.Sprintf("%3d. ○ %s %s", i+1, text, dateStyle.Render("("+label+")"))
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		rows = append(rows, line)

		if m.expanded[i] {
			where := report.RelPath(m.root, t.Source)
			if t.Line > 0 {
				where = fmt.Sprintf("%s:%d", where, t.Line)
			}
			rows = append(rows, ansi.Truncate(detailStyle.Render("in "+where), width, "..."))
			if strings.TrimSpace(t.Text) != text {
				full := detailStyle.Width(width).Render(t.Text)
				rows = append(rows, strings.Split(full, "\n")...)
			}
		}

		if i == m.cursor {
			last = len(rows) - 1
		}
	}
	return rows, first, last
}

func (m Model) status() string {
	if m.scanning {
		return "scanning..."
	}
	s := fmt.Sprintf("%d available in %d notes", len(m.tasks), m.files)
	if m.skipped > 0 {
		s += fmt.Sprintf(", %d unreadable", m.skipped)
	}
	return s
}

// truncate shortens s to maxLen terminal cells.
func truncate(s string, maxLen int) string {
	if maxLen < 10 {
		maxLen = 10
	}
	return ansi.Truncate(s, maxLen, "...")
}
