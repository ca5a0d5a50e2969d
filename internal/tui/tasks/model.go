// Package tasks is the interactive browser behind "msbee tui": it lists the
// tasks that can be worked on now and rescans the vault on demand.
package tasks

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msbee/msbee/internal/scan"
	"github.com/msbee/msbee/internal/task"
)

// Scanner produces a fresh scan of the vault.
type Scanner func() *scan.Result

// Model is the bubbletea model for the task browser.
type Model struct {
	scanner  Scanner
	root     string
	tasks    []task.Task
	files    int
	skipped  int
	scanning bool

	cursor   int
	offset   int
	expanded map[int]bool

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New creates a browser that scans with s.
func New(s Scanner) Model {
	return Model{
		scanner:  s,
		scanning: true,
		expanded: make(map[int]bool),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// scanMsg carries a finished scan.
type scanMsg struct {
	result *scan.Result
}

// Init starts the first scan.
func (m Model) Init() tea.Cmd {
	return m.rescan
}

func (m Model) rescan() tea.Msg {
	return scanMsg{result: m.scanner()}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.follow()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case scanMsg:
		m.scanning = false
		m.expanded = make(map[int]bool)
		if msg.result != nil {
			m.root = msg.result.Root
			m.tasks = msg.result.Available
			m.files = len(msg.result.Files)
			m.skipped = len(msg.result.Skipped)
		}
		m.cursor = min(m.cursor, m.maxCursor())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			m.help.ShowAll = m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.maxCursor() {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.cursor = m.maxCursor()
			return m, nil

		case key.Matches(msg, m.keys.Details):
			if len(m.tasks) > 0 {
				m.expanded[m.cursor] = !m.expanded[m.cursor]
			}
			return m, nil

		case key.Matches(msg, m.keys.Rescan):
			if m.scanning {
				return m, nil
			}
			m.scanning = true
			return m, m.rescan
		}
	}

	return m, nil
}

// follow scrolls the list so the selected task stays on screen.
func (m *Model) follow() {
	rows, first, last := m.bodyRows()
	visible := m.bodyHeight()
	if visible <= 0 {
		m.offset = 0
		return
	}
	if first < m.offset {
		m.offset = first
	}
	if last >= m.offset+visible {
		m.offset = last - visible + 1
	}
	m.offset = max(0, min(m.offset, len(rows)-visible))
}

func (m Model) maxCursor() int {
	if len(m.tasks) == 0 {
		return 0
	}
	return len(m.tasks) - 1
}

// Selected returns the task under the cursor.
func (m Model) Selected() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// View renders the model.
func (m Model) View() string {
	return m.renderView()
}
