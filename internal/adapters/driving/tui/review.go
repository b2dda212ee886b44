// Package tui provides the interactive review view for prune runs.
// Orphans are listed with checkboxes; only confirmed files are passed
// on to the action executor.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tidydocs/mdprune-cli/internal/core/domain"

	"github.com/charmbracelet/bubbles/key"
)

// ReviewModel is the bubbletea model for reviewing orphans before an
// action runs. All orphans start selected; the user deselects what
// should be kept.
type ReviewModel struct {
	styles *Styles
	keys   *KeyMap

	root     string
	paths    []string
	selected []bool

	cursor    int
	offset    int
	width     int
	height    int
	confirmed bool
}

// NewReview creates a review model over the scanned orphans.
// paths are canonical; root is used for display relativization.
func NewReview(root string, paths []string) *ReviewModel {
	selected := make([]bool, len(paths))
	for i := range selected {
		selected[i] = true
	}
	return &ReviewModel{
		styles:   DefaultStyles(),
		keys:     DefaultKeyMap(),
		root:     root,
		paths:    paths,
		selected: selected,
		width:    80,
		height:   24,
	}
}

// Init implements tea.Model.
func (m *ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.paths)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			if len(m.paths) > 0 {
				m.selected[m.cursor] = !m.selected[m.cursor]
			}

		case key.Matches(msg, m.keys.All):
			for i := range m.selected {
				m.selected[i] = true
			}

		case key.Matches(msg, m.keys.None):
			for i := range m.selected {
				m.selected[i] = false
			}

		case key.Matches(msg, m.keys.Confirm):
			m.confirmed = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			m.confirmed = false
			return m, tea.Quit
		}
	}

	m.scrollToCursor()
	return m, nil
}

// View implements tea.Model.
func (m *ReviewModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Review orphaned images"))
	b.WriteString("\n")
	b.WriteString(m.styles.Summary.Render(
		fmt.Sprintf("%d of %d selected for removal", m.selectedCount(), len(m.paths))))
	b.WriteString("\n\n")

	visible := m.visibleRows()
	end := m.offset + visible
	if end > len(m.paths) {
		end = len(m.paths)
	}

	for i := m.offset; i < end; i++ {
		cursor := "  "
		style := m.styles.Item
		if i == m.cursor {
			cursor = "> "
			style = m.styles.Cursor
		}

		check := "[ ]"
		if m.selected[i] {
			check = m.styles.Checked.Render("[x]")
		}

		b.WriteString(cursor)
		b.WriteString(check)
		b.WriteString(" ")
		b.WriteString(style.Render(domain.DisplayPath(m.paths[i], m.root)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"space toggle · a all · n none · enter confirm · q cancel"))
	return b.String()
}

// Confirmed reports whether the user accepted the selection.
func (m *ReviewModel) Confirmed() bool {
	return m.confirmed
}

// Selected returns the paths the user left selected, in list order.
func (m *ReviewModel) Selected() []string {
	var out []string
	for i, path := range m.paths {
		if m.selected[i] {
			out = append(out, path)
		}
	}
	return out
}

// selectedCount counts the current selection.
func (m *ReviewModel) selectedCount() int {
	count := 0
	for _, s := range m.selected {
		if s {
			count++
		}
	}
	return count
}

// visibleRows is how many list rows fit between header and footer.
func (m *ReviewModel) visibleRows() int {
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}
	return rows
}

// scrollToCursor keeps the cursor inside the visible window.
func (m *ReviewModel) scrollToCursor() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}
