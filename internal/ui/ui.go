// Package ui provides the interactive terminal picker. The picker is
// rendered to stderr so stdout stays clean for the selected result.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Item is one selectable row: a title line plus a detail line.
type Item struct {
	Label  string
	Detail string
}

func (i Item) Title() string       { return i.Label }
func (i Item) Description() string { return i.Detail }
func (i Item) FilterValue() string { return i.Label }

type pickModel struct {
	list   list.Model
	choice int
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		// Let list filtering consume keys first
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			// Index() is relative to the filtered view; the caller
			// indexes the original items.
			m.choice = m.list.GlobalIndex()
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string { return m.list.View() }

// Select presents items in a terminal list and returns the selected
// item's index. Requires stderr to be a terminal; cancellation is an
// error.
func Select(prompt string, items []Item) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return -1, fmt.Errorf("interactive selection requires a terminal")
	}

	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, list.NewDefaultDelegate(), 0, 0)
	l.Title = prompt
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	l.SetShowStatusBar(false)

	final, err := tea.NewProgram(
		pickModel{list: l, choice: -1},
		tea.WithOutput(os.Stderr),
	).Run()
	if err != nil {
		return -1, fmt.Errorf("running picker: %w", err)
	}

	m, ok := final.(pickModel)
	if !ok || m.choice < 0 || m.choice >= len(items) {
		return -1, fmt.Errorf("selection cancelled")
	}
	return m.choice, nil
}
