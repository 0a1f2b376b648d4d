package prompt

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

var titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

type gitmojiItem struct {
	entry models.Gitmoji
}

func (i gitmojiItem) Title() string       { return i.entry.Label() }
func (i gitmojiItem) Description() string { return i.entry.Code }
func (i gitmojiItem) FilterValue() string { return i.entry.Name + " " + i.entry.Description }

// selectModel drives the filterable gitmoji picker.
type selectModel struct {
	list    list.Model
	choice  models.Gitmoji
	done    bool
	aborted bool
}

func newSelectModel(title string, entries []models.Gitmoji) selectModel {
	items := make([]list.Item, 0, len(entries))
	for _, entry := range entries {
		items = append(items, gitmojiItem{entry: entry})
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 14)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)

	return selectModel{list: l}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, min(msg.Height, 20))
		return m, nil
	case tea.KeyMsg:
		// Don't eat keys while the user is typing a filter.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(gitmojiItem); ok {
				m.choice = item.entry
				m.done = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return m.list.View()
}
