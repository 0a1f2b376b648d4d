package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

var cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

// formatOption pairs an emoji format with the label the selector shows.
type formatOption struct {
	format models.EmojiFormat
	label  string
}

func formatOptions() []formatOption {
	return []formatOption{
		{format: models.FormatCode, label: ":smile:"},
		{format: models.FormatGlyph, label: "😄"},
	}
}

// formatModel is the two-entry selector for the emoji format setting.
type formatModel struct {
	prompt  string
	options []formatOption
	cursor  int
	choice  models.EmojiFormat
	done    bool
	aborted bool
}

func newFormatModel(prompt string, current models.EmojiFormat) formatModel {
	options := formatOptions()
	cursor := 0
	for i, option := range options {
		if option.format == current {
			cursor = i
		}
	}

	return formatModel{
		prompt:  prompt,
		options: options,
		cursor:  cursor,
	}
}

func (m formatModel) Init() tea.Cmd {
	return nil
}

func (m formatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.options)-1 {
				m.cursor++
			}
		case "enter":
			m.choice = m.options[m.cursor].format
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m formatModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.prompt))
	b.WriteString("\n")
	for i, option := range m.options {
		cursor := "  "
		label := option.label
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			label = cursorStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, label))
	}
	return b.String()
}
