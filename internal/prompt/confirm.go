package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// confirmModel is a yes/no question. Enter accepts the default.
type confirmModel struct {
	prompt       string
	defaultValue bool
	value        bool
	done         bool
	aborted      bool
}

func newConfirmModel(prompt string, defaultValue bool) confirmModel {
	return confirmModel{
		prompt:       prompt,
		defaultValue: defaultValue,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "enter":
			m.value = m.defaultValue
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	hint := "y/N"
	if m.defaultValue {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s (%s) ", titleStyle.Render(m.prompt), hint)
}
