package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

var errStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// inputModel collects one line of free text, re-asking until the answer
// passes the commit text rules.
type inputModel struct {
	prompt     string
	required   bool
	invalidMsg string
	input      textinput.Model
	errMsg     string
	value      string
	done       bool
	aborted    bool
}

func newInputModel(prompt string, required bool, invalidMsg string) inputModel {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return inputModel{
		prompt:     prompt,
		required:   required,
		invalidMsg: invalidMsg,
		input:      ti,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			answer := m.input.Value()
			if !models.ValidCommitText(answer, m.required) {
				m.errMsg = m.invalidMsg
				return m, nil
			}
			m.value = answer
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	view := fmt.Sprintf("%s\n%s", titleStyle.Render(m.prompt), m.input.View())
	if m.errMsg != "" {
		view += "\n" + errStyle.Render(m.errMsg)
	}
	return view + "\n"
}
