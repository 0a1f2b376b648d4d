package prompt

import (
	tea "github.com/charmbracelet/bubbletea"
	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

// TeaPrompter implements ports.Prompter on top of Bubble Tea widgets.
type TeaPrompter struct {
	t *i18n.Translations
}

func NewTeaPrompter(t *i18n.Translations) *TeaPrompter {
	return &TeaPrompter{t: t}
}

func (p *TeaPrompter) SelectGitmoji(entries []models.Gitmoji) (models.Gitmoji, error) {
	m := newSelectModel(p.t.GetMessage("commit_select_prompt", 0, nil), entries)

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return models.Gitmoji{}, domainErrors.ErrPromptAborted.WithError(err)
	}

	final := result.(selectModel)
	if final.aborted {
		return models.Gitmoji{}, domainErrors.ErrPromptAborted
	}

	return final.choice, nil
}

func (p *TeaPrompter) AskText(prompt string, required bool) (string, error) {
	invalidID := "input_invalid"
	if required {
		invalidID = "input_invalid_required"
	}
	m := newInputModel(prompt, required, p.t.GetMessage(invalidID, 0, nil))

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", domainErrors.ErrPromptAborted.WithError(err)
	}

	final := result.(inputModel)
	if final.aborted {
		return "", domainErrors.ErrPromptAborted
	}

	return final.value, nil
}

func (p *TeaPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	m := newConfirmModel(prompt, defaultValue)

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return false, domainErrors.ErrPromptAborted.WithError(err)
	}

	final := result.(confirmModel)
	if final.aborted {
		return false, domainErrors.ErrPromptAborted
	}

	return final.value, nil
}

func (p *TeaPrompter) SelectEmojiFormat(current models.EmojiFormat) (models.EmojiFormat, error) {
	m := newFormatModel(p.t.GetMessage("config_format_prompt", 0, nil), current)

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return current, domainErrors.ErrPromptAborted.WithError(err)
	}

	final := result.(formatModel)
	if final.aborted {
		return current, domainErrors.ErrPromptAborted
	}

	return final.choice, nil
}
