package config

import (
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/ports"
)

// Edit walks the configurable fields in a fixed order, asking one question
// per field with the current value as the default. The first prompt failure
// aborts the edit and leaves current untouched, so callers never persist a
// half-answered record.
func Edit(current *Config, prompter ports.Prompter, t *i18n.Translations) (*Config, error) {
	edited := *current

	autoStage, err := prompter.Confirm(t.GetMessage("config_ask_auto_stage", 0, nil), current.AutoStage)
	if err != nil {
		return nil, err
	}
	edited.AutoStage = autoStage

	format, err := prompter.SelectEmojiFormat(current.EmojiFormat)
	if err != nil {
		return nil, err
	}
	edited.EmojiFormat = format

	scopePrompt, err := prompter.Confirm(t.GetMessage("config_ask_scope_prompt", 0, nil), current.ScopePrompt)
	if err != nil {
		return nil, err
	}
	edited.ScopePrompt = scopePrompt

	signedCommit, err := prompter.Confirm(t.GetMessage("config_ask_signed_commit", 0, nil), current.SignedCommit)
	if err != nil {
		return nil, err
	}
	edited.SignedCommit = signedCommit

	issuePrompt, err := prompter.Confirm(t.GetMessage("config_ask_issue_prompt", 0, nil), current.IssuePrompt)
	if err != nil {
		return nil, err
	}
	edited.IssuePrompt = issuePrompt

	return &edited, nil
}
