package services

import (
	"context"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/config"
	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ports"
)

// CommitService walks the user through one commit: pick a gitmoji, collect
// the configured fields, assemble the title and hand everything to git.
// Any failed step aborts the run; nothing is retried.
type CommitService struct {
	catalog    *catalog.Store
	git        ports.GitService
	prompter   ports.Prompter
	configPath string
	t          *i18n.Translations
}

func NewCommitService(store *catalog.Store, gitService ports.GitService, prompter ports.Prompter, configPath string, t *i18n.Translations) *CommitService {
	return &CommitService{
		catalog:    store,
		git:        gitService,
		prompter:   prompter,
		configPath: configPath,
		t:          t,
	}
}

// Run executes the commit flow and returns git's stdout on success.
func (s *CommitService) Run(ctx context.Context) (string, error) {
	entries, err := s.catalog.EnsureLoaded(ctx, false)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", domainErrors.ErrCatalogEmpty
	}

	entry, err := s.prompter.SelectGitmoji(entries)
	if err != nil {
		return "", err
	}

	draft := models.CommitDraft{Entry: entry}

	scopeEnabled, err := config.IsScopePromptEnabled(s.configPath)
	if err != nil {
		return "", err
	}
	if scopeEnabled {
		scope, err := s.collect("commit_ask_scope", true)
		if err != nil {
			return "", err
		}
		draft.Scope = scope
	}

	title, err := s.collect("commit_ask_title", true)
	if err != nil {
		return "", err
	}
	draft.Title = title

	body, err := s.collect("commit_ask_message", false)
	if err != nil {
		return "", err
	}
	draft.Body = body

	issueEnabled, err := config.IsIssuePromptEnabled(s.configPath)
	if err != nil {
		return "", err
	}
	if issueEnabled {
		issue, err := s.collect("commit_ask_issue", true)
		if err != nil {
			return "", err
		}
		draft.Issue = issue
	}

	format, err := config.EmojiFormat(s.configPath)
	if err != nil {
		return "", err
	}
	draft.Format = format

	autoStage, err := config.IsAutoStage(s.configPath)
	if err != nil {
		return "", err
	}
	if autoStage {
		if err := s.git.StageAll(ctx); err != nil {
			return "", err
		}
	}

	signed, err := config.IsSignedCommitEnabled(s.configPath)
	if err != nil {
		return "", err
	}

	return s.git.Commit(ctx, draft.CommitTitle(), draft.Body, signed)
}

// collect asks one free-text question and re-checks the answer, so a
// prompter that skips validation can never push bad text into the draft.
func (s *CommitService) collect(messageID string, required bool) (string, error) {
	answer, err := s.prompter.AskText(s.t.GetMessage(messageID, 0, nil), required)
	if err != nil {
		return "", err
	}

	if required && answer == "" {
		return "", domainErrors.ErrEmptyInput.WithContext("field", messageID)
	}
	if !models.ValidCommitText(answer, required) {
		return "", domainErrors.ErrInvalidInput.WithContext("field", messageID)
	}

	return answer, nil
}
