package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/config"
	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

const bugOnlyCatalog = `{"gitmojis":[{"emoji":"🐛","code":":bug:","description":"Fix a bug","name":"bug"}]}`

var bugEntry = models.Gitmoji{Emoji: "🐛", Code: ":bug:", Description: "Fix a bug", Name: "bug"}

type fixture struct {
	service  *CommitService
	git      *MockGitService
	prompter *MockPrompter
}

// newFixture wires a commit service against a pre-warmed catalog cache and
// a persisted configuration, with git and the prompter mocked out.
func newFixture(t *testing.T, cfg *config.Config, catalogDoc string) fixture {
	t.Helper()
	dir := t.TempDir()

	cachePath := filepath.Join(dir, "gitmojis.json")
	assert.NoError(t, os.WriteFile(cachePath, []byte(catalogDoc), 0644))

	configPath := filepath.Join(dir, "config.json")
	if cfg != nil {
		assert.NoError(t, config.Save(configPath, cfg))
	}

	trans, err := i18n.NewTranslations("en", dir)
	assert.NoError(t, err)

	gitMock := new(MockGitService)
	prompterMock := new(MockPrompter)
	store := catalog.NewStore(cachePath, nil)

	return fixture{
		service:  NewCommitService(store, gitMock, prompterMock, configPath, trans),
		git:      gitMock,
		prompter: prompterMock,
	}
}

func TestCommitService_Run(t *testing.T) {
	t.Run("should commit with defaults: no staging, no sign, code marker", func(t *testing.T) {
		// arrange: all optional prompts disabled, format=code
		f := newFixture(t, nil, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(bugEntry, nil)
		f.prompter.On("AskText", "Enter the commit title:", true).Return("fix crash", nil)
		f.prompter.On("AskText", "Enter the commit message:", false).Return("details", nil)
		f.git.On("Commit", mock.Anything, ":bug: fix crash", "details", false).Return("ok\n", nil)

		// act
		output, err := f.service.Run(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, "ok\n", output)
		f.git.AssertNotCalled(t, "StageAll", mock.Anything)
		f.prompter.AssertNumberOfCalls(t, "AskText", 2)
		f.git.AssertExpectations(t)
	})

	t.Run("should collect scope and issue and use the glyph marker", func(t *testing.T) {
		sparkles := `{"gitmojis":[{"emoji":"✨","code":":sparkles:","description":"Introduce new features","name":"sparkles"}]}`
		f := newFixture(t, &config.Config{
			EmojiFormat: models.FormatGlyph,
			ScopePrompt: true,
			IssuePrompt: true,
		}, sparkles)

		entry := models.Gitmoji{Emoji: "✨", Code: ":sparkles:", Description: "Introduce new features", Name: "sparkles"}
		f.prompter.On("SelectGitmoji", mock.Anything).Return(entry, nil)
		f.prompter.On("AskText", "Enter the scope of current changes:", true).Return("core", nil)
		f.prompter.On("AskText", "Enter the commit title:", true).Return("add search", nil)
		f.prompter.On("AskText", "Enter the commit message:", false).Return("", nil)
		f.prompter.On("AskText", "Enter the referring issue:", true).Return("42", nil)
		f.git.On("Commit", mock.Anything, "✨ core: add search (42)", "", false).Return("", nil)

		_, err := f.service.Run(context.Background())

		assert.NoError(t, err)
		f.git.AssertExpectations(t)
	})

	t.Run("should stage everything before committing when auto stage is on", func(t *testing.T) {
		f := newFixture(t, &config.Config{AutoStage: true, EmojiFormat: models.FormatCode}, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(bugEntry, nil)
		f.prompter.On("AskText", mock.Anything, true).Return("fix crash", nil)
		f.prompter.On("AskText", mock.Anything, false).Return("", nil)

		var staged bool
		f.git.On("StageAll", mock.Anything).Run(func(args mock.Arguments) {
			staged = true
		}).Return(nil)
		f.git.On("Commit", mock.Anything, ":bug: fix crash", "", false).Run(func(args mock.Arguments) {
			assert.True(t, staged, "StageAll debe correr antes del commit")
		}).Return("", nil)

		_, err := f.service.Run(context.Background())

		assert.NoError(t, err)
		f.git.AssertExpectations(t)
	})

	t.Run("should request a signed commit when configured", func(t *testing.T) {
		f := newFixture(t, &config.Config{SignedCommit: true, EmojiFormat: models.FormatCode}, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(bugEntry, nil)
		f.prompter.On("AskText", mock.Anything, true).Return("fix crash", nil)
		f.prompter.On("AskText", mock.Anything, false).Return("", nil)
		f.git.On("Commit", mock.Anything, ":bug: fix crash", "", true).Return("", nil)

		_, err := f.service.Run(context.Background())

		assert.NoError(t, err)
		f.git.AssertExpectations(t)
	})

	t.Run("should reject a title containing a backtick before any git call", func(t *testing.T) {
		f := newFixture(t, nil, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(bugEntry, nil)
		f.prompter.On("AskText", "Enter the commit title:", true).Return("fix `rm -rf`", nil)

		_, err := f.service.Run(context.Background())

		var appErr *domainErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeValidation, appErr.Type)
		f.git.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.git.AssertNotCalled(t, "StageAll", mock.Anything)
	})

	t.Run("should reject an empty required answer", func(t *testing.T) {
		f := newFixture(t, nil, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(bugEntry, nil)
		f.prompter.On("AskText", "Enter the commit title:", true).Return("", nil)

		_, err := f.service.Run(context.Background())

		var appErr *domainErrors.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainErrors.TypeValidation, appErr.Type)
		f.git.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should fail when the catalog is empty", func(t *testing.T) {
		f := newFixture(t, nil, `{"gitmojis":[]}`)

		_, err := f.service.Run(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrCatalogEmpty)
		f.prompter.AssertNotCalled(t, "SelectGitmoji", mock.Anything)
	})

	t.Run("should abort when the selection prompt fails", func(t *testing.T) {
		f := newFixture(t, nil, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(models.Gitmoji{}, domainErrors.ErrPromptAborted)

		_, err := f.service.Run(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrPromptAborted)
		f.git.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should not roll back staging when the commit call fails", func(t *testing.T) {
		f := newFixture(t, &config.Config{AutoStage: true, EmojiFormat: models.FormatCode}, bugOnlyCatalog)
		f.prompter.On("SelectGitmoji", mock.Anything).Return(bugEntry, nil)
		f.prompter.On("AskText", mock.Anything, true).Return("fix crash", nil)
		f.prompter.On("AskText", mock.Anything, false).Return("", nil)
		f.git.On("StageAll", mock.Anything).Return(nil)
		f.git.On("Commit", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("", domainErrors.ErrCreateCommit)

		_, err := f.service.Run(context.Background())

		assert.ErrorIs(t, err, domainErrors.ErrCreateCommit)
		f.git.AssertCalled(t, "StageAll", mock.Anything)
	})
}

func TestCommitDraft_CommitTitle(t *testing.T) {
	sparkles := models.Gitmoji{Emoji: "✨", Code: ":sparkles:", Name: "sparkles", Description: "Introduce new features"}

	t.Run("glyph format with scope and issue", func(t *testing.T) {
		draft := models.CommitDraft{
			Entry:  sparkles,
			Format: models.FormatGlyph,
			Scope:  "core",
			Title:  "add search",
			Issue:  "42",
		}
		assert.Equal(t, "✨ core: add search (42)", draft.CommitTitle())
	})

	t.Run("code format without optional segments", func(t *testing.T) {
		draft := models.CommitDraft{
			Entry:  sparkles,
			Format: models.FormatCode,
			Title:  "add search",
		}
		assert.Equal(t, ":sparkles: add search", draft.CommitTitle())
	})
}
