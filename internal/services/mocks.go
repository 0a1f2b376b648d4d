package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/gitmoji/internal/models"
)

type (
	MockGitService struct {
		mock.Mock
	}

	MockPrompter struct {
		mock.Mock
	}
)

func (m *MockGitService) StageAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGitService) Commit(ctx context.Context, title, body string, signed bool) (string, error) {
	args := m.Called(ctx, title, body, signed)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) SelectGitmoji(entries []models.Gitmoji) (models.Gitmoji, error) {
	args := m.Called(entries)
	return args.Get(0).(models.Gitmoji), args.Error(1)
}

func (m *MockPrompter) AskText(prompt string, required bool) (string, error) {
	args := m.Called(prompt, required)
	return args.String(0), args.Error(1)
}

func (m *MockPrompter) Confirm(prompt string, defaultValue bool) (bool, error) {
	args := m.Called(prompt, defaultValue)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) SelectEmojiFormat(current models.EmojiFormat) (models.EmojiFormat, error) {
	args := m.Called(current)
	return args.Get(0).(models.EmojiFormat), args.Error(1)
}
