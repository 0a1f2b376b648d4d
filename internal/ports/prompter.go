package ports

import "github.com/thomas-vilte/gitmoji/internal/models"

// Prompter asks the user one question per method. The production
// implementation is a terminal widget, tests script the answers.
type Prompter interface {
	// SelectGitmoji shows the catalog and returns the chosen entry.
	SelectGitmoji(entries []models.Gitmoji) (models.Gitmoji, error)
	// AskText collects free text. Required rejects empty answers; every
	// answer is validated against the git quoting rules before returning.
	AskText(prompt string, required bool) (string, error)
	// Confirm asks a yes/no question seeded with a default.
	Confirm(prompt string, defaultValue bool) (bool, error)
	// SelectEmojiFormat asks how emojis should appear in commit titles.
	SelectEmojiFormat(current models.EmojiFormat) (models.EmojiFormat, error)
}
