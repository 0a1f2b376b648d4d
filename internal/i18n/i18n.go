package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string, localesDir string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesDir == "" {
		localesDir = "locales"
	}

	files, err := filepath.Glob(filepath.Join(localesDir, "active.*.toml"))
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Commit with a gitmoji, without memorizing the list"

	[app_description]
	other = "gitmoji keeps a local copy of the gitmoji catalog and walks you through composing a tagged commit message"

	[help_command_usage]
	other = "Show help"

	[list_command_usage]
	other = "List all gitmojis"

	[update_command_usage]
	other = "Refresh the local gitmoji cache"

	[search_command_usage]
	other = "Search gitmojis by name or description"

	[commit_command_usage]
	other = "Compose a commit interactively"

	[config_command_usage]
	other = "Configure the commit flow"

	[config_show_usage]
	other = "Show the current configuration"

	[list_failed]
	other = "Could not list gitmojis."

	[update_failed]
	other = "Could not update gitmojis."

	[search_failed]
	other = "Could not search gitmojis."

	[commit_failed]
	other = "Could not commit."

	[config_failed]
	other = "Could not configure."

	[search_query_required]
	other = "Tell me what to search for: gitmoji search <query>"

	[fetching_gitmojis]
	other = "Fetching the gitmoji list"

	[catalog_updated]
	other = "Gitmoji list updated"

	[commit_select_prompt]
	other = "Choose a gitmoji:"

	[commit_ask_scope]
	other = "Enter the scope of current changes:"

	[commit_ask_title]
	other = "Enter the commit title:"

	[commit_ask_message]
	other = "Enter the commit message:"

	[commit_ask_issue]
	other = "Enter the referring issue:"

	[input_invalid]
	other = "Enter a valid value (no backticks)"

	[input_invalid_required]
	other = "Enter a valid value (no backticks, not empty)"

	[commit_created]
	other = "Commit created:"

	[config_ask_auto_stage]
	other = "Enable automatic \"git add .\""

	[config_ask_scope_prompt]
	other = "Enable scope prompt"

	[config_ask_signed_commit]
	other = "Enable signed commits"

	[config_ask_issue_prompt]
	other = "Enable referring issue prompt"

	[config_format_prompt]
	other = "Select how emojis should be used in commits:"

	[config_saved]
	other = "Configuration saved"

	[config_current_header]
	other = "Current configuration"

	[ui_error_try_suggestion]
	other = "💡 Try: "

	[update_available]
	other = "Update available: {{.Current}} → {{.Latest}}"

	[update_command]
	other = "Run: {{.Command}}"
	`
