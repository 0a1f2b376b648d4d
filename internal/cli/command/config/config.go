package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/ports"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct {
	configPath string
	prompter   ports.Prompter
}

func NewConfigCommandFactory(configPath string, prompter ports.Prompter) *ConfigCommandFactory {
	return &ConfigCommandFactory{
		configPath: configPath,
		prompter:   prompter,
	}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			f.newShowCommand(t),
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			current, err := config.Load(f.configPath)
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("config_failed", 0, nil))
				return err
			}

			updated, err := config.Edit(current, f.prompter, t)
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("config_failed", 0, nil))
				return err
			}

			if err := config.Save(f.configPath, updated); err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("config_failed", 0, nil))
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("config_saved", 0, nil))
			return nil
		},
	}
}

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config_show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			current, err := config.Load(f.configPath)
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("config_failed", 0, nil))
				return err
			}

			fmt.Println(t.GetMessage("config_current_header", 0, nil))
			fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━")
			ui.PrintKeyValue("auto_stage", strconv.FormatBool(current.AutoStage))
			ui.PrintKeyValue("emoji_format", string(current.EmojiFormat))
			ui.PrintKeyValue("scope_prompt", strconv.FormatBool(current.ScopePrompt))
			ui.PrintKeyValue("signed_commit", strconv.FormatBool(current.SignedCommit))
			ui.PrintKeyValue("issue_prompt", strconv.FormatBool(current.IssuePrompt))
			ui.PrintKeyValue("language", current.Language)
			return nil
		},
	}
}
