package commit

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/services"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type CommitCommandFactory struct {
	commitService *services.CommitService
}

func NewCommitCommandFactory(commitService *services.CommitService) *CommitCommandFactory {
	return &CommitCommandFactory{commitService: commitService}
}

func (f *CommitCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "commit",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("commit_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			output, err := f.commitService.Run(ctx)
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("commit_failed", 0, nil))
				return err
			}

			if trimmed := strings.TrimSpace(output); trimmed != "" {
				fmt.Println(trimmed)
			}
			ui.PrintSuccess(os.Stdout, t.GetMessage("commit_created", 0, nil))
			return nil
		},
	}
}
