package list

import (
	"context"
	"os"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type ListCommandFactory struct {
	store *catalog.Store
}

func NewListCommandFactory(store *catalog.Store) *ListCommandFactory {
	return &ListCommandFactory{store: store}
}

func (f *ListCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   t.GetMessage("list_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			var entries []models.Gitmoji
			err := ui.WithSpinner(t.GetMessage("fetching_gitmojis", 0, nil), func() error {
				var loadErr error
				entries, loadErr = f.store.EnsureLoaded(ctx, false)
				return loadErr
			})
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("list_failed", 0, nil))
				return err
			}

			ui.PrintGitmojis(os.Stdout, entries)
			return nil
		},
	}
}
