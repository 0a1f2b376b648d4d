package update

import (
	"context"
	"os"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type UpdateCommandFactory struct {
	store *catalog.Store
}

func NewUpdateCommandFactory(store *catalog.Store) *UpdateCommandFactory {
	return &UpdateCommandFactory{store: store}
}

func (f *UpdateCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "update",
		Aliases: []string{"u"},
		Usage:   t.GetMessage("update_command_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			err := ui.WithSpinner(t.GetMessage("fetching_gitmojis", 0, nil), func() error {
				_, refreshErr := f.store.EnsureLoaded(ctx, true)
				return refreshErr
			})
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("update_failed", 0, nil))
				return err
			}

			ui.PrintSuccess(os.Stdout, t.GetMessage("catalog_updated", 0, nil))
			return nil
		},
	}
}
