package search

import (
	"context"
	"os"
	"strings"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/config"
	domainErrors "github.com/thomas-vilte/gitmoji/internal/errors"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/models"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/urfave/cli/v3"
)

type SearchCommandFactory struct {
	store *catalog.Store
}

func NewSearchCommandFactory(store *catalog.Store) *SearchCommandFactory {
	return &SearchCommandFactory{store: store}
}

func (f *SearchCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Aliases:   []string{"s"},
		Usage:     t.GetMessage("search_command_usage", 0, nil),
		ArgsUsage: "<query>",
		Action: func(ctx context.Context, command *cli.Command) error {
			query := strings.TrimSpace(command.Args().First())
			if query == "" {
				msg := t.GetMessage("search_query_required", 0, nil)
				ui.PrintError(os.Stderr, msg)
				return domainErrors.NewAppError(domainErrors.TypeValidation, msg, nil)
			}

			var matches []models.Gitmoji
			err := ui.WithSpinner(t.GetMessage("fetching_gitmojis", 0, nil), func() error {
				var searchErr error
				matches, searchErr = f.store.Search(ctx, query)
				return searchErr
			})
			if err != nil {
				ui.PrintError(os.Stderr, t.GetMessage("search_failed", 0, nil))
				return err
			}

			ui.PrintGitmojis(os.Stdout, matches)
			return nil
		},
	}
}
