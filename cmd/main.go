package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/gitmoji/internal/catalog"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/commit"
	configcmd "github.com/thomas-vilte/gitmoji/internal/cli/command/config"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/list"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/search"
	"github.com/thomas-vilte/gitmoji/internal/cli/command/update"
	"github.com/thomas-vilte/gitmoji/internal/cli/registry"
	cfg "github.com/thomas-vilte/gitmoji/internal/config"
	"github.com/thomas-vilte/gitmoji/internal/git"
	"github.com/thomas-vilte/gitmoji/internal/i18n"
	"github.com/thomas-vilte/gitmoji/internal/logger"
	"github.com/thomas-vilte/gitmoji/internal/prompt"
	"github.com/thomas-vilte/gitmoji/internal/services"
	"github.com/thomas-vilte/gitmoji/internal/ui"
	"github.com/thomas-vilte/gitmoji/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	logger.Initialize(os.Getenv("GITMOJI_DEBUG") != "")

	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("no se pudo obtener el directorio del usuario: %w", err)
	}

	confDir := filepath.Join(homeDir, ".gitmoji")
	configPath := filepath.Join(confDir, "config.json")
	cachePath := filepath.Join(confDir, "gitmojis.json")
	updateCheckPath := filepath.Join(confDir, "last_update_check.json")

	cfgApp, err := cfg.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	store := catalog.NewStore(cachePath, catalog.NewHTTPFetcher(""))
	gitService := git.NewGitService()
	prompter := prompt.NewTeaPrompter(translations)
	commitService := services.NewCommitService(store, gitService, prompter, configPath, translations)

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("list", list.NewListCommandFactory(store)); err != nil {
		return nil, nil, fmt.Errorf("error al registrar el comando 'list': %w", err)
	}

	if err := registerCommand.Register("update", update.NewUpdateCommandFactory(store)); err != nil {
		return nil, nil, fmt.Errorf("error al registrar el comando 'update': %w", err)
	}

	if err := registerCommand.Register("search", search.NewSearchCommandFactory(store)); err != nil {
		return nil, nil, fmt.Errorf("error al registrar el comando 'search': %w", err)
	}

	if err := registerCommand.Register("commit", commit.NewCommitCommandFactory(commitService)); err != nil {
		return nil, nil, fmt.Errorf("error al registrar el comando 'commit': %w", err)
	}

	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory(configPath, prompter)); err != nil {
		return nil, nil, fmt.Errorf("error al registrar el comando 'config': %w", err)
	}

	commands := registerCommand.CreateCommands()

	helpCommand := &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	}
	commands = append(commands, helpCommand)

	go func() {
		checker := services.NewVersionChecker(version.FullVersion(), updateCheckPath, translations)
		checker.CheckForUpdates(context.Background())
	}()

	return &cli.Command{
		Name:                  "gitmoji",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		Commands:              commands,
		EnableShellCompletion: true,
	}, translations, nil
}
