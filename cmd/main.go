package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/thomas-vilte/issuecategorizer/internal/commands/completion"
	configcmd "github.com/thomas-vilte/issuecategorizer/internal/commands/config"
	"github.com/thomas-vilte/issuecategorizer/internal/commands/download"
	"github.com/thomas-vilte/issuecategorizer/internal/commands/registry"
	cfg "github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/thomas-vilte/issuecategorizer/internal/services"
	"github.com/thomas-vilte/issuecategorizer/internal/ui"
	"github.com/thomas-vilte/issuecategorizer/internal/vcs/github"
	"github.com/thomas-vilte/issuecategorizer/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, cfgApp, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("Error starting the cli: %v", err)
	}

	updates := make(chan string, 1)
	if updater, err := newVersionUpdater(cfgApp, translations); err == nil {
		go func() {
			updates <- updater.CheckForUpdates(context.Background())
		}()
	}

	err = app.Run(context.Background(), os.Args)

	select {
	case notice := <-updates:
		if notice != "" {
			_, _ = fmt.Fprint(os.Stderr, notice)
		}
	default:
	}

	if err != nil {
		ui.HandleAppError(os.Stderr, err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *cfg.Config, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("could not get the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, filepath.Join(filepath.Dir(cfgApp.PathFile), "locales"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading translations: %w", err)
	}

	provider := func(ctx context.Context) (download.Downloader, error) {
		gh := cfgApp.ResolvedGitHub()
		client, err := github.NewGitHubClient(github.Credentials{
			Username: gh.Username,
			Password: gh.Password,
			Token:    gh.Token,
		}, gh.BaseURL)
		if err != nil {
			return nil, err
		}
		return services.NewDownloadService(client), nil
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	factories := []struct {
		name    string
		factory registry.CommandFactory
	}{
		{"download", download.NewDownloadCommandFactory(provider)},
		{"download-sets", download.NewSetsCommandFactory(provider)},
		{"config", configcmd.NewConfigCommandFactory()},
		{"completion", completion.NewCompletionCommandFactory()},
	}
	for _, f := range factories {
		if err := registerCommand.Register(f.name, f.factory); err != nil {
			return nil, nil, nil, fmt.Errorf("error registering command '%s': %w", f.name, err)
		}
	}

	commands := registerCommand.CreateCommands()
	commands = append(commands, &cli.Command{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   translations.GetMessage("help_command_usage", 0, nil),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
	})

	return &cli.Command{
		Name:        "issue-categorizer",
		Usage:       translations.GetMessage("app_usage", 0, nil),
		Version:     version.FullVersion(),
		Description: translations.GetMessage("app_details", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: translations.GetMessage("flag.debug", 0, nil),
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: translations.GetMessage("flag.verbose", 0, nil),
			},
		},
		Commands:              commands,
		EnableShellCompletion: true,
	}, cfgApp, translations, nil
}

func newVersionUpdater(cfgApp *cfg.Config, translations *i18n.Translations) (*services.VersionUpdater, error) {
	releases, err := github.NewReleases(nil, "", services.ReleasesOwner, services.ReleasesRepo)
	if err != nil {
		return nil, err
	}
	cachePath := filepath.Join(filepath.Dir(cfgApp.PathFile), "update_check.json")
	return services.NewVersionUpdater(version.FullVersion(), releases, cachePath, translations), nil
}
