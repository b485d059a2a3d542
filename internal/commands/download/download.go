package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/thomas-vilte/issuecategorizer/internal/commands/completion_helper"
	"github.com/thomas-vilte/issuecategorizer/internal/config"
	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/thomas-vilte/issuecategorizer/internal/logger"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
	"github.com/thomas-vilte/issuecategorizer/internal/ui"
	"github.com/urfave/cli/v3"
)

// Downloader is the part of the download service the commands need.
type Downloader interface {
	Download(ctx context.Context, req models.DownloadRequest) (string, error)
	DownloadSets(ctx context.Context, base models.DownloadRequest, sets []models.LabelSet) ([]string, error)
}

// ServiceProvider builds the downloader lazily so commands that fail
// validation never need credentials.
type ServiceProvider func(ctx context.Context) (Downloader, error)

type DownloadCommandFactory struct {
	provider ServiceProvider
}

func NewDownloadCommandFactory(provider ServiceProvider) *DownloadCommandFactory {
	return &DownloadCommandFactory{provider: provider}
}

func (f *DownloadCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	flags := append(repositoryFlags(t),
		&cli.StringSliceFlag{
			Name:    "labels",
			Aliases: []string{"l"},
			Usage:   t.GetMessage("download.flag_labels", 0, nil),
		},
		&cli.StringSliceFlag{
			Name:    "exclude-labels",
			Aliases: []string{"x"},
			Usage:   t.GetMessage("download.flag_exclude_labels", 0, nil),
		},
		&cli.StringFlag{
			Name:  "rules",
			Usage: t.GetMessage("download.flag_rules", 0, nil),
		},
	)

	return &cli.Command{
		Name:          "download",
		Aliases:       []string{"d"},
		Usage:         t.GetMessage("download.usage", 0, nil),
		Description:   t.GetMessage("download.details", 0, nil),
		Flags:         flags,
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			base, err := baseRequest(cmd, cfg)
			if err != nil {
				return err
			}

			if rulesPath := cmd.String("rules"); rulesPath != "" {
				rules, err := config.LoadRules(rulesPath)
				if err != nil {
					return err
				}
				if rules.State != "" && !cmd.IsSet("state") {
					base.State = rules.State
				}
				if cmd.IsSet("labels") || cmd.IsSet("exclude-labels") {
					ui.PrintWarning(cmd.Root().Writer, t.GetMessage("download.rules_ignores_labels", 0, nil))
				}
				return f.runSets(invocationContext(ctx, cmd, base), cmd.Root().Writer, t, base, rules.Sets)
			}

			base.Include = cmd.StringSlice("labels")
			if cmd.IsSet("exclude-labels") {
				base.Exclude = cmd.StringSlice("exclude-labels")
			}
			return f.runSingle(invocationContext(ctx, cmd, base), cmd.Root().Writer, t, base)
		},
	}
}

func (f *DownloadCommandFactory) runSingle(ctx context.Context, w io.Writer, t *i18n.Translations, req models.DownloadRequest) error {
	if len(req.Include) == 0 {
		return domainErrors.ErrNoIncludeLabels
	}

	downloader, err := f.provider(ctx)
	if err != nil {
		return err
	}

	var path string
	err = ui.WithSpinner(fetchingMessage(t, req), t.GetMessage("download.done", 0, nil), func() error {
		var err error
		path, err = downloader.Download(ctx, req)
		return err
	})
	if err != nil {
		return err
	}

	ui.PrintSnapshot(w, "", path)
	return nil
}

func (f *DownloadCommandFactory) runSets(ctx context.Context, w io.Writer, t *i18n.Translations, base models.DownloadRequest, sets []models.LabelSet) error {
	downloader, err := f.provider(ctx)
	if err != nil {
		return err
	}

	names := make([]string, len(sets))
	for i, set := range sets {
		names[i] = set.Name
	}
	ui.PrintInfo(w, t.GetMessage("download.sets_planned", len(sets), map[string]interface{}{
		"Count": len(sets),
		"Names": strings.Join(names, ", "),
	}))

	var paths []string
	done := t.GetMessage("download.sets_done", len(sets), map[string]interface{}{"Count": len(sets)})
	err = ui.WithSpinner(fetchingMessage(t, base), done, func() error {
		var err error
		paths, err = downloader.DownloadSets(ctx, base, sets)
		return err
	})
	if err != nil {
		return err
	}

	for i, set := range sets {
		ui.PrintSnapshot(w, set.Name, paths[i])
	}
	return nil
}

func repositoryFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "owner",
			Aliases: []string{"o"},
			Usage:   t.GetMessage("download.flag_owner", 0, nil),
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   t.GetMessage("download.flag_repo", 0, nil),
		},
		&cli.StringFlag{
			Name:  "repository",
			Usage: t.GetMessage("download.flag_repository", 0, nil),
		},
		&cli.StringFlag{
			Name:    "state",
			Aliases: []string{"s"},
			Usage:   t.GetMessage("download.flag_state", 0, nil),
		},
		&cli.StringFlag{
			Name:    "data-dir",
			Aliases: []string{"d"},
			Usage:   t.GetMessage("download.flag_data_dir", 0, nil),
		},
	}
}

// baseRequest resolves everything but the labels from flags and config.
func baseRequest(cmd *cli.Command, cfg *config.Config) (models.DownloadRequest, error) {
	owner, repo, err := ParseRepository(cmd.String("repository"), cmd.String("owner"), cmd.String("repo"))
	if err != nil {
		return models.DownloadRequest{}, err
	}

	state := cfg.DefaultState
	if cmd.IsSet("state") {
		state = cmd.String("state")
	}
	if !config.IsValidState(state) {
		return models.DownloadRequest{}, domainErrors.ErrInvalidState.WithContext("state", state)
	}

	dataDir := cfg.DataDir
	if cmd.IsSet("data-dir") {
		dataDir = cmd.String("data-dir")
	}

	return models.DownloadRequest{
		Owner:   owner,
		Repo:    repo,
		State:   state,
		DataDir: dataDir,
	}, nil
}

// ParseRepository accepts either "owner/repo" or separate owner and repo
// values. The combined form wins when both are given.
func ParseRepository(repository, owner, repo string) (string, string, error) {
	if repository != "" {
		parts := strings.Split(repository, "/")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return "", "", domainErrors.ErrInvalidRepository.WithContext("repository", repository)
		}
		return parts[0], parts[1], nil
	}

	if owner == "" || repo == "" {
		return "", "", domainErrors.ErrInvalidRepository
	}
	return owner, repo, nil
}

// invocationContext attaches the logger for this run, scoped to the
// repository being downloaded.
func invocationContext(ctx context.Context, cmd *cli.Command, req models.DownloadRequest) context.Context {
	log := logger.New(os.Stderr, cmd.Bool("debug"), cmd.Bool("verbose"))
	ctx = logger.WithLogger(ctx, log)
	return logger.With(ctx, "owner", req.Owner, "repo", req.Repo, "state", req.State)
}

func fetchingMessage(t *i18n.Translations, req models.DownloadRequest) string {
	return t.GetMessage("download.fetching", 0, map[string]interface{}{
		"Repository": fmt.Sprintf("%s/%s", req.Owner, req.Repo),
		"State":      req.State,
	})
}
