package download

import (
	"context"

	"github.com/thomas-vilte/issuecategorizer/internal/commands/completion_helper"
	"github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/thomas-vilte/issuecategorizer/internal/services"
	"github.com/urfave/cli/v3"
)

// SetsCommandFactory builds download-sets, which fetches a training
// snapshot and a snapshot of issues still to classify in one run.
type SetsCommandFactory struct {
	downloads *DownloadCommandFactory
}

func NewSetsCommandFactory(provider ServiceProvider) *SetsCommandFactory {
	return &SetsCommandFactory{downloads: NewDownloadCommandFactory(provider)}
}

func (f *SetsCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	flags := append(repositoryFlags(t),
		&cli.StringSliceFlag{
			Name:  "train-labels",
			Usage: t.GetMessage("download_sets.flag_train_labels", 0, nil),
		},
		&cli.StringSliceFlag{
			Name:  "test-labels",
			Usage: t.GetMessage("download_sets.flag_test_labels", 0, nil),
		},
	)

	return &cli.Command{
		Name:          "download-sets",
		Usage:         t.GetMessage("download_sets.usage", 0, nil),
		Description:   t.GetMessage("download_sets.details", 0, nil),
		Flags:         flags,
		ShellComplete: completion_helper.DefaultFlagComplete,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			base, err := baseRequest(cmd, cfg)
			if err != nil {
				return err
			}

			train := cfg.TrainLabels
			if cmd.IsSet("train-labels") {
				train = cmd.StringSlice("train-labels")
			}
			test := cfg.TestLabels
			if cmd.IsSet("test-labels") {
				test = cmd.StringSlice("test-labels")
			}

			sets := services.TrainTestSets(train, test)
			return f.downloads.runSets(invocationContext(ctx, cmd, base), cmd.Root().Writer, t, base, sets)
		},
	}
}
