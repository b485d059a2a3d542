package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/thomas-vilte/issuecategorizer/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:        "set",
		Usage:       t.GetMessage("config.set_usage", 0, nil),
		ArgsUsage:   t.GetMessage("config.set_args_usage", 0, nil),
		Description: t.GetMessage("config.keys_help", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer

			if command.Args().Len() < 2 {
				ui.PrintError(w, t.GetMessage("config.set_error_args", 0, nil))
				return errors.New("missing arguments")
			}

			key := strings.ToLower(command.Args().Get(0))
			value := command.Args().Get(1)

			if err := applySetting(t, cfg, key, value); err != nil {
				return err
			}

			if err := config.SaveConfig(cfg); err != nil {
				ui.PrintError(w, t.GetMessage("ui_error.error_saving_config", 0, nil))
				return err
			}

			// Confirm in the language just chosen.
			if err := t.SetLanguage(cfg.Language); err != nil {
				return err
			}

			ui.PrintSuccess(w, t.GetMessage("config.saved", 0, map[string]interface{}{"Key": key}))
			return nil
		},
	}
}

func applySetting(t *i18n.Translations, cfg *config.Config, key, value string) error {
	switch key {
	case "lang", "language":
		if !config.IsSupportedLanguage(value) {
			return errors.New(t.GetMessage("config.error_invalid_language", 0, map[string]interface{}{"Lang": value}))
		}
		cfg.Language = value
	case "data-dir", "data_dir":
		cfg.DataDir = value
	case "state", "default-state", "default_state":
		if !config.IsValidState(value) {
			return errors.New(t.GetMessage("config.error_invalid_state", 0, map[string]interface{}{"State": value}))
		}
		cfg.DefaultState = value
	case "train-labels", "train_labels":
		cfg.TrainLabels = splitLabels(value)
	case "test-labels", "test_labels":
		cfg.TestLabels = splitLabels(value)
	case "username":
		cfg.GitHub.Username = value
	case "password":
		cfg.GitHub.Password = value
	case "token":
		cfg.GitHub.Token = value
	case "base-url", "base_url":
		cfg.GitHub.BaseURL = value
	default:
		return fmt.Errorf("%s", t.GetMessage("config.error_unknown_key", 0, map[string]interface{}{"Key": key}))
	}
	return nil
}

func splitLabels(value string) []string {
	var labels []string
	for _, label := range strings.Split(value, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
