package config

import (
	"context"
	"strings"

	"github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/thomas-vilte/issuecategorizer/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newShowCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: t.GetMessage("config.show_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			w := command.Root().Writer
			resolved := cfg.ResolvedGitHub()

			ui.PrintSectionBanner(w, t.GetMessage("config.current", 0, nil))
			ui.PrintKeyValue(w, t.GetMessage("config.path", 0, nil), cfg.PathFile)
			ui.PrintKeyValue(w, t.GetMessage("config.language", 0, nil), cfg.Language)
			ui.PrintKeyValue(w, t.GetMessage("config.data_dir", 0, nil), cfg.DataDir)
			ui.PrintKeyValue(w, t.GetMessage("config.default_state", 0, nil), cfg.DefaultState)
			ui.PrintKeyValue(w, t.GetMessage("config.train_labels", 0, nil), strings.Join(cfg.TrainLabels, ", "))
			ui.PrintKeyValue(w, t.GetMessage("config.test_labels", 0, nil), strings.Join(cfg.TestLabels, ", "))

			ui.PrintKeyValue(w, t.GetMessage("config.username", 0, nil),
				describe(t, cfg.GitHub.Username, resolved.Username, false))
			ui.PrintKeyValue(w, t.GetMessage("config.password", 0, nil),
				describe(t, cfg.GitHub.Password, resolved.Password, true))
			ui.PrintKeyValue(w, t.GetMessage("config.token", 0, nil),
				describe(t, cfg.GitHub.Token, resolved.Token, true))
			ui.PrintKeyValue(w, t.GetMessage("config.base_url", 0, nil),
				describe(t, cfg.GitHub.BaseURL, resolved.BaseURL, false))

			return nil
		},
	}
}

// describe renders a stored value, masking secrets and flagging values
// replaced by the environment.
func describe(t *i18n.Translations, stored, resolved string, secret bool) string {
	if resolved == "" {
		return t.GetMessage("config.not_set", 0, nil)
	}

	value := resolved
	if secret {
		value = t.GetMessage("config.hidden", 0, nil)
	}
	if resolved != stored {
		return t.GetMessage("config.env_override", 0, map[string]interface{}{"Value": value})
	}
	return value
}
