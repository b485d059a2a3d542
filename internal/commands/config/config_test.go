package config

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/urfave/cli/v3"
)

func setupConfigTest(t *testing.T) (*config.Config, *i18n.Translations) {
	t.Helper()

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	return cfg, translations
}

func runConfig(t *testing.T, cfg *config.Config, translations *i18n.Translations, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.Command{
		Writer:   &out,
		Commands: []*cli.Command{NewConfigCommandFactory().CreateCommand(translations, cfg)},
	}
	err := app.Run(context.Background(), append([]string{"issue-categorizer", "config"}, args...))
	return out.String(), err
}
