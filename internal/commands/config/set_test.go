package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuecategorizer/internal/config"
)

func TestSetCommand(t *testing.T) {
	t.Run("should persist each supported key", func(t *testing.T) {
		tests := []struct {
			key   string
			value string
			check func(t *testing.T, cfg *config.Config)
		}{
			{"data-dir", "snapshots", func(t *testing.T, cfg *config.Config) { assert.Equal(t, "snapshots", cfg.DataDir) }},
			{"state", "closed", func(t *testing.T, cfg *config.Config) { assert.Equal(t, "closed", cfg.DefaultState) }},
			{"train-labels", "bug, feature ,", func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, []string{"bug", "feature"}, cfg.TrainLabels)
			}},
			{"test-labels", "all", func(t *testing.T, cfg *config.Config) { assert.Equal(t, []string{"all"}, cfg.TestLabels) }},
			{"username", "octocat", func(t *testing.T, cfg *config.Config) { assert.Equal(t, "octocat", cfg.GitHub.Username) }},
			{"password", "pw", func(t *testing.T, cfg *config.Config) { assert.Equal(t, "pw", cfg.GitHub.Password) }},
			{"token", "abc", func(t *testing.T, cfg *config.Config) { assert.Equal(t, "abc", cfg.GitHub.Token) }},
			{"base-url", "https://ghe.example/api/v3", func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "https://ghe.example/api/v3", cfg.GitHub.BaseURL)
			}},
		}

		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				cfg, translations := setupConfigTest(t)

				out, err := runConfig(t, cfg, translations, "set", tt.key, tt.value)

				require.NoError(t, err)
				assert.Contains(t, out, "Updated "+tt.key)
				reloaded, err := config.LoadConfig(cfg.PathFile)
				require.NoError(t, err)
				tt.check(t, reloaded)
			})
		}
	})

	t.Run("should confirm a language change in the new language", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		out, err := runConfig(t, cfg, translations, "set", "lang", "es")

		require.NoError(t, err)
		assert.Contains(t, out, "lang actualizado")
		reloaded, err := config.LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, config.LangES, reloaded.Language)
	})

	t.Run("should reject an unknown key", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "colour", "blue")

		assert.EqualError(t, err, "Unknown configuration key: colour")
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "lang", "fr")

		assert.Error(t, err)
		assert.Equal(t, config.LangEN, cfg.Language)
	})

	t.Run("should reject an invalid state", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "state", "merged")

		assert.Error(t, err)
	})

	t.Run("should not save empty label lists", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		_, err := runConfig(t, cfg, translations, "set", "train-labels", " , ")

		assert.Error(t, err)
		reloaded, loadErr := config.LoadConfig(cfg.PathFile)
		require.NoError(t, loadErr)
		assert.Equal(t, []string{"enhancement", "bug"}, reloaded.TrainLabels)
	})

	t.Run("should require a key and a value", func(t *testing.T) {
		cfg, translations := setupConfigTest(t)

		out, err := runConfig(t, cfg, translations, "set", "lang")

		assert.Error(t, err)
		assert.Contains(t, out, "Usage: issue-categorizer config set <key> <value>")
	})
}
