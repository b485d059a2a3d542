package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should create default config when missing", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := LoadConfig(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, LangEN, cfg.Language)
		assert.Equal(t, "data", cfg.DataDir)
		assert.Equal(t, "open", cfg.DefaultState)
		assert.Equal(t, []string{"enhancement", "bug"}, cfg.TrainLabels)
		assert.Equal(t, []string{"unlabeled"}, cfg.TestLabels)
		assert.Equal(t, filepath.Join(tmpDir, ".issue-categorizer", "config.json"), cfg.PathFile)
		assert.FileExists(t, cfg.PathFile)
	})

	t.Run("should load an explicit json path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")
		data, _ := json.Marshal(Config{
			Language:     LangES,
			DataDir:      "snapshots",
			DefaultState: "closed",
			TrainLabels:  []string{"bug"},
			TestLabels:   []string{"all"},
			GitHub:       GitHubConfig{Token: "abc"},
		})
		require.NoError(t, os.WriteFile(path, data, 0o600))

		cfg, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, LangES, cfg.Language)
		assert.Equal(t, "snapshots", cfg.DataDir)
		assert.Equal(t, "closed", cfg.DefaultState)
		assert.Equal(t, "abc", cfg.GitHub.Token)
		assert.Equal(t, path, cfg.PathFile)
	})

	t.Run("should reject an invalid state", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		data, _ := json.Marshal(Config{
			Language:     LangEN,
			DataDir:      "data",
			DefaultState: "merged",
			TrainLabels:  []string{"bug"},
			TestLabels:   []string{"unlabeled"},
		})
		require.NoError(t, os.WriteFile(path, data, 0o600))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})

	t.Run("should handle malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{malformed json"), 0o600))

		_, err := LoadConfig(path)

		assert.Error(t, err)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("should persist changes", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		cfg.GitHub.Username = "someone"
		cfg.GitHub.Password = "pw"
		require.NoError(t, SaveConfig(cfg))

		reloaded, err := LoadConfig(cfg.PathFile)
		require.NoError(t, err)
		assert.Equal(t, "someone", reloaded.GitHub.Username)
	})

	t.Run("should reject an unsupported language", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		cfg.Language = "fr"

		assert.Error(t, SaveConfig(cfg))
	})

	t.Run("should fail without a path", func(t *testing.T) {
		cfg := &Config{
			Language:     LangEN,
			DataDir:      "data",
			DefaultState: "open",
			TrainLabels:  []string{"bug"},
			TestLabels:   []string{"unlabeled"},
		}

		assert.Error(t, SaveConfig(cfg))
	})
}

func TestResolvedGitHub(t *testing.T) {
	t.Run("should prefer environment values", func(t *testing.T) {
		t.Setenv(EnvGitHubToken, "from-env")
		t.Setenv(EnvGitHubUsername, "")
		cfg := &Config{GitHub: GitHubConfig{Token: "from-file", Username: "user", Password: "pw"}}

		gh := cfg.ResolvedGitHub()

		assert.Equal(t, "from-env", gh.Token)
		assert.Equal(t, "user", gh.Username)
		assert.Equal(t, "from-file", cfg.GitHub.Token, "overrides must not leak into the stored config")
	})

	t.Run("should keep file values without environment", func(t *testing.T) {
		t.Setenv(EnvGitHubToken, "")
		t.Setenv(EnvGitHubUsername, "")
		t.Setenv(EnvGitHubPassword, "")
		cfg := &Config{GitHub: GitHubConfig{Username: "user", Password: "pw", BaseURL: "https://ghe.example/api/v3"}}

		assert.Equal(t, cfg.GitHub, cfg.ResolvedGitHub())
	})
}
