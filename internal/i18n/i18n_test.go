package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewTranslations(t *testing.T) {
	t.Run("Should load built-in messages without a locales dir", func(t *testing.T) {
		trans, err := NewTranslations("en", "")

		require.NoError(t, err)
		assert.Equal(t, "Snapshot written", trans.GetMessage("download.done", 0, nil))
	})

	t.Run("Should fail with empty language", func(t *testing.T) {
		trans, err := NewTranslations("", "")

		assert.Error(t, err)
		assert.Nil(t, trans)
	})

	t.Run("Should let a locales dir override built-in messages", func(t *testing.T) {
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.en.toml", `
		[download]
		done = "Saved"
		`)

		trans, err := NewTranslations("en", tmpDir)

		require.NoError(t, err)
		assert.Equal(t, "Saved", trans.GetMessage("download.done", 0, nil))
		assert.Equal(t, "Download the issues matching a label rule", trans.GetMessage("download.usage", 0, nil))
	})

	t.Run("Should fail on a broken locale file", func(t *testing.T) {
		tmpDir := t.TempDir()
		createTestFile(t, tmpDir, "active.en.toml", `[broken`)

		_, err := NewTranslations("en", tmpDir)

		assert.Error(t, err)
	})
}

func TestSetLanguage(t *testing.T) {
	t.Run("Should change to a valid language", func(t *testing.T) {
		trans, err := NewTranslations("en", "")
		require.NoError(t, err)

		err = trans.SetLanguage("es")

		require.NoError(t, err)
		assert.Equal(t, "Snapshot escrito", trans.GetMessage("download.done", 0, nil))
	})

	t.Run("Should fail with unsupported language", func(t *testing.T) {
		trans, err := NewTranslations("es", "")
		require.NoError(t, err)

		err = trans.SetLanguage("fr")

		assert.Error(t, err)
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en", "")
	require.NoError(t, err)

	t.Run("Should pick plural forms", func(t *testing.T) {
		one := trans.GetMessage("download.sets_done", 1, map[string]interface{}{"Count": 1})
		many := trans.GetMessage("download.sets_done", 2, map[string]interface{}{"Count": 2})

		assert.Equal(t, "1 snapshot written", one)
		assert.Equal(t, "2 snapshots written", many)
	})

	t.Run("Should handle templates correctly", func(t *testing.T) {
		result := trans.GetMessage("download.fetching", 0, map[string]interface{}{
			"Repository": "golang/go",
			"State":      "open",
		})

		assert.Equal(t, "Downloading open issues of golang/go...", result)
	})

	t.Run("Should handle missing messages", func(t *testing.T) {
		assert.Equal(t, "Translation missing: NonExistent", trans.GetMessage("NonExistent", 1, nil))
	})

	t.Run("Should keep both tables in sync", func(t *testing.T) {
		es, err := NewTranslations("es", "")
		require.NoError(t, err)

		for _, id := range []string{"download.usage", "config.current", "completion.bash_usage", "ui_error.try_suggestion"} {
			assert.NotEqual(t, trans.GetMessage(id, 0, nil), es.GetMessage(id, 0, nil), id)
		}
	})
}
