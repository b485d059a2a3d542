package completion

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/issuecategorizer/internal/config"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/urfave/cli/v3"
)

func runCompletion(t *testing.T, args ...string) (string, error) {
	t.Helper()
	translations, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	var out bytes.Buffer
	app := &cli.Command{
		Writer:   &out,
		Commands: []*cli.Command{NewCompletionCommandFactory().CreateCommand(translations, &config.Config{})},
	}
	err = app.Run(context.Background(), append([]string{"issue-categorizer", "completion"}, args...))
	return out.String(), err
}

func TestCompletionScripts(t *testing.T) {
	t.Run("should print the bash script", func(t *testing.T) {
		out, err := runCompletion(t, "bash")

		require.NoError(t, err)
		assert.Contains(t, out, "complete -o bashdefault -o default -o nospace -F _issue_categorizer_bash_autocomplete issue-categorizer")
	})

	t.Run("should print the zsh script", func(t *testing.T) {
		out, err := runCompletion(t, "zsh")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "#compdef issue-categorizer"))
	})
}

func TestCompletionInstall(t *testing.T) {
	t.Run("should append the loader once", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("SHELL", "/bin/zsh")

		_, err := runCompletion(t, "install")
		require.NoError(t, err)
		out, err := runCompletion(t, "install")
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(home, ".zshrc"))
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(string(content), installMarker))
		assert.Contains(t, string(content), "issue-categorizer completion zsh")
		assert.Contains(t, out, "already installed")
	})

	t.Run("should reject unknown shells", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())
		t.Setenv("SHELL", "/usr/bin/fish")

		_, err := runCompletion(t, "install")

		assert.EqualError(t, err, "Unsupported shell: /usr/bin/fish")
	})
}
