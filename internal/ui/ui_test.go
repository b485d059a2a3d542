package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
)

func init() {
	color.NoColor = true
}

func TestHandleAppError(t *testing.T) {
	t.Run("should print type, context and suggestion", func(t *testing.T) {
		var buf bytes.Buffer
		err := domainErrors.ErrTransport.
			WithContext("status", 404).
			WithContext("url", "https://api.github.com/repos/a/b/issues")

		HandleAppError(&buf, err, nil)

		out := buf.String()
		assert.Contains(t, out, "TRANSPORT: GitHub request failed")
		assert.Contains(t, out, "Status: 404")
		assert.Contains(t, out, "URL: https://api.github.com/repos/a/b/issues")
		assert.Contains(t, out, "💡 Try: Check the repository name")
	})

	t.Run("should indent multi-line suggestions", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, domainErrors.ErrCredentialsMissing, nil)

		assert.Contains(t, buf.String(), "\n       or export ISSUE_CATEGORIZER_GITHUB_TOKEN\n")
	})

	t.Run("should print wrapped details", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, domainErrors.ErrWrite.WithError(errors.New("disk full")), nil)

		assert.Contains(t, buf.String(), "Details: disk full")
	})

	t.Run("should print plain errors", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, errors.New("boom"), nil)

		assert.Equal(t, "❌ boom\n", buf.String())
	})

	t.Run("should ignore nil", func(t *testing.T) {
		var buf bytes.Buffer

		HandleAppError(&buf, nil, nil)

		assert.Empty(t, buf.String())
	})
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer

	PrintSnapshot(&buf, "", "data/a.csv")
	PrintSnapshot(&buf, "train", "data/b.csv")

	assert.Equal(t, "📂 data/a.csv\n📂 train: data/b.csv\n", buf.String())
}

func TestWithSpinner(t *testing.T) {
	t.Run("should return the function error", func(t *testing.T) {
		want := errors.New("failed")

		err := WithSpinner("working", "done", func() error { return want })

		assert.Same(t, want, err)
	})

	t.Run("should run the function once", func(t *testing.T) {
		calls := 0

		err := WithSpinner("working", "done", func() error {
			calls++
			return nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
}
