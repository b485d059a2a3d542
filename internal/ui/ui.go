package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
)

var (
	// Colors for different message types
	Success = color.New(color.FgGreen, color.Bold)
	Error   = color.New(color.FgRed, color.Bold)
	Warning = color.New(color.FgYellow, color.Bold)
	Info    = color.New(color.FgCyan, color.Bold)
	Accent  = color.New(color.FgMagenta, color.Bold)
	Dim     = color.New(color.FgHiBlack)

	SuccessEmoji = Success.Sprint("✅")
	WarningEmoji = Warning.Sprint("⚠️")
	InfoEmoji    = Info.Sprint("ℹ️")
)

const folderIcon = "📂"

// SmartSpinner wraps a terminal spinner and times the work it covers.
// It draws nothing when stdout is not a terminal.
type SmartSpinner struct {
	spinner *spinner.Spinner
	out     io.Writer
	start   time.Time
}

func NewSmartSpinner(initialMessage string) *SmartSpinner {
	s := spinner.New(
		spinner.CharSets[14],
		100*time.Millisecond,
		spinner.WithColor("cyan"),
		spinner.WithSuffix(" "+initialMessage),
		spinner.WithWriter(os.Stderr),
	)
	return &SmartSpinner{spinner: s, out: os.Stdout}
}

func (s *SmartSpinner) Start() {
	s.start = time.Now()
	s.spinner.Start()
}

func (s *SmartSpinner) Stop() {
	s.spinner.Stop()
}

// Elapsed is the time since Start.
func (s *SmartSpinner) Elapsed() time.Duration {
	if s.start.IsZero() {
		return 0
	}
	return time.Since(s.start)
}

func (s *SmartSpinner) Success(msg string) {
	s.Stop()
	PrintDuration(s.out, msg, s.Elapsed())
}

func (s *SmartSpinner) Error(msg string) {
	s.Stop()
	PrintError(s.out, msg)
}

func PrintSuccess(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", SuccessEmoji, Success.Sprint(msg))
}

func PrintError(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", Error.Sprint("❌"), Error.Sprint(msg))
}

func PrintWarning(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", WarningEmoji, Warning.Sprint(msg))
}

func PrintInfo(w io.Writer, msg string) {
	_, _ = fmt.Fprintf(w, "%s %s\n", InfoEmoji, Info.Sprint(msg))
}

func PrintDuration(w io.Writer, msg string, duration time.Duration) {
	durationStr := Dim.Sprintf("(%s)", duration.Round(10*time.Millisecond))
	_, _ = fmt.Fprintf(w, "%s %s %s\n", SuccessEmoji, Success.Sprint(msg), durationStr)
}

func PrintSectionBanner(w io.Writer, title string) {
	separator := color.New(color.FgCyan).Sprint("━━━━━━━━━━━━━━━━━━━━━━━")
	_, _ = fmt.Fprintf(w, "\n%s\n%s %s\n%s\n\n", separator, Accent.Sprint(folderIcon), Accent.Sprint(title), separator)
}

func PrintKeyValue(w io.Writer, key, value string) {
	keyColored := Dim.Sprint(key + ":")
	valueColored := color.New(color.FgWhite, color.Bold).Sprint(value)
	_, _ = fmt.Fprintf(w, "   %s %s\n", keyColored, valueColored)
}

// PrintSnapshot reports one written snapshot, prefixed by its set name when
// the download produced several.
func PrintSnapshot(w io.Writer, setName, path string) {
	if setName == "" {
		_, _ = fmt.Fprintf(w, "%s %s\n", Accent.Sprint(folderIcon), path)
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", Accent.Sprint(folderIcon), Accent.Sprint(setName+":"), path)
}

// WithSpinner runs fn behind a spinner showing message and reports how long
// it took. done is printed on success.
func WithSpinner(message, done string, fn func() error) error {
	s := NewSmartSpinner(message)
	s.Start()

	if err := fn(); err != nil {
		s.Stop()
		return err
	}

	s.Success(done)
	return nil
}

// HandleAppError prints err for a human. AppErrors get their type, details
// and suggestion; anything else prints as a plain error.
// If translations is nil, it will use English defaults.
func HandleAppError(w io.Writer, err error, translations *i18n.Translations) {
	if err == nil {
		return
	}

	var appErr *domainErrors.AppError
	if !errors.As(err, &appErr) {
		PrintError(w, err.Error())
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = Error.Fprintf(w, "❌ %s: %s\n", appErr.Type, appErr.Message)

	if appErr.Err != nil {
		_, _ = Dim.Fprintf(w, "   Details: %v\n", appErr.Err)
	}
	if status, ok := appErr.Context["status"]; ok {
		_, _ = Dim.Fprintf(w, "   Status: %v\n", status)
	}
	if url, ok := appErr.Context["url"].(string); ok && url != "" {
		_, _ = Dim.Fprintf(w, "   URL: %s\n", url)
	}
	if path, ok := appErr.Context["path"].(string); ok && path != "" {
		_, _ = Dim.Fprintf(w, "   Path: %s\n", path)
	}

	if appErr.Suggestion != "" {
		tryPrefix := "💡 Try: "
		if translations != nil {
			tryPrefix = translations.GetMessage("ui_error.try_suggestion", 0, nil)
		}
		_, _ = fmt.Fprintln(w)
		_, _ = Info.Fprint(w, tryPrefix)
		for i, line := range strings.Split(appErr.Suggestion, "\n") {
			if i == 0 {
				_, _ = fmt.Fprintln(w, line)
			} else {
				_, _ = fmt.Fprintf(w, "       %s\n", line)
			}
		}
	}
	_, _ = fmt.Fprintln(w)
}
