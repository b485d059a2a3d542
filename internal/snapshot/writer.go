package snapshot

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"

	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
)

// Header is the fixed first row of every snapshot.
var Header = []string{"Id", "Title", "Body", "Label"}

// Save writes entries to the first free variant of candidate, creating
// parent directories as needed, and returns the path it used. A write
// failure can leave a partial file behind.
func Save(candidate string, entries []models.Entry) (path string, err error) {
	if dir := filepath.Dir(candidate); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", domainErrors.ErrWrite.WithError(err).WithContext("path", dir)
		}
	}

	f, created, err := CreateExclusive(candidate)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			path = ""
			err = domainErrors.ErrWrite.WithError(cerr).WithContext("path", created)
		}
	}()

	if err := WriteEntries(f, entries); err != nil {
		return "", domainErrors.ErrWrite.WithError(err).WithContext("path", created)
	}

	return created, nil
}

// WriteEntries serializes the header and one row per entry. Ids are the
// 1-based output positions.
func WriteEntries(w io.Writer, entries []models.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}
	for i, entry := range entries {
		row := []string{strconv.Itoa(i + 1), entry.Title, entry.Body, entry.Label}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
