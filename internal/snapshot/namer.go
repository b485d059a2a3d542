// Package snapshot names and writes the tabular issue exports.
package snapshot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
)

const (
	filePrefix    = "IssueCategorizer"
	fileExtension = ".csv"
)

// pathReplacer keeps labels such as kind/bug from adding path segments.
var pathReplacer = strings.NewReplacer("/", "_", string(filepath.Separator), "_")

// FileName returns the unsuffixed snapshot path for one download. The file
// always sits directly inside baseDir.
func FileName(baseDir, owner, repo, state string, include []string) string {
	parts := make([]string, len(include))
	for i, label := range include {
		parts[i] = pathReplacer.Replace(label)
	}

	name := fmt.Sprintf("%s-%s-%s-issues-%s-labels-%s%s",
		filePrefix, owner, repo, state, strings.Join(parts, "-"), fileExtension)
	return filepath.Join(baseDir, name)
}

// NextAvailable returns candidate when nothing but possibly a directory
// occupies it, otherwise the first suffixed sibling that is free.
// Only the last digit of the stem is incremented: out9.csv is followed by
// out10.csv and then out11.csv.
func NextAvailable(candidate string) (string, error) {
	for {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			return candidate, nil
		}

		candidate, err = increment(candidate)
		if err != nil {
			return "", err
		}
	}
}

// CreateExclusive creates the first free variant of candidate in one step,
// so two downloads with the same name can never share a file.
func CreateExclusive(candidate string) (*os.File, string, error) {
	path, err := NextAvailable(candidate)
	if err != nil {
		return nil, "", err
	}

	for {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", domainErrors.ErrWrite.WithError(err).WithContext("path", path)
		}

		// Taken between the check and the create, or occupied by a directory.
		path, err = increment(path)
		if err != nil {
			return nil, "", err
		}
	}
}

func increment(path string) (string, error) {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	if stem == "" {
		return "", domainErrors.ErrNaming.WithContext("path", path)
	}

	last := stem[len(stem)-1]
	if last >= '0' && last <= '9' {
		return stem[:len(stem)-1] + strconv.Itoa(int(last-'0')+1) + ext, nil
	}
	return stem + "1" + ext, nil
}
