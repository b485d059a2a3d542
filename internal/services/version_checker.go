package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/thomas-vilte/issuecategorizer/internal/i18n"
	"github.com/thomas-vilte/issuecategorizer/internal/logger"
	"golang.org/x/mod/semver"
)

// EnvDisableUpdateCheck turns the release check off when set to any value.
const EnvDisableUpdateCheck = "ISSUE_CATEGORIZER_DISABLE_UPDATE_CHECK"

const updateCheckInterval = 24 * time.Hour

// Repository publishing issue-categorizer releases.
const (
	ReleasesOwner = "thomas-vilte"
	ReleasesRepo  = "issue-categorizer"
	ReleasesURL   = "https://github.com/" + ReleasesOwner + "/" + ReleasesRepo + "/releases/latest"
)

type ReleaseSource interface {
	LatestTag(ctx context.Context) (string, error)
}

type VersionUpdater struct {
	currentVersion string
	releases       ReleaseSource
	cachePath      string
	trans          *i18n.Translations
	now            func() time.Time
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

func NewVersionUpdater(version string, releases ReleaseSource, cachePath string, trans *i18n.Translations) *VersionUpdater {
	return &VersionUpdater{
		currentVersion: version,
		releases:       releases,
		cachePath:      cachePath,
		trans:          trans,
		now:            time.Now,
	}
}

// CheckForUpdates returns the update notice to show, or "" when the binary
// is current. The latest tag is fetched at most once per day; in between
// the cached tag is used. Failures are logged and yield "".
func (v *VersionUpdater) CheckForUpdates(ctx context.Context) string {
	if os.Getenv(EnvDisableUpdateCheck) != "" {
		return ""
	}

	cache, err := v.loadCache()
	if err == nil && v.now().Sub(cache.LastCheck) < updateCheckInterval {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			return v.updateNotification(cache.LatestKnown)
		}
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	latest, err := v.releases.LatestTag(ctx)
	if err != nil {
		logger.Debug(ctx, "update check failed", "error", err)
		return ""
	}

	if err := v.saveCache(UpdateCache{LastCheck: v.now(), LatestKnown: latest}); err != nil {
		logger.Debug(ctx, "could not store update check", "error", err, "path", v.cachePath)
	}

	if v.isUpdateAvailable(latest) {
		return v.updateNotification(latest)
	}
	return ""
}

func (v *VersionUpdater) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionUpdater) updateNotification(latest string) string {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	msg := v.trans.GetMessage("update.available", 0, map[string]interface{}{
		"Current": v.currentVersion,
		"Latest":  green(latest),
	})
	command := v.trans.GetMessage("update.command", 0, map[string]interface{}{
		"URL": green(ReleasesURL),
	})
	return fmt.Sprintf("\n%s %s\n  %s\n", yellow("⬆"), msg, command)
}

func (v *VersionUpdater) loadCache() (UpdateCache, error) {
	data, err := os.ReadFile(v.cachePath)
	if err != nil {
		return UpdateCache{}, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return UpdateCache{}, err
	}
	return cache, nil
}

func (v *VersionUpdater) saveCache(cache UpdateCache) error {
	if err := os.MkdirAll(filepath.Dir(v.cachePath), 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}
	return os.WriteFile(v.cachePath, data, 0o644)
}
