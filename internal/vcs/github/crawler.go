package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/thomas-vilte/issuecategorizer/internal/labels"
	"github.com/thomas-vilte/issuecategorizer/internal/logger"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
)

// missingField is written for a title or body the API did not send.
const missingField = "null"

// Crawl fetches pageURL and every page reachable through rel="next", one
// page at a time, and returns the selected entries in page then issue order.
// Any failing page fails the whole crawl.
func (ghc *GitHubClient) Crawl(ctx context.Context, pageURL string, rule labels.Rule) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	var entries []models.Entry
	pages := 0

	for next := pageURL; next != ""; {
		log.Info("extracting issues", "url", next)

		page, err := ghc.pages.FetchPage(ctx, next)
		if err != nil {
			log.Error("failed to fetch issues page",
				"error", err,
				"url", next,
				"pages", pages)
			return nil, err
		}
		pages++

		before := len(entries)
		entries = appendEntries(ctx, entries, page.Issues, rule)

		log.Debug("issues page processed",
			"url", next,
			"issues", len(page.Issues),
			"entries", len(entries)-before)

		next = page.Links[RelNext]
	}

	log.Info("crawl finished",
		"pages", pages,
		"entries", len(entries))

	return entries, nil
}

func appendEntries(ctx context.Context, entries []models.Entry, issues []*github.Issue, rule labels.Rule) []models.Entry {
	log := logger.FromContext(ctx)

	for i, issue := range issues {
		if issue == nil || issue.PullRequestLinks != nil {
			continue
		}

		matched, excluded := labels.Resolve(labelNames(issue), rule)
		if excluded || len(matched) == 0 {
			continue
		}

		title := stringOrNull(issue.Title)
		body := stringOrNull(issue.Body)

		log.Debug("adding issue",
			"position", i+1,
			"title", title,
			"labels", matched)

		for _, label := range matched {
			entries = append(entries, models.Entry{
				Title: title,
				Body:  body,
				Label: labels.OutputLabel(label),
			})
		}
	}

	return entries
}

func labelNames(issue *github.Issue) []string {
	names := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		if label != nil && label.Name != nil {
			names = append(names, label.GetName())
		}
	}
	return names
}

func stringOrNull(s *string) string {
	if s == nil {
		return missingField
	}
	return *s
}
