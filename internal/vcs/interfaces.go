package vcs

import (
	"context"

	"github.com/thomas-vilte/issuecategorizer/internal/labels"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
)

// IssueCrawler defines the methods a hosting provider implements to export issues.
type IssueCrawler interface {
	// IssuesURL returns the first page URL of the repository's issues in the given state.
	IssuesURL(owner, repo, state string) string
	// Crawl follows pagination from pageURL and returns the entries the rule selects,
	// page by page in the order the provider returns them.
	Crawl(ctx context.Context, pageURL string, rule labels.Rule) ([]models.Entry, error)
}
