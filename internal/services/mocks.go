package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/issuecategorizer/internal/labels"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
)

type MockIssueCrawler struct {
	mock.Mock
}

func (m *MockIssueCrawler) IssuesURL(owner, repo, state string) string {
	args := m.Called(owner, repo, state)
	return args.String(0)
}

func (m *MockIssueCrawler) Crawl(ctx context.Context, pageURL string, rule labels.Rule) ([]models.Entry, error) {
	args := m.Called(ctx, pageURL, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

type MockReleaseSource struct {
	mock.Mock
}

func (m *MockReleaseSource) LatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
