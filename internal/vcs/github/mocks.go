package github

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) FetchPage(ctx context.Context, pageURL string) (*Page, error) {
	args := m.Called(ctx, pageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Page), args.Error(1)
}
