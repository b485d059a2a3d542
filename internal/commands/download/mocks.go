package download

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
)

type MockDownloader struct {
	mock.Mock
}

func (m *MockDownloader) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockDownloader) DownloadSets(ctx context.Context, base models.DownloadRequest, sets []models.LabelSet) ([]string, error) {
	args := m.Called(ctx, base, sets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
