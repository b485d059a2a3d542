package services

import (
	"context"
	"slices"

	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
	"github.com/thomas-vilte/issuecategorizer/internal/labels"
	"github.com/thomas-vilte/issuecategorizer/internal/logger"
	"github.com/thomas-vilte/issuecategorizer/internal/models"
	"github.com/thomas-vilte/issuecategorizer/internal/snapshot"
	"github.com/thomas-vilte/issuecategorizer/internal/vcs"
	"golang.org/x/sync/errgroup"
)

// Names of the label sets built by TrainTestSets.
const (
	TrainSetName = "train"
	TestSetName  = "test"
)

type DownloadService struct {
	crawler vcs.IssueCrawler
}

func NewDownloadService(crawler vcs.IssueCrawler) *DownloadService {
	return &DownloadService{crawler: crawler}
}

// Download crawls the repository's issues, keeps those the labels select and
// writes them to a new snapshot. It returns the snapshot path.
func (s *DownloadService) Download(ctx context.Context, req models.DownloadRequest) (string, error) {
	if len(req.Include) == 0 {
		return "", domainErrors.ErrNoIncludeLabels
	}

	log := logger.FromContext(ctx)
	log.Info("getting issues",
		"owner", req.Owner,
		"repo", req.Repo,
		"state", req.State,
		"labels", req.Include,
		"excluded_labels", req.Exclude)

	rule := labels.Rule{Include: req.Include, Exclude: req.Exclude}
	entries, err := s.crawler.Crawl(ctx, s.crawler.IssuesURL(req.Owner, req.Repo, req.State), rule)
	if err != nil {
		return "", err
	}

	candidate := snapshot.FileName(req.DataDir, req.Owner, req.Repo, req.State, req.Include)
	path, err := snapshot.Save(candidate, entries)
	if err != nil {
		log.Error("failed to write snapshot", "error", err, "path", candidate)
		return "", err
	}

	log.Info("entries written", "path", path, "entries", len(entries))
	return path, nil
}

// DownloadSets downloads one snapshot per label set concurrently, using base
// for everything but the labels. Paths come back in the order of sets; the
// first failure cancels the remaining downloads.
func (s *DownloadService) DownloadSets(ctx context.Context, base models.DownloadRequest, sets []models.LabelSet) ([]string, error) {
	paths := make([]string, len(sets))
	g, ctx := errgroup.WithContext(ctx)

	for i, set := range sets {
		g.Go(func() error {
			req := base
			req.Include = set.Include
			req.Exclude = set.Exclude

			setCtx := logger.With(ctx, "set", set.Name)
			path, err := s.Download(setCtx, req)
			if err != nil {
				logger.Error(setCtx, "label set download failed", err)
				return err
			}
			paths[i] = path
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// TrainTestSets returns a training set for train and a set to classify for
// test that leaves out every issue already carrying a training label.
func TrainTestSets(train, test []string) []models.LabelSet {
	return []models.LabelSet{
		{Name: TrainSetName, Include: slices.Clone(train)},
		{Name: TestSetName, Include: slices.Clone(test), Exclude: slices.Clone(train)},
	}
}
