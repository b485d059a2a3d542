package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
)

// Releases looks up the published releases of one repository without
// authentication.
type Releases struct {
	api   *github.Client
	owner string
	repo  string
}

func NewReleases(httpClient *http.Client, baseURL, owner, repo string) (*Releases, error) {
	api, err := newAPI(httpClient, baseURL)
	if err != nil {
		return nil, err
	}
	return &Releases{api: api, owner: owner, repo: repo}, nil
}

// LatestTag returns the tag of the latest non-draft, non-prerelease release.
func (r *Releases) LatestTag(ctx context.Context) (string, error) {
	release, _, err := r.api.Repositories.GetLatestRelease(ctx, r.owner, r.repo)
	if err != nil {
		return "", domainErrors.ErrTransport.WithError(err).WithContext("repository", r.owner+"/"+r.repo)
	}
	return release.GetTagName(), nil
}
