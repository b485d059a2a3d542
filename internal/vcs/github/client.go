package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v80/github"
	domainErrors "github.com/thomas-vilte/issuecategorizer/internal/errors"
	"github.com/thomas-vilte/issuecategorizer/internal/logger"
	"github.com/thomas-vilte/issuecategorizer/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.IssueCrawler = (*GitHubClient)(nil)

// Credentials authenticate every request. A token takes precedence over
// username and password.
type Credentials struct {
	Username string
	Password string
	Token    string
}

// HTTPClient returns an http.Client that authenticates with the credentials.
func (c Credentials) HTTPClient() (*http.Client, error) {
	switch {
	case c.Token != "":
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token})
		return oauth2.NewClient(context.Background(), ts), nil
	case c.Username != "" && c.Password != "":
		transport := &github.BasicAuthTransport{
			Username: c.Username,
			Password: c.Password,
		}
		return transport.Client(), nil
	default:
		return nil, domainErrors.ErrCredentialsMissing
	}
}

// PageFetcher fetches a single page of issues.
type PageFetcher interface {
	FetchPage(ctx context.Context, pageURL string) (*Page, error)
}

// Page holds one decoded response together with its pagination links.
type Page struct {
	Issues []*github.Issue
	Links  map[string]string
}

type GitHubClient struct {
	api   *github.Client
	pages PageFetcher
}

// NewGitHubClient builds a client against baseURL, or the public API when
// baseURL is empty.
func NewGitHubClient(creds Credentials, baseURL string) (*GitHubClient, error) {
	httpClient, err := creds.HTTPClient()
	if err != nil {
		return nil, err
	}

	api, err := newAPI(httpClient, baseURL)
	if err != nil {
		return nil, err
	}

	ghc := &GitHubClient{api: api}
	ghc.pages = ghc
	return ghc, nil
}

// newAPI returns a go-github client rooted at baseURL, or at the public
// API when baseURL is empty.
func newAPI(httpClient *http.Client, baseURL string) (*github.Client, error) {
	api := github.NewClient(httpClient)
	if baseURL == "" {
		return api, nil
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, domainErrors.ErrConfigMissing.
			WithError(err).
			WithContext("base_url", baseURL).
			WithSuggestion("Set a valid API URL: issue-categorizer config set base-url https://api.github.com/")
	}
	api.BaseURL = u
	return api, nil
}

// NewGitHubClientWithFetcher returns a client whose pages come from fetcher.
func NewGitHubClientWithFetcher(fetcher PageFetcher) *GitHubClient {
	return &GitHubClient{
		api:   github.NewClient(nil),
		pages: fetcher,
	}
}

func (ghc *GitHubClient) IssuesURL(owner, repo, state string) string {
	rel := &url.URL{
		Path:     fmt.Sprintf("repos/%s/%s/issues", owner, repo),
		RawQuery: url.Values{"state": {state}}.Encode(),
	}
	return ghc.api.BaseURL.ResolveReference(rel).String()
}

// FetchPage performs one authenticated GET and decodes the issue array.
// Any status other than 200 fails the page.
func (ghc *GitHubClient) FetchPage(ctx context.Context, pageURL string) (*Page, error) {
	log := logger.FromContext(ctx)

	req, err := ghc.newPageRequest(pageURL)
	if err != nil {
		return nil, domainErrors.ErrTransport.WithError(err).WithContext("url", pageURL)
	}

	var items []json.RawMessage
	resp, err := ghc.api.Do(ctx, req, &items)
	if err != nil {
		var errResp *github.ErrorResponse
		switch {
		case resp != nil && resp.StatusCode != http.StatusOK:
			log.Warn("github responded with an error status",
				"url", pageURL,
				"status", resp.StatusCode)
			return nil, domainErrors.ErrTransport.
				WithError(err).
				WithContext("status", resp.StatusCode).
				WithContext("url", pageURL)
		case errors.As(err, &errResp), resp == nil:
			return nil, domainErrors.ErrTransport.WithError(err).WithContext("url", pageURL)
		default:
			return nil, domainErrors.ErrDecode.WithError(err).WithContext("url", pageURL)
		}
	}

	if resp.StatusCode != http.StatusOK {
		log.Warn("github responded with an unexpected status",
			"url", pageURL,
			"status", resp.StatusCode)
		return nil, domainErrors.ErrTransport.
			WithContext("status", resp.StatusCode).
			WithContext("url", pageURL)
	}

	issues, err := decodeIssues(items)
	if err != nil {
		return nil, domainErrors.ErrDecode.WithError(err).WithContext("url", pageURL)
	}

	return &Page{
		Issues: issues,
		Links:  ParseLinks(resp.Header.Get("Link")),
	}, nil
}

// decodeIssues turns the raw page items into issues. An item that has a
// pull_request key is a pull request even when the value is null, so its
// PullRequestLinks is never left nil.
func decodeIssues(items []json.RawMessage) ([]*github.Issue, error) {
	issues := make([]*github.Issue, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, err
		}
		if fields == nil {
			issues = append(issues, nil)
			continue
		}

		var issue github.Issue
		if err := json.Unmarshal(item, &issue); err != nil {
			return nil, err
		}
		if _, ok := fields["pull_request"]; ok && issue.PullRequestLinks == nil {
			issue.PullRequestLinks = &github.PullRequestLinks{}
		}
		issues = append(issues, &issue)
	}
	return issues, nil
}

func (ghc *GitHubClient) newPageRequest(pageURL string) (*http.Request, error) {
	req, err := ghc.api.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}
