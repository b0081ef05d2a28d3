// Package github provides a CompanyProfiler adapter backed by the GitHub API.
// Many companies keep an organisation profile there, which makes it a cheap
// source of background when researching a contact's employer.
package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure Profiler implements the interface.
var _ driven.CompanyProfiler = (*Profiler)(nil)

// Default configuration values.
const (
	DefaultTimeout   = 10 * time.Second
	DefaultRepoLimit = 3
)

// Config holds configuration for the GitHub profiler.
type Config struct {
	// Token is a GitHub personal access token. Optional; unauthenticated
	// requests work with a lower rate limit.
	Token string

	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration

	// RepoLimit is how many recently pushed repositories to include
	// (default: 3).
	RepoLimit int
}

// Profiler looks up a company's GitHub organisation and its most recently
// active repositories.
type Profiler struct {
	client    *github.Client
	repoLimit int
}

// New creates a new GitHub profiler.
func New(cfg Config) (*Profiler, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RepoLimit <= 0 {
		cfg.RepoLimit = DefaultRepoLimit
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(
			context.WithValue(context.Background(), oauth2.HTTPClient, httpClient), src)
	}

	client := github.NewClient(httpClient)
	if cfg.BaseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("github: set base URL: %w", err)
		}
	}

	return &Profiler{client: client, repoLimit: cfg.RepoLimit}, nil
}

// Profile fetches the organisation matching the company name. The name is
// slugified ("Acme Robotics" -> "acme-robotics") since organisation logins
// cannot contain spaces. Returns domain.ErrNotFound when no organisation
// exists under that login.
func (p *Profiler) Profile(ctx context.Context, company string) (*domain.OrgProfile, error) {
	login := Slugify(company)
	if login == "" {
		return nil, fmt.Errorf("profile company: %w: company name is required", domain.ErrInvalidInput)
	}

	org, resp, err := p.client.Organizations.Get(ctx, login)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("organisation %q: %w", login, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get organisation %q: %w", login, err)
	}

	profile := &domain.OrgProfile{
		Login:       org.GetLogin(),
		Name:        org.GetName(),
		Description: org.GetDescription(),
		Blog:        org.GetBlog(),
		PublicRepos: org.GetPublicRepos(),
	}

	repos, err := p.recentRepos(ctx, login)
	if err != nil {
		// The profile alone is still useful.
		return profile, nil
	}
	profile.RecentRepos = repos
	return profile, nil
}

func (p *Profiler) recentRepos(ctx context.Context, login string) ([]domain.RepoActivity, error) {
	opts := &github.RepositoryListByOrgOptions{
		Sort:        "pushed",
		ListOptions: github.ListOptions{PerPage: p.repoLimit},
	}
	repos, _, err := p.client.Repositories.ListByOrg(ctx, login, opts)
	if err != nil {
		return nil, err
	}

	activity := make([]domain.RepoActivity, 0, len(repos))
	for _, r := range repos {
		activity = append(activity, domain.RepoActivity{
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			PushedAt:    r.GetPushedAt().Time,
		})
	}
	return activity, nil
}

// Slugify turns a company name into a plausible organisation login:
// lowercase, spaces collapsed to single hyphens, other punctuation dropped.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
