package driven

import (
	"context"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// NewsProvider fetches recent news for a search keyword.
// All research providers are optional collaborators: the research pipeline
// treats a nil provider as "source disabled" and a provider error as a
// skipped source, never a fatal failure.
type NewsProvider interface {
	// Fetch returns up to limit recent items for the query, newest first.
	Fetch(ctx context.Context, query string, limit int) ([]domain.NewsItem, error)
}

// PageExtractor fetches a web page and returns its readable text content.
type PageExtractor interface {
	// Extract returns the page's visible text, capped at an
	// implementation-defined length.
	Extract(ctx context.Context, url string) (string, error)
}

// CompanyProfiler looks up a company's public developer presence.
type CompanyProfiler interface {
	// Profile resolves a company name to a public GitHub organisation.
	// Returns domain.ErrNotFound when no organisation matches.
	Profile(ctx context.Context, company string) (*domain.OrgProfile, error)
}

// WebSearcher returns web search snippets for a query.
type WebSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]domain.WebSnippet, error)
}
