// Package websearch provides a WebSearcher adapter backed by the Google
// Custom Search JSON API.
package websearch

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure Searcher implements the interface.
var _ driven.WebSearcher = (*Searcher)(nil)

// DefaultLimit is how many results a search returns when the caller
// does not say.
const DefaultLimit = 3

// Config holds configuration for the Custom Search client.
type Config struct {
	// APIKey is the Google API key (required).
	APIKey string

	// EngineID is the programmable search engine ID, the "cx" parameter
	// (required).
	EngineID string

	// Endpoint overrides the API endpoint, used in tests.
	Endpoint string
}

// Searcher runs web searches through a programmable search engine.
type Searcher struct {
	service  *customsearch.Service
	engineID string
}

// New creates a new web searcher.
func New(ctx context.Context, cfg Config) (*Searcher, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("websearch: API key is required")
	}
	if cfg.EngineID == "" {
		return nil, fmt.Errorf("websearch: engine ID is required")
	}

	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	service, err := customsearch.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("websearch: create service: %w", err)
	}
	return &Searcher{service: service, engineID: cfg.EngineID}, nil
}

// Search returns up to limit web results for the query.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]domain.WebSnippet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("web search: %w: query is required", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	resp, err := s.service.Cse.List().
		Q(query).
		Cx(s.engineID).
		Num(int64(limit)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("web search %q: %w", query, err)
	}

	snippets := make([]domain.WebSnippet, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil {
			continue
		}
		snippets = append(snippets, domain.WebSnippet{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
		})
	}
	return snippets, nil
}
