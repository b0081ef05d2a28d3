// Package rss provides a NewsProvider adapter reading an RSS or Atom feed.
// It is the keyless alternative to NewsAPI: point it at an industry feed
// and research works without any API key.
package rss

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure Provider implements the interface.
var _ driven.NewsProvider = (*Provider)(nil)

// Provider fetches news items from a single feed URL.
type Provider struct {
	feedURL string
	parser  *gofeed.Parser
}

// New creates a provider for the given feed URL.
func New(feedURL string) (*Provider, error) {
	if feedURL == "" {
		return nil, fmt.Errorf("rss: feed URL is required")
	}
	return &Provider{
		feedURL: feedURL,
		parser:  gofeed.NewParser(),
	}, nil
}

// Fetch returns up to limit feed items whose title or description contains
// the query (case-insensitive). Feeds are already topical, so when nothing
// matches the query the newest items are returned instead of an empty set.
func (p *Provider) Fetch(ctx context.Context, query string, limit int) ([]domain.NewsItem, error) {
	feed, err := p.parser.ParseURLWithContext(p.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", p.feedURL, err)
	}
	if limit <= 0 {
		limit = 5
	}

	matched := filterItems(feed.Items, query, limit)
	if len(matched) == 0 {
		matched = filterItems(feed.Items, "", limit)
	}
	return matched, nil
}

func filterItems(items []*gofeed.Item, query string, limit int) []domain.NewsItem {
	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]domain.NewsItem, 0, limit)

	for _, item := range items {
		if item == nil {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) {
			continue
		}
		result = append(result, domain.NewsItem{
			Title:       strings.TrimSpace(item.Title),
			Description: strings.TrimSpace(item.Description),
			URL:         item.Link,
			PublishedAt: item.Published,
		})
		if len(result) >= limit {
			break
		}
	}
	return result
}
