// Package newsapi provides a NewsProvider adapter backed by newsapi.org.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.NewsProvider = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://newsapi.org"
	DefaultTimeout = 10 * time.Second
	DefaultLimit   = 5

	// MaxQueryLength caps the query sent upstream; NewsAPI rejects longer ones.
	MaxQueryLength = 500

	// throttleRate keeps well under the free-tier request budget.
	throttleRate = 0.5 // requests per second
)

// Config holds configuration for the NewsAPI client.
type Config struct {
	// APIKey is the NewsAPI key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://newsapi.org).
	BaseURL string

	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration
}

// Client fetches recent articles from the NewsAPI /v2/everything endpoint.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
}

// everythingResponse is the /v2/everything response format.
type everythingResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message,omitempty"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// New creates a new NewsAPI client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("newsapi: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(throttleRate), 1),
	}, nil
}

// Fetch returns up to limit recent English articles for the query,
// newest first.
func (c *Client) Fetch(ctx context.Context, query string, limit int) ([]domain.NewsItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("fetch news: %w: query is required", domain.ErrInvalidInput)
	}
	if len(query) > MaxQueryLength {
		query = query[:MaxQueryLength]
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var everything everythingResponse
	if err := json.Unmarshal(body, &everything); err != nil {
		return nil, fmt.Errorf("parse response (status %d): %w", resp.StatusCode, err)
	}
	if everything.Status != "ok" {
		return nil, fmt.Errorf("newsapi: %s (%s)", everything.Message, everything.Code)
	}

	items := make([]domain.NewsItem, 0, len(everything.Articles))
	for _, a := range everything.Articles {
		if a.Title == "" && a.Description == "" {
			continue
		}
		items = append(items, domain.NewsItem{
			Title:       strings.TrimSpace(a.Title),
			Description: strings.TrimSpace(a.Description),
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}
