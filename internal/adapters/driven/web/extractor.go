// Package web provides a PageExtractor adapter that pulls readable text
// from a contact's website for use as summarisation context.
package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/meridian-labs/rolo-cli/internal/core/domain"
	"github.com/meridian-labs/rolo-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageExtractor = (*Extractor)(nil)

// Default configuration values.
const (
	DefaultTimeout = 10 * time.Second

	// MaxTextLength caps the extracted text so prompts stay within
	// model context limits.
	MaxTextLength = 5000

	userAgent = "Mozilla/5.0 (compatible; rolo/1.0; +https://github.com/meridian-labs/rolo-cli)"
)

var whitespace = regexp.MustCompile(`\s+`)

// Config holds configuration for the page extractor.
type Config struct {
	// Timeout is the request timeout (default: 10s).
	Timeout time.Duration

	// MaxLength caps the extracted text (default: 5000).
	MaxLength int
}

// Extractor fetches a page and reduces it to plain text: headings first,
// then paragraph and section content.
type Extractor struct {
	client    *http.Client
	maxLength int
}

// New creates a new page extractor.
func New(cfg Config) *Extractor {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = MaxTextLength
	}
	return &Extractor{
		client:    &http.Client{Timeout: cfg.Timeout},
		maxLength: cfg.MaxLength,
	}
}

// Extract fetches the page at rawURL and returns its readable text.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("extract page: %w: invalid URL %q", domain.ErrInvalidInput, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", parsed.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %s: status %d", parsed.Host, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", parsed.Host, err)
	}
	return e.textFrom(doc), nil
}

func (e *Extractor) textFrom(doc *goquery.Document) string {
	doc.Find("script, style, noscript, nav, footer").Remove()

	var parts []string
	seen := make(map[string]bool)
	add := func(text string, minLen int) {
		text = whitespace.ReplaceAllString(strings.TrimSpace(text), " ")
		if len(text) < minLen || seen[text] {
			return
		}
		seen[text] = true
		parts = append(parts, text)
	}

	doc.Find("h1, h2, h3").Each(func(_ int, s *goquery.Selection) {
		add(s.Text(), 1)
	})
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		add(s.Text(), 1)
	})
	// Catch sites that put copy in bare divs inside semantic containers.
	doc.Find("main, article, section").Each(func(_ int, s *goquery.Selection) {
		add(s.Clone().ChildrenFiltered("div").Text(), 50)
	})

	text := strings.Join(parts, "\n")
	if len(text) > e.maxLength {
		text = text[:e.maxLength]
	}
	return text
}
