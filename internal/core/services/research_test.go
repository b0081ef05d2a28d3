package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/rolo-cli/internal/adapters/driven/storage/memory"
	"github.com/meridian-labs/rolo-cli/internal/core/domain"
)

// Mock research providers

type mockSummariser struct {
	response   string
	err        error
	lastPrompt string
}

func (m *mockSummariser) Summarise(_ context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockSummariser) ModelName() string            { return "mock" }
func (m *mockSummariser) Ping(_ context.Context) error { return nil }
func (m *mockSummariser) Close() error                 { return nil }

type mockNewsProvider struct {
	items     []domain.NewsItem
	err       error
	lastQuery string
}

func (m *mockNewsProvider) Fetch(_ context.Context, query string, _ int) ([]domain.NewsItem, error) {
	m.lastQuery = query
	return m.items, m.err
}

type mockPageExtractor struct {
	text string
	err  error
}

func (m *mockPageExtractor) Extract(_ context.Context, _ string) (string, error) {
	return m.text, m.err
}

type mockProfiler struct {
	profile *domain.OrgProfile
	err     error
}

func (m *mockProfiler) Profile(_ context.Context, _ string) (*domain.OrgProfile, error) {
	return m.profile, m.err
}

type mockSearcher struct {
	results []domain.WebSnippet
	err     error
}

func (m *mockSearcher) Search(_ context.Context, _ string, _ int) ([]domain.WebSnippet, error) {
	return m.results, m.err
}

func newTestStore(t *testing.T) *memory.ContactStore {
	t.Helper()
	store := memory.NewContactStore()
	_, err := store.Upsert(context.Background(), "Jane Doe", domain.ContactFields{
		Role:    "CTO",
		Company: "Acme",
		Website: "https://acme.example",
	})
	require.NoError(t, err)
	return store
}

func TestResearch_ContactMustExist(t *testing.T) {
	svc := NewResearchService(memory.NewContactStore())

	_, err := svc.Research(context.Background(), "Nobody")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResearch_FullPipeline(t *testing.T) {
	store := newTestStore(t)
	svc := NewResearchService(store)

	llm := &mockSummariser{response: "A polished brief."}
	news := &mockNewsProvider{items: []domain.NewsItem{
		{Title: "Acme ships arm", Description: "Launch", URL: "https://example.com/a"},
		{Title: "Acme hiring", URL: "https://example.com/b"},
	}}
	svc.SetSummariser(llm)
	svc.SetNewsProvider(news)
	svc.SetPageExtractor(&mockPageExtractor{text: "We build robot arms."})
	svc.SetCompanyProfiler(&mockProfiler{profile: &domain.OrgProfile{Login: "acme", PublicRepos: 4}})
	svc.SetWebSearcher(&mockSearcher{results: []domain.WebSnippet{
		{Title: "Acme round", Snippet: "Funding"},
	}})

	brief, err := svc.Research(context.Background(), "Jane Doe")

	require.NoError(t, err)
	assert.True(t, brief.Generated)
	assert.Equal(t, "A polished brief.", brief.Summary)
	assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, brief.NewsLinks)
	assert.Equal(t, []string{"website", "news", "github", "websearch"}, brief.Sources)
	assert.Equal(t, "Acme", news.lastQuery)

	// The prompt carries the gathered material and the contact framing.
	assert.Contains(t, llm.lastPrompt, "Jane Doe, CTO at Acme")
	assert.Contains(t, llm.lastPrompt, "We build robot arms.")
	assert.Contains(t, llm.lastPrompt, "Acme ships arm: Launch")
	assert.Contains(t, llm.lastPrompt, "conversation starters")

	// The brief is persisted onto the contact.
	saved, err := store.Get(context.Background(), "Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, "A polished brief.", saved.Summary)
	assert.Equal(t, brief.NewsLinks, saved.NewsLinks)
	assert.Equal(t, "CTO", saved.Role)
}

func TestResearch_SourceFailuresAreSkipped(t *testing.T) {
	store := newTestStore(t)
	svc := NewResearchService(store)

	svc.SetSummariser(&mockSummariser{response: "Brief from news only."})
	svc.SetNewsProvider(&mockNewsProvider{items: []domain.NewsItem{{Title: "One story"}}})
	svc.SetPageExtractor(&mockPageExtractor{err: errors.New("timeout")})
	svc.SetCompanyProfiler(&mockProfiler{err: domain.ErrNotFound})
	svc.SetWebSearcher(&mockSearcher{err: errors.New("quota exceeded")})

	brief, err := svc.Research(context.Background(), "Jane Doe")

	require.NoError(t, err)
	assert.True(t, brief.Generated)
	assert.Equal(t, []string{"news"}, brief.Sources)
}

func TestResearch_FallsBackToManualNotes(t *testing.T) {
	store := newTestStore(t)
	svc := NewResearchService(store)

	svc.SetSummariser(&mockSummariser{err: errors.New("model overloaded")})
	svc.SetNewsProvider(&mockNewsProvider{items: []domain.NewsItem{
		{Title: "Acme ships arm", URL: "https://example.com/a"},
	}})

	brief, err := svc.Research(context.Background(), "Jane Doe")

	require.NoError(t, err)
	assert.False(t, brief.Generated)
	assert.Contains(t, brief.Summary, "Notes on Jane Doe (Acme)")
	assert.Contains(t, brief.Summary, "Acme ships arm")
	assert.Equal(t, []string{"https://example.com/a"}, brief.NewsLinks)
}

func TestResearch_NoSummariser(t *testing.T) {
	store := newTestStore(t)
	svc := NewResearchService(store)
	svc.SetNewsProvider(&mockNewsProvider{items: []domain.NewsItem{{Title: "Story"}}})

	brief, err := svc.Research(context.Background(), "Jane Doe")

	require.NoError(t, err)
	assert.False(t, brief.Generated)
	assert.Contains(t, brief.Summary, "Story")
}

func TestResearch_NoSourcesConfigured(t *testing.T) {
	store := newTestStore(t)
	svc := NewResearchService(store)

	brief, err := svc.Research(context.Background(), "Jane Doe")

	require.NoError(t, err)
	assert.False(t, brief.Generated)
	assert.Empty(t, brief.Sources)
	assert.Contains(t, brief.Summary, "No research sources were available")
}

func TestResearch_NewsQueryFallsBackToIndustry(t *testing.T) {
	store := memory.NewContactStore()
	_, err := store.Upsert(context.Background(), "Solo Founder", domain.ContactFields{
		Industry: "fintech",
	})
	require.NoError(t, err)

	svc := NewResearchService(store)
	news := &mockNewsProvider{}
	svc.SetNewsProvider(news)

	_, err = svc.Research(context.Background(), "Solo Founder")

	require.NoError(t, err)
	assert.Equal(t, "fintech", news.lastQuery)
}
