package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Industry News</title>
    <item>
      <title>Acme ships a new robot arm</title>
      <description>The robotics market heats up</description>
      <link>https://example.com/arm</link>
      <pubDate>Fri, 01 Aug 2025 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Banking update</title>
      <description>Nothing about machines</description>
      <link>https://example.com/banking</link>
    </item>
    <item>
      <title>More robotics funding</title>
      <description>Another round closes</description>
      <link>https://example.com/funding</link>
    </item>
  </channel>
</rss>`

func newFeedServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, testFeed)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNew_RequiresURL(t *testing.T) {
	_, err := New("")
	assert.Error(t, err)
}

func TestFetch_FiltersByQuery(t *testing.T) {
	server := newFeedServer(t)
	provider, err := New(server.URL)
	require.NoError(t, err)

	items, err := provider.Fetch(context.Background(), "robotics", 5)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Acme ships a new robot arm", items[0].Title)
	assert.Equal(t, "More robotics funding", items[1].Title)
	assert.Equal(t, "https://example.com/arm", items[0].URL)
}

func TestFetch_RespectsLimit(t *testing.T) {
	server := newFeedServer(t)
	provider, err := New(server.URL)
	require.NoError(t, err)

	items, err := provider.Fetch(context.Background(), "robotics", 1)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFetch_FallsBackToNewestWhenNoMatch(t *testing.T) {
	server := newFeedServer(t)
	provider, err := New(server.URL)
	require.NoError(t, err)

	items, err := provider.Fetch(context.Background(), "quantum", 2)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Acme ships a new robot arm", items[0].Title)
}

func TestFetch_BadFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "not xml at all")
	}))
	defer server.Close()

	provider, err := New(server.URL)
	require.NoError(t, err)

	_, err = provider.Fetch(context.Background(), "robotics", 5)

	assert.Error(t, err)
}
