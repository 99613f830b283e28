package fetch

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedHeaders(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com/feed.xml", http.NoBody)
	require.NoError(t, err)

	FeedHeaders(req)

	assert.Contains(t, req.Header.Get("Accept"), "application/rss+xml")
	assert.Equal(t, "en-US,en;q=0.9", req.Header.Get("Accept-Language"))
	assert.Equal(t, "keep-alive", req.Header.Get("Connection"))
	assert.Empty(t, req.Header.Get("Upgrade-Insecure-Requests"))
}

func TestPageHeaders(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://example.com/article", http.NoBody)
	require.NoError(t, err)

	PageHeaders(req)

	assert.Contains(t, req.Header.Get("Accept"), "text/html")
	assert.NotContains(t, req.Header.Get("Accept"), "rss")
	assert.Equal(t, "1", req.Header.Get("Upgrade-Insecure-Requests"))
}
