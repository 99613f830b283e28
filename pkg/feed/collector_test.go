package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Blog</title>
	<link>https://example.com</link>
	<item>
		<title>First Article</title>
		<link>https://example.com/first</link>
		<description>&lt;p&gt;Some &lt;b&gt;bold&lt;/b&gt; content &amp;amp; more&lt;/p&gt;</description>
		<pubDate>Mon, 02 Jan 2006 15:04:05 GMT</pubDate>
	</item>
	<item>
		<title>Second Article</title>
		<link>https://example.com/second</link>
		<description>plain description</description>
	</item>
	<item>
		<title>Third Article</title>
		<link>https://example.com/third</link>
	</item>
</channel>
</rss>`

func TestCollector_Collect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	c := NewCollector([]string{server.URL}, 5, 5*time.Second, "newsdigest-test/1.0")
	candidates, err := c.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	assert.Equal(t, "First Article", candidates[0].Title)
	assert.Equal(t, "https://example.com/first", candidates[0].URL)
	assert.Equal(t, "Some bold content & more", candidates[0].Summary, "html tags and entities stripped")
	assert.Equal(t, 2006, candidates[0].Published.Year())
	assert.True(t, candidates[1].Published.IsZero(), "missing pubDate yields zero time")
}

func TestCollector_MaxItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer server.Close()

	c := NewCollector([]string{server.URL}, 2, 5*time.Second, "newsdigest-test/1.0")
	candidates, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestCollector_OneFeedFailsOthersSurvive(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testFeed))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	c := NewCollector([]string{bad.URL, good.URL}, 5, 5*time.Second, "newsdigest-test/1.0")
	candidates, err := c.Collect(context.Background())
	require.NoError(t, err, "single feed failure must not fail the collection")
	assert.Len(t, candidates, 3)
}

func TestCollector_AllFeedsFail(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer bad.Close()

	c := NewCollector([]string{bad.URL, bad.URL + "/other"}, 5, 5*time.Second, "newsdigest-test/1.0")
	candidates, err := c.Collect(context.Background())
	assert.Error(t, err)
	assert.Empty(t, candidates)
}

func TestCollector_MalformedFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("this is not xml at all {"))
	}))
	defer server.Close()

	c := NewCollector([]string{server.URL}, 5, 5*time.Second, "newsdigest-test/1.0")
	_, err := c.Collect(context.Background())
	assert.Error(t, err)
}

func TestCleanDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.example.com/feed", "example.com"},
		{"https://blockworks.co/feed", "blockworks.co"},
		{"https://wublock.substack.com/feed", "wublock.substack.com"},
		{"http://example.com", "example.com"},
		{"example.com/feed", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDomain(tt.url))
		})
	}
}

func TestCollector_CleanTextRuneSafe(t *testing.T) {
	c := NewCollector(nil, 5, time.Second, "newsdigest-test/1.0")

	// summary clamp must not split a multi-byte rune
	long := strings.Repeat("aé", 1500)
	got := c.cleanText(long)
	assert.LessOrEqual(t, len(got), 2000)
	assert.True(t, utf8.ValidString(got))
}
