// Package fetch holds shared helpers for the pipeline's outgoing HTTP
// requests. Some publishers reject requests that look like obvious bots,
// so both fetch paths present regular browser headers.
package fetch

import "net/http"

// accept values for the two fetch contexts of a run
const (
	acceptFeed = "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5"
	acceptPage = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// FeedHeaders prepares a request for fetching an RSS/Atom feed.
func FeedHeaders(req *http.Request) {
	setCommon(req)
	req.Header.Set("Accept", acceptFeed)
}

// PageHeaders prepares a request for fetching an article page.
func PageHeaders(req *http.Request) {
	setCommon(req)
	req.Header.Set("Accept", acceptPage)
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

func setCommon(req *http.Request) {
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")
}
