// Package source implements the ArxivSource struct and its methods for querying
// the arXiv search API and mapping its Atom entries to Paper records.
package source

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/SlyMarbo/rss"
	"github.com/samber/lo"

	"github.com/aokabi/paperSpotlight/internal/model"
)

// DefaultBaseURL is the public arXiv query endpoint. The API serves Atom 1.0,
// so the response parses with the same feed parser used for ordinary feeds.
const DefaultBaseURL = "https://export.arxiv.org/api/query"

// contextTransport injects a context into every outgoing request so that
// context cancellation and deadlines propagate through the rss library.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

type ArxivSource struct {
	BaseURL string
	// Client, when set, replaces the default HTTP client. Tests substitute
	// a client whose transport records or fakes the exchange.
	Client *http.Client
}

func NewArxivSource() ArxivSource {
	return ArxivSource{BaseURL: DefaultBaseURL}
}

// Search issues one request for at most maxResults papers matching query,
// sorted by submission date with the most recent first. The result order is
// the feed order.
func (s ArxivSource) Search(ctx context.Context, query string, maxResults int) ([]model.Paper, error) {
	params := url.Values{}
	params.Set("search_query", query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	feed, err := s.loadFeed(ctx, s.BaseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return lo.Map(feed.Items, func(item *rss.Item, _ int) model.Paper {
		return model.Paper{
			Title:     strings.TrimSpace(item.Title),
			Link:      item.Link,
			Published: item.Date,
			Summary:   itemText(item),
		}
	}), nil
}

// itemText returns the richest available text for an entry. arXiv puts the
// abstract in the summary element, but content is preferred when present.
func itemText(item *rss.Item) string {
	if c := strings.TrimSpace(item.Content); c != "" {
		return c
	}
	return strings.TrimSpace(item.Summary)
}

func (s ArxivSource) loadFeed(ctx context.Context, url string) (*rss.Feed, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	client = &http.Client{
		Transport: contextTransport{ctx: ctx, base: transportOf(client)},
		Timeout:   client.Timeout,
	}
	return rss.FetchByClient(url, client)
}

func transportOf(c *http.Client) http.RoundTripper {
	if c.Transport != nil {
		return c.Transport
	}
	return http.DefaultTransport
}
