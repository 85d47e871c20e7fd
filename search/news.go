package search

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"

	"startup-validator/errs"
)

const googleNewsRSS = "https://news.google.com/rss/search"

// NewsItem is one headline from the news feed.
type NewsItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// NewsSearcher supplies recent news headlines for a query.
type NewsSearcher interface {
	SearchNews(ctx context.Context, query string, limit int) ([]NewsItem, error)
}

// NewsClient reads Google News search RSS feeds.
type NewsClient struct {
	baseURL string
	parser  *gofeed.Parser
}

var _ NewsSearcher = (*NewsClient)(nil)

// NewNewsClient builds a news client with a bounded call timeout.
func NewNewsClient(timeout time.Duration) *NewsClient {
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: timeout}
	return &NewsClient{baseURL: googleNewsRSS, parser: fp}
}

// SearchNews fetches the feed for query and returns up to limit items.
func (c *NewsClient) SearchNews(ctx context.Context, query string, limit int) ([]NewsItem, error) {
	feedURL := c.baseURL + "?hl=en-US&gl=US&ceid=US:en&q=" + url.QueryEscape(query)

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, errs.NewProviderError("google-news", err)
	}

	var items []NewsItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}
		items = append(items, NewsItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
		})
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
