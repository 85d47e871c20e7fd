package community

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

	"startup-validator/errs"
)

const redditSearchURL = "https://www.reddit.com/subreddits/search.json"
const redditUserAgent = "IdeaValidatorBot/0.1"

const maxDescriptionLen = 180

// Subreddit is one community returned by the search endpoint.
type Subreddit struct {
	Name        string `json:"name"`
	Members     int    `json:"members"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Searcher finds communities matching a keyword.
type Searcher interface {
	SearchSubreddits(ctx context.Context, keyword string, limit int) ([]Subreddit, error)
}

// RedditClient calls Reddit's public subreddit search endpoint.
type RedditClient struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

var _ Searcher = (*RedditClient)(nil)

// NewRedditClient builds a Reddit client with a bounded call timeout.
func NewRedditClient(timeout time.Duration) *RedditClient {
	return &RedditClient{
		baseURL:   redditSearchURL,
		userAgent: redditUserAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data struct {
				DisplayNamePrefixed string `json:"display_name_prefixed"`
				Subscribers         int    `json:"subscribers"`
				PublicDescription   string `json:"public_description"`
				Title               string `json:"title"`
				URL                 string `json:"url"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// SearchSubreddits returns up to limit subreddits matching keyword.
func (c *RedditClient) SearchSubreddits(ctx context.Context, keyword string, limit int) ([]Subreddit, error) {
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("include_over_18", "on")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errs.NewProviderError("reddit", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.NewProviderError("reddit", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewProviderError("reddit", fmt.Errorf("status %d for keyword %q", resp.StatusCode, keyword))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewProviderError("reddit", err)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, errs.NewProviderError("reddit", err)
	}

	var results []Subreddit
	for _, child := range listing.Data.Children {
		data := child.Data
		if data.DisplayNamePrefixed == "" {
			continue
		}

		description := data.PublicDescription
		if description == "" {
			description = data.Title
		}
		description = strings.TrimSpace(strings.ReplaceAll(description, "\n", " "))
		if runes := []rune(description); len(runes) > maxDescriptionLen {
			description = string(runes[:maxDescriptionLen-3]) + "..."
		}

		link := "https://www.reddit.com" + data.URL
		if data.URL == "" {
			link = "https://www.reddit.com/" + data.DisplayNamePrefixed + "/"
		}

		results = append(results, Subreddit{
			Name:        data.DisplayNamePrefixed,
			Members:     data.Subscribers,
			Description: description,
			Link:        link,
		})
	}
	return results, nil
}
