package community

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"startup-validator/errs"
)

const maxPostComments = 50

// PostComment is one comment under a fetched post.
type PostComment struct {
	Author string `json:"author"`
	Text   string `json:"text"`
	Score  int    `json:"score"`
}

// Post is a fetched post with its comment thread.
type Post struct {
	Platform    string        `json:"platform"`
	URL         string        `json:"url"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	Text        string        `json:"text"`
	Score       int           `json:"score"`
	NumComments int           `json:"num_comments"`
	Comments    []PostComment `json:"comments"`
}

// PostFetcher retrieves a post and its comments from a public post URL.
type PostFetcher interface {
	FetchPost(ctx context.Context, postURL string) (Post, error)
}

var _ PostFetcher = (*RedditClient)(nil)

// IsRedditURL reports whether u points at a Reddit post.
func IsRedditURL(u string) bool {
	lower := strings.ToLower(u)
	return strings.Contains(lower, "reddit.com") || strings.Contains(lower, "redd.it")
}

// IsXURL reports whether u points at an X (Twitter) post.
func IsXURL(u string) bool {
	lower := strings.ToLower(u)
	return strings.Contains(lower, "twitter.com") || strings.Contains(lower, "x.com")
}

type redditThing struct {
	Kind string `json:"kind"`
	Data struct {
		Title       string `json:"title"`
		Author      string `json:"author"`
		SelfText    string `json:"selftext"`
		Body        string `json:"body"`
		Score       int    `json:"score"`
		NumComments int    `json:"num_comments"`
	} `json:"data"`
}

type redditThread struct {
	Data struct {
		Children []redditThing `json:"children"`
	} `json:"data"`
}

// FetchPost retrieves a Reddit post and its comment thread through the
// public JSON endpoint (post URL + ".json"). Deleted and empty comments
// are skipped; at most 50 comments are kept.
func (c *RedditClient) FetchPost(ctx context.Context, postURL string) (Post, error) {
	var post Post

	jsonURL := postJSONURL(postURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, jsonURL, nil)
	if err != nil {
		return post, errs.NewProviderError("reddit", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return post, errs.NewProviderError("reddit", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return post, errs.NewProviderError("reddit", fmt.Errorf("status %d for post %s", resp.StatusCode, postURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return post, errs.NewProviderError("reddit", err)
	}

	// The endpoint returns a two-element array: the post listing and the
	// comment listing.
	var listings []redditThread
	if err := json.Unmarshal(body, &listings); err != nil {
		return post, errs.NewProviderError("reddit", err)
	}
	if len(listings) < 1 || len(listings[0].Data.Children) < 1 {
		return post, errs.NewProviderError("reddit", fmt.Errorf("no post data at %s", postURL))
	}

	head := listings[0].Data.Children[0].Data
	post = Post{
		Platform:    "reddit",
		URL:         postURL,
		Title:       head.Title,
		Author:      head.Author,
		Text:        head.SelfText,
		Score:       head.Score,
		NumComments: head.NumComments,
		Comments:    []PostComment{},
	}

	if len(listings) < 2 {
		return post, nil
	}
	for _, child := range listings[1].Data.Children {
		if len(post.Comments) >= maxPostComments {
			break
		}
		if child.Kind != "t1" {
			continue
		}
		text := strings.TrimSpace(child.Data.Body)
		if text == "" || text == "[deleted]" || text == "[removed]" {
			continue
		}
		post.Comments = append(post.Comments, PostComment{
			Author: child.Data.Author,
			Text:   text,
			Score:  child.Data.Score,
		})
	}
	return post, nil
}

// postJSONURL maps a post permalink onto its JSON endpoint.
func postJSONURL(postURL string) string {
	u := postURL
	if idx := strings.IndexAny(u, "?#"); idx >= 0 {
		u = u[:idx]
	}
	u = strings.TrimRight(u, "/")
	return u + ".json"
}
