package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"startup-validator/errs"
	"startup-validator/models"
)

const serperURL = "https://google.serper.dev/search"

// Searcher is the web-search contract the research pipeline depends on.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error)
}

// SerperClient calls the Serper search API.
type SerperClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ Searcher = (*SerperClient)(nil)

// NewSerperClient builds a Serper client with a bounded call timeout.
func NewSerperClient(apiKey string, timeout time.Duration) *SerperClient {
	return &SerperClient{
		apiKey:  apiKey,
		baseURL: serperURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type serperRequest struct {
	Query string `json:"q"`
	Num   int    `json:"num,omitempty"`
}

type serperResponse struct {
	Organic []struct {
		Title    string `json:"title"`
		Link     string `json:"link"`
		Snippet  string `json:"snippet"`
		Position int    `json:"position"`
	} `json:"organic"`
}

// Search runs one query and returns up to maxResults organic records.
func (c *SerperClient) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	payload, err := json.Marshal(serperRequest{Query: query, Num: maxResults})
	if err != nil {
		return nil, errs.NewProviderError("serper", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.NewProviderError("serper", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.NewProviderError("serper", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewProviderError("serper", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.NewProviderError("serper", fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var parsed serperResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errs.NewProviderError("serper", err)
	}

	results := make([]models.SearchResult, 0, len(parsed.Organic))
	for _, r := range parsed.Organic {
		if maxResults > 0 && len(results) >= maxResults {
			break
		}
		results = append(results, models.SearchResult{
			Query:    query,
			Title:    r.Title,
			Link:     r.Link,
			Snippet:  r.Snippet,
			Position: r.Position,
		})
	}
	return results, nil
}
