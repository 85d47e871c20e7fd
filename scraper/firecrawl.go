package scraper

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

const firecrawlURL = "https://api.firecrawl.dev/v1/scrape"

// Scraper fetches one page and returns its extracted text content.
type Scraper interface {
	Scrape(ctx context.Context, pageURL string) (models.ScrapeResult, error)
}

// FirecrawlClient calls the Firecrawl scrape API.
type FirecrawlClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

var _ Scraper = (*FirecrawlClient)(nil)

// NewFirecrawlClient builds a Firecrawl client with a bounded call timeout.
func NewFirecrawlClient(apiKey string, timeout time.Duration) *FirecrawlClient {
	return &FirecrawlClient{
		apiKey:  apiKey,
		baseURL: firecrawlURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type firecrawlRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
}

type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Markdown string `json:"markdown"`
		Metadata struct {
			Title string `json:"title"`
		} `json:"metadata"`
	} `json:"data"`
}

// Scrape fetches pageURL through Firecrawl and returns its markdown text.
func (c *FirecrawlClient) Scrape(ctx context.Context, pageURL string) (models.ScrapeResult, error) {
	var out models.ScrapeResult

	payload, err := json.Marshal(firecrawlRequest{URL: pageURL, Formats: []string{"markdown"}})
	if err != nil {
		return out, errs.NewProviderError("firecrawl", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return out, errs.NewProviderError("firecrawl", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return out, errs.NewProviderError("firecrawl", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, errs.NewProviderError("firecrawl", err)
	}
	if resp.StatusCode != http.StatusOK {
		return out, errs.NewProviderError("firecrawl", fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var parsed firecrawlResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return out, errs.NewProviderError("firecrawl", err)
	}
	if !parsed.Success {
		return out, errs.NewProviderError("firecrawl", fmt.Errorf("scrape rejected for %s", pageURL))
	}

	out = models.ScrapeResult{
		URL:     pageURL,
		Title:   parsed.Data.Metadata.Title,
		Content: parsed.Data.Markdown,
		Source:  "firecrawl",
	}
	return out, nil
}
