package models

// SearchResult is one raw record returned by the web-search provider,
// tagged with the query that produced it.
type SearchResult struct {
	Query    string `bson:"query" json:"query"`
	Title    string `bson:"title" json:"title"`
	Link     string `bson:"link" json:"link"`
	Snippet  string `bson:"snippet" json:"snippet"`
	Position int    `bson:"position" json:"position"`
}

// ScrapeResult is one raw record returned by the scrape provider. Source
// names the backing scraper ("firecrawl" or "chromedp").
type ScrapeResult struct {
	URL     string `bson:"url" json:"url"`
	Title   string `bson:"title" json:"title"`
	Content string `bson:"content" json:"content"`
	Source  string `bson:"source" json:"source"`
}

// CompetitorInfo is one discovered competitor, extracted from search and
// scrape records. Name is the dedup key (case-insensitive); records are
// never mutated after creation.
type CompetitorInfo struct {
	Name        string   `bson:"name" json:"name"`
	URL         string   `bson:"url,omitempty" json:"url,omitempty"`
	Description string   `bson:"description" json:"description"`
	Founders    string   `bson:"founders" json:"founders"`
	Revenue     string   `bson:"revenue" json:"revenue"`
	Region      string   `bson:"region" json:"region"`
	Features    []string `bson:"features" json:"features"`
}

// WebResearchData aggregates all external signals for one validation run.
type WebResearchData struct {
	SerperResults    []SearchResult   `bson:"serper_results" json:"serper_results"`
	FirecrawlResults []ScrapeResult   `bson:"firecrawl_results" json:"firecrawl_results"`
	Competitors      []CompetitorInfo `bson:"competitors" json:"competitors"`
	MarketInsights   map[string]any   `bson:"market_insights" json:"market_insights"`
}
