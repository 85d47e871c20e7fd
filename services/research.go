package services

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"startup-validator/logger"
	"startup-validator/models"
	"startup-validator/scraper"
	"startup-validator/search"
)

const maxTopDomains = 5
const maxMoneyMentions = 5
const newsLimit = 10

var moneyPattern = regexp.MustCompile(`(?i)[$€£]\s?\d[\d,.]*\s*(?:billion|million|trillion|[bmk])?|\b\d[\d,.]*\s*(?:billion|million|trillion)\s*(?:dollars|usd|eur)?\b`)

// ResearchService gathers external signals for a normalized idea. Provider
// failures degrade to empty contributions; Aggregate never returns an
// error.
type ResearchService struct {
	search        search.Searcher
	news          search.NewsSearcher
	scraper       scraper.Scraper
	maxResults    int
	maxScrapeURLs int
}

func NewResearchService(searcher search.Searcher, news search.NewsSearcher, scr scraper.Scraper, maxResults, maxScrapeURLs int) *ResearchService {
	return &ResearchService{
		search:        searcher,
		news:          news,
		scraper:       scr,
		maxResults:    maxResults,
		maxScrapeURLs: maxScrapeURLs,
	}
}

// buildQueries derives the search queries in their fixed processing order:
// competitor discovery, existing solutions, market sizing.
func buildQueries(idea models.ProcessedInput) []string {
	return []string{
		fmt.Sprintf("%s competitors alternatives", idea.IdeaName),
		fmt.Sprintf("%s existing solutions", idea.Problem),
		fmt.Sprintf("%s market size %s", idea.Market, idea.Region),
	}
}

// Aggregate runs search, scrape, and news collection for the idea and
// assembles the research bundle. Competitor order follows discovery order
// across the fixed query sequence; duplicate names (case-insensitive) keep
// the first-seen record.
func (s *ResearchService) Aggregate(ctx context.Context, idea models.ProcessedInput) models.WebResearchData {
	research := models.WebResearchData{
		SerperResults:    []models.SearchResult{},
		FirecrawlResults: []models.ScrapeResult{},
		Competitors:      []models.CompetitorInfo{},
		MarketInsights:   map[string]any{},
	}

	queries := buildQueries(idea)
	for _, query := range queries {
		results, err := s.search.Search(ctx, query, s.maxResults)
		if err != nil {
			logger.WarnWithFields("search query degraded to empty results", logger.Fields{
				"query": query,
				"error": err.Error(),
			})
			continue
		}
		research.SerperResults = append(research.SerperResults, results...)
	}

	research.Competitors = extractCompetitors(research.SerperResults)
	research.FirecrawlResults = s.scrapeTopResults(ctx, research.SerperResults, queries[0])

	newsCount := s.countNewsMentions(ctx, queries[2])

	research.MarketInsights = buildMarketInsights(research, newsCount)
	return research
}

// extractCompetitors builds competitor records from search records in
// discovery order. The dedup key is the lower-cased cleaned name; distinct
// companies sharing a name will conflate, which is accepted.
func extractCompetitors(results []models.SearchResult) []models.CompetitorInfo {
	competitors := []models.CompetitorInfo{}
	seen := map[string]bool{}

	for _, r := range results {
		name := cleanCompanyName(r.Title)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		competitors = append(competitors, models.CompetitorInfo{
			Name:        name,
			URL:         r.Link,
			Description: r.Snippet,
			Founders:    "Unknown",
			Revenue:     "Unknown",
			Region:      "Unknown",
			Features:    []string{},
		})
	}
	return competitors
}

// cleanCompanyName trims a search result title down to its leading name
// segment ("Acme – the best CRM" -> "Acme").
func cleanCompanyName(title string) string {
	name := title
	for _, sep := range []string{" - ", " – ", " — ", " | ", ": "} {
		if idx := strings.Index(name, sep); idx > 0 {
			name = name[:idx]
		}
	}
	name = strings.TrimSpace(name)
	if len(name) > 80 {
		name = strings.TrimSpace(name[:80])
	}
	return name
}

// scrapeTopResults scrapes up to maxScrapeURLs links of the competitor
// query. Per-URL failures are logged and skipped.
func (s *ResearchService) scrapeTopResults(ctx context.Context, results []models.SearchResult, competitorQuery string) []models.ScrapeResult {
	scraped := []models.ScrapeResult{}
	for _, r := range results {
		if len(scraped) >= s.maxScrapeURLs {
			break
		}
		if r.Query != competitorQuery || r.Link == "" {
			continue
		}

		page, err := s.scraper.Scrape(ctx, r.Link)
		if err != nil {
			logger.WarnWithFields("scrape degraded to empty page", logger.Fields{
				"url":   r.Link,
				"error": err.Error(),
			})
			continue
		}
		scraped = append(scraped, page)
	}
	return scraped
}

func (s *ResearchService) countNewsMentions(ctx context.Context, marketQuery string) int {
	items, err := s.news.SearchNews(ctx, marketQuery, newsLimit)
	if err != nil {
		logger.WarnWithFields("news search degraded to zero mentions", logger.Fields{
			"query": marketQuery,
			"error": err.Error(),
		})
		return 0
	}
	return len(items)
}

// buildMarketInsights derives the documented insight keys from the
// collected signals.
func buildMarketInsights(research models.WebResearchData, newsMentions int) map[string]any {
	domains := []string{}
	seenDomains := map[string]bool{}
	for _, r := range research.SerperResults {
		if len(domains) >= maxTopDomains {
			break
		}
		u, err := url.Parse(r.Link)
		if err != nil || u.Host == "" {
			continue
		}
		host := strings.TrimPrefix(u.Host, "www.")
		if seenDomains[host] {
			continue
		}
		seenDomains[host] = true
		domains = append(domains, host)
	}

	money := []string{}
	seenMoney := map[string]bool{}
	for _, page := range research.FirecrawlResults {
		for _, m := range moneyPattern.FindAllString(page.Content, -1) {
			if len(money) >= maxMoneyMentions {
				break
			}
			m = strings.TrimSpace(m)
			key := strings.ToLower(m)
			if seenMoney[key] {
				continue
			}
			seenMoney[key] = true
			money = append(money, m)
		}
	}

	return map[string]any{
		"total_search_results": len(research.SerperResults),
		"scraped_pages":        len(research.FirecrawlResults),
		"news_mentions":        newsMentions,
		"competitor_count":     len(research.Competitors),
		"top_domains":          domains,
		"money_mentions":       money,
	}
}
