package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"startup-validator/models"
)

func TestSynthesizeDecodesFencedReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		synthesizeSystemInstruction: "```json\n" + `{
			"overview": "Promising niche",
			"feasibility_score": 72,
			"market_readiness_score": 64,
			"swot_analysis": {"strengths": ["adaptive plans"], "weaknesses": [], "opportunities": [], "threats": []},
			"risk_analysis": ["crowded market"],
			"recommendations": ["launch a pilot"],
			"competitive_advantage": "calendar integration",
			"market_size_estimate": "SAM around $1B"
		}` + "\n```",
	}}

	svc := NewSynthesizer(gen)
	summary := svc.Synthesize(context.Background(), testProcessedInput(), models.WebResearchData{})

	assert.Equal(t, "Promising niche", summary.Overview)
	assert.Equal(t, 72, summary.FeasibilityScore)
	assert.Equal(t, 64, summary.MarketReadinessScore)
	assert.Equal(t, []string{"adaptive plans"}, summary.SwotAnalysis["strengths"])
	assert.Equal(t, []string{"crowded market"}, summary.RiskAnalysis)
	assert.Equal(t, "calendar integration", summary.CompetitiveAdvantage)
}

func TestSynthesizeClampsScores(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		synthesizeSystemInstruction: `{
			"overview": "ok",
			"feasibility_score": 180,
			"market_readiness_score": -20
		}`,
	}}

	svc := NewSynthesizer(gen)
	summary := svc.Synthesize(context.Background(), testProcessedInput(), models.WebResearchData{})

	assert.Equal(t, 100, summary.FeasibilityScore)
	assert.Equal(t, 0, summary.MarketReadinessScore)
	// absent collections are normalized to empty, not nil
	assert.NotNil(t, summary.SwotAnalysis)
	assert.NotNil(t, summary.RiskAnalysis)
	assert.NotNil(t, summary.Recommendations)
}

func TestSynthesizeFallsBackOnLLMError(t *testing.T) {
	svc := NewSynthesizer(&stubGenerator{err: errors.New("quota exhausted")})
	summary := svc.Synthesize(context.Background(), testProcessedInput(), models.WebResearchData{})

	assert.Equal(t, failedSynthesisOverview, summary.Overview)
	assert.Equal(t, 0, summary.FeasibilityScore)
	assert.Equal(t, 0, summary.MarketReadinessScore)
	assert.Equal(t, emptySwot(), summary.SwotAnalysis)
	assert.Equal(t, "Unavailable", summary.CompetitiveAdvantage)
	assert.Equal(t, "Unavailable", summary.MarketSizeEstimate)
}

func TestSynthesizeFallsBackOnGarbageReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		synthesizeSystemInstruction: "I could not produce an analysis today.",
	}}

	svc := NewSynthesizer(gen)
	summary := svc.Synthesize(context.Background(), testProcessedInput(), models.WebResearchData{})

	assert.Equal(t, failedSynthesisOverview, summary.Overview)
	assert.Equal(t, 0, summary.FeasibilityScore)
	assert.Empty(t, summary.RiskAnalysis)
}

func TestSynthesisPromptDigestBounds(t *testing.T) {
	research := models.WebResearchData{
		MarketInsights: map[string]any{"total_search_results": 3},
	}
	for i := 0; i < maxDigestCompetitors+4; i++ {
		research.Competitors = append(research.Competitors, models.CompetitorInfo{
			Name:        "Competitor",
			Description: "desc",
		})
	}
	long := make([]byte, maxDigestPageChars*2)
	for i := range long {
		long[i] = 'x'
	}
	for i := 0; i < maxDigestPages+2; i++ {
		research.FirecrawlResults = append(research.FirecrawlResults, models.ScrapeResult{
			URL:     "https://example.com",
			Content: string(long),
		})
	}

	prompt := buildSynthesisPrompt(testProcessedInput(), research)

	assert.Equal(t, maxDigestCompetitors, strings.Count(prompt, "- Competitor:"))
	assert.Equal(t, maxDigestPages, strings.Count(prompt, "SCRAPED PAGE"))
	assert.Contains(t, prompt, "total_search_results")
	assert.Contains(t, prompt, "Name: FitPlanner")
}
