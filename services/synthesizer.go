package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"startup-validator/llm"
	"startup-validator/logger"
	"startup-validator/models"
)

const maxDigestCompetitors = 8
const maxDigestDescription = 280
const maxDigestPages = 2
const maxDigestPageChars = 1500

const synthesizeSystemInstruction = `
You are a startup analyst producing a structured validation report.
The response MUST be a valid JSON object with exactly these keys:
1. overview: an executive summary of the idea's viability (text).
2. feasibility_score: an integer from 1 to 100.
3. market_readiness_score: an integer from 1 to 100.
4. swot_analysis: an object with the keys "strengths", "weaknesses",
   "opportunities", "threats", each a list of strings.
5. risk_analysis: a list of identified risks (strings).
6. recommendations: a list of concrete action items (strings).
7. competitive_advantage: how the idea can stand out (text).
8. market_size_estimate: a TAM/SAM/SOM style estimate (text).
You MUST NOT wrap the JSON output in a markdown code block.
The response should contain ONLY the raw JSON string.
`

const failedSynthesisOverview = "Automated analysis was unavailable for this run; " +
	"the collected research is attached but no scored summary could be generated."

// Synthesizer produces the final validation summary from the idea and its
// research bundle via one LLM call. It degrades to a sentinel summary and
// never returns an error.
type Synthesizer struct {
	llm llm.Generator
}

func NewSynthesizer(generator llm.Generator) *Synthesizer {
	return &Synthesizer{llm: generator}
}

// Synthesize returns the analysis summary. Scores are clamped into
// [0,100]; unusable LLM output yields the sentinel summary with 0 scores.
func (s *Synthesizer) Synthesize(ctx context.Context, idea models.ProcessedInput, research models.WebResearchData) models.ValidationSummary {
	prompt := buildSynthesisPrompt(idea, research)

	reply, err := s.llm.Generate(ctx, synthesizeSystemInstruction, prompt)
	if err != nil {
		logger.WarnWithFields("synthesis fell back to sentinel summary", logger.Fields{
			"idea_name": idea.IdeaName,
			"error":     err.Error(),
		})
		return fallbackSummary()
	}

	var summary models.ValidationSummary
	if err := llm.DecodeLoose(reply, &summary); err != nil {
		logger.WarnWithFields("synthesis reply was not decodable", logger.Fields{
			"idea_name": idea.IdeaName,
			"error":     err.Error(),
		})
		return fallbackSummary()
	}

	summary.FeasibilityScore = clampScore(summary.FeasibilityScore)
	summary.MarketReadinessScore = clampScore(summary.MarketReadinessScore)
	if summary.SwotAnalysis == nil {
		summary.SwotAnalysis = emptySwot()
	}
	if summary.RiskAnalysis == nil {
		summary.RiskAnalysis = []string{}
	}
	if summary.Recommendations == nil {
		summary.Recommendations = []string{}
	}
	return summary
}

// buildSynthesisPrompt embeds the idea plus a bounded digest of the
// research so the prompt stays inside provider size limits.
func buildSynthesisPrompt(idea models.ProcessedInput, research models.WebResearchData) string {
	var b strings.Builder

	b.WriteString("STARTUP IDEA\n")
	fmt.Fprintf(&b, "Name: %s\n", idea.IdeaName)
	fmt.Fprintf(&b, "Problem: %s\n", idea.Problem)
	fmt.Fprintf(&b, "Solution: %s\n", idea.Solution)
	fmt.Fprintf(&b, "Target audience: %s\n", idea.TargetAudience)
	fmt.Fprintf(&b, "Uniqueness: %s\n", idea.Uniqueness)
	fmt.Fprintf(&b, "Market: %s\n", idea.Market)
	fmt.Fprintf(&b, "Revenue model: %s\n", idea.RevenueModel)
	fmt.Fprintf(&b, "Region: %s\n", idea.Region)
	fmt.Fprintf(&b, "Additional context: %s\n", idea.AdditionalContext)

	b.WriteString("\nDISCOVERED COMPETITORS\n")
	for i, c := range research.Competitors {
		if i >= maxDigestCompetitors {
			break
		}
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, truncate(c.Description, maxDigestDescription))
	}

	if insights, err := json.Marshal(research.MarketInsights); err == nil {
		b.WriteString("\nMARKET SIGNALS\n")
		b.Write(insights)
		b.WriteString("\n")
	}

	for i, page := range research.FirecrawlResults {
		if i >= maxDigestPages {
			break
		}
		fmt.Fprintf(&b, "\nSCRAPED PAGE (%s)\n%s\n", page.URL, truncate(page.Content, maxDigestPageChars))
	}

	return b.String()
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func emptySwot() map[string][]string {
	return map[string][]string{
		"strengths":     {},
		"weaknesses":    {},
		"opportunities": {},
		"threats":       {},
	}
}

func fallbackSummary() models.ValidationSummary {
	return models.ValidationSummary{
		Overview:             failedSynthesisOverview,
		FeasibilityScore:     0,
		MarketReadinessScore: 0,
		SwotAnalysis:         emptySwot(),
		RiskAnalysis:         []string{},
		Recommendations:      []string{},
		CompetitiveAdvantage: "Unavailable",
		MarketSizeEstimate:   "Unavailable",
	}
}
