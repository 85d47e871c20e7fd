package services

import (
	"context"
	"fmt"
	"strings"

	"startup-validator/llm"
	"startup-validator/logger"
	"startup-validator/models"
)

const fieldPlaceholder = "Not specified"

const normalizeSystemInstruction = `
You are an analyst preparing a startup idea for market research.
You will receive the raw fields of an idea submission form.
The response MUST be a valid JSON object with exactly these keys:
idea_name, problem, solution, target_audience, uniqueness, market,
revenue_model, region, additional_context.
Rules:
- Rewrite each field as one or two clear, research-friendly sentences.
- additional_context must combine the key features, the reason the problem
  exists, the expected user count, and any extra notes into a short paragraph.
- Never leave a field empty; write "Not specified" when the input gives
  nothing usable.
- You MUST NOT wrap the JSON output in a markdown code block.
  The response should contain ONLY the raw JSON string.
`

// Normalizer condenses a raw idea submission into the processed form used
// by research and synthesis. It never fails: when the LLM is unreachable or
// returns garbage, the raw fields are mapped over verbatim.
type Normalizer struct {
	llm llm.Generator
}

func NewNormalizer(generator llm.Generator) *Normalizer {
	return &Normalizer{llm: generator}
}

// Normalize returns a ProcessedInput with every field non-empty.
func (n *Normalizer) Normalize(ctx context.Context, raw models.IdeaInput) models.ProcessedInput {
	prompt := buildNormalizePrompt(raw)

	reply, err := n.llm.Generate(ctx, normalizeSystemInstruction, prompt)
	if err != nil {
		logger.WarnWithFields("idea normalization fell back to verbatim mapping", logger.Fields{
			"idea_name": raw.IdeaName,
			"error":     err.Error(),
		})
		return fallbackNormalize(raw)
	}

	var processed models.ProcessedInput
	if err := llm.DecodeLoose(reply, &processed); err != nil {
		logger.WarnWithFields("idea normalization reply was not decodable", logger.Fields{
			"idea_name": raw.IdeaName,
			"error":     err.Error(),
		})
		return fallbackNormalize(raw)
	}

	backfill(&processed, raw)
	return processed
}

func buildNormalizePrompt(raw models.IdeaInput) string {
	var b strings.Builder
	write := func(label, value string) {
		fmt.Fprintf(&b, "%s: %s\n", label, value)
	}
	write("Idea name", raw.IdeaName)
	write("Problem", raw.Problem)
	write("Why the problem exists", raw.WhyProblemExists)
	write("Target audience", raw.TargetAudience)
	write("Solution", raw.Solution)
	write("Key features", raw.KeyFeatures)
	write("Uniqueness", raw.Uniqueness)
	write("Market", raw.Market)
	write("Revenue model", raw.RevenueModel)
	write("Expected users", raw.ExpectedUsers)
	write("Region", raw.Region)
	if raw.ExtraNotes != "" {
		write("Extra notes", raw.ExtraNotes)
	}
	return b.String()
}

// fallbackNormalize copies raw fields into their closest processed field
// and folds the rest into additional_context.
func fallbackNormalize(raw models.IdeaInput) models.ProcessedInput {
	processed := models.ProcessedInput{
		IdeaName:          raw.IdeaName,
		Problem:           raw.Problem,
		Solution:          raw.Solution,
		TargetAudience:    raw.TargetAudience,
		Uniqueness:        raw.Uniqueness,
		Market:            raw.Market,
		RevenueModel:      raw.RevenueModel,
		Region:            raw.Region,
		AdditionalContext: combineContext(raw),
	}
	backfill(&processed, raw)
	return processed
}

func combineContext(raw models.IdeaInput) string {
	var parts []string
	if raw.KeyFeatures != "" {
		parts = append(parts, "Key features: "+raw.KeyFeatures)
	}
	if raw.WhyProblemExists != "" {
		parts = append(parts, "Why the problem exists: "+raw.WhyProblemExists)
	}
	if raw.ExpectedUsers != "" {
		parts = append(parts, "Expected users: "+raw.ExpectedUsers)
	}
	if raw.ExtraNotes != "" {
		parts = append(parts, "Extra notes: "+raw.ExtraNotes)
	}
	return strings.Join(parts, ". ")
}

// backfill guarantees the non-empty invariant on every processed field.
func backfill(p *models.ProcessedInput, raw models.IdeaInput) {
	fill := func(dst *string, fallbacks ...string) {
		if strings.TrimSpace(*dst) != "" {
			return
		}
		for _, fb := range fallbacks {
			if strings.TrimSpace(fb) != "" {
				*dst = fb
				return
			}
		}
		*dst = fieldPlaceholder
	}

	fill(&p.IdeaName, raw.IdeaName)
	fill(&p.Problem, raw.Problem)
	fill(&p.Solution, raw.Solution)
	fill(&p.TargetAudience, raw.TargetAudience)
	fill(&p.Uniqueness, raw.Uniqueness)
	fill(&p.Market, raw.Market)
	fill(&p.RevenueModel, raw.RevenueModel)
	fill(&p.Region, raw.Region)
	fill(&p.AdditionalContext, combineContext(raw))
}
