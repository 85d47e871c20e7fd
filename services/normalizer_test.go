package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeUsesLLMReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		normalizeSystemInstruction: `{
			"idea_name": "FitPlanner",
			"problem": "Busy professionals abandon workout routines.",
			"solution": "Calendar-aware workout planning.",
			"target_audience": "Office workers in Europe.",
			"uniqueness": "Plans adapt to meeting load.",
			"market": "Consumer fitness apps.",
			"revenue_model": "Monthly subscription.",
			"region": "Europe",
			"additional_context": "Calendar sync, adaptive plans, 10000 users expected."
		}`,
	}}

	n := NewNormalizer(gen)
	got := n.Normalize(context.Background(), sampleIdea())

	assert.Equal(t, "FitPlanner", got.IdeaName)
	assert.Equal(t, "Busy professionals abandon workout routines.", got.Problem)
	assert.Equal(t, "Europe", got.Region)
	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0], "calendar sync, adaptive plans")
}

func TestNormalizeFallsBackOnLLMError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("deadline exceeded")}

	n := NewNormalizer(gen)
	raw := sampleIdea()
	got := n.Normalize(context.Background(), raw)

	// verbatim field mapping
	assert.Equal(t, raw.IdeaName, got.IdeaName)
	assert.Equal(t, raw.Problem, got.Problem)
	assert.Equal(t, raw.Solution, got.Solution)
	assert.Equal(t, raw.Market, got.Market)
	// dropped raw fields land in additional context
	assert.Contains(t, got.AdditionalContext, raw.KeyFeatures)
	assert.Contains(t, got.AdditionalContext, raw.ExpectedUsers)
	assert.Contains(t, got.AdditionalContext, raw.ExtraNotes)
}

func TestNormalizeFallsBackOnGarbageReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		normalizeSystemInstruction: "I cannot help with that.",
	}}

	n := NewNormalizer(gen)
	got := n.Normalize(context.Background(), sampleIdea())
	assert.Equal(t, "FitPlanner", got.IdeaName)
	assert.NotEmpty(t, got.AdditionalContext)
}

func TestNormalizeNeverReturnsEmptyFields(t *testing.T) {
	gen := &stubGenerator{err: errors.New("unavailable")}
	n := NewNormalizer(gen)

	// near-empty submission still yields non-empty normalized fields
	got := n.Normalize(context.Background(), sampleIdeaSparse())

	for name, value := range map[string]string{
		"idea_name":          got.IdeaName,
		"problem":            got.Problem,
		"solution":           got.Solution,
		"target_audience":    got.TargetAudience,
		"uniqueness":         got.Uniqueness,
		"market":             got.Market,
		"revenue_model":      got.RevenueModel,
		"region":             got.Region,
		"additional_context": got.AdditionalContext,
	} {
		assert.NotEmpty(t, value, "field %s must be non-empty", name)
	}
}

func TestNormalizeBackfillsPartialReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		normalizeSystemInstruction: `{"idea_name":"FitPlanner","problem":"Skipped workouts."}`,
	}}

	n := NewNormalizer(gen)
	raw := sampleIdea()
	got := n.Normalize(context.Background(), raw)

	assert.Equal(t, "Skipped workouts.", got.Problem)
	// missing reply fields come from the raw input
	assert.Equal(t, raw.Solution, got.Solution)
	assert.Equal(t, raw.Region, got.Region)
	assert.NotEmpty(t, got.AdditionalContext)
}
