package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-validator/community"
	"startup-validator/errs"
)

const redditPostURL = "https://www.reddit.com/r/startups/comments/abc/my_post/"

func samplePost() community.Post {
	return community.Post{
		Platform: "reddit",
		URL:      redditPostURL,
		Title:    "I built an app that plans workouts around meetings",
		Author:   "fitfounder",
		Text:     "Looking for feedback.",
		Score:    120,
		Comments: []community.PostComment{
			{Author: "alice", Text: "Great idea!", Score: 15},
			{Author: "dave", Text: "Already exists, check Acme.", Score: 7},
		},
	}
}

func TestAnalyzeComments(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		commentAnalysisSystemInstruction: `{"summary": "Mostly positive, one competitor mention.", "validation_score": 78}`,
	}}

	svc := NewCommentAnalysisService(gen, &stubPosts{post: samplePost()})
	analysis, err := svc.Analyze(context.Background(), redditPostURL)
	require.NoError(t, err)

	assert.Equal(t, redditPostURL, analysis.PostURL)
	assert.Equal(t, "reddit", analysis.Platform)
	assert.Equal(t, "I built an app that plans workouts around meetings", analysis.Title)
	assert.Equal(t, 2, analysis.CommentCount)
	assert.Equal(t, "Mostly positive, one competitor mention.", analysis.Summary)
	assert.Equal(t, 78, analysis.ValidationScore)

	// the prompt carries the post and its comments
	require.Len(t, gen.calls, 1)
	assert.Contains(t, gen.calls[0], "Great idea!")
	assert.Contains(t, gen.calls[0], "plans workouts around meetings")
}

func TestAnalyzeCommentsClampsScore(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		commentAnalysisSystemInstruction: `{"summary": "ok", "validation_score": 300}`,
	}}

	svc := NewCommentAnalysisService(gen, &stubPosts{post: samplePost()})
	analysis, err := svc.Analyze(context.Background(), redditPostURL)
	require.NoError(t, err)
	assert.Equal(t, 100, analysis.ValidationScore)
}

func TestAnalyzeCommentsDegradesOnLLMFailure(t *testing.T) {
	svc := NewCommentAnalysisService(&stubGenerator{err: errors.New("quota exhausted")}, &stubPosts{post: samplePost()})

	analysis, err := svc.Analyze(context.Background(), redditPostURL)
	require.NoError(t, err)
	assert.Equal(t, failedCommentAnalysis, analysis.Summary)
	assert.Equal(t, 0, analysis.ValidationScore)
}

func TestAnalyzeCommentsDegradesOnGarbageReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		commentAnalysisSystemInstruction: "no JSON today",
	}}

	svc := NewCommentAnalysisService(gen, &stubPosts{post: samplePost()})
	analysis, err := svc.Analyze(context.Background(), redditPostURL)
	require.NoError(t, err)
	assert.Equal(t, failedCommentAnalysis, analysis.Summary)
	assert.Equal(t, 0, analysis.ValidationScore)
}

func TestAnalyzeCommentsUnsupportedPlatform(t *testing.T) {
	svc := NewCommentAnalysisService(&stubGenerator{}, &stubPosts{})

	_, err := svc.Analyze(context.Background(), "https://x.com/user/status/123")
	assert.ErrorIs(t, err, errs.ErrUnsupportedURL)

	_, err = svc.Analyze(context.Background(), "https://example.com/blog/post")
	assert.ErrorIs(t, err, errs.ErrUnsupportedURL)
}

func TestAnalyzeCommentsFetchFailure(t *testing.T) {
	fetchErr := errs.NewProviderError("reddit", errors.New("status 404"))
	svc := NewCommentAnalysisService(&stubGenerator{}, &stubPosts{err: fetchErr})

	_, err := svc.Analyze(context.Background(), redditPostURL)
	require.Error(t, err)

	var provider *errs.ProviderError
	assert.ErrorAs(t, err, &provider)
}

func TestCommentPromptBounds(t *testing.T) {
	post := samplePost()
	post.Comments = nil
	for i := 0; i < maxAnalyzedComments+10; i++ {
		post.Comments = append(post.Comments, community.PostComment{
			Author: "user",
			Text:   fmt.Sprintf("comment %d", i),
			Score:  i,
		})
	}

	prompt := buildCommentPrompt(post)
	assert.Equal(t, maxAnalyzedComments, strings.Count(prompt, "comment "))
}
