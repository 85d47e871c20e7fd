package services

import (
	"context"
	"fmt"
	"strings"

	"startup-validator/community"
	"startup-validator/dto"
	"startup-validator/errs"
	"startup-validator/llm"
	"startup-validator/logger"
)

const maxAnalyzedComments = 30
const maxAnalyzedCommentChars = 300

const commentAnalysisSystemInstruction = `
You are analyzing the public reaction to a social media post about a
product or startup idea.
You will receive the post and its comments.
The response MUST be a valid JSON object with exactly these keys:
1. summary: a short summary of what the commenters think (text).
2. validation_score: an integer from 1 to 100 expressing how positively
   the comments validate the idea.
You MUST NOT wrap the JSON output in a markdown code block.
The response should contain ONLY the raw JSON string.
`

const failedCommentAnalysis = "AI analysis failed due to an API error."

// CommentAnalysisService fetches a post's comment thread and has the LLM
// condense it into a summary plus a validation score. Nothing is persisted.
type CommentAnalysisService struct {
	llm   llm.Generator
	posts community.PostFetcher
}

func NewCommentAnalysisService(generator llm.Generator, posts community.PostFetcher) *CommentAnalysisService {
	return &CommentAnalysisService{llm: generator, posts: posts}
}

// Analyze fetches the post behind postURL and returns the comment
// analysis. Unsupported platforms yield ErrUnsupportedURL and fetch
// failures a ProviderError; once the post is in hand the analysis itself
// degrades to a placeholder with a 0 score instead of failing.
func (s *CommentAnalysisService) Analyze(ctx context.Context, postURL string) (dto.CommentAnalysis, error) {
	var out dto.CommentAnalysis

	switch {
	case community.IsRedditURL(postURL):
	case community.IsXURL(postURL):
		// X post fetching needs authenticated API access, which this
		// service does not carry.
		return out, errs.ErrUnsupportedURL
	default:
		return out, errs.ErrUnsupportedURL
	}

	post, err := s.posts.FetchPost(ctx, postURL)
	if err != nil {
		return out, err
	}

	summary, score := s.analyzePost(ctx, post)
	return dto.CommentAnalysis{
		PostURL:         postURL,
		Platform:        post.Platform,
		Title:           post.Title,
		CommentCount:    len(post.Comments),
		Summary:         summary,
		ValidationScore: score,
	}, nil
}

func (s *CommentAnalysisService) analyzePost(ctx context.Context, post community.Post) (string, int) {
	reply, err := s.llm.Generate(ctx, commentAnalysisSystemInstruction, buildCommentPrompt(post))
	if err != nil {
		logger.WarnWithFields("comment analysis fell back to placeholder", logger.Fields{
			"post_url": post.URL,
			"error":    err.Error(),
		})
		return failedCommentAnalysis, 0
	}

	var parsed struct {
		Summary         string `json:"summary"`
		ValidationScore int    `json:"validation_score"`
	}
	if err := llm.DecodeLoose(reply, &parsed); err != nil {
		logger.WarnWithFields("comment analysis reply was not decodable", logger.Fields{
			"post_url": post.URL,
			"error":    err.Error(),
		})
		return failedCommentAnalysis, 0
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		parsed.Summary = failedCommentAnalysis
	}
	return parsed.Summary, clampScore(parsed.ValidationScore)
}

func buildCommentPrompt(post community.Post) string {
	var b strings.Builder
	fmt.Fprintf(&b, "POST (%s)\nTitle: %s\nAuthor: %s\nScore: %d\n", post.Platform, post.Title, post.Author, post.Score)
	if post.Text != "" {
		fmt.Fprintf(&b, "Body: %s\n", truncate(post.Text, maxDigestPageChars))
	}

	b.WriteString("\nCOMMENTS\n")
	for i, c := range post.Comments {
		if i >= maxAnalyzedComments {
			break
		}
		fmt.Fprintf(&b, "- (%d points) %s\n", c.Score, truncate(c.Text, maxAnalyzedCommentChars))
	}
	return b.String()
}
