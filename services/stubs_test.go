package services

import (
	"context"
	"errors"

	"startup-validator/community"
	"startup-validator/models"
	"startup-validator/search"
)

// stubGenerator returns canned replies per system instruction, so one stub
// can serve flows issuing several different LLM calls.
type stubGenerator struct {
	replies map[string]string
	err     error
	calls   []string
}

func (s *stubGenerator) Generate(ctx context.Context, systemInstruction, prompt string) (string, error) {
	s.calls = append(s.calls, prompt)
	if s.err != nil {
		return "", s.err
	}
	if reply, ok := s.replies[systemInstruction]; ok {
		return reply, nil
	}
	return "", errors.New("no stubbed reply")
}

type stubSearcher struct {
	results map[string][]models.SearchResult
	err     error
}

func (s *stubSearcher) Search(ctx context.Context, query string, maxResults int) ([]models.SearchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.results[query], nil
}

type stubNews struct {
	items []search.NewsItem
	err   error
}

func (s *stubNews) SearchNews(ctx context.Context, query string, limit int) ([]search.NewsItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type stubScraper struct {
	pages map[string]models.ScrapeResult
	err   error
}

func (s *stubScraper) Scrape(ctx context.Context, pageURL string) (models.ScrapeResult, error) {
	if s.err != nil {
		return models.ScrapeResult{}, s.err
	}
	page, ok := s.pages[pageURL]
	if !ok {
		return models.ScrapeResult{}, errors.New("no stubbed page")
	}
	return page, nil
}

type stubReddit struct {
	byKeyword map[string][]community.Subreddit
	err       error
}

func (s *stubReddit) SearchSubreddits(ctx context.Context, keyword string, limit int) ([]community.Subreddit, error) {
	if s.err != nil {
		return nil, s.err
	}
	subs := s.byKeyword[keyword]
	if limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	return subs, nil
}

type stubPosts struct {
	post community.Post
	err  error
}

func (s *stubPosts) FetchPost(ctx context.Context, postURL string) (community.Post, error) {
	if s.err != nil {
		return community.Post{}, s.err
	}
	return s.post, nil
}

func sampleIdeaSparse() models.IdeaInput {
	return models.IdeaInput{IdeaName: "FitPlanner"}
}

func sampleIdea() models.IdeaInput {
	return models.IdeaInput{
		IdeaName:         "FitPlanner",
		Problem:          "busy people skip workouts",
		WhyProblemExists: "generic plans ignore schedules",
		TargetAudience:   "office workers",
		Solution:         "an app that plans workouts around calendars",
		KeyFeatures:      "calendar sync, adaptive plans",
		Uniqueness:       "plans adapt to meetings",
		Market:           "fitness apps",
		RevenueModel:     "subscription",
		ExpectedUsers:    "10000 in year one",
		Region:           "Europe",
		ExtraNotes:       "mobile first",
	}
}
