package services

import (
	"context"
	"strings"

	"startup-validator/community"
	"startup-validator/dto"
	"startup-validator/llm"
	"startup-validator/logger"
)

const maxCommunities = 10
const subredditsPerKeyword = 5

const storySystemInstruction = `
You are writing a short Reddit-style post in a storytelling format.
Write a short, human-sounding story in FIRST PERSON that explains why
someone would care about or create the idea you are given.
Style:
- Sounds like a real person, not a robot.
- Normal, simple English.
- Short and sweet: 120-200 words.
- No emojis.
- Storytelling format (past experience, problem, what changed, what they
  are doing now).
- Do NOT mention that you are an AI or that this is an idea. Write it like
  a personal story.
Output only the story text. No title, no bullet points, no commentary.
`

const keywordsSystemInstruction = `
You are helping someone find relevant online communities for their idea.
Return 5-8 short search keywords that would be good for finding relevant
communities.
Rules:
- Output ONLY the keywords, separated by commas.
- No extra text, no explanations, no quotes.
- Example format: learning, productivity, self improvement, coding
`

const xTargetsSystemInstruction = `
You are an expert on X (Twitter) communities and tech/startup ecosystems.
Suggest X communities and accounts relevant to the idea you are given.
The response MUST be a valid JSON object with exactly two keys:
1. communities: a list of objects with keys name, description, link.
2. accounts: a list of objects with keys handle, description.
You MUST NOT wrap the JSON output in a markdown code block.
The response should contain ONLY the raw JSON string.
`

const failedStoryPost = "AI analysis failed due to an API error."

var fallbackKeywords = []string{"startup", "business", "technology"}

// DiscoveryService turns a free-text idea into a storytelling post plus
// community-discovery results. Nothing is persisted and Discover never
// returns an error: every stage degrades to a placeholder or empty value.
type DiscoveryService struct {
	llm    llm.Generator
	reddit community.Searcher
}

func NewDiscoveryService(generator llm.Generator, reddit community.Searcher) *DiscoveryService {
	return &DiscoveryService{llm: generator, reddit: reddit}
}

// Discover runs the full discovery flow for one idea.
func (s *DiscoveryService) Discover(ctx context.Context, idea string) dto.DiscoverResult {
	result := dto.DiscoverResult{
		Idea:         idea,
		Keywords:     []string{},
		Communities:  []community.Subreddit{},
		XCommunities: []dto.XCommunity{},
		XAccounts:    []dto.XAccount{},
	}
	if strings.TrimSpace(idea) == "" {
		return result
	}

	result.StoryPost = s.storyPost(ctx, idea)
	result.Keywords = s.keywords(ctx, idea)
	result.Communities = s.subreddits(ctx, result.Keywords)
	result.XCommunities, result.XAccounts = s.xTargets(ctx, idea)
	return result
}

func (s *DiscoveryService) storyPost(ctx context.Context, idea string) string {
	reply, err := s.llm.Generate(ctx, storySystemInstruction, idea)
	if err != nil {
		logger.Log.Warnf("story generation failed: %v", err)
		return failedStoryPost
	}
	return strings.TrimSpace(reply)
}

// keywords asks the LLM for a comma-separated keyword list and
// deduplicates it case-insensitively, preserving order.
func (s *DiscoveryService) keywords(ctx context.Context, idea string) []string {
	reply, err := s.llm.Generate(ctx, keywordsSystemInstruction, idea)
	if err != nil {
		logger.Log.Warnf("keyword generation failed: %v", err)
		return fallbackKeywords
	}

	parts := strings.Split(strings.ReplaceAll(reply, "\n", " "), ",")
	seen := map[string]bool{}
	var keywords []string
	for _, part := range parts {
		kw := strings.TrimSpace(part)
		if kw == "" {
			continue
		}
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, kw)
	}

	if len(keywords) == 0 {
		return fallbackKeywords
	}
	return keywords
}

// subreddits searches per keyword in order and keeps the first ten
// distinct communities (case-insensitive name dedup).
func (s *DiscoveryService) subreddits(ctx context.Context, keywords []string) []community.Subreddit {
	found := []community.Subreddit{}
	seen := map[string]bool{}

	for _, keyword := range keywords {
		if len(found) >= maxCommunities {
			break
		}

		subs, err := s.reddit.SearchSubreddits(ctx, keyword, subredditsPerKeyword)
		if err != nil {
			logger.Log.Warnf("subreddit search failed for %q: %v", keyword, err)
			continue
		}
		for _, sub := range subs {
			key := strings.ToLower(sub.Name)
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, sub)
			if len(found) >= maxCommunities {
				break
			}
		}
	}
	return found
}

// xTargets asks the LLM for structured community/account suggestions,
// parsed defensively. Any failure yields empty lists.
func (s *DiscoveryService) xTargets(ctx context.Context, idea string) ([]dto.XCommunity, []dto.XAccount) {
	reply, err := s.llm.Generate(ctx, xTargetsSystemInstruction, idea)
	if err != nil {
		logger.Log.Warnf("x target generation failed: %v", err)
		return []dto.XCommunity{}, []dto.XAccount{}
	}

	var parsed struct {
		Communities []dto.XCommunity `json:"communities"`
		Accounts    []dto.XAccount   `json:"accounts"`
	}
	if err := llm.DecodeLoose(reply, &parsed); err != nil {
		logger.Log.Warnf("x target reply was not decodable: %v", err)
		return []dto.XCommunity{}, []dto.XAccount{}
	}

	if parsed.Communities == nil {
		parsed.Communities = []dto.XCommunity{}
	}
	if parsed.Accounts == nil {
		parsed.Accounts = []dto.XAccount{}
	}
	return parsed.Communities, parsed.Accounts
}
