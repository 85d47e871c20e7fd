package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup-validator/community"
)

func TestDiscoverFullFlow(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		storySystemInstruction:    "  Last year I kept skipping workouts.  ",
		keywordsSystemInstruction: "fitness, productivity, Fitness, habit building",
		xTargetsSystemInstruction: `{
			"communities": [{"name": "Build in Public", "link": "https://x.com/i/communities/1"}],
			"accounts": [{"handle": "@fitfounder", "description": "writes about fitness apps"}]
		}`,
	}}
	reddit := &stubReddit{byKeyword: map[string][]community.Subreddit{
		"fitness":        {{Name: "r/fitness", Members: 1000}},
		"productivity":   {{Name: "r/productivity"}, {Name: "R/FITNESS"}},
		"habit building": {{Name: "r/habits"}},
	}}

	svc := NewDiscoveryService(gen, reddit)
	result := svc.Discover(context.Background(), "an app that plans workouts around calendars")

	assert.Equal(t, "an app that plans workouts around calendars", result.Idea)
	assert.Equal(t, "Last year I kept skipping workouts.", result.StoryPost)
	// keyword dedup is case-insensitive and keeps first spelling
	assert.Equal(t, []string{"fitness", "productivity", "habit building"}, result.Keywords)

	names := make([]string, 0, len(result.Communities))
	for _, sub := range result.Communities {
		names = append(names, sub.Name)
	}
	// "R/FITNESS" conflates with the already seen "r/fitness"
	assert.Equal(t, []string{"r/fitness", "r/productivity", "r/habits"}, names)

	require.Len(t, result.XCommunities, 1)
	assert.Equal(t, "Build in Public", result.XCommunities[0].Name)
	require.Len(t, result.XAccounts, 1)
	assert.Equal(t, "@fitfounder", result.XAccounts[0].Handle)
}

func TestDiscoverCapsCommunitiesAtTen(t *testing.T) {
	byKeyword := map[string][]community.Subreddit{}
	for _, kw := range []string{"a", "b", "c"} {
		subs := make([]community.Subreddit, 0, 5)
		for i := 0; i < 5; i++ {
			subs = append(subs, community.Subreddit{Name: fmt.Sprintf("r/%s%d", kw, i)})
		}
		byKeyword[kw] = subs
	}

	gen := &stubGenerator{replies: map[string]string{
		storySystemInstruction:    "story",
		keywordsSystemInstruction: "a, b, c",
		xTargetsSystemInstruction: `{"communities": [], "accounts": []}`,
	}}

	svc := NewDiscoveryService(gen, &stubReddit{byKeyword: byKeyword})
	result := svc.Discover(context.Background(), "idea")

	assert.Len(t, result.Communities, maxCommunities)
	// first two keywords fill the cap; third is never reached
	assert.Equal(t, "r/a0", result.Communities[0].Name)
	assert.Equal(t, "r/b4", result.Communities[9].Name)
}

func TestDiscoverDegradesWhenLLMFails(t *testing.T) {
	svc := NewDiscoveryService(&stubGenerator{err: errors.New("quota exhausted")}, &stubReddit{})
	result := svc.Discover(context.Background(), "idea")

	assert.Equal(t, failedStoryPost, result.StoryPost)
	assert.Equal(t, fallbackKeywords, result.Keywords)
	assert.Empty(t, result.XCommunities)
	assert.Empty(t, result.XAccounts)
	assert.NotNil(t, result.Communities)
}

func TestDiscoverFallbackKeywordsOnEmptyReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		storySystemInstruction:    "story",
		keywordsSystemInstruction: " , ,\n",
		xTargetsSystemInstruction: `{"communities": [], "accounts": []}`,
	}}

	svc := NewDiscoveryService(gen, &stubReddit{})
	result := svc.Discover(context.Background(), "idea")

	assert.Equal(t, fallbackKeywords, result.Keywords)
}

func TestDiscoverXTargetsGarbageReply(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		storySystemInstruction:    "story",
		keywordsSystemInstruction: "fitness",
		xTargetsSystemInstruction: "no JSON to be found here",
	}}

	svc := NewDiscoveryService(gen, &stubReddit{})
	result := svc.Discover(context.Background(), "idea")

	assert.Equal(t, []string{"fitness"}, result.Keywords)
	assert.Empty(t, result.XCommunities)
	assert.Empty(t, result.XAccounts)
}

func TestDiscoverSubredditSearchFailureIsNonFatal(t *testing.T) {
	gen := &stubGenerator{replies: map[string]string{
		storySystemInstruction:    "story",
		keywordsSystemInstruction: "fitness",
		xTargetsSystemInstruction: `{"communities": [], "accounts": []}`,
	}}

	svc := NewDiscoveryService(gen, &stubReddit{err: errors.New("rate limited")})
	result := svc.Discover(context.Background(), "idea")

	assert.Empty(t, result.Communities)
	assert.Equal(t, "story", result.StoryPost)
}

func TestDiscoverBlankIdea(t *testing.T) {
	gen := &stubGenerator{}
	svc := NewDiscoveryService(gen, &stubReddit{})
	result := svc.Discover(context.Background(), "   ")

	assert.Empty(t, result.StoryPost)
	assert.Empty(t, result.Keywords)
	assert.Empty(t, result.Communities)
	assert.Empty(t, gen.calls)
}
