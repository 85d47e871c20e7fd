package dto

import "startup-validator/community"

// XCommunity is one suggested X (Twitter) community.
type XCommunity struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// XAccount is one suggested X account to reach out to.
type XAccount struct {
	Handle      string `json:"handle"`
	Description string `json:"description,omitempty"`
}

// DiscoverResult is the response payload of the discovery pipeline. None
// of its parts are persisted.
type DiscoverResult struct {
	Idea         string                `json:"idea"`
	StoryPost    string                `json:"story_post"`
	Keywords     []string              `json:"keywords"`
	Communities  []community.Subreddit `json:"communities"`
	XCommunities []XCommunity          `json:"x_communities"`
	XAccounts    []XAccount            `json:"x_accounts"`
}
