package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidationSummary is the LLM-synthesized analysis. Scores are clamped
// into [0,100] by the synthesizer; 0 is the sentinel for a failed
// synthesis.
type ValidationSummary struct {
	Overview             string              `bson:"overview" json:"overview"`
	FeasibilityScore     int                 `bson:"feasibility_score" json:"feasibility_score"`
	MarketReadinessScore int                 `bson:"market_readiness_score" json:"market_readiness_score"`
	SwotAnalysis         map[string][]string `bson:"swot_analysis" json:"swot_analysis"`
	RiskAnalysis         []string            `bson:"risk_analysis" json:"risk_analysis"`
	Recommendations      []string            `bson:"recommendations" json:"recommendations"`
	CompetitiveAdvantage string              `bson:"competitive_advantage" json:"competitive_advantage"`
	MarketSizeEstimate   string              `bson:"market_size_estimate" json:"market_size_estimate"`
}

// ValidationReport is the persisted aggregate of one validation run.
// Collection: validation_reports. Insert-only; there is no update path.
type ValidationReport struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserInput      IdeaInput          `bson:"user_input" json:"user_input"`
	ProcessedInput ProcessedInput     `bson:"processed_input" json:"processed_input"`
	WebResearch    WebResearchData    `bson:"web_research" json:"web_research"`
	FinalSummary   ValidationSummary  `bson:"final_summary" json:"final_summary"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
