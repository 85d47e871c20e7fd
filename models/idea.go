package models

// IdeaInput is the raw user submission from the frontend form. Every field
// except extra_notes must be present; there is no validation beyond
// presence. Immutable once received; embedded verbatim into the persisted
// report.
type IdeaInput struct {
	IdeaName         string `bson:"idea_name" json:"idea_name" binding:"required"`
	Problem          string `bson:"problem" json:"problem" binding:"required"`
	WhyProblemExists string `bson:"why_problem_exists" json:"why_problem_exists" binding:"required"`
	TargetAudience   string `bson:"target_audience" json:"target_audience" binding:"required"`
	Solution         string `bson:"solution" json:"solution" binding:"required"`
	KeyFeatures      string `bson:"key_features" json:"key_features" binding:"required"`
	Uniqueness       string `bson:"uniqueness" json:"uniqueness" binding:"required"`
	Market           string `bson:"market" json:"market" binding:"required"`
	RevenueModel     string `bson:"revenue_model" json:"revenue_model" binding:"required"`
	ExpectedUsers    string `bson:"expected_users" json:"expected_users" binding:"required"`
	Region           string `bson:"region" json:"region" binding:"required"`
	ExtraNotes       string `bson:"extra_notes,omitempty" json:"extra_notes,omitempty"`
}

// ProcessedInput is the normalized idea used for research and synthesis.
// Raw fields not captured by a dedicated field are folded into
// AdditionalContext. Every field is non-empty after normalization.
type ProcessedInput struct {
	IdeaName          string `bson:"idea_name" json:"idea_name"`
	Problem           string `bson:"problem" json:"problem"`
	Solution          string `bson:"solution" json:"solution"`
	TargetAudience    string `bson:"target_audience" json:"target_audience"`
	Uniqueness        string `bson:"uniqueness" json:"uniqueness"`
	Market            string `bson:"market" json:"market"`
	RevenueModel      string `bson:"revenue_model" json:"revenue_model"`
	Region            string `bson:"region" json:"region"`
	AdditionalContext string `bson:"additional_context" json:"additional_context"`
}
