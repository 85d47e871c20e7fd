package dto

import "startup-validator/models"

// ValidateResponse is the envelope returned by POST /api/validate.
type ValidateResponse struct {
	Success  bool                     `json:"success"`
	Message  string                   `json:"message"`
	ReportID string                   `json:"report_id"`
	Data     *models.ValidationReport `json:"data"`
}

// ReportListResponse is the envelope returned by GET /api/reports.
type ReportListResponse struct {
	Success bool                      `json:"success"`
	Data    []models.ValidationReport `json:"data"`
	Total   int64                     `json:"total"`
	Limit   int64                     `json:"limit"`
	Skip    int64                     `json:"skip"`
}

// ReportResponse is the envelope returned by GET /api/reports/{id}.
type ReportResponse struct {
	Success bool                     `json:"success"`
	Data    *models.ValidationReport `json:"data"`
}

// MessageResponse is the generic success/message envelope.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the generic failure envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// DiscoverResponse is the envelope returned by POST /api/discover.
type DiscoverResponse struct {
	Success bool           `json:"success"`
	Data    DiscoverResult `json:"data"`
}

// CommentAnalysis is the result of analyzing one post's comment thread.
type CommentAnalysis struct {
	PostURL         string `json:"post_url"`
	Platform        string `json:"platform"`
	Title           string `json:"title"`
	CommentCount    int    `json:"comment_count"`
	Summary         string `json:"summary"`
	ValidationScore int    `json:"validation_score"`
}

// CommentAnalysisResponse is the envelope returned by POST /api/comments/analyze.
type CommentAnalysisResponse struct {
	Success bool            `json:"success"`
	Data    CommentAnalysis `json:"data"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string `json:"status"`
	API       string `json:"api"`
	Database  string `json:"database"`
	Error     string `json:"error,omitempty"`
	Timestamp string `json:"timestamp"`
}
