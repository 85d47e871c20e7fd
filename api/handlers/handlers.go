package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"startup-validator/db"
	"startup-validator/dto"
	"startup-validator/errs"
	"startup-validator/models"
	"startup-validator/services"
)

// ValidateIdeaHandler godoc
// @Summary      Validate a startup idea
// @Description  Runs the full validation pipeline and persists the report
// @Tags         reports
// @Accept       json
// @Param        input  body  models.IdeaInput  true  "Idea form fields"
// @Produce      json
// @Success      200  {object}  dto.ValidateResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/validate [post]
func ValidateIdeaHandler(svc *services.ValidationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.IdeaInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		report, id, err := svc.Validate(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Validation failed: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.ValidateResponse{
			Success:  true,
			Message:  "Validation completed successfully",
			ReportID: id,
			Data:     report,
		})
	}
}

// ListReportsHandler godoc
// @Summary      List validation reports
// @Description  Reports sorted by creation time descending
// @Tags         reports
// @Param        limit  query  int  false  "Max reports to return (default 10)"
// @Param        skip   query  int  false  "Reports to skip"
// @Produce      json
// @Success      200  {object}  dto.ReportListResponse
// @Router       /api/reports [get]
func ListReportsHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
		skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)

		items, total, err := svc.List(c.Request.Context(), limit, skip)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch reports: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.ReportListResponse{
			Success: true,
			Data:    items,
			Total:   total,
			Limit:   limit,
			Skip:    skip,
		})
	}
}

// GetReportHandler godoc
// @Summary      Get one validation report
// @Tags         reports
// @Param        id  path  string  true  "Report id"
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [get]
func GetReportHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errs.IsNotFound(err) {
				c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Report not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to fetch report: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Data: report})
	}
}

// DeleteReportHandler godoc
// @Summary      Delete a validation report
// @Tags         reports
// @Param        id  path  string  true  "Report id"
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id} [delete]
func DeleteReportHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errs.IsNotFound(err) {
				c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Report not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to delete report: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Report deleted successfully"})
	}
}

// DiscoverRequest is the POST /api/discover body.
type DiscoverRequest struct {
	Idea string `json:"idea" binding:"required"`
}

// DiscoverHandler godoc
// @Summary      Discover communities for an idea
// @Description  Generates a storytelling post, keywords, and community suggestions
// @Tags         discover
// @Accept       json
// @Param        input  body  handlers.DiscoverRequest  true  "Free-text idea"
// @Produce      json
// @Success      200  {object}  dto.DiscoverResponse
// @Router       /api/discover [post]
func DiscoverHandler(svc *services.DiscoveryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DiscoverRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		result := svc.Discover(c.Request.Context(), req.Idea)
		c.JSON(http.StatusOK, dto.DiscoverResponse{Success: true, Data: result})
	}
}

// AnalyzeCommentsRequest is the POST /api/comments/analyze body.
type AnalyzeCommentsRequest struct {
	PostURL string `json:"post_url" binding:"required"`
}

// AnalyzeCommentsHandler godoc
// @Summary      Analyze the comments of a post
// @Description  Fetches a Reddit post's comment thread and scores the reaction
// @Tags         discover
// @Accept       json
// @Param        input  body  handlers.AnalyzeCommentsRequest  true  "Public post URL"
// @Produce      json
// @Success      200  {object}  dto.CommentAnalysisResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/comments/analyze [post]
func AnalyzeCommentsHandler(svc *services.CommentAnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnalyzeCommentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
			return
		}

		analysis, err := svc.Analyze(c.Request.Context(), req.PostURL)
		if err != nil {
			if errors.Is(err, errs.ErrUnsupportedURL) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not detect a supported platform from URL"})
				return
			}
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Failed to fetch post: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.CommentAnalysisResponse{Success: true, Data: analysis})
	}
}

// HealthHandler godoc
// @Summary      API and storage liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /api/health [get]
func HealthHandler(database *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := contextWithTimeout(c, 3*time.Second)
		defer cancel()

		now := time.Now().UTC().Format(time.RFC3339)
		if err := db.Ping(ctx, database); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
				Status:    "unhealthy",
				API:       "running",
				Database:  "disconnected",
				Error:     err.Error(),
				Timestamp: now,
			})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:    "healthy",
			API:       "running",
			Database:  "connected",
			Timestamp: now,
		})
	}
}

func contextWithTimeout(c *gin.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), d)
}

// RootHandler reports basic API info, mirroring the index endpoint of the
// public API.
func RootHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Startup Idea Validator API",
			"version": "1.0.0",
			"status":  "running",
			"endpoints": gin.H{
				"validate": "POST /api/validate",
				"reports":  "GET /api/reports",
				"discover": "POST /api/discover",
				"health":   "GET /api/health",
			},
		})
	}
}
