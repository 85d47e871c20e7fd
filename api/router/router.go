package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"startup-validator/api/handlers"
	"startup-validator/api/middleware"
	_ "startup-validator/docs"
	"startup-validator/services"
)

// Deps carries everything the router needs; built once in main.
type Deps struct {
	Database   *mongo.Database
	Validation *services.ValidationService
	Reports    *services.ReportService
	Discovery  *services.DiscoveryService
	Comments   *services.CommentAnalysisService
}

// New assembles the gin engine with all routes and middleware.
func New(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogging())

	r.GET("/", handlers.RootHandler())

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthHandler(deps.Database))
		api.POST("/validate", handlers.ValidateIdeaHandler(deps.Validation))
		api.GET("/reports", handlers.ListReportsHandler(deps.Reports))
		api.GET("/reports/:id", handlers.GetReportHandler(deps.Reports))
		api.DELETE("/reports/:id", handlers.DeleteReportHandler(deps.Reports))
		api.POST("/discover", handlers.DiscoverHandler(deps.Discovery))
		api.POST("/comments/analyze", handlers.AnalyzeCommentsHandler(deps.Comments))
	}

	return r
}
