package controller

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yourscinema-backend/internal/service"
	"yourscinema-backend/utilities"
)

// Services bundles what the routes need.
type Services struct {
	Tokens     *utilities.TokenManager
	Assessment service.AssessmentService
	Catalog    service.CatalogService
	History    service.HistoryService
	Report     service.ReportService
	Health     *HealthController
	// Location reads calendar dates in history queries; nil means UTC.
	Location *time.Location
}

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine, s Services) {
	// Auth routes.
	authCtrl := NewAuthController(s.Tokens)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/guest", authCtrl.Guest)
	}

	// Catalog routes.
	assessmentCtrl := NewAssessmentController(s.Assessment)
	catalogCtrl := NewCatalogController(s.Catalog)
	r.GET("/questions", assessmentCtrl.GetQuestions)
	r.GET("/moods", catalogCtrl.GetMoods)
	r.GET("/movies", catalogCtrl.GetMovies)
	r.GET("/movies/:id", catalogCtrl.GetMovie)

	// Assessment routes.
	assessRoutes := r.Group("/assessments")
	{
		assessRoutes.POST("/start", assessmentCtrl.StartAssessment)
		assessRoutes.GET("/:session_id", assessmentCtrl.GetAssessment)
		assessRoutes.POST("/:session_id/answers", assessmentCtrl.SubmitAnswer)
		assessRoutes.POST("/:session_id/restart", assessmentCtrl.RestartAssessment)
		assessRoutes.POST("/:session_id/watched", assessmentCtrl.MarkWatched)
		assessRoutes.DELETE("/:session_id", assessmentCtrl.EndAssessment)
	}

	// History routes.
	historyCtrl := NewHistoryController(s.History, s.Report, s.Location)
	historyRoutes := r.Group("/history")
	{
		historyRoutes.GET("/moods", historyCtrl.GetMoodHistory)
		historyRoutes.GET("/summary", historyCtrl.GetMoodSummary)
		historyRoutes.GET("/watched", historyCtrl.GetWatched)
		historyRoutes.GET("/report", historyCtrl.DownloadReport)
	}

	health := s.Health
	if health == nil {
		health = NewHealthController(nil, "")
	}
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
