package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yourscinema-backend/internal/assessment"
	"yourscinema-backend/internal/service"
	"yourscinema-backend/utilities"
)

type AssessmentController struct {
	AssessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// GetQuestions handles GET /questions
func (ac *AssessmentController) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": ac.AssessmentService.Questions()})
}

// StartAssessment handles POST /assessments/start
func (ac *AssessmentController) StartAssessment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := ac.AssessmentService.StartAssessment(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetAssessment handles GET /assessments/:session_id
func (ac *AssessmentController) GetAssessment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := ac.AssessmentService.GetAssessment(userID, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitAnswer handles POST /assessments/:session_id/answers
func (ac *AssessmentController) SubmitAnswer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req struct {
		Mood string `json:"mood" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing required fields"})
		return
	}
	view, err := ac.AssessmentService.SubmitAnswer(userID, c.Param("session_id"), req.Mood)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RestartAssessment handles POST /assessments/:session_id/restart
func (ac *AssessmentController) RestartAssessment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	view, err := ac.AssessmentService.RestartAssessment(userID, c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// MarkWatched handles POST /assessments/:session_id/watched
func (ac *AssessmentController) MarkWatched(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req struct {
		MovieID string `json:"movie_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing required fields"})
		return
	}
	ev, err := ac.AssessmentService.MarkWatched(userID, c.Param("session_id"), req.MovieID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, ev)
}

// EndAssessment handles DELETE /assessments/:session_id
func (ac *AssessmentController) EndAssessment(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := ac.AssessmentService.EndAssessment(userID, c.Param("session_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func requireUser(c *gin.Context) (string, bool) {
	userID, _, ok := utilities.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return userID, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
	case errors.Is(err, assessment.ErrOutOfSequence):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, assessment.ErrInvalidMood):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, assessment.ErrNotRecommended):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
