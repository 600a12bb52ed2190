package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"yourscinema-backend/internal/model"
	"yourscinema-backend/internal/repository"
	"yourscinema-backend/internal/service"
	"yourscinema-backend/utilities"
)

const defaultHistoryLimit = 20

type HistoryController struct {
	HistoryService service.HistoryService
	ReportService  service.ReportService
	Location       *time.Location
}

func NewHistoryController(historyService service.HistoryService, reportService service.ReportService, loc *time.Location) *HistoryController {
	if loc == nil {
		loc = time.UTC
	}
	return &HistoryController{HistoryService: historyService, ReportService: reportService, Location: loc}
}

// GetMoodHistory handles GET /history/moods?limit=&mood=&since=&until=
// Dates are RFC 3339 or YYYY-MM-DD; bare dates start at midnight in the
// configured time zone.
func (hc *HistoryController) GetMoodHistory(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	filter := repository.MoodFilter{UserID: userID, Limit: defaultHistoryLimit, Moods: c.QueryArray("mood")}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		filter.Limit = n
	}
	var err error
	if filter.Since, err = parseDate(c.Query("since"), hc.Location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid since date"})
		return
	}
	if filter.Until, err = parseDate(c.Query("until"), hc.Location); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid until date"})
		return
	}

	history, err := hc.HistoryService.FindMoodHistory(filter)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	if history == nil {
		history = []model.MoodAssessment{}
	}
	c.JSON(http.StatusOK, gin.H{"moods": history})
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.DateOnly, raw, loc)
}

// GetMoodSummary handles GET /history/summary
func (hc *HistoryController) GetMoodSummary(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	summary, err := hc.HistoryService.GetMoodSummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetWatched handles GET /history/watched
func (hc *HistoryController) GetWatched(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	watched, err := hc.HistoryService.GetWatched(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watched movies"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"movies": watched})
}

// DownloadReport handles GET /history/report
func (hc *HistoryController) DownloadReport(c *gin.Context) {
	userID, name, ok := utilities.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	pdf, err := hc.ReportService.GenerateMoodReport(userID, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=mood_report.pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
