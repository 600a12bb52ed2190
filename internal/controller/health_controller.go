package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB      *gorm.DB
	Started time.Time
	Version string
}

func NewHealthController(db *gorm.DB, version string) *HealthController {
	return &HealthController{DB: db, Started: time.Now(), Version: version}
}

// Health handles GET /health and pings the database when one is configured.
func (hc *HealthController) Health(c *gin.Context) {
	status := gin.H{
		"status":  "ok",
		"version": hc.Version,
		"uptime":  time.Since(hc.Started).Round(time.Second).String(),
	}
	if hc.DB != nil {
		sqlDB, err := hc.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	c.JSON(http.StatusOK, status)
}
