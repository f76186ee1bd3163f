package handler

import (
	"net/http"
	"time"

	"github.com/ayodiya/hux-assessment-backend/internal/constants"
	"github.com/ayodiya/hux-assessment-backend/pkg/database"
	"github.com/ayodiya/hux-assessment-backend/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db        *gorm.DB
	redis     *redis.Client
	startedAt time.Time
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient, startedAt: time.Now()}
}

// Check reports liveness of the process and its backing stores. A failing
// database turns the whole report unhealthy; the cache is optional and only
// ever degrades the report.
func (h *HealthHandler) Check(c *gin.Context) {
	status := http.StatusOK
	report := gin.H{
		constants.ResponseFieldStatus: "healthy",
		"service":                     constants.AppName,
		"uptime":                      time.Since(h.startedAt).Round(time.Second).String(),
		"timestamp":                   time.Now().UTC().Format(time.RFC3339),
	}

	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		status = http.StatusServiceUnavailable
		report[constants.ResponseFieldStatus] = "unhealthy"
		report["database"] = "unreachable"
	} else {
		report["database"] = "ok"
	}

	if h.redis.IsEnabled() {
		if err := h.redis.Ping(c.Request.Context()); err != nil {
			report["cache"] = "unreachable"
		} else {
			report["cache"] = "ok"
		}
	} else {
		report["cache"] = "disabled"
	}

	c.JSON(status, report)
}
