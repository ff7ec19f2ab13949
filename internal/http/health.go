package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
	Books   *int64            `json:"books,omitempty"`
	Reviews *int64            `json:"reviews,omitempty"`
}

type HealthController struct {
	db      Pinger
	stats   StatsReader
	version string
}

func NewHealthController(db Pinger, stats StatsReader, version string) *HealthController {
	return &HealthController{
		db:      db,
		stats:   stats,
		version: version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := make(map[string]string)
	status := "healthy"

	// Check database connectivity
	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not configured"
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	if status == "healthy" && h.stats != nil {
		totalBooks, totalReviews, err := h.stats.Stats(ctx)
		if err != nil {
			checks["stats"] = "error: " + err.Error()
		} else {
			health.Books = &totalBooks
			health.Reviews = &totalReviews
		}
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
