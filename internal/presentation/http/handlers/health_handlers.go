package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/interfaces"
)

// HealthHandlers serves the service health endpoint
type HealthHandlers struct {
	db    *sql.DB
	cache interfaces.Cache
}

// NewHealthHandlers creates health handlers with injected dependencies
func NewHealthHandlers(db *sql.DB, cache interfaces.Cache) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache}
}

// GetHealth reports database reachability and cache occupancy
func (h *HealthHandlers) GetHealth(c *gin.Context) {
	overall := "healthy"
	dbStatus := "ok"
	status := http.StatusOK
	if err := h.db.Ping(); err != nil {
		overall = "degraded"
		dbStatus = err.Error()
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   overall,
		"database": dbStatus,
		"cache":    h.cache.Stats(),
	})
}
