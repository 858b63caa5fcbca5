package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/application/services"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// RenderRequest defines the body for ad-hoc document rendering
type RenderRequest struct {
	Document map[string]any `json:"document" binding:"required"`
}

// RenderHandlers contains the preview rendering HTTP handlers
type RenderHandlers struct {
	renderService *services.RenderService
	logger        *logging.ChanneledLogger
}

// NewRenderHandlers creates render handlers with injected dependencies
func NewRenderHandlers(renderService *services.RenderService, logger *logging.ChanneledLogger) *RenderHandlers {
	return &RenderHandlers{
		renderService: renderService,
		logger:        logger,
	}
}

// PostRender renders an element or page document without persisting it
func (h *RenderHandlers) PostRender(c *gin.Context) {
	start := time.Now()

	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	html, err := h.renderService.RenderDocument(req.Document)
	if err != nil {
		var derr *export.DeserializationError
		if errors.As(err, &derr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": derr.Error(), "key": derr.Key})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.logger.Render().Debug("Preview render completed", "duration", time.Since(start), "bytes", len(html))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
