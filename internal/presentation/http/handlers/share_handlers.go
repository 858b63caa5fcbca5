package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/services"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// ShareRequest defines the body for sharing a page by email
type ShareRequest struct {
	Recipient  string `json:"recipient" binding:"required"`
	SenderNote string `json:"senderNote"`
}

// ShareHandlers contains the page sharing HTTP handlers
type ShareHandlers struct {
	shareService *services.ShareService
	logger       *logging.ChanneledLogger
}

// NewShareHandlers creates share handlers with injected dependencies
func NewShareHandlers(shareService *services.ShareService, logger *logging.ChanneledLogger) *ShareHandlers {
	return &ShareHandlers{
		shareService: shareService,
		logger:       logger,
	}
}

// PostShare emails a page link to a recipient
func (h *ShareHandlers) PostShare(c *gin.Context) {
	pageID := c.Param("id")
	start := time.Now()

	var req ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	share, err := h.shareService.SharePage(pageID, req.Recipient, req.SenderNote)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case strings.Contains(err.Error(), "not found"):
			status = http.StatusNotFound
		case strings.Contains(err.Error(), "disabled"), strings.Contains(err.Error(), "not configured"):
			status = http.StatusServiceUnavailable
		case strings.Contains(err.Error(), "invalid recipient"):
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.logger.Email().Info("Share page request completed", "pageId", pageID, "duration", time.Since(start))
	c.JSON(http.StatusOK, share)
}

// GetShares returns the share history of a page
func (h *ShareHandlers) GetShares(c *gin.Context) {
	pageID := c.Param("id")

	shares, err := h.shareService.ListShares(pageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shares": shares,
		"count":  len(shares),
	})
}
