package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/services"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// UploadAssetRequest defines the body for asset uploads
type UploadAssetRequest struct {
	Data           string `json:"data" binding:"required"`
	AltDescription string `json:"altDescription"`
}

// AssetHandlers contains all asset-related HTTP handlers
type AssetHandlers struct {
	assetService *services.AssetService
	logger       *logging.ChanneledLogger
}

// NewAssetHandlers creates asset handlers with injected dependencies
func NewAssetHandlers(assetService *services.AssetService, logger *logging.ChanneledLogger) *AssetHandlers {
	return &AssetHandlers{
		assetService: assetService,
		logger:       logger,
	}
}

// PostAsset uploads a base64 image and generates its size variants
func (h *AssetHandlers) PostAsset(c *gin.Context) {
	start := time.Now()

	var req UploadAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	asset, err := h.assetService.Upload(req.Data, req.AltDescription)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.logger.Media().Info("Upload asset request completed", "assetId", asset.ID, "duration", time.Since(start))
	c.JSON(http.StatusCreated, asset)
}

// GetAllAssets returns all stored assets
func (h *AssetHandlers) GetAllAssets(c *gin.Context) {
	assets, err := h.assetService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assets": assets,
		"count":  len(assets),
	})
}

// GetAssetByID returns a specific asset by ID
func (h *AssetHandlers) GetAssetByID(c *gin.Context) {
	id := c.Param("id")

	asset, err := h.assetService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset removes an asset record and its files
func (h *AssetHandlers) DeleteAsset(c *gin.Context) {
	id := c.Param("id")

	if err := h.assetService.Delete(id); err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
