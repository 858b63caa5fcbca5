package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/services"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// PageRequest defines the body for creating or updating a page
type PageRequest struct {
	Filename string         `json:"filename" binding:"required"`
	Document map[string]any `json:"document" binding:"required"`
}

// PageHandlers contains all page-related HTTP handlers
type PageHandlers struct {
	pageService   *services.PageService
	exportService *services.ExportService
	logger        *logging.ChanneledLogger
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(pageService *services.PageService, exportService *services.ExportService, logger *logging.ChanneledLogger) *PageHandlers {
	return &PageHandlers{
		pageService:   pageService,
		exportService: exportService,
		logger:        logger,
	}
}

// GetAllPages returns all stored pages
func (h *PageHandlers) GetAllPages(c *gin.Context) {
	start := time.Now()
	h.logger.Content().Debug("Received get all pages request", "method", c.Request.Method, "path", c.Request.URL.Path)

	pages, err := h.pageService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Get all pages request completed", "count", len(pages), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{
		"pages": pages,
		"count": len(pages),
	})
}

// GetPageByID returns a specific page by ID
func (h *PageHandlers) GetPageByID(c *gin.Context) {
	id := c.Param("id")

	page, err := h.pageService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetPageHTML returns the rendered HTML of a page
func (h *PageHandlers) GetPageHTML(c *gin.Context) {
	id := c.Param("id")
	start := time.Now()

	html, err := h.pageService.GetHTML(id)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.logger.Render().Debug("Page HTML served", "pageId", id, "duration", time.Since(start))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// GetPageExport returns the page's source document as JSON
func (h *PageHandlers) GetPageExport(c *gin.Context) {
	id := c.Param("id")

	indent := 2
	if raw := c.Query("indent"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "indent must be an integer"})
			return
		}
		indent = parsed
	}

	doc, err := h.exportService.ExportPage(id, indent)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// CreatePage generates and stores a new page from a document
func (h *PageHandlers) CreatePage(c *gin.Context) {
	start := time.Now()

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	page, err := h.pageService.Create(req.Document, req.Filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Create page request completed", "pageId", page.ID, "duration", time.Since(start))
	c.JSON(http.StatusCreated, page)
}

// UpdatePage re-generates a stored page from a new document
func (h *PageHandlers) UpdatePage(c *gin.Context) {
	id := c.Param("id")
	start := time.Now()

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	page, err := h.pageService.Update(id, req.Document, req.Filename)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	h.logger.Content().Info("Update page request completed", "pageId", id, "duration", time.Since(start))
	c.JSON(http.StatusOK, page)
}

// DeletePage removes a stored page and its generated file
func (h *PageHandlers) DeletePage(c *gin.Context) {
	id := c.Param("id")

	if err := h.pageService.Delete(id); err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id})
}
