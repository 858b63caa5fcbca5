// Package services provides application-level services that orchestrate
// business logic and coordinate between repositories and domain entities.
package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/domain/repositories"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/interfaces"
	"github.com/pageforge/pageforge-go/internal/infrastructure/messaging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/security"
	"github.com/pageforge/pageforge-go/pkg/config"
)

var filenamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// PageService orchestrates page generation: it decodes page documents,
// renders them, persists the result, and writes the generated HTML file.
type PageService struct {
	pageRepo    repositories.PageRepository
	cache       interfaces.Cache
	broadcaster messaging.Broadcaster
	logger      *logging.ChanneledLogger
}

// NewPageService creates a new page application service
func NewPageService(pageRepo repositories.PageRepository, cache interfaces.Cache, broadcaster messaging.Broadcaster, logger *logging.ChanneledLogger) *PageService {
	return &PageService{
		pageRepo:    pageRepo,
		cache:       cache,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

// Create decodes a page document, renders it, stores it, and writes the
// generated file under the configured output directory.
func (s *PageService) Create(doc map[string]any, filename string) (*content.PageNode, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	existing, err := s.pageRepo.FindByFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check filename %s: %w", filename, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("filename %s is already in use by page %s", filename, existing.ID)
	}

	page, err := export.DecodePage(doc)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	html := page.GenerateHTML()

	node := &content.PageNode{
		ID:             security.GenerateULID(),
		Title:          page.Title,
		NodeType:       "Page",
		Filename:       filename,
		SourceDocument: doc,
		RenderedHTML:   html,
		Created:        time.Now().UTC(),
	}

	if err := s.pageRepo.Store(node); err != nil {
		return nil, fmt.Errorf("failed to store page: %w", err)
	}

	if err := s.writeGeneratedFile(filename, html); err != nil {
		return nil, err
	}

	s.logger.Content().Info("Page created", "pageId", node.ID, "filename", filename, "renderDuration", time.Since(start))
	s.broadcaster.BroadcastPageUpdated(node.ID, filename)
	return node, nil
}

// Update replaces a page's source document, re-renders it, and rewrites the
// generated file. A changed filename removes the old file.
func (s *PageService) Update(id string, doc map[string]any, filename string) (*content.PageNode, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	node, err := s.requirePage(id)
	if err != nil {
		return nil, err
	}

	if filename != node.Filename {
		existing, err := s.pageRepo.FindByFilename(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to check filename %s: %w", filename, err)
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("filename %s is already in use by page %s", filename, existing.ID)
		}
	}

	page, err := export.DecodePage(doc)
	if err != nil {
		return nil, err
	}
	html := page.GenerateHTML()

	oldFilename := node.Filename
	node.Title = page.Title
	node.Filename = filename
	node.SourceDocument = doc
	node.RenderedHTML = html

	if err := s.pageRepo.Update(node); err != nil {
		return nil, fmt.Errorf("failed to update page %s: %w", id, err)
	}

	if oldFilename != filename {
		s.removeGeneratedFile(oldFilename)
	}
	if err := s.writeGeneratedFile(filename, html); err != nil {
		return nil, err
	}

	s.logger.Content().Info("Page updated", "pageId", id, "filename", filename)
	s.broadcaster.BroadcastPageUpdated(id, filename)
	return node, nil
}

// GetByID returns a stored page (cache-first)
func (s *PageService) GetByID(id string) (*content.PageNode, error) {
	if id == "" {
		return nil, fmt.Errorf("page ID cannot be empty")
	}
	page, err := s.pageRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", id, err)
	}
	return page, nil
}

// GetByFilename returns a stored page by its generated filename
func (s *PageService) GetByFilename(filename string) (*content.PageNode, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename cannot be empty")
	}
	page, err := s.pageRepo.FindByFilename(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to get page by filename %s: %w", filename, err)
	}
	return page, nil
}

// GetAll returns all stored pages (cache-first with bulk loading)
func (s *PageService) GetAll() ([]*content.PageNode, error) {
	pages, err := s.pageRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all pages: %w", err)
	}
	return pages, nil
}

// GetHTML returns a page's rendered output, re-rendering from the source
// document when the render cache has expired.
func (s *PageService) GetHTML(id string) (string, error) {
	if html, found := s.cache.GetHTML(id); found {
		return html, nil
	}

	node, err := s.requirePage(id)
	if err != nil {
		return "", err
	}

	page, err := export.DecodePage(node.SourceDocument)
	if err != nil {
		// The stored rendering still serves stale-but-valid output.
		s.logger.Render().Error("Stored document failed to decode, serving stored HTML", "pageId", id, "error", err)
		return node.RenderedHTML, nil
	}

	html := page.GenerateHTML()
	s.cache.SetHTML(id, html)
	return html, nil
}

// Delete removes a stored page, its render cache entry, and its generated file
func (s *PageService) Delete(id string) error {
	node, err := s.requirePage(id)
	if err != nil {
		return err
	}

	if err := s.pageRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete page %s: %w", id, err)
	}

	s.removeGeneratedFile(node.Filename)
	s.logger.Content().Info("Page deleted", "pageId", id, "filename", node.Filename)
	s.broadcaster.BroadcastPageDeleted(id)
	return nil
}

func (s *PageService) requirePage(id string) (*content.PageNode, error) {
	if id == "" {
		return nil, fmt.Errorf("page ID cannot be empty")
	}
	node, err := s.pageRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get page %s: %w", id, err)
	}
	if node == nil {
		return nil, fmt.Errorf("page %s not found", id)
	}
	return node, nil
}

func (s *PageService) writeGeneratedFile(filename, html string) error {
	if err := os.MkdirAll(config.GeneratedPagesDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(config.GeneratedPagesDir, ensureHTMLExtension(filename))
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write generated file: %w", err)
	}
	return nil
}

func (s *PageService) removeGeneratedFile(filename string) {
	path := filepath.Join(config.GeneratedPagesDir, ensureHTMLExtension(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Content().Warn("Failed to remove generated file", "path", path, "error", err)
	}
}

func ensureHTMLExtension(filename string) string {
	if strings.HasSuffix(filename, ".html") {
		return filename
	}
	return filename + ".html"
}

func validateFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if !filenamePattern.MatchString(filename) {
		return fmt.Errorf("filename %q contains invalid characters", filename)
	}
	return nil
}
