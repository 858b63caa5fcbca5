package services

import (
	"fmt"

	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/domain/pages"
	"github.com/pageforge/pageforge-go/internal/domain/repositories"
)

// ExportService turns stored pages back into portable JSON documents and
// imports documents produced elsewhere.
type ExportService struct {
	pageRepo repositories.PageRepository
}

// NewExportService creates a new export application service
func NewExportService(pageRepo repositories.PageRepository) *ExportService {
	return &ExportService{pageRepo: pageRepo}
}

// ExportPage returns the stored source document of a page as JSON. A negative
// indent produces compact output.
func (s *ExportService) ExportPage(id string, indent int) (string, error) {
	if id == "" {
		return "", fmt.Errorf("page ID cannot be empty")
	}

	node, err := s.pageRepo.FindByID(id)
	if err != nil {
		return "", fmt.Errorf("failed to get page %s: %w", id, err)
	}
	if node == nil {
		return "", fmt.Errorf("page %s not found", id)
	}

	// Decode and re-encode so the output is always the canonical document
	// shape, even for pages imported with legacy keys.
	page, err := export.DecodePage(node.SourceDocument)
	if err != nil {
		return "", fmt.Errorf("stored document for page %s is invalid: %w", id, err)
	}

	return export.ToJSON(page, indent)
}

// ImportPage parses a JSON page document and returns the live page.
func (s *ExportService) ImportPage(data string) (*pages.Page, error) {
	decoded, err := export.FromJSON(data)
	if err != nil {
		return nil, err
	}

	page, ok := decoded.(*pages.Page)
	if !ok {
		return nil, fmt.Errorf("document is not a page")
	}
	return page, nil
}
