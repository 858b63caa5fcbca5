package services

import (
	"fmt"

	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/domain/elements"
	"github.com/pageforge/pageforge-go/internal/domain/pages"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// RenderService renders documents to HTML without persisting them. It backs
// the preview endpoint.
type RenderService struct {
	logger *logging.ChanneledLogger
}

// NewRenderService creates a new render application service
func NewRenderService(logger *logging.ChanneledLogger) *RenderService {
	return &RenderService{logger: logger}
}

// RenderDocument decodes an element or page document and returns its HTML.
func (s *RenderService) RenderDocument(doc map[string]any) (string, error) {
	decoded, err := export.Decode(doc)
	if err != nil {
		return "", err
	}

	switch v := decoded.(type) {
	case *elements.Element:
		return v.Render(), nil
	case *pages.Page:
		return v.GenerateHTML(), nil
	default:
		return "", fmt.Errorf("unexpected decoded type %T", decoded)
	}
}

// RenderJSON decodes a JSON document and returns its HTML.
func (s *RenderService) RenderJSON(data string) (string, error) {
	decoded, err := export.FromJSON(data)
	if err != nil {
		return "", err
	}

	switch v := decoded.(type) {
	case *elements.Element:
		return v.Render(), nil
	case *pages.Page:
		return v.GenerateHTML(), nil
	default:
		return "", fmt.Errorf("unexpected decoded type %T", decoded)
	}
}
