package services

import (
	"testing"

	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/domain/elements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderService(t *testing.T) *RenderService {
	t.Helper()
	return NewRenderService(quietLogger(t))
}

func elementDocument(t *testing.T, el *elements.Element) map[string]any {
	t.Helper()
	doc, err := export.Encode(el)
	require.NoError(t, err)
	return doc
}

func TestRenderService_RenderElementDocument(t *testing.T) {
	svc := newRenderService(t)

	card := elements.NewCard("Title", "Body text")
	html, err := svc.RenderDocument(elementDocument(t, card))
	require.NoError(t, err)
	assert.Equal(t, card.Render(), html)
}

func TestRenderService_RenderPageDocument(t *testing.T) {
	svc := newRenderService(t)

	html, err := svc.RenderDocument(pageDocument(t, "Preview"))
	require.NoError(t, err)
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Preview</title>")
}

func TestRenderService_RejectsUnknownTypeMarker(t *testing.T) {
	svc := newRenderService(t)

	_, err := svc.RenderDocument(map[string]any{"type": "Widget"})
	require.Error(t, err)

	var derr *export.DeserializationError
	assert.ErrorAs(t, err, &derr)
}

func TestRenderService_RenderJSON(t *testing.T) {
	svc := newRenderService(t)

	link := elements.NewLink("Docs", "https://example.com/docs")
	data, err := export.ToJSON(link, -1)
	require.NoError(t, err)

	html, err := svc.RenderJSON(data)
	require.NoError(t, err)
	assert.Equal(t, link.Render(), html)

	_, err = svc.RenderJSON("{not json")
	assert.Error(t, err)
}
