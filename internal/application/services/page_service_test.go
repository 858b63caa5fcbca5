package services

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pageforge/pageforge-go/internal/application/export"
	"github.com/pageforge/pageforge-go/internal/domain/elements"
	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/domain/pages"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/manager"
	"github.com/pageforge/pageforge-go/internal/infrastructure/messaging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePageRepo struct {
	pages map[string]*content.PageNode
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[string]*content.PageNode)}
}

func (r *fakePageRepo) FindByID(id string) (*content.PageNode, error) {
	return r.pages[id], nil
}

func (r *fakePageRepo) FindByFilename(filename string) (*content.PageNode, error) {
	for _, page := range r.pages {
		if page.Filename == filename {
			return page, nil
		}
	}
	return nil, nil
}

func (r *fakePageRepo) FindAll() ([]*content.PageNode, error) {
	all := make([]*content.PageNode, 0, len(r.pages))
	for _, page := range r.pages {
		all = append(all, page)
	}
	return all, nil
}

func (r *fakePageRepo) Store(page *content.PageNode) error {
	r.pages[page.ID] = page
	return nil
}

func (r *fakePageRepo) Update(page *content.PageNode) error {
	now := time.Now().UTC()
	page.Changed = &now
	r.pages[page.ID] = page
	return nil
}

func (r *fakePageRepo) Delete(id string) error {
	delete(r.pages, id)
	return nil
}

type recordingBroadcaster struct {
	updated []string
	deleted []string
}

func (b *recordingBroadcaster) Register(client *messaging.PreviewClient)   {}
func (b *recordingBroadcaster) Unregister(client *messaging.PreviewClient) {}
func (b *recordingBroadcaster) ConnectionCount() int                       { return 0 }

func (b *recordingBroadcaster) BroadcastPageUpdated(pageID, filename string) {
	b.updated = append(b.updated, pageID)
}

func (b *recordingBroadcaster) BroadcastPageDeleted(pageID string) {
	b.deleted = append(b.deleted, pageID)
}

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToFile = false
	cfg.OutputToConsole = false
	cfg.DefaultLevel = slog.LevelError
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func newPageFixture(t *testing.T) (*PageService, *fakePageRepo, *recordingBroadcaster) {
	t.Helper()

	previous := config.GeneratedPagesDir
	config.GeneratedPagesDir = t.TempDir()
	t.Cleanup(func() { config.GeneratedPagesDir = previous })

	logger := quietLogger(t)
	cache := manager.NewManager(time.Hour, time.Hour, logger)
	t.Cleanup(cache.Close)

	repo := newFakePageRepo()
	broadcaster := &recordingBroadcaster{}
	return NewPageService(repo, cache, broadcaster, logger), repo, broadcaster
}

func pageDocument(t *testing.T, title string) map[string]any {
	t.Helper()
	page := pages.New(title, title)
	heading, err := elements.NewHeading("Welcome", 1)
	require.NoError(t, err)
	page.AddElement(heading)
	page.AddElement(elements.NewParagraph("Generated content"))
	doc, err := export.Encode(page)
	require.NoError(t, err)
	return doc
}

func TestPageService_CreateStoresAndWritesFile(t *testing.T) {
	svc, repo, broadcaster := newPageFixture(t)

	node, err := svc.Create(pageDocument(t, "Landing"), "landing")
	require.NoError(t, err)

	assert.NotEmpty(t, node.ID)
	assert.Equal(t, "Landing", node.Title)
	assert.Equal(t, "landing", node.Filename)
	assert.Contains(t, node.RenderedHTML, "<h1>Welcome</h1>")

	stored, err := repo.FindByID(node.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	written, err := os.ReadFile(filepath.Join(config.GeneratedPagesDir, "landing.html"))
	require.NoError(t, err)
	assert.Equal(t, node.RenderedHTML, string(written))

	assert.Equal(t, []string{node.ID}, broadcaster.updated)
}

func TestPageService_CreateRejectsDuplicateFilename(t *testing.T) {
	svc, _, _ := newPageFixture(t)

	_, err := svc.Create(pageDocument(t, "First"), "home")
	require.NoError(t, err)

	_, err = svc.Create(pageDocument(t, "Second"), "home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in use")
}

func TestPageService_CreateRejectsBadFilename(t *testing.T) {
	svc, _, _ := newPageFixture(t)

	for _, filename := range []string{"", "../escape", "has space", "slash/name"} {
		_, err := svc.Create(pageDocument(t, "X"), filename)
		assert.Error(t, err, "filename %q", filename)
	}
}

func TestPageService_CreateRejectsMalformedDocument(t *testing.T) {
	svc, _, _ := newPageFixture(t)

	_, err := svc.Create(map[string]any{"type": "Page", "content": 42}, "bad")
	require.Error(t, err)

	var derr *export.DeserializationError
	assert.ErrorAs(t, err, &derr)
}

func TestPageService_UpdateRenamesGeneratedFile(t *testing.T) {
	svc, _, broadcaster := newPageFixture(t)

	node, err := svc.Create(pageDocument(t, "Old"), "old-name")
	require.NoError(t, err)

	updated, err := svc.Update(node.ID, pageDocument(t, "New"), "new-name")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "new-name", updated.Filename)

	_, err = os.Stat(filepath.Join(config.GeneratedPagesDir, "old-name.html"))
	assert.True(t, os.IsNotExist(err), "old file should be gone")

	_, err = os.Stat(filepath.Join(config.GeneratedPagesDir, "new-name.html"))
	assert.NoError(t, err)

	assert.Len(t, broadcaster.updated, 2)
}

func TestPageService_GetHTMLRendersFromSource(t *testing.T) {
	svc, _, _ := newPageFixture(t)

	node, err := svc.Create(pageDocument(t, "Cached"), "cached")
	require.NoError(t, err)

	html, err := svc.GetHTML(node.ID)
	require.NoError(t, err)
	assert.Equal(t, node.RenderedHTML, html)

	// Second read hits the render cache and stays identical.
	again, err := svc.GetHTML(node.ID)
	require.NoError(t, err)
	assert.Equal(t, html, again)
}

func TestPageService_GetHTMLUnknownPage(t *testing.T) {
	svc, _, _ := newPageFixture(t)

	_, err := svc.GetHTML("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPageService_DeleteRemovesFileAndBroadcasts(t *testing.T) {
	svc, repo, broadcaster := newPageFixture(t)

	node, err := svc.Create(pageDocument(t, "Gone"), "gone")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(node.ID))

	stored, err := repo.FindByID(node.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	_, err = os.Stat(filepath.Join(config.GeneratedPagesDir, "gone.html"))
	assert.True(t, os.IsNotExist(err))

	assert.Equal(t, []string{node.ID}, broadcaster.deleted)
}
