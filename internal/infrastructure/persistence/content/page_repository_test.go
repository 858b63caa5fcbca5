package content

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/manager"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/persistence/database"
)

func newPageRepoFixture(t *testing.T) (*PageRepository, *manager.Manager) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.NewTableCreator().CreateSchema(db))

	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		JSONFormat:    true,
		DefaultLevel:  slog.LevelError,
		ChannelLevels: make(map[logging.Channel]slog.Level),
	})
	require.NoError(t, err)

	cache := manager.NewManager(time.Hour, 0, logger)
	t.Cleanup(cache.Close)

	return NewPageRepository(db, cache, logger), cache
}

func storedPage(id, filename string, created time.Time) *content.PageNode {
	return &content.PageNode{
		ID:             id,
		Title:          "Page " + id,
		NodeType:       "Page",
		Filename:       filename,
		SourceDocument: map[string]any{"type": "Page", "title": "Page " + id},
		RenderedHTML:   "<html>" + id + "</html>",
		Created:        created,
	}
}

func TestFindAll_NewestFirst(t *testing.T) {
	repo, _ := newPageRepoFixture(t)

	base := time.Now().UTC()
	require.NoError(t, repo.Store(storedPage("a", "a.html", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Store(storedPage("b", "b.html", base.Add(-time.Hour))))
	require.NoError(t, repo.Store(storedPage("c", "c.html", base)))

	pages, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{pages[0].ID, pages[1].ID, pages[2].ID})
}

func TestFindAll_PartialCacheKeepsOrder(t *testing.T) {
	repo, cache := newPageRepoFixture(t)

	base := time.Now().UTC()
	require.NoError(t, repo.Store(storedPage("a", "a.html", base.Add(-2*time.Hour))))
	require.NoError(t, repo.Store(storedPage("b", "b.html", base.Add(-time.Hour))))
	require.NoError(t, repo.Store(storedPage("c", "c.html", base)))

	// A warm master list with only the middle page cached forces the mixed
	// cache-hit plus batch-load path.
	cache.InvalidateContentCache()
	cache.SetAllPageIDs([]string{"c", "b", "a"})
	cached, err := repo.FindByID("b")
	require.NoError(t, err)
	require.NotNil(t, cached)

	pages, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{pages[0].ID, pages[1].ID, pages[2].ID})
}

func TestFindAll_SeesPageStoredAfterWarmList(t *testing.T) {
	repo, _ := newPageRepoFixture(t)

	base := time.Now().UTC()
	require.NoError(t, repo.Store(storedPage("a", "a.html", base.Add(-time.Hour))))

	pages, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, pages, 1)

	require.NoError(t, repo.Store(storedPage("b", "b.html", base)))

	pages, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "b", pages[0].ID)
}
