// Package manager provides the top-level cache manager that composes the
// individual stores and runs background cleanup.
package manager

import (
	"sync"
	"time"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/interfaces"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/stores"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// Manager composes the content and fragments stores behind the Cache
// interface and expires stale HTML on a timer.
type Manager struct {
	content   *stores.ContentStore
	fragments *stores.FragmentsStore
	logger    *logging.ChanneledLogger

	cleanupCount int
	lastCleanup  time.Time
	statsMu      sync.Mutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewManager creates a cache manager and starts its cleanup loop.
func NewManager(htmlTTL, cleanupInterval time.Duration, logger *logging.ChanneledLogger) *Manager {
	m := &Manager{
		content:   stores.NewContentStore(),
		fragments: stores.NewFragmentsStore(htmlTTL),
		logger:    logger,
		stop:      make(chan struct{}),
	}

	if cleanupInterval > 0 {
		go m.cleanupLoop(cleanupInterval)
	}
	return m
}

func (m *Manager) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := m.fragments.PurgeExpired()
			m.statsMu.Lock()
			m.cleanupCount++
			m.lastCleanup = time.Now().UTC()
			m.statsMu.Unlock()
			if removed > 0 {
				m.logger.Cache().Debug("Expired HTML purged", "removed", removed)
			}
		case <-m.stop:
			return
		}
	}
}

func (m *Manager) GetPage(id string) (*content.PageNode, bool) { return m.content.GetPage(id) }
func (m *Manager) SetPage(page *content.PageNode)              { m.content.SetPage(page) }
func (m *Manager) GetPageByFilename(filename string) (*content.PageNode, bool) {
	return m.content.GetPageByFilename(filename)
}
func (m *Manager) GetAllPageIDs() ([]string, bool) { return m.content.GetAllPageIDs() }
func (m *Manager) SetAllPageIDs(ids []string)      { m.content.SetAllPageIDs(ids) }

func (m *Manager) GetAsset(id string) (*content.AssetNode, bool) { return m.content.GetAsset(id) }
func (m *Manager) SetAsset(asset *content.AssetNode)             { m.content.SetAsset(asset) }

// InvalidatePage drops both the record and any rendered HTML for it.
func (m *Manager) InvalidatePage(id string) {
	m.content.InvalidatePage(id)
	m.fragments.InvalidateHTML(id)
}

func (m *Manager) InvalidateContentCache() {
	m.content.InvalidateContentCache()
}

func (m *Manager) GetHTML(pageID string) (string, bool) { return m.fragments.GetHTML(pageID) }
func (m *Manager) SetHTML(pageID, html string)          { m.fragments.SetHTML(pageID, html) }
func (m *Manager) InvalidateHTML(pageID string)         { m.fragments.InvalidateHTML(pageID) }
func (m *Manager) PurgeExpired() int                    { return m.fragments.PurgeExpired() }

// Stats reports cache occupancy for the health endpoint.
func (m *Manager) Stats() interfaces.Stats {
	pages, assets := m.content.Counts()

	m.statsMu.Lock()
	defer m.statsMu.Unlock()
	return interfaces.Stats{
		Pages:        pages,
		Assets:       assets,
		HTMLChunks:   m.fragments.Count(),
		LastCleanup:  m.lastCleanup,
		CleanupCount: m.cleanupCount,
	}
}

// Close stops the cleanup loop.
func (m *Manager) Close() {
	m.stopOnce.Do(func() { close(m.stop) })
}

var _ interfaces.Cache = (*Manager)(nil)
