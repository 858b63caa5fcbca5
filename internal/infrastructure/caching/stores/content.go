// Package stores provides concrete cache store implementations
package stores

import (
	"sync"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
)

// ContentStore caches stored page and asset records by ID, with a filename
// index for lookup by generated file.
type ContentStore struct {
	pages      map[string]*content.PageNode
	byFilename map[string]string
	assets     map[string]*content.AssetNode

	// allPageIDs is the master list for FindAll; nil means not yet loaded.
	allPageIDs []string
	idsLoaded  bool

	mu sync.RWMutex
}

// NewContentStore creates an empty content cache store.
func NewContentStore() *ContentStore {
	return &ContentStore{
		pages:      make(map[string]*content.PageNode),
		byFilename: make(map[string]string),
		assets:     make(map[string]*content.AssetNode),
	}
}

func (cs *ContentStore) GetPage(id string) (*content.PageNode, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	page, ok := cs.pages[id]
	return page, ok
}

func (cs *ContentStore) SetPage(page *content.PageNode) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if existing, ok := cs.pages[page.ID]; ok && existing.Filename != page.Filename {
		delete(cs.byFilename, existing.Filename)
	}
	cs.pages[page.ID] = page
	cs.byFilename[page.Filename] = page.ID
}

func (cs *ContentStore) GetPageByFilename(filename string) (*content.PageNode, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	id, ok := cs.byFilename[filename]
	if !ok {
		return nil, false
	}
	page, ok := cs.pages[id]
	return page, ok
}

func (cs *ContentStore) GetAllPageIDs() ([]string, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	if !cs.idsLoaded {
		return nil, false
	}
	ids := make([]string, len(cs.allPageIDs))
	copy(ids, cs.allPageIDs)
	return ids, true
}

func (cs *ContentStore) SetAllPageIDs(ids []string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.allPageIDs = make([]string, len(ids))
	copy(cs.allPageIDs, ids)
	cs.idsLoaded = true
}

func (cs *ContentStore) GetAsset(id string) (*content.AssetNode, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	asset, ok := cs.assets[id]
	return asset, ok
}

func (cs *ContentStore) SetAsset(asset *content.AssetNode) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.assets[asset.ID] = asset
}

// InvalidatePage drops one page and the master ID list, which no longer
// reflects the store.
func (cs *ContentStore) InvalidatePage(id string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if page, ok := cs.pages[id]; ok {
		delete(cs.byFilename, page.Filename)
		delete(cs.pages, id)
	}
	cs.allPageIDs = nil
	cs.idsLoaded = false
}

// InvalidateContentCache drops everything.
func (cs *ContentStore) InvalidateContentCache() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.pages = make(map[string]*content.PageNode)
	cs.byFilename = make(map[string]string)
	cs.assets = make(map[string]*content.AssetNode)
	cs.allPageIDs = nil
	cs.idsLoaded = false
}

// Counts reports current occupancy.
func (cs *ContentStore) Counts() (pages, assets int) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.pages), len(cs.assets)
}
