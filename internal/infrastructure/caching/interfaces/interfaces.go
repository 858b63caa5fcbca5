// Package interfaces defines the cache contracts used by repositories and
// services.
package interfaces

import (
	"time"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
)

// ContentCache provides read-through caching for stored content records.
type ContentCache interface {
	GetPage(id string) (*content.PageNode, bool)
	SetPage(page *content.PageNode)
	GetPageByFilename(filename string) (*content.PageNode, bool)
	GetAllPageIDs() ([]string, bool)
	SetAllPageIDs(ids []string)

	GetAsset(id string) (*content.AssetNode, bool)
	SetAsset(asset *content.AssetNode)

	InvalidatePage(id string)
	InvalidateContentCache()
}

// HTMLCache caches rendered page output keyed by page ID.
type HTMLCache interface {
	GetHTML(pageID string) (string, bool)
	SetHTML(pageID, html string)
	InvalidateHTML(pageID string)
	PurgeExpired() int
}

// Cache is the full cache surface the application container wires.
type Cache interface {
	ContentCache
	HTMLCache

	Stats() Stats
	Close()
}

// Stats reports cache occupancy for the health endpoint.
type Stats struct {
	Pages        int       `json:"pages"`
	Assets       int       `json:"assets"`
	HTMLChunks   int       `json:"htmlChunks"`
	LastCleanup  time.Time `json:"lastCleanup"`
	CleanupCount int       `json:"cleanupCount"`
}
