// Package repositories defines the repository interfaces for stored content.
// These repositories abstract the data persistence details, ensuring the core
// application is clean and decoupled from the database.
package repositories

import (
	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
)

type PageRepository interface {
	FindByID(id string) (*content.PageNode, error)
	FindByFilename(filename string) (*content.PageNode, error)
	FindAll() ([]*content.PageNode, error)
	Store(page *content.PageNode) error
	Update(page *content.PageNode) error
	Delete(id string) error
}

type AssetRepository interface {
	FindByID(id string) (*content.AssetNode, error)
	FindAll() ([]*content.AssetNode, error)
	Store(asset *content.AssetNode) error
	Delete(id string) error
}

type ShareRepository interface {
	Store(share *content.ShareNode) error
	FindByPageID(pageID string) ([]*content.ShareNode, error)
}
