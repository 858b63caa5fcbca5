// Package content provides the SQL-backed repositories for stored pages,
// assets, and shares, each with a cache-first read path.
package content

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/interfaces"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

type PageRepository struct {
	db     *sql.DB
	cache  interfaces.Cache
	logger *logging.ChanneledLogger
}

func NewPageRepository(db *sql.DB, cache interfaces.Cache, logger *logging.ChanneledLogger) *PageRepository {
	return &PageRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *PageRepository) FindByID(id string) (*content.PageNode, error) {
	if page, found := r.cache.GetPage(id); found {
		return page, nil
	}

	page, err := r.loadFromDB(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	r.cache.SetPage(page)
	return page, nil
}

func (r *PageRepository) FindByFilename(filename string) (*content.PageNode, error) {
	if page, found := r.cache.GetPageByFilename(filename); found {
		return page, nil
	}

	query := `SELECT id FROM generated_pages WHERE filename = ?`

	var id string
	err := r.db.QueryRow(query, filename).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up page by filename: %w", err)
	}

	return r.FindByID(id)
}

// FindAll retrieves all stored pages, employing a cache-first strategy.
func (r *PageRepository) FindAll() ([]*content.PageNode, error) {
	// 1. Check cache for the master list of IDs first.
	if ids, found := r.cache.GetAllPageIDs(); found {
		return r.findByIDs(ids)
	}

	// 2. The master ID list is not in the cache. Load all IDs from the database.
	ids, err := r.loadAllIDsFromDB()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*content.PageNode{}, nil
	}

	// 3. Set the master ID list in the cache immediately.
	r.cache.SetAllPageIDs(ids)

	return r.findByIDs(ids)
}

// findByIDs resolves pages cache-first, batching the misses into one query.
// The result keeps the master-list order regardless of which entries were
// cached.
func (r *PageRepository) findByIDs(ids []string) ([]*content.PageNode, error) {
	byID := make(map[string]*content.PageNode, len(ids))
	var missingIDs []string

	for _, id := range ids {
		if page, found := r.cache.GetPage(id); found {
			byID[id] = page
		} else {
			missingIDs = append(missingIDs, id)
		}
	}

	if len(missingIDs) > 0 {
		missingPages, err := r.loadMultipleFromDB(missingIDs)
		if err != nil {
			return nil, err
		}

		for _, page := range missingPages {
			r.cache.SetPage(page)
			byID[page.ID] = page
		}
	}

	result := make([]*content.PageNode, 0, len(ids))
	for _, id := range ids {
		if page, ok := byID[id]; ok {
			result = append(result, page)
		}
	}
	return result, nil
}

func (r *PageRepository) Store(page *content.PageNode) error {
	sourceJSON, err := json.Marshal(page.SourceDocument)
	if err != nil {
		return fmt.Errorf("failed to marshal source document: %w", err)
	}

	query := `INSERT INTO generated_pages (id, title, filename, source_document, rendered_html, created) VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing page insert", "id", page.ID)

	_, err = r.db.Exec(query, page.ID, page.Title, page.Filename, string(sourceJSON), page.RenderedHTML, page.Created)
	if err != nil {
		r.logger.Database().Error("Page insert failed", "error", err.Error(), "id", page.ID)
		return fmt.Errorf("failed to insert page: %w", err)
	}

	r.logger.Database().Info("Page insert completed", "id", page.ID, "duration", time.Since(start))
	// Drop the master ID list so FindAll picks up the new page.
	r.cache.InvalidatePage(page.ID)
	r.cache.SetPage(page)
	r.cache.SetHTML(page.ID, page.RenderedHTML)
	return nil
}

func (r *PageRepository) Update(page *content.PageNode) error {
	sourceJSON, err := json.Marshal(page.SourceDocument)
	if err != nil {
		return fmt.Errorf("failed to marshal source document: %w", err)
	}

	query := `UPDATE generated_pages SET title = ?, filename = ?, source_document = ?, rendered_html = ?, changed = ? WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing page update", "id", page.ID)

	now := time.Now().UTC()
	_, err = r.db.Exec(query, page.Title, page.Filename, string(sourceJSON), page.RenderedHTML, now, page.ID)
	if err != nil {
		r.logger.Database().Error("Page update failed", "error", err.Error(), "id", page.ID)
		return fmt.Errorf("failed to update page: %w", err)
	}
	page.Changed = &now

	r.logger.Database().Info("Page update completed", "id", page.ID, "duration", time.Since(start))
	r.cache.SetPage(page)
	r.cache.SetHTML(page.ID, page.RenderedHTML)
	return nil
}

func (r *PageRepository) Delete(id string) error {
	query := `DELETE FROM generated_pages WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Executing page delete", "id", id)

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Page delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete page: %w", err)
	}

	r.logger.Database().Info("Page delete completed", "id", id, "duration", time.Since(start))
	r.cache.InvalidatePage(id)
	return nil
}

func (r *PageRepository) loadAllIDsFromDB() ([]string, error) {
	query := `SELECT id FROM generated_pages ORDER BY created DESC`

	start := time.Now()
	r.logger.Database().Debug("Loading all page IDs from database")

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query page IDs", "error", err.Error())
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	var pageIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan page ID: %w", err)
		}
		pageIDs = append(pageIDs, id)
	}

	r.logger.Database().Info("Loaded page IDs from database", "count", len(pageIDs), "duration", time.Since(start))
	return pageIDs, rows.Err()
}

func (r *PageRepository) loadFromDB(id string) (*content.PageNode, error) {
	query := `SELECT id, title, filename, source_document, rendered_html, created, changed FROM generated_pages WHERE id = ?`

	start := time.Now()
	r.logger.Database().Debug("Loading page from database", "id", id)

	row := r.db.QueryRow(query, id)

	page, err := scanPage(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan page", "error", err.Error(), "id", id)
		return nil, err
	}

	r.logger.Database().Info("Page loaded from database", "id", id, "duration", time.Since(start))
	return page, nil
}

func (r *PageRepository) loadMultipleFromDB(ids []string) ([]*content.PageNode, error) {
	if len(ids) == 0 {
		return []*content.PageNode{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	query := `SELECT id, title, filename, source_document, rendered_html, created, changed
              FROM generated_pages WHERE id IN (` + strings.Join(placeholders, ",") + `)`

	start := time.Now()
	r.logger.Database().Debug("Loading multiple pages from database", "count", len(ids))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.logger.Database().Error("Failed to query multiple pages", "error", err.Error(), "count", len(ids))
		return nil, fmt.Errorf("failed to query pages: %w", err)
	}
	defer rows.Close()

	var pages []*content.PageNode
	for rows.Next() {
		page, err := scanPage(rows.Scan)
		if err != nil {
			// Skip malformed records but continue processing others
			continue
		}
		pages = append(pages, page)
	}

	r.logger.Database().Info("Multiple pages loaded from database", "requested", len(ids), "loaded", len(pages), "duration", time.Since(start))
	return pages, rows.Err()
}

func scanPage(scan func(dest ...any) error) (*content.PageNode, error) {
	var page content.PageNode
	var sourceDocStr string
	var changed sql.NullTime

	err := scan(&page.ID, &page.Title, &page.Filename, &sourceDocStr, &page.RenderedHTML, &page.Created, &changed)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(sourceDocStr), &page.SourceDocument); err != nil {
		return nil, fmt.Errorf("failed to parse source document: %w", err)
	}
	if changed.Valid {
		t := changed.Time
		page.Changed = &t
	}

	page.NodeType = "Page"
	return &page, nil
}
