package content

import (
	"database/sql"
	"fmt"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

type ShareRepository struct {
	db     *sql.DB
	logger *logging.ChanneledLogger
}

func NewShareRepository(db *sql.DB, logger *logging.ChanneledLogger) *ShareRepository {
	return &ShareRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ShareRepository) Store(share *content.ShareNode) error {
	query := `INSERT INTO page_shares (id, page_id, recipient, created) VALUES (?, ?, ?, ?)`

	_, err := r.db.Exec(query, share.ID, share.PageID, share.Recipient, share.Created)
	if err != nil {
		r.logger.Database().Error("Share insert failed", "error", err.Error(), "pageId", share.PageID)
		return fmt.Errorf("failed to insert share: %w", err)
	}
	return nil
}

func (r *ShareRepository) FindByPageID(pageID string) ([]*content.ShareNode, error) {
	query := `SELECT id, page_id, recipient, created FROM page_shares WHERE page_id = ? ORDER BY created DESC`

	rows, err := r.db.Query(query, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shares: %w", err)
	}
	defer rows.Close()

	var shares []*content.ShareNode
	for rows.Next() {
		var share content.ShareNode
		if err := rows.Scan(&share.ID, &share.PageID, &share.Recipient, &share.Created); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, &share)
	}
	return shares, rows.Err()
}
