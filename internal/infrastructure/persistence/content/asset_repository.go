package content

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/interfaces"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

type AssetRepository struct {
	db     *sql.DB
	cache  interfaces.Cache
	logger *logging.ChanneledLogger
}

func NewAssetRepository(db *sql.DB, cache interfaces.Cache, logger *logging.ChanneledLogger) *AssetRepository {
	return &AssetRepository{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

func (r *AssetRepository) FindByID(id string) (*content.AssetNode, error) {
	if asset, found := r.cache.GetAsset(id); found {
		return asset, nil
	}

	query := `SELECT id, filename, alt_description, url, src_set, created FROM assets WHERE id = ?`

	var asset content.AssetNode
	var srcSet sql.NullString
	err := r.db.QueryRow(query, id).Scan(&asset.ID, &asset.Filename, &asset.AltDescription, &asset.URL, &srcSet, &asset.Created)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Database().Error("Failed to scan asset", "error", err.Error(), "id", id)
		return nil, fmt.Errorf("failed to scan asset: %w", err)
	}
	if srcSet.Valid {
		asset.SrcSet = &srcSet.String
	}
	asset.NodeType = "Asset"

	r.cache.SetAsset(&asset)
	return &asset, nil
}

func (r *AssetRepository) FindAll() ([]*content.AssetNode, error) {
	query := `SELECT id, filename, alt_description, url, src_set, created FROM assets ORDER BY created DESC`

	start := time.Now()
	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Database().Error("Failed to query assets", "error", err.Error())
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	var assets []*content.AssetNode
	for rows.Next() {
		var asset content.AssetNode
		var srcSet sql.NullString
		if err := rows.Scan(&asset.ID, &asset.Filename, &asset.AltDescription, &asset.URL, &srcSet, &asset.Created); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		if srcSet.Valid {
			asset.SrcSet = &srcSet.String
		}
		asset.NodeType = "Asset"
		assets = append(assets, &asset)
	}

	r.logger.Database().Info("Assets loaded from database", "count", len(assets), "duration", time.Since(start))
	return assets, rows.Err()
}

func (r *AssetRepository) Store(asset *content.AssetNode) error {
	query := `INSERT INTO assets (id, filename, alt_description, url, src_set, created) VALUES (?, ?, ?, ?, ?, ?)`

	start := time.Now()
	r.logger.Database().Debug("Executing asset insert", "id", asset.ID)

	_, err := r.db.Exec(query, asset.ID, asset.Filename, asset.AltDescription, asset.URL, asset.SrcSet, asset.Created)
	if err != nil {
		r.logger.Database().Error("Asset insert failed", "error", err.Error(), "id", asset.ID)
		return fmt.Errorf("failed to insert asset: %w", err)
	}

	r.logger.Database().Info("Asset insert completed", "id", asset.ID, "duration", time.Since(start))
	r.cache.SetAsset(asset)
	return nil
}

func (r *AssetRepository) Delete(id string) error {
	query := `DELETE FROM assets WHERE id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Database().Error("Asset delete failed", "error", err.Error(), "id", id)
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	r.cache.InvalidateContentCache()
	return nil
}
