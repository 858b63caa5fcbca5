package services

import (
	"fmt"
	"time"

	"github.com/pageforge/pageforge-go/internal/domain/entities/content"
	"github.com/pageforge/pageforge-go/internal/domain/repositories"
	"github.com/pageforge/pageforge-go/internal/infrastructure/media"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/security"
)

// AssetService handles media uploads: it writes the image and its size
// variants to disk and records the asset.
type AssetService struct {
	assetRepo repositories.AssetRepository
	processor *media.ImageProcessor
	logger    *logging.ChanneledLogger
}

// NewAssetService creates a new asset application service
func NewAssetService(assetRepo repositories.AssetRepository, processor *media.ImageProcessor, logger *logging.ChanneledLogger) *AssetService {
	return &AssetService{
		assetRepo: assetRepo,
		processor: processor,
		logger:    logger,
	}
}

// Upload processes a base64 image payload and stores the resulting asset.
func (s *AssetService) Upload(base64Data, altDescription string) (*content.AssetNode, error) {
	if base64Data == "" {
		return nil, fmt.Errorf("image data cannot be empty")
	}

	id := security.GenerateULID()
	url, variants, err := s.processor.ProcessAssetWithVariants(base64Data, id)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	asset := &content.AssetNode{
		ID:             id,
		Filename:       url[len("/media/images/uploads/"):],
		NodeType:       "Asset",
		AltDescription: altDescription,
		URL:            url,
		Created:        time.Now().UTC(),
	}
	if srcSet := media.BuildSrcSet(variants); srcSet != "" {
		asset.SrcSet = &srcSet
	}

	if err := s.assetRepo.Store(asset); err != nil {
		s.processor.DeleteAsset(url)
		return nil, fmt.Errorf("failed to store asset %s: %w", id, err)
	}

	s.logger.Media().Info("Asset uploaded", "assetId", id, "url", url, "variants", len(variants))
	return asset, nil
}

// GetByID returns an asset by ID (cache-first)
func (s *AssetService) GetByID(id string) (*content.AssetNode, error) {
	if id == "" {
		return nil, fmt.Errorf("asset ID cannot be empty")
	}
	asset, err := s.assetRepo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset %s: %w", id, err)
	}
	return asset, nil
}

// GetAll returns all stored assets
func (s *AssetService) GetAll() ([]*content.AssetNode, error) {
	assets, err := s.assetRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all assets: %w", err)
	}
	return assets, nil
}

// Delete removes an asset record and its files on disk
func (s *AssetService) Delete(id string) error {
	asset, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if asset == nil {
		return fmt.Errorf("asset %s not found", id)
	}

	if err := s.assetRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", id, err)
	}

	if err := s.processor.DeleteAsset(asset.URL); err != nil {
		s.logger.Media().Warn("Failed to remove asset files", "assetId", id, "error", err)
	}

	s.logger.Media().Info("Asset deleted", "assetId", id)
	return nil
}
