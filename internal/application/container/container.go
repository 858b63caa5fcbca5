// Package container provides dependency injection for all singleton services
package container

import (
	"database/sql"

	"github.com/pageforge/pageforge-go/internal/application/services"
	"github.com/pageforge/pageforge-go/internal/infrastructure/caching/manager"
	"github.com/pageforge/pageforge-go/internal/infrastructure/email"
	"github.com/pageforge/pageforge-go/internal/infrastructure/media"
	"github.com/pageforge/pageforge-go/internal/infrastructure/messaging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	persistence "github.com/pageforge/pageforge-go/internal/infrastructure/persistence/content"
	"github.com/pageforge/pageforge-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	// Application services
	PageService   *services.PageService
	RenderService *services.RenderService
	ExportService *services.ExportService
	AssetService  *services.AssetService
	ShareService  *services.ShareService
	AuthService   *services.AuthService

	// Infrastructure
	DB           *sql.DB
	CacheManager *manager.Manager
	Broadcaster  *messaging.PreviewBroadcaster
	Logger       *logging.ChanneledLogger
}

// NewContainer creates and wires all singleton services
func NewContainer(db *sql.DB, cacheManager *manager.Manager, logger *logging.ChanneledLogger) *Container {
	broadcaster := messaging.NewPreviewBroadcaster(logger)

	pageRepo := persistence.NewPageRepository(db, cacheManager, logger)
	assetRepo := persistence.NewAssetRepository(db, cacheManager, logger)
	shareRepo := persistence.NewShareRepository(db, logger)

	processor := media.NewImageProcessor(config.MediaDir)

	// Email is optional; sharing reports it unavailable when unconfigured.
	emailSvc, err := email.NewService()
	if err != nil {
		logger.Email().Warn("Email delivery disabled", "reason", err)
		emailSvc = nil
	}

	return &Container{
		PageService:   services.NewPageService(pageRepo, cacheManager, broadcaster, logger),
		RenderService: services.NewRenderService(logger),
		ExportService: services.NewExportService(pageRepo),
		AssetService:  services.NewAssetService(assetRepo, processor, logger),
		ShareService:  services.NewShareService(shareRepo, pageRepo, emailSvc, logger),
		AuthService:   services.NewAuthService(logger),

		DB:           db,
		CacheManager: cacheManager,
		Broadcaster:  broadcaster,
		Logger:       logger,
	}
}

// Close releases the container's long-lived resources.
func (c *Container) Close() {
	c.Broadcaster.Stop()
	c.CacheManager.Close()
	if c.DB != nil {
		c.DB.Close()
	}
}
