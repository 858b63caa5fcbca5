// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pageforge/pageforge-go/internal/application/container"
	"github.com/pageforge/pageforge-go/internal/presentation/http/handlers"
	"github.com/pageforge/pageforge-go/internal/presentation/http/middleware"
	"github.com/pageforge/pageforge-go/pkg/config"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Serve generated pages and uploaded media as static files.
	r.Static("/pages", config.GeneratedPagesDir)
	r.Static("/media", config.MediaDir)

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	pageHandlers := handlers.NewPageHandlers(container.PageService, container.ExportService, container.Logger)
	renderHandlers := handlers.NewRenderHandlers(container.RenderService, container.Logger)
	assetHandlers := handlers.NewAssetHandlers(container.AssetService, container.Logger)
	shareHandlers := handlers.NewShareHandlers(container.ShareService, container.Logger)
	previewHandlers := handlers.NewPreviewHandlers(container.Broadcaster, container.Logger)
	healthHandlers := handlers.NewHealthHandlers(container.DB, container.CacheManager)
	logHandlers := handlers.NewLogHandlers(container.Logger)

	r.GET("/health", healthHandlers.GetHealth)

	api := r.Group("/api/v1")
	{
		api.GET("/health", healthHandlers.GetHealth)

		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandlers.PostLogin)
			auth.POST("/logout", authHandlers.PostLogout)
			auth.GET("/status", authHandlers.GetAuthStatus)
		}

		// Read-only routes (public)
		api.GET("/pages", pageHandlers.GetAllPages)
		api.GET("/pages/:id", pageHandlers.GetPageByID)
		api.GET("/pages/:id/html", pageHandlers.GetPageHTML)
		api.GET("/pages/:id/export", pageHandlers.GetPageExport)
		api.GET("/assets", assetHandlers.GetAllAssets)
		api.GET("/assets/:id", assetHandlers.GetAssetByID)

		// Live preview websocket
		api.GET("/preview/ws", previewHandlers.GetPreviewSocket)

		// Mutation routes (protected)
		mutations := api.Group("/")
		mutations.Use(authHandlers.AuthMiddleware())
		{
			documents := mutations.Group("/")
			documents.Use(middleware.BodyLimitMiddleware(config.MaxDocumentSizeKB))
			{
				documents.POST("/pages", pageHandlers.CreatePage)
				documents.PUT("/pages/:id", pageHandlers.UpdatePage)
				documents.POST("/render", renderHandlers.PostRender)
			}

			mutations.DELETE("/pages/:id", pageHandlers.DeletePage)
			mutations.POST("/pages/:id/share", shareHandlers.PostShare)
			mutations.GET("/pages/:id/shares", shareHandlers.GetShares)

			uploads := mutations.Group("/")
			uploads.Use(middleware.BodyLimitMiddleware(config.MaxUploadSizeKB))
			{
				uploads.POST("/assets", assetHandlers.PostAsset)
			}
			mutations.DELETE("/assets/:id", assetHandlers.DeleteAsset)

			// Runtime log management
			mutations.GET("/admin/logs/levels", logHandlers.GetLogLevels)
			mutations.POST("/admin/logs/levels", logHandlers.SetLogLevel)
		}
	}

	return r
}
