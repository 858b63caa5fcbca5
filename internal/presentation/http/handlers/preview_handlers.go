package handlers

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/pageforge/pageforge-go/internal/infrastructure/messaging"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
	"github.com/pageforge/pageforge-go/pkg/config"
)

// PreviewHandlers serves the live preview websocket endpoint
type PreviewHandlers struct {
	broadcaster messaging.Broadcaster
	logger      *logging.ChanneledLogger
	upgrader    websocket.Upgrader
}

// NewPreviewHandlers creates preview handlers with injected dependencies
func NewPreviewHandlers(broadcaster messaging.Broadcaster, logger *logging.ChanneledLogger) *PreviewHandlers {
	return &PreviewHandlers{
		broadcaster: broadcaster,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return slices.Contains(config.AllowedOrigins, origin)
			},
		},
	}
}

// GetPreviewSocket upgrades the connection and streams page change events
func (h *PreviewHandlers) GetPreviewSocket(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Render().Error("Websocket upgrade failed", "error", err.Error())
		return
	}

	client := messaging.NewPreviewClient(conn)
	h.broadcaster.Register(client)

	go client.WritePump()

	// Drain inbound frames so pings and close handshakes are processed.
	go func() {
		defer h.broadcaster.Unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
