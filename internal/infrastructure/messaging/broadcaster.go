// Package messaging provides the websocket broadcaster behind live preview.
package messaging

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pageforge/pageforge-go/internal/infrastructure/observability/logging"
)

// PreviewClient represents a single connected live preview client.
type PreviewClient struct {
	Conn *websocket.Conn
	Send chan []byte
}

// NewPreviewClient wraps a websocket connection with a buffered send queue.
func NewPreviewClient(conn *websocket.Conn) *PreviewClient {
	return &PreviewClient{
		Conn: conn,
		Send: make(chan []byte, 16),
	}
}

// PreviewEvent is the message pushed to connected clients when a page changes.
type PreviewEvent struct {
	Type      string    `json:"type"` // "page_updated" or "page_deleted"
	PageID    string    `json:"pageId"`
	Filename  string    `json:"filename,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PreviewBroadcaster manages connected preview clients and fans out events.
type PreviewBroadcaster struct {
	clients    map[*PreviewClient]bool
	register   chan *PreviewClient
	unregister chan *PreviewClient
	events     chan PreviewEvent
	quit       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
	logger     *logging.ChanneledLogger
}

// NewPreviewBroadcaster creates a new broadcaster instance.
func NewPreviewBroadcaster(logger *logging.ChanneledLogger) *PreviewBroadcaster {
	return &PreviewBroadcaster{
		clients:    make(map[*PreviewClient]bool),
		register:   make(chan *PreviewClient),
		unregister: make(chan *PreviewClient),
		events:     make(chan PreviewEvent, 32),
		quit:       make(chan struct{}),
		logger:     logger,
	}
}

// Run starts the broadcaster's main loop. This should be run as a goroutine.
func (b *PreviewBroadcaster) Run() {
	for {
		select {
		case client := <-b.register:
			b.mu.Lock()
			b.clients[client] = true
			count := len(b.clients)
			b.mu.Unlock()
			b.logger.Render().Debug("Preview client registered", "connections", count)

		case client := <-b.unregister:
			b.mu.Lock()
			if _, ok := b.clients[client]; ok {
				delete(b.clients, client)
				close(client.Send)
			}
			count := len(b.clients)
			b.mu.Unlock()
			b.logger.Render().Debug("Preview client unregistered", "connections", count)

		case event := <-b.events:
			b.fanOut(event)

		case <-b.quit:
			b.mu.Lock()
			for client := range b.clients {
				close(client.Send)
				delete(b.clients, client)
			}
			b.mu.Unlock()
			return
		}
	}
}

// Register queues a client for registration. After Stop the run loop no
// longer drains the channel, so the client's send queue is closed instead of
// blocking the connection handler.
func (b *PreviewBroadcaster) Register(client *PreviewClient) {
	select {
	case b.register <- client:
	case <-b.quit:
		close(client.Send)
	}
}

// Unregister queues a client for unregistration. A no-op after Stop, which
// already closed every registered client.
func (b *PreviewBroadcaster) Unregister(client *PreviewClient) {
	select {
	case b.unregister <- client:
	case <-b.quit:
	}
}

// BroadcastPageUpdated notifies connected clients that a page was created or
// modified so they can re-fetch its rendered HTML.
func (b *PreviewBroadcaster) BroadcastPageUpdated(pageID, filename string) {
	b.enqueue(PreviewEvent{
		Type:      "page_updated",
		PageID:    pageID,
		Filename:  filename,
		Timestamp: time.Now().UTC(),
	})
}

// BroadcastPageDeleted notifies connected clients that a page was removed.
func (b *PreviewBroadcaster) BroadcastPageDeleted(pageID string) {
	b.enqueue(PreviewEvent{
		Type:      "page_deleted",
		PageID:    pageID,
		Timestamp: time.Now().UTC(),
	})
}

// ConnectionCount returns the number of currently connected clients.
func (b *PreviewBroadcaster) ConnectionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Stop shuts down the run loop and disconnects all clients.
func (b *PreviewBroadcaster) Stop() {
	b.stopOnce.Do(func() {
		close(b.quit)
	})
}

func (b *PreviewBroadcaster) enqueue(event PreviewEvent) {
	select {
	case b.events <- event:
	default:
		b.logger.Render().Warn("Preview event queue full, event dropped", "type", event.Type, "pageId", event.PageID)
	}
}

func (b *PreviewBroadcaster) fanOut(event PreviewEvent) {
	message, err := json.Marshal(event)
	if err != nil {
		b.logger.Render().Error("Failed to marshal preview event", "error", err, "type", event.Type)
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for client := range b.clients {
		select {
		case client.Send <- message:
		default:
			b.logger.Render().Warn("Preview client send buffer full, message dropped", "pageId", event.PageID)
		}
	}
}

// WritePump drains the client's send queue onto the websocket connection.
// It returns when the send channel closes or a write fails.
func (c *PreviewClient) WritePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

var _ Broadcaster = (*PreviewBroadcaster)(nil)
