// Package messaging defines interfaces for real-time communication.
package messaging

// Broadcaster defines the interface for managing live preview client
// connections and pushing page change notifications to them.
type Broadcaster interface {
	Register(client *PreviewClient)
	Unregister(client *PreviewClient)
	BroadcastPageUpdated(pageID, filename string)
	BroadcastPageDeleted(pageID string)
	ConnectionCount() int
}
