package stores

import (
	"sync"
	"time"
)

// htmlChunk is one cached rendered document.
type htmlChunk struct {
	html        string
	lastUpdated time.Time
}

// FragmentsStore caches rendered page HTML with a TTL, so repeated reads of
// an unchanged page skip the render pipeline.
type FragmentsStore struct {
	chunks map[string]*htmlChunk
	ttl    time.Duration
	mu     sync.RWMutex
}

// NewFragmentsStore creates a fragments cache with the given entry lifetime.
func NewFragmentsStore(ttl time.Duration) *FragmentsStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &FragmentsStore{
		chunks: make(map[string]*htmlChunk),
		ttl:    ttl,
	}
}

// GetHTML retrieves cached HTML for a page. Expired entries report a miss.
func (fs *FragmentsStore) GetHTML(pageID string) (string, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	chunk, ok := fs.chunks[pageID]
	if !ok {
		return "", false
	}
	if time.Since(chunk.lastUpdated) > fs.ttl {
		return "", false
	}
	return chunk.html, true
}

// SetHTML stores rendered HTML for a page.
func (fs *FragmentsStore) SetHTML(pageID, html string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.chunks[pageID] = &htmlChunk{html: html, lastUpdated: time.Now().UTC()}
}

// InvalidateHTML drops the cached HTML for a page.
func (fs *FragmentsStore) InvalidateHTML(pageID string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.chunks, pageID)
}

// PurgeExpired removes entries past their TTL and reports how many were
// dropped.
func (fs *FragmentsStore) PurgeExpired() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-fs.ttl)
	for key, chunk := range fs.chunks {
		if chunk.lastUpdated.Before(cutoff) {
			delete(fs.chunks, key)
			removed++
		}
	}
	return removed
}

// Count reports current occupancy.
func (fs *FragmentsStore) Count() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.chunks)
}
