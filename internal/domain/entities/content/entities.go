// Package content defines the application's core stored-content entities.
package content

import "time"

// PageNode is one persisted generated page: the source document it was built
// from plus the rendered output and file metadata.
type PageNode struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	NodeType       string         `json:"nodeType"`
	Filename       string         `json:"filename"`
	SourceDocument map[string]any `json:"sourceDocument"`
	RenderedHTML   string         `json:"renderedHtml,omitempty"`
	Created        time.Time      `json:"created"`
	Changed        *time.Time     `json:"changed,omitempty"`
}

// AssetNode is one uploaded media file, stored with its generated size
// variants.
type AssetNode struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	NodeType       string    `json:"nodeType"`
	AltDescription string    `json:"altDescription"`
	URL            string    `json:"url"`
	SrcSet         *string   `json:"srcSet,omitempty"`
	Created        time.Time `json:"created"`
}

// ShareNode records one page shared by email.
type ShareNode struct {
	ID        string    `json:"id"`
	PageID    string    `json:"pageId"`
	Recipient string    `json:"recipient"`
	Created   time.Time `json:"created"`
}
