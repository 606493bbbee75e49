package models

import "time"

// Domain content kinds tracked for offline availability.
const (
	ContentVideo    = "video"
	ContentDocument = "document"
	ContentQuiz     = "quiz"
	ContentAudio    = "audio"
)

// OfflineContent is a piece of downloadable content tracked in the local
// registry. A record may span several files (DownloadURLs is ordered).
// Once downloaded, ContentHash names the content-addressed file on disk.
type OfflineContent struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	DownloadURLs     []string   `json:"download_urls"`
	SizeBytes        int64      `json:"size_bytes"`
	Priority         Priority   `json:"priority"`
	CreatedAt        time.Time  `json:"created_at"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	IsDownloaded     bool       `json:"is_downloaded"`
	DownloadProgress float64    `json:"download_progress"`
	ContentHash      string     `json:"content_hash,omitempty"`
}

// Expired reports whether the record's TTL has passed at the given instant.
// Records without an ExpiresAt never expire.
func (c OfflineContent) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
