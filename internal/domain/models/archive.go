package models

import "time"

// ArchivedItinerary is one completed generation recorded for later review.
// Only written when the archive DB is configured.
type ArchivedItinerary struct {
	ID          int64     `json:"id"`
	SessionID   string    `json:"session_id"`
	Destination string    `json:"destination"`
	Days        int       `json:"days"`
	Model       string    `json:"model"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}
