package models

import "time"

// TripRequest is the structured user input describing one planned trip.
// Built fresh per submit, immutable afterwards, discarded on reset.
type TripRequest struct {
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	Constraints []string `json:"constraints"`
}

// Itinerary is the generated day-by-day plan. The text is opaque to the
// backend; it is replaced wholesale by each new generation.
type Itinerary struct {
	Text        string    `json:"text"`
	Model       string    `json:"model"`
	GeneratedAt time.Time `json:"generated_at"`
}

// SessionState follows Idle -> AwaitingResult -> Ready | Failed; reset
// returns to Idle from any state.
type SessionState string

const (
	StateIdle     SessionState = "idle"
	StateAwaiting SessionState = "awaiting_result"
	StateReady    SessionState = "ready"
	StateFailed   SessionState = "failed"
)
