package assessment

import (
	"time"

	"yourscinema-backend/internal/mood"
)

// MoodRecorded is emitted once per run, on entry to Completed.
type MoodRecorded struct {
	Mood       mood.Mood `json:"mood"`
	OccurredAt time.Time `json:"occurred_at"`
}

// WatchRecorded is emitted when a recommended item is marked as watched.
type WatchRecorded struct {
	ItemID  string `json:"item_id"`
	Title   string `json:"title"`
	Watched bool   `json:"watched"`
}

// Sink receives engine notifications. Implementations must not block and
// their outcome never affects engine state.
type Sink interface {
	MoodRecorded(MoodRecorded)
	WatchRecorded(WatchRecorded)
}

type nopSink struct{}

func (nopSink) MoodRecorded(MoodRecorded)   {}
func (nopSink) WatchRecorded(WatchRecorded) {}
