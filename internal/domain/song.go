package domain

import "time"

// SongEntry is a single playable item: an opaque video identifier plus a
// display title. Equality is by ID.
type SongEntry struct {
	ID    string
	Title string
}

type HistoryEntry struct {
	Song     SongEntry
	PlayedAt time.Time
}
