package ports

import (
	"time"

	"xaudio/internal/domain"
)

type YoutubeService interface {
	Search(query string) ([]domain.SongEntry, error)
	LookupDuration(id string) (time.Duration, error)
}

// Resolver turns an opaque video identifier into a directly playable
// media URL.
type Resolver interface {
	Resolve(id string) (string, error)
}
