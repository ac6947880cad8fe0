package ports

import "xaudio/internal/domain"

type PlaylistStore interface {
	Load() ([]domain.SongEntry, error)
	Save(entries []domain.SongEntry) error
}

type HistoryStore interface {
	Record(song domain.SongEntry) error
	Recent(limit int) ([]domain.HistoryEntry, error)
	Close() error
}
