package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"xaudio/internal/domain"
)

var historyBucket = []byte("history")

// keySeparator splits the timestamp from the song id inside a history key.
// It must be a byte that RFC3339 timestamps never contain.
const keySeparator = '|'

// HistoryStore keeps recently played songs in a bbolt database, keyed by
// play time so a reverse cursor walk yields most-recent-first. It holds at
// most limit entries; recording past that drops the oldest.
type HistoryStore struct {
	db    *bbolt.DB
	limit int
}

func NewHistoryStore(dbPath string, limit int) (*HistoryStore, error) {
	options := &bbolt.Options{Timeout: 1 * time.Second}
	db, err := bbolt.Open(dbPath, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("could not open history database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(historyBucket)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not create history bucket: %w", err)
	}

	return &HistoryStore{db: db, limit: limit}, nil
}

func historyKey(t time.Time, songID string) []byte {
	return []byte(fmt.Sprintf("%s%c%s", t.UTC().Format(time.RFC3339Nano), keySeparator, songID))
}

func deleteExisting(b *bbolt.Bucket, songID string) error {
	idBytes := []byte(songID)
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		sep := bytes.IndexByte(k, keySeparator)
		if sep >= 0 && bytes.Equal(k[sep+1:], idBytes) {
			return c.Delete()
		}
	}
	return nil
}

// pruneOldest deletes entries from the front of the bucket (the oldest keys)
// until at most limit remain. A limit of zero or less disables pruning.
func pruneOldest(b *bbolt.Bucket, limit int) error {
	if limit <= 0 {
		return nil
	}
	count := 0
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		count++
	}
	for k, _ := c.First(); k != nil && count > limit; k, _ = c.Next() {
		if err := c.Delete(); err != nil {
			return err
		}
		count--
	}
	return nil
}

// Record stores a play of the given song, replacing any previous play of the
// same id so each song appears at most once.
func (s *HistoryStore) Record(song domain.SongEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(historyBucket)

		if err := deleteExisting(b, song.ID); err != nil {
			return err
		}

		entry := domain.HistoryEntry{Song: song, PlayedAt: time.Now()}
		value, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("error serializing history entry: %w", err)
		}
		if err := b.Put(historyKey(entry.PlayedAt, song.ID), value); err != nil {
			return err
		}
		return pruneOldest(b, s.limit)
	})
}

// Recent returns up to limit entries, most recent first.
func (s *HistoryStore) Recent(limit int) ([]domain.HistoryEntry, error) {
	var entries []domain.HistoryEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(historyBucket)
		c := b.Cursor()

		for k, v := c.Last(); k != nil && len(entries) < limit; k, v = c.Prev() {
			var entry domain.HistoryEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("error deserializing history entry: %w", err)
			}
			entries = append(entries, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *HistoryStore) Close() error {
	return s.db.Close()
}
