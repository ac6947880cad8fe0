// Package storage persists the playlist and the play history.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"xaudio/internal/domain"
)

// playlistSeparator joins id and title on disk; load splits on its first
// occurrence so titles may contain it too.
const playlistSeparator = " - "

// PlaylistFile stores the playlist as one "<id> - <title>" line per entry.
type PlaylistFile struct {
	path string
}

func NewPlaylistFile(path string) *PlaylistFile {
	return &PlaylistFile{path: path}
}

// Load reads the playlist. A missing file is an empty playlist, not an
// error. Lines without the separator are skipped.
func (s *PlaylistFile) Load() ([]domain.SongEntry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open playlist file: %w", err)
	}
	defer file.Close()

	var entries []domain.SongEntry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		id, title, found := strings.Cut(scanner.Text(), playlistSeparator)
		if !found {
			continue
		}
		entries = append(entries, domain.SongEntry{
			ID:    id,
			Title: strings.TrimSpace(title),
		})
	}
	return entries, scanner.Err()
}

// Save writes the whole playlist, truncating any previous content.
func (s *PlaylistFile) Save(entries []domain.SongEntry) error {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s%s%s\n", entry.ID, playlistSeparator, entry.Title)
	}
	return os.WriteFile(s.path, []byte(b.String()), 0o644)
}
