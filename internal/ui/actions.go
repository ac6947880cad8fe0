package ui

import (
	"xaudio/internal/coordinator"
	"xaudio/internal/domain"
	"xaudio/internal/queue"
)

// activeList is whatever list the current mode shows: the playlist while
// playing, the search results in both search modes.
func (m *Model) activeList() []domain.SongEntry {
	if m.mode == ModePlaying {
		return m.playlist
	}
	return m.searchResults
}

func (m *Model) absoluteIndex() int {
	return m.selected + m.page*m.pageSize
}

// switchMode resets both cursors; every mode change starts at the top.
func (m *Model) switchMode(mode Mode) {
	m.mode = mode
	m.selected = 0
	m.page = 0
}

func (m *Model) moveSelection(delta int) {
	visible := len(pageOf(m.activeList(), m.page, m.pageSize))
	next := m.selected + delta
	if next >= 0 && next < visible {
		m.selected = next
	}
}

// changePage clamps to [0, totalPages-1] and always resets the selection.
func (m *Model) changePage(delta int) {
	total := TotalPages(len(m.activeList()), m.pageSize)
	next := m.page + delta
	if next >= 0 && next < total {
		m.page = next
	}
	m.selected = 0
}

// clampCursors re-bounds page and selection after a resize or list change.
func (m *Model) clampCursors() {
	total := TotalPages(len(m.activeList()), m.pageSize)
	if total == 0 {
		m.page = 0
	} else if m.page >= total {
		m.page = total - 1
	}

	visible := len(pageOf(m.activeList(), m.page, m.pageSize))
	if m.selected >= visible {
		m.selected = max(0, visible-1)
	}
}

// rebuildQueue recomputes the traversal order from scratch. Position is not
// preserved; the cursor goes back to the first entry.
func (m *Model) rebuildQueue() {
	m.playQueue = queue.Build(len(m.playlist), m.shuffle)
	m.queueIndex = 0
}

// playAt commands playback of the playlist entry at the given absolute
// index. Out-of-range indices are a no-op.
func (m *Model) playAt(index int) {
	if index < 0 || index >= len(m.playlist) {
		return
	}
	m.mailbox.Post(coordinator.PlayCmd{Song: m.playlist[index]})
	m.playingIndex = index
	if m.mode == ModePlaying && m.pageSize > 0 {
		m.page = index / m.pageSize
		m.selected = index % m.pageSize
	}
}

// playNext advances the queue cursor, rebuilding a fresh (possibly
// re-shuffled) queue when it is exhausted.
func (m *Model) playNext() {
	if len(m.playlist) == 0 {
		return
	}
	if m.queueIndex < len(m.playQueue)-1 {
		m.queueIndex++
	} else {
		m.rebuildQueue()
	}
	m.playAt(m.playQueue[m.queueIndex])
}

// playPrev retreats the queue cursor; at the first position it replays the
// current entry rather than wrapping around.
func (m *Model) playPrev() {
	if len(m.playQueue) == 0 {
		return
	}
	if m.queueIndex > 0 {
		m.queueIndex--
	}
	m.playAt(m.playQueue[m.queueIndex])
}

func (m *Model) persistPlaylist() {
	snapshot := make([]domain.SongEntry, len(m.playlist))
	copy(snapshot, m.playlist)
	m.mailbox.Post(coordinator.SavePlaylistCmd{Entries: snapshot})
}

func (m *Model) removeSelected() {
	index := m.absoluteIndex()
	if index < 0 || index >= len(m.playlist) {
		return
	}
	m.playlist = append(m.playlist[:index], m.playlist[index+1:]...)
	m.persistPlaylist()
	m.rebuildQueue()
	m.clampCursors()
	if m.playingIndex >= len(m.playlist) {
		m.playingIndex = max(0, len(m.playlist)-1)
	}
}

func (m *Model) addSelected() {
	index := m.absoluteIndex()
	if index < 0 || index >= len(m.searchResults) {
		return
	}
	song := m.searchResults[index]
	if m.dedup && m.playlistContains(song.ID) {
		return
	}
	m.playlist = append(m.playlist, song)
	m.persistPlaylist()
	m.rebuildQueue()
}

func (m *Model) playlistContains(id string) bool {
	for _, entry := range m.playlist {
		if entry.ID == id {
			return true
		}
	}
	return false
}
