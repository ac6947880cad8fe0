package coordinator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xaudio/internal/domain"
	"xaudio/internal/ports"
)

type fakeYoutube struct {
	songs     []domain.SongEntry
	searchErr error

	duration    time.Duration
	durationErr error
}

func (f *fakeYoutube) Search(string) ([]domain.SongEntry, error) {
	return f.songs, f.searchErr
}

func (f *fakeYoutube) LookupDuration(string) (time.Duration, error) {
	return f.duration, f.durationErr
}

type fakeResolver struct {
	url string
	err error
}

func (f *fakeResolver) Resolve(string) (string, error) { return f.url, f.err }

type fakePlayer struct {
	events chan ports.PlaybackEvent
	loaded []string
	plays  int
	paused []bool
}

func newFakePlayer() *fakePlayer {
	return &fakePlayer{events: make(chan ports.PlaybackEvent, 8)}
}

func (f *fakePlayer) Load(url string) error {
	f.loaded = append(f.loaded, url)
	return nil
}
func (f *fakePlayer) Play() error { f.plays++; return nil }
func (f *fakePlayer) SetPause(paused bool) error {
	f.paused = append(f.paused, paused)
	return nil
}
func (f *fakePlayer) Events() <-chan ports.PlaybackEvent { return f.events }
func (f *fakePlayer) Close() error                       { return nil }

type fakePlaylistStore struct {
	saved [][]domain.SongEntry
	err   error
}

func (f *fakePlaylistStore) Load() ([]domain.SongEntry, error) { return nil, nil }
func (f *fakePlaylistStore) Save(entries []domain.SongEntry) error {
	f.saved = append(f.saved, entries)
	return f.err
}

type fakeHistoryStore struct {
	recorded []domain.SongEntry
}

func (f *fakeHistoryStore) Record(song domain.SongEntry) error {
	f.recorded = append(f.recorded, song)
	return nil
}
func (f *fakeHistoryStore) Recent(int) ([]domain.HistoryEntry, error) { return nil, nil }
func (f *fakeHistoryStore) Close() error                              { return nil }

type harness struct {
	youtube  *fakeYoutube
	resolver *fakeResolver
	player   *fakePlayer
	playlist *fakePlaylistStore
	history  *fakeHistoryStore
	mailbox  *Mailbox
	messages chan Message
}

func startCoordinator(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		youtube:  &fakeYoutube{},
		resolver: &fakeResolver{url: "https://example.com/stream"},
		player:   newFakePlayer(),
		playlist: &fakePlaylistStore{},
		history:  &fakeHistoryStore{},
		mailbox:  NewMailbox(),
		messages: make(chan Message, 1),
	}

	coord := New(h.youtube, h.resolver, h.player, h.playlist, h.history, h.mailbox.C(), h.messages)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go coord.Run(ctx)
	return h
}

func (h *harness) receive(t *testing.T) Message {
	t.Helper()
	select {
	case msg := <-h.messages:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestCoordinator_SearchSuccess(t *testing.T) {
	h := startCoordinator(t)
	h.youtube.songs = []domain.SongEntry{{ID: "a", Title: "Song A"}}

	require.True(t, h.mailbox.Post(SearchCmd{Keyword: "song", Generation: 3}))

	msg := h.receive(t)
	result, ok := msg.(SearchResultMsg)
	require.True(t, ok, "expected SearchResultMsg, got %T", msg)
	assert.Equal(t, 3, result.Generation)
	assert.Equal(t, h.youtube.songs, result.Songs)
}

func TestCoordinator_SearchFailure(t *testing.T) {
	h := startCoordinator(t)
	h.youtube.searchErr = errors.New("api quota exceeded")

	require.True(t, h.mailbox.Post(SearchCmd{Keyword: "song", Generation: 7}))

	msg := h.receive(t)
	failed, ok := msg.(SearchFailedMsg)
	require.True(t, ok, "expected SearchFailedMsg, got %T", msg)
	assert.Equal(t, 7, failed.Generation)
	assert.Error(t, failed.Err)
}

func TestCoordinator_Play(t *testing.T) {
	h := startCoordinator(t)
	h.youtube.duration = 3 * time.Minute
	song := domain.SongEntry{ID: "abc", Title: "Song"}

	require.True(t, h.mailbox.Post(PlayCmd{Song: song}))

	msg := h.receive(t)
	dur, ok := msg.(SongDurationMsg)
	require.True(t, ok, "expected SongDurationMsg, got %T", msg)
	assert.Equal(t, 3*time.Minute, dur.Duration)

	require.Eventually(t, func() bool { return h.player.plays == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"https://example.com/stream"}, h.player.loaded)
	assert.Equal(t, []domain.SongEntry{song}, h.history.recorded)
}

func TestCoordinator_PlayDurationFailureDefaultsToZero(t *testing.T) {
	h := startCoordinator(t)
	h.youtube.durationErr = errors.New("lookup failed")

	require.True(t, h.mailbox.Post(PlayCmd{Song: domain.SongEntry{ID: "abc"}}))

	msg := h.receive(t)
	dur, ok := msg.(SongDurationMsg)
	require.True(t, ok)
	assert.Zero(t, dur.Duration, "duration failure must not block playback")

	require.Eventually(t, func() bool { return h.player.plays == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestCoordinator_PlayResolveFailureEmitsNothingMore(t *testing.T) {
	h := startCoordinator(t)
	h.resolver.err = errors.New("no such video")

	require.True(t, h.mailbox.Post(PlayCmd{Song: domain.SongEntry{ID: "abc"}}))

	// Duration still arrives, but nothing is loaded or played.
	_, ok := h.receive(t).(SongDurationMsg)
	require.True(t, ok)

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, h.player.loaded)
	assert.Zero(t, h.player.plays)
}

func TestCoordinator_SavePlaylistSwallowsErrors(t *testing.T) {
	h := startCoordinator(t)
	h.playlist.err = errors.New("disk full")

	entries := []domain.SongEntry{{ID: "x", Title: "T"}}
	require.True(t, h.mailbox.Post(SavePlaylistCmd{Entries: entries}))

	require.Eventually(t, func() bool { return len(h.playlist.saved) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, entries, h.playlist.saved[0])
	assert.Empty(t, h.messages, "persistence failures produce no message")
}

func TestCoordinator_SetPause(t *testing.T) {
	h := startCoordinator(t)

	require.True(t, h.mailbox.Post(SetPauseCmd{Paused: true}))
	require.Eventually(t, func() bool { return len(h.player.paused) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []bool{true}, h.player.paused)
}

func TestCoordinator_PlaybackEvents(t *testing.T) {
	h := startCoordinator(t)

	before := time.Now()
	h.player.events <- ports.StartFile{}
	started, ok := h.receive(t).(SongStartedMsg)
	require.True(t, ok)
	assert.WithinRange(t, started.At, before, time.Now().Add(time.Second))

	h.player.events <- ports.EndFile{Reason: "eof"}
	stopped, ok := h.receive(t).(SongStoppedMsg)
	require.True(t, ok)
	assert.Equal(t, "eof", stopped.Reason)

	// Unknown events are forwarded nowhere.
	h.player.events <- ports.Unknown{Raw: `{"event":"idle"}`}
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, h.messages)
}

func TestCoordinator_BackendDownOnEventChannelClose(t *testing.T) {
	h := startCoordinator(t)

	close(h.player.events)

	_, ok := h.receive(t).(BackendDownMsg)
	require.True(t, ok)

	// The coordinator keeps serving commands after the backend is gone.
	require.True(t, h.mailbox.Post(SavePlaylistCmd{Entries: nil}))
	require.Eventually(t, func() bool { return len(h.playlist.saved) == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestMailbox_DropOnFull(t *testing.T) {
	m := NewMailbox()

	assert.True(t, m.Post(SetPauseCmd{Paused: true}))
	assert.False(t, m.Post(SetPauseCmd{Paused: false}), "second post must be dropped, not block")

	cmd := <-m.C()
	assert.Equal(t, SetPauseCmd{Paused: true}, cmd, "the occupant wins; the new command is discarded")

	assert.True(t, m.Post(SetPauseCmd{Paused: false}), "slot frees up after a drain")
}
