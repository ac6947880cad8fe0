// Package coordinator runs the background task that owns all network and
// playback I/O, fed by the UI through a lossy one-slot command mailbox and
// answering through a capacity-one message channel.
package coordinator

import (
	"time"

	"xaudio/internal/domain"
)

// Command is a UI-to-backend request.
type Command interface {
	command()
}

// SearchCmd asks for a catalogue search. Generation is echoed back so the UI
// can discard results for keywords it has since abandoned.
type SearchCmd struct {
	Keyword    string
	Generation int
}

// PlayCmd asks the backend to resolve and play one song.
type PlayCmd struct {
	Song domain.SongEntry
}

// SavePlaylistCmd carries a full playlist snapshot for best-effort persistence.
type SavePlaylistCmd struct {
	Entries []domain.SongEntry
}

// SetPauseCmd pauses or resumes the current track.
type SetPauseCmd struct {
	Paused bool
}

func (SearchCmd) command()       {}
func (PlayCmd) command()         {}
func (SavePlaylistCmd) command() {}
func (SetPauseCmd) command()     {}

// Message is a backend-to-UI notification.
type Message interface {
	message()
}

type SearchResultMsg struct {
	Generation int
	Songs      []domain.SongEntry
}

type SearchFailedMsg struct {
	Generation int
	Err        error
}

type SongStartedMsg struct {
	At time.Time
}

type SongStoppedMsg struct {
	Reason string
}

type SongDurationMsg struct {
	Duration time.Duration
}

// BackendDownMsg signals that the playback connection was lost mid-session.
type BackendDownMsg struct{}

func (SearchResultMsg) message() {}
func (SearchFailedMsg) message() {}
func (SongStartedMsg) message()  {}
func (SongStoppedMsg) message()  {}
func (SongDurationMsg) message() {}
func (BackendDownMsg) message()  {}
