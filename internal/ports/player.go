package ports

// PlaybackEvent is a typed event decoded from the playback backend's
// inbound stream.
type PlaybackEvent interface {
	playbackEvent()
}

// StartFile signals that playback of a newly loaded track has begun.
type StartFile struct{}

// EndFile signals that a track stopped. Reason is the backend's opaque
// string; "eof" means natural completion.
type EndFile struct {
	Reason string
}

// Unknown carries a raw line the client did not recognize. Forwarded but
// never acted upon.
type Unknown struct {
	Raw string
}

func (StartFile) playbackEvent() {}
func (EndFile) playbackEvent()   {}
func (Unknown) playbackEvent()   {}

// PlayerService controls the external playback process. Events returns the
// inbound event stream; the channel is closed when the connection is lost.
type PlayerService interface {
	Load(url string) error
	Play() error
	SetPause(paused bool) error
	Events() <-chan PlaybackEvent
	Close() error
}
