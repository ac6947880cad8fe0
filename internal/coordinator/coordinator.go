package coordinator

import (
	"context"
	"time"

	"xaudio/internal/logger"
	"xaudio/internal/ports"
)

// Coordinator owns the playback connection and performs every blocking call
// in the process: search, duration lookup, stream resolution, persistence.
// The UI never touches any of these directly.
type Coordinator struct {
	youtube  ports.YoutubeService
	resolver ports.Resolver
	player   ports.PlayerService
	playlist ports.PlaylistStore
	history  ports.HistoryStore

	commands <-chan Command
	messages chan<- Message
}

func New(
	youtube ports.YoutubeService,
	resolver ports.Resolver,
	player ports.PlayerService,
	playlist ports.PlaylistStore,
	history ports.HistoryStore,
	commands <-chan Command,
	messages chan<- Message,
) *Coordinator {
	return &Coordinator{
		youtube:  youtube,
		resolver: resolver,
		player:   player,
		playlist: playlist,
		history:  history,
		commands: commands,
		messages: messages,
	}
}

// Run multiplexes UI commands and playback events until the context is
// cancelled. Go's select gives both sources a fair shot; neither can starve
// the other.
func (c *Coordinator) Run(ctx context.Context) {
	events := c.player.Events()
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-c.commands:
			c.handleCommand(ctx, cmd)
		case ev, ok := <-events:
			if !ok {
				// Connection lost; a nil channel blocks forever so the
				// loop keeps serving commands without spinning.
				events = nil
				c.emit(ctx, BackendDownMsg{})
				continue
			}
			c.handleEvent(ctx, ev)
		}
	}
}

// emit is a blocking send; the UI drains every tick, so the pause is bounded
// by one poll interval.
func (c *Coordinator) emit(ctx context.Context, msg Message) {
	select {
	case c.messages <- msg:
	case <-ctx.Done():
	}
}

func (c *Coordinator) handleCommand(ctx context.Context, cmd Command) {
	switch cmd := cmd.(type) {
	case SearchCmd:
		songs, err := c.youtube.Search(cmd.Keyword)
		if err != nil {
			logger.Log.WithError(err).Warnf("search for %q failed", cmd.Keyword)
			c.emit(ctx, SearchFailedMsg{Generation: cmd.Generation, Err: err})
			return
		}
		c.emit(ctx, SearchResultMsg{Generation: cmd.Generation, Songs: songs})

	case PlayCmd:
		// Playback never waits on the duration; it is display-only.
		duration, err := c.youtube.LookupDuration(cmd.Song.ID)
		if err != nil {
			logger.Log.WithError(err).Warnf("duration lookup for %s failed", cmd.Song.ID)
			duration = 0
		}
		c.emit(ctx, SongDurationMsg{Duration: duration})

		url, err := c.resolver.Resolve(cmd.Song.ID)
		if err != nil {
			logger.Log.WithError(err).Errorf("could not resolve stream for %s", cmd.Song.ID)
			return
		}
		if err := c.player.Load(url); err != nil {
			logger.Log.WithError(err).Error("loadfile failed")
			return
		}
		if err := c.player.Play(); err != nil {
			logger.Log.WithError(err).Error("play failed")
			return
		}
		if c.history != nil {
			if err := c.history.Record(cmd.Song); err != nil {
				logger.Log.WithError(err).Warn("could not record play history")
			}
		}

	case SavePlaylistCmd:
		if err := c.playlist.Save(cmd.Entries); err != nil {
			// Persistence is best-effort.
			logger.Log.WithError(err).Warn("could not save playlist")
		}

	case SetPauseCmd:
		if err := c.player.SetPause(cmd.Paused); err != nil {
			logger.Log.WithError(err).Warn("set pause failed")
		}
	}
}

func (c *Coordinator) handleEvent(ctx context.Context, ev ports.PlaybackEvent) {
	switch ev := ev.(type) {
	case ports.StartFile:
		c.emit(ctx, SongStartedMsg{At: time.Now()})
	case ports.EndFile:
		c.emit(ctx, SongStoppedMsg{Reason: ev.Reason})
	case ports.Unknown:
		logger.Log.Debugf("unhandled mpv event: %s", ev.Raw)
	}
}
