package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"xaudio/internal/coordinator"
	"xaudio/internal/logger"
	"xaudio/internal/ports"
	"xaudio/internal/services/config"
	"xaudio/internal/services/player"
	"xaudio/internal/services/resolver"
	"xaudio/internal/services/storage"
	"xaudio/internal/services/youtube"
	"xaudio/internal/ui"
)

func main() {
	cfg, err := config.NewViperConfigService().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Setup(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "could not set up logging: %v\n", err)
		os.Exit(1)
	}

	historyPath := filepath.Join(os.TempDir(), "xaudio-history.db")
	if configDir, err := os.UserConfigDir(); err == nil {
		historyPath = filepath.Join(configDir, "xaudio", "history.db")
	}

	if len(os.Args) > 1 && os.Args[1] == "history" {
		printHistory(historyPath, cfg.HistoryLimit)
		return
	}

	if cfg.YoutubeAPIKey == "" {
		fmt.Fprintln(os.Stderr, "no YouTube API key configured; set XAUDIO_YOUTUBE_API_KEY or add youtubeApiKey to the config file")
		os.Exit(1)
	}

	// The playback process and its socket are load-bearing: without them the
	// whole backend is useless, so failing here is fatal.
	mpvProcess, err := player.StartProcess(cfg.SocketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start playback backend: %v\n", err)
		os.Exit(1)
	}
	defer mpvProcess.Process.Kill()

	mpvClient, err := player.Connect(cfg.SocketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to playback backend: %v\n", err)
		os.Exit(1)
	}
	defer mpvClient.Close()

	playlistFile := storage.NewPlaylistFile(cfg.PlaylistPath)
	entries, err := playlistFile.Load()
	if err != nil {
		logger.Log.WithError(err).Warn("could not load playlist, starting empty")
		entries = nil
	}

	var history ports.HistoryStore
	if historyStore, err := storage.NewHistoryStore(historyPath, cfg.HistoryLimit); err != nil {
		logger.Log.WithError(err).Warn("play history disabled")
	} else {
		history = historyStore
		defer historyStore.Close()
	}

	mailbox := coordinator.NewMailbox()
	messages := make(chan coordinator.Message, 1)

	coord := coordinator.New(
		youtube.NewClient(cfg.YoutubeAPIKey, cfg.SearchLimit),
		resolver.NewYTDLPResolver(),
		mpvClient,
		playlistFile,
		history,
		mailbox.C(),
		messages,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go coord.Run(ctx)

	model := ui.NewModel(entries, mailbox, messages, cfg.Playlist.Dedup)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "xaudio exited with an error: %v\n", err)
		os.Exit(1)
	}
}

func printHistory(dbPath string, limit int) {
	store, err := storage.NewHistoryStore(dbPath, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open play history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read play history: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range entries {
		fmt.Printf("%s  %s - %s\n", entry.PlayedAt.Format("2006-01-02 15:04"), entry.Song.ID, entry.Song.Title)
	}
}
