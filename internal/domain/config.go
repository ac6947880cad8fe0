package domain

type Config struct {
	YoutubeAPIKey string         `mapstructure:"youtubeApiKey"`
	SocketPath    string         `mapstructure:"socketPath"`
	PlaylistPath  string         `mapstructure:"playlistPath"`
	HistoryLimit  int            `mapstructure:"historyLimit"`
	SearchLimit   int            `mapstructure:"searchLimit"`
	LogLevel      string         `mapstructure:"logLevel"`
	Playlist      PlaylistConfig `mapstructure:"playlist"`
}

type PlaylistConfig struct {
	Dedup bool `mapstructure:"dedup"`
}
