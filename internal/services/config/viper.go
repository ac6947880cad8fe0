package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"xaudio/internal/domain"
	"xaudio/internal/logger"
	"xaudio/internal/ports"
)

type ViperConfigService struct{}

func NewViperConfigService() ports.ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Log.WithError(err).Warn("could not find user config directory, using current directory")
	}

	if configDir != "" {
		xaudioConfigDir := filepath.Join(configDir, "xaudio")
		if err := os.MkdirAll(xaudioConfigDir, 0o755); err != nil {
			logger.Log.WithError(err).Error("could not create xaudio config directory")
		} else {
			viper.AddConfigPath(xaudioConfigDir)
		}
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")

	home, _ := os.UserHomeDir()

	viper.SetDefault("youtubeApiKey", "")
	viper.SetDefault("socketPath", filepath.Join(os.TempDir(), "xaudio-mpv-socket"))
	viper.SetDefault("playlistPath", filepath.Join(home, ".xaudio-playlist"))
	viper.SetDefault("historyLimit", 50)
	viper.SetDefault("searchLimit", 50)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("playlist.dedup", false)

	// The API key is a credential; the environment wins over the file.
	viper.BindEnv("youtubeApiKey", "XAUDIO_YOUTUBE_API_KEY", "YOUTUBE_API_KEY")

	return &ViperConfigService{}
}

func (s *ViperConfigService) Load() (domain.Config, error) {
	var cfg domain.Config

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			logger.Log.Info("config file not found, creating with default values")
			if err := viper.SafeWriteConfig(); err != nil {
				return cfg, err
			}
		} else {
			return cfg, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
