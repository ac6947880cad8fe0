package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Setup points the logger at a file under the user config dir. The TUI owns
// the terminal, so nothing may write to stdout or stderr once it is up.
func Setup(level string) error {
	logPath := filepath.Join(os.TempDir(), "xaudio.log")
	if configDir, err := os.UserConfigDir(); err == nil {
		dir := filepath.Join(configDir, "xaudio")
		if err := os.MkdirAll(dir, 0o755); err == nil {
			logPath = filepath.Join(dir, "xaudio.log")
		}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	Log.SetOutput(file)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)
	return nil
}
