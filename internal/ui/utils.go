package ui

import (
	"fmt"
	"time"
)

// truncate shortens s to at most length characters, counting runes so
// multibyte titles are never cut mid-character.
func truncate(s string, length int) string {
	if length <= 3 {
		return "..."
	}
	runes := []rune(s)
	if len(runes) > length {
		return string(runes[:length-3]) + "..."
	}
	return s
}

func formatDuration(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
