// Package resolver turns video identifiers into directly playable stream
// URLs by shelling out to yt-dlp.
package resolver

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"xaudio/internal/logger"
)

var execCommand = exec.Command

type YTDLPResolver struct{}

func NewYTDLPResolver() *YTDLPResolver {
	return &YTDLPResolver{}
}

func (r *YTDLPResolver) Resolve(id string) (string, error) {
	output, err := runYTDLP("-f", "bestaudio/best", "-g", "--", id)
	if err != nil {
		return "", err
	}

	url := strings.TrimSpace(string(output))
	if url == "" {
		return "", fmt.Errorf("yt-dlp returned no URL for ID %s", id)
	}

	// yt-dlp may print one URL per stream; the first is the audio one here.
	return strings.Split(url, "\n")[0], nil
}

func runYTDLP(args ...string) ([]byte, error) {
	cmd := execCommand("yt-dlp", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if stderr.Len() > 0 {
		logger.Log.Warnf("yt-dlp stderr (args: %v): %s", args, stderr.String())
	}

	if err != nil {
		return nil, fmt.Errorf("yt-dlp failed with: %s", strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}
