// Package player drives an external mpv process over its JSON IPC socket.
package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"os/exec"
	"time"

	"xaudio/internal/logger"
	"xaudio/internal/ports"
)

const (
	socketCheckRetries  = 20
	socketCheckInterval = 100 * time.Millisecond
)

// request is the outbound command shape: {"command":[...]} plus a newline,
// which json.Encoder appends.
type request struct {
	Command []any `json:"command"`
}

type inboundLine struct {
	Event  string `json:"event"`
	Reason string `json:"reason"`
}

// StartProcess launches mpv in idle mode with its IPC server on socketPath
// and waits for the socket to appear. The process is expected to outlive the
// session; there is no supervision.
func StartProcess(socketPath string) (*exec.Cmd, error) {
	os.Remove(socketPath)

	cmd := exec.Command("mpv",
		"--idle",
		"--input-ipc-server="+socketPath,
		"--no-terminal",
		"--no-video",
	)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start mpv process: %w", err)
	}

	for range socketCheckRetries {
		if _, err := os.Stat(socketPath); err == nil {
			logger.Log.Info("mpv socket detected, process ready")
			return cmd, nil
		}
		time.Sleep(socketCheckInterval)
	}

	cmd.Process.Kill()
	return nil, fmt.Errorf("mpv started but socket did not appear at %s", socketPath)
}

// Client holds a persistent connection to the mpv IPC socket. Writes go
// through a JSON encoder; a reader goroutine decodes inbound lines into typed
// events. The event channel is closed when the connection dies.
type Client struct {
	conn   net.Conn
	enc    *json.Encoder
	events chan ports.PlaybackEvent
}

func Connect(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("could not connect to mpv socket: %w", err)
	}

	c := &Client{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		events: make(chan ports.PlaybackEvent),
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) readLoop() {
	defer close(c.events)

	scanner := bufio.NewScanner(c.conn)
	for scanner.Scan() {
		line := scanner.Bytes()
		var in inboundLine
		if err := json.Unmarshal(line, &in); err != nil {
			// Malformed lines are dropped, never fatal.
			logger.Log.WithError(err).Warnf("could not parse line from mpv: %s", line)
			continue
		}

		switch in.Event {
		case "start-file":
			c.events <- ports.StartFile{}
		case "end-file":
			c.events <- ports.EndFile{Reason: in.Reason}
		default:
			c.events <- ports.Unknown{Raw: string(line)}
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Log.WithError(err).Error("mpv socket read failed")
	}
}

func (c *Client) send(args ...any) error {
	if err := c.enc.Encode(request{Command: args}); err != nil {
		return fmt.Errorf("error sending mpv command: %w", err)
	}
	return nil
}

// Load replaces whatever mpv has queued with the given URL. Replace mode
// keeps exactly one track resident in the backend at a time.
func (c *Client) Load(url string) error {
	return c.send("loadfile", url, "replace")
}

func (c *Client) Play() error {
	return c.send("playlist-play-index", "0")
}

func (c *Client) SetPause(paused bool) error {
	flag := "no"
	if paused {
		flag = "yes"
	}
	return c.send("set", "pause", flag)
}

func (c *Client) Events() <-chan ports.PlaybackEvent {
	return c.events
}

func (c *Client) Close() error {
	return c.conn.Close()
}
