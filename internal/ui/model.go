// Package ui implements the terminal front end: a bubbletea model holding
// the whole application state, updated only by key input and coordinator
// messages.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"xaudio/internal/coordinator"
	"xaudio/internal/domain"
	"xaudio/internal/queue"
)

// Mode is the exclusive UI context; it decides the active key bindings and
// which list is on screen.
type Mode int

const (
	ModePlaying Mode = iota
	ModeSearchInput
	ModeSearchBrowse
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "Now Playing"
	case ModeSearchInput, ModeSearchBrowse:
		return "Song Search"
	default:
		return "?"
	}
}

// pollInterval paces progress redraws: coarse enough to avoid spinning, fine
// enough that the elapsed-time display feels live.
const pollInterval = 250 * time.Millisecond

// chromeRows is the screen estate not available to the list: header, rules,
// page line, bottom bar.
const chromeRows = 6

type Model struct {
	mode Mode

	playlist      []domain.SongEntry
	searchResults []domain.SongEntry

	page     int
	pageSize int
	selected int

	keyword   textinput.Model
	loading   bool
	searchGen int
	dedup     bool

	playing      bool
	paused       bool
	playingIndex int
	startedAt    time.Time
	pausedAt     time.Time
	songDuration time.Duration

	playQueue  []int
	queueIndex int
	shuffle    bool

	backendDown bool

	mailbox  *coordinator.Mailbox
	messages <-chan coordinator.Message

	keys   keymap
	styles Styles
	width  int
	height int
}

func NewModel(playlist []domain.SongEntry, mailbox *coordinator.Mailbox, messages <-chan coordinator.Message, dedup bool) Model {
	ti := textinput.New()
	ti.Placeholder = "keyword"
	ti.Prompt = "Search: "
	ti.CharLimit = 156

	return Model{
		mode:      ModePlaying,
		playlist:  playlist,
		keyword:   ti,
		dedup:     dedup,
		playQueue: queue.Build(len(playlist), false),
		mailbox:   mailbox,
		messages:  messages,
		keys:      newKeymap(),
		styles:    DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), waitForMessage(m.messages))
}

type tickMsg time.Time

// coordMsg wraps a coordinator message for delivery through bubbletea.
type coordMsg struct {
	msg coordinator.Message
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForMessage blocks on the coordinator's message channel inside
// bubbletea's runtime and is re-armed after every delivery, so messages are
// applied in arrival order.
func waitForMessage(ch <-chan coordinator.Message) tea.Cmd {
	return func() tea.Msg {
		return coordMsg{msg: <-ch}
	}
}
