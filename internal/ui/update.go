package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"xaudio/internal/coordinator"
	"xaudio/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pageSize = max(1, msg.Height-chromeRows)
		m.keyword.Width = max(20, msg.Width-12)
		m.clampCursors()
		return m, nil

	case tickMsg:
		return m, tick()

	case coordMsg:
		m.applyMessage(msg.msg)
		return m, waitForMessage(m.messages)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.forceQuit) {
			return m, tea.Quit
		}
		switch m.mode {
		case ModePlaying:
			return m.updatePlaying(msg)
		case ModeSearchInput:
			return m.updateSearchInput(msg)
		case ModeSearchBrowse:
			return m.updateSearchBrowse(msg)
		}
	}

	return m, nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.play):
		m.playAt(m.absoluteIndex())
	case key.Matches(msg, m.keys.gotoSearch):
		return m.enterSearchInput()
	case key.Matches(msg, m.keys.gotoBrowse):
		m.switchMode(ModeSearchBrowse)
	case key.Matches(msg, m.keys.down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.remove):
		m.removeSelected()
	case key.Matches(msg, m.keys.nextPage):
		m.changePage(1)
	case key.Matches(msg, m.keys.prevPage):
		m.changePage(-1)
	case key.Matches(msg, m.keys.nextSong):
		m.playNext()
	case key.Matches(msg, m.keys.prevSong):
		m.playPrev()
	case key.Matches(msg, m.keys.shuffle):
		m.shuffle = !m.shuffle
		m.rebuildQueue()
	case key.Matches(msg, m.keys.togglePause):
		if m.playing && m.mailbox.Post(coordinator.SetPauseCmd{Paused: !m.paused}) {
			m.paused = !m.paused
			if m.paused {
				m.pausedAt = time.Now()
			} else {
				// Shift the start forward by the pause so elapsed time
				// excludes it.
				m.startedAt = m.startedAt.Add(time.Since(m.pausedAt))
			}
		}
	}
	return m, nil
}

func (m Model) updateSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		// The keyword buffer survives until the next search is opened.
		m.switchMode(ModePlaying)
		m.keyword.Blur()
		return m, nil
	case key.Matches(msg, m.keys.confirm):
		keyword := strings.TrimSpace(m.keyword.Value())
		if keyword == "" {
			return m, nil
		}
		m.searchGen++
		if m.mailbox.Post(coordinator.SearchCmd{Keyword: keyword, Generation: m.searchGen}) {
			m.loading = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.keyword, cmd = m.keyword.Update(msg)
	return m, cmd
}

func (m Model) updateSearchBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.switchMode(ModePlaying)
	case key.Matches(msg, m.keys.gotoSearch):
		return m.enterSearchInput()
	case key.Matches(msg, m.keys.down):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.up):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.nextPage):
		m.changePage(1)
	case key.Matches(msg, m.keys.prevPage):
		m.changePage(-1)
	case key.Matches(msg, m.keys.add):
		m.addSelected()
	}
	return m, nil
}

func (m Model) enterSearchInput() (tea.Model, tea.Cmd) {
	m.switchMode(ModeSearchInput)
	m.keyword.Reset()
	return m, tea.Batch(m.keyword.Focus(), textinput.Blink)
}

// applyMessage handles coordinator messages; these apply regardless of the
// current mode.
func (m *Model) applyMessage(msg coordinator.Message) {
	switch msg := msg.(type) {
	case coordinator.SearchResultMsg:
		if msg.Generation != m.searchGen {
			logger.Log.Debugf("discarding stale search result (generation %d, latest %d)", msg.Generation, m.searchGen)
			return
		}
		m.searchResults = msg.Songs
		m.switchMode(ModeSearchBrowse)
		m.loading = false

	case coordinator.SearchFailedMsg:
		if msg.Generation == m.searchGen {
			m.loading = false
		}

	case coordinator.SongStartedMsg:
		m.playing = true
		m.paused = false
		m.startedAt = msg.At
		m.pausedAt = time.Time{}

	case coordinator.SongStoppedMsg:
		m.playing = false
		if msg.Reason == "eof" {
			m.playNext()
		}

	case coordinator.SongDurationMsg:
		m.songDuration = msg.Duration

	case coordinator.BackendDownMsg:
		m.backendDown = true
		m.playing = false
	}
}
