package ui

import (
	"fmt"
	"strings"
	"time"
)

const titlePadding = 12

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.ruleView())
	b.WriteString("\n")
	b.WriteString(m.listView())
	b.WriteString(m.ruleView())
	b.WriteString("\n")
	b.WriteString(m.bottomView())
	return b.String()
}

func (m Model) headerView() string {
	if m.backendDown {
		return m.styles.ErrorText.Render("Playback backend lost. Restart xaudio.")
	}
	if m.playing && m.playingIndex < len(m.playlist) {
		shuffleIcon := ""
		if m.shuffle {
			shuffleIcon = "~"
		}
		stateIcon := "▶"
		if m.paused {
			stateIcon = "⏸"
		}
		elapsed := formatDuration(m.elapsed())
		total := formatDuration(m.songDuration)
		title := truncate(m.playlist[m.playingIndex].Title, 60)
		return m.styles.Title.Render(fmt.Sprintf("%s%s %s - %s / %s", stateIcon, shuffleIcon, title, elapsed, total))
	}
	return m.styles.Title.Render(m.mode.String())
}

// elapsed is the playback position shown in the header. While paused it
// stays frozen at the moment the pause started.
func (m Model) elapsed() time.Duration {
	if m.paused {
		return m.pausedAt.Sub(m.startedAt)
	}
	return time.Since(m.startedAt)
}

func (m Model) ruleView() string {
	return m.styles.Rule.Render(strings.Repeat("─", max(1, m.width)))
}

func (m Model) listView() string {
	list := m.activeList()
	window := pageOf(list, m.page, m.pageSize)

	var b strings.Builder
	if len(window) == 0 {
		b.WriteString("Nothing to show. Hit search and add something here.\n")
		for range max(0, m.pageSize) {
			b.WriteString("\n")
		}
		return b.String()
	}

	playlistIDs := make(map[string]struct{}, len(m.playlist))
	if m.mode == ModeSearchBrowse {
		for _, entry := range m.playlist {
			playlistIDs[entry.ID] = struct{}{}
		}
	}

	for i, item := range window {
		absolute := i + m.page*m.pageSize
		line := fmt.Sprintf("%d. %s", absolute+1, truncate(item.Title, max(1, m.width-titlePadding)))

		style := m.styles.ListNormal
		if m.mode == ModeSearchBrowse {
			if _, inPlaylist := playlistIDs[item.ID]; inPlaylist {
				style = m.styles.ListInPlaylist
			}
		} else if m.playing && absolute == m.playingIndex {
			style = m.styles.ListPlaying
		}
		if i == m.selected {
			style = m.styles.ListSelected
		}

		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	// Pad so the footer stays put on short pages.
	for range m.pageSize - len(window) {
		b.WriteString("\n")
	}

	total := TotalPages(len(list), m.pageSize)
	b.WriteString(m.styles.PageInfo.Render(fmt.Sprintf("Page: %d/%d", m.page+1, total)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) bottomView() string {
	if m.loading {
		return "Loading..."
	}

	switch m.mode {
	case ModeSearchInput:
		return m.keyword.View()
	case ModeSearchBrowse:
		return m.styles.Help.Render("[j/k] Up/Down  [<] Previous page  [>] Next page  [Enter] Add  [/] Search  [Esc] Back")
	default:
		shuffleState := "OFF"
		if m.shuffle {
			shuffleState = "ON"
		}
		return m.styles.Help.Render(fmt.Sprintf(
			"[/] Search  [x] Remove  [Enter] Play  [n/p] Next/Prev  [Space] Pause  [s] Shuffle %s  [Tab] Back to search  [q] Quit",
			shuffleState,
		))
	}
}
