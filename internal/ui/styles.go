package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title          lipgloss.Style
	Rule           lipgloss.Style
	ListNormal     lipgloss.Style
	ListSelected   lipgloss.Style
	ListPlaying    lipgloss.Style
	ListInPlaylist lipgloss.Style
	PageInfo       lipgloss.Style
	Help           lipgloss.Style
	ErrorText      lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{}
	s.Title = lipgloss.NewStyle().Bold(true)
	s.Rule = lipgloss.NewStyle().Faint(true)
	s.ListNormal = lipgloss.NewStyle()
	s.ListSelected = lipgloss.NewStyle().Reverse(true)
	s.ListPlaying = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	s.ListInPlaylist = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	s.PageInfo = lipgloss.NewStyle().Faint(true)
	s.Help = lipgloss.NewStyle().Faint(true)
	s.ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	return s
}
