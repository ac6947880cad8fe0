package ui

import "github.com/charmbracelet/bubbles/key"

// keymap declares every binding; which ones are consulted depends on the
// active mode.
type keymap struct {
	forceQuit key.Binding

	// Playing
	quit        key.Binding
	play        key.Binding
	gotoSearch  key.Binding
	gotoBrowse  key.Binding
	down        key.Binding
	up          key.Binding
	remove      key.Binding
	nextPage    key.Binding
	prevPage    key.Binding
	nextSong    key.Binding
	prevSong    key.Binding
	shuffle     key.Binding
	togglePause key.Binding

	// SearchInput
	confirm key.Binding
	cancel  key.Binding

	// SearchBrowse
	add  key.Binding
	back key.Binding
}

func newKeymap() keymap {
	return keymap{
		forceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		play:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		gotoSearch:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		gotoBrowse:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "back to search")),
		down:        key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "down")),
		up:          key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "up")),
		remove:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "remove")),
		nextPage:    key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "next page")),
		prevPage:    key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "previous page")),
		nextSong:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next song")),
		prevSong:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "previous song")),
		shuffle:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		togglePause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
		cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		add:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to playlist")),
		back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
	}
}
