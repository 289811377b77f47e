package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stringhandler/narrate"
)

// Run starts the interactive player for story and blocks until the user
// quits. sink receives /goto debug traces (nil disables them); startAddr,
// if non-empty, is visited immediately after Start.
func Run(story *narrate.Story, sink debugSink, startAddr string) error {
	p := tea.NewProgram(New(story, sink, startAddr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
