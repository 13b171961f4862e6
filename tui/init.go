package tui

import (
	"github.com/AvaAvarai/IndimensionalYoutube/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Init shuffles right away and starts listening to the player.
func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(
		b.spinnerC.Tick,
		b.handle(session.Shuffle{}),
		b.waitForPlayerEvent(),
	)
}
