package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/roscourse/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is an optional interface for screens that own pending work which
// must stop once the screen leaves the stack.
type Closer interface {
	Close()
}

// OpenChapterMsg asks the application to show the chapter with the given id.
// Unknown ids fall back to the chapter listing.
type OpenChapterMsg struct {
	ID int
}

// StatusProvider is an optional interface for screens that show a short
// status on the right of the header.
type StatusProvider interface {
	Status() string
}
