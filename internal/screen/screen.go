package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ailearn/internal/ui/layout"
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

// Closer is implemented by screens holding work that must stop when they
// leave the stack, such as a pending simulated delay.
type Closer interface {
	Close()
}

// EscapeHandler is implemented by screens that use Esc themselves instead
// of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}
