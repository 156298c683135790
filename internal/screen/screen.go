package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vrfit/internal/ui/layout"
)

// Screen is one page of the assessment UI. The router owns a stack of them
// and the app frames the active one with a header and footer.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the (possibly new) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only.
	View(width, height int) string

	// Title is shown centered in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put short status text on the right of the
// header, such as the current question position.
type StatusProvider interface {
	Status() string
}
