package screen

import (
	tea "charm.land/bubbletea/v2"

	uilayout "sheetwise/internal/ui/layout"
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
	KeyHints() []uilayout.KeyHint
}

// StatusProvider is an optional interface for screens that want to show
// a short status on the right side of the header, e.g. "unsaved".
type StatusProvider interface {
	Status() string
}

// EscInterceptor lets a screen consume Esc (to back out of an overlay
// or mode) instead of the router popping the screen.
type EscInterceptor interface {
	InterceptEsc() bool
}
