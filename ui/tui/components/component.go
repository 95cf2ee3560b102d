package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a widget hosted by a page. Update returns the component
// itself so pages can keep a concrete pointer.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// Detachable is implemented by components that hold a frame subscription
// and must release it when removed from the screen.
type Detachable interface {
	OnDetach()
}
