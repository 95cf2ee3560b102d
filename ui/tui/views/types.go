package views

import (
	"circleprogress/internal/animator"
	"circleprogress/ui/tui/state"

	zone "github.com/lrstanley/bubblezone"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height  int
	MouseX, MouseY int

	// Component States
	MenuCursor  int
	AnimCursor  float64
	SpinnerView string
	RingView    string
	ChartView   string
	RingState   animator.State
	Label       string
	ScrollY     int

	// Zones marks clickable regions. Pages scan their output with it.
	Zones *zone.Manager
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}

// scan resolves zone markers when a manager is present.
func (p ViewProps) scan(s string) string {
	if p.Zones == nil {
		return s
	}
	return p.Zones.Scan(s)
}

func (p ViewProps) mark(id, s string) string {
	if p.Zones == nil {
		return s
	}
	return p.Zones.Mark(id, s)
}
