package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"circleprogress/internal/animator"
	"circleprogress/internal/collector"
	"circleprogress/internal/engine"
	"circleprogress/ui/tui/state"
	"circleprogress/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
)

// MockProvider for testing
type MockProvider struct {
	percent float64
	err     error
	closed  bool
}

func (p *MockProvider) Name() string { return collector.SourceCPU }

func (p *MockProvider) Sample(ctx context.Context) (collector.Sample, error) {
	if p.err != nil {
		return collector.Sample{}, p.err
	}
	return collector.Sample{Source: collector.SourceCPU, Percent: p.percent, At: time.Now()}, nil
}

func (p *MockProvider) Close(ctx context.Context) error {
	p.closed = true
	return nil
}

func testModel(p *MockProvider) *MainModel {
	opts := DefaultOptions()
	opts.Providers = func(string) (collector.Provider, error) { return p, nil }
	return InitialModel(opts)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMenuNavigation(t *testing.T) {
	model := testModel(&MockProvider{})

	// Initial state
	if model.menuCursor != 0 {
		t.Errorf("Expected initial menu cursor 0, got %d", model.menuCursor)
	}
	if model.state.CurrentPage != state.PageMenu {
		t.Errorf("Expected initial page PageMenu, got %v", model.state.CurrentPage)
	}

	// Test Down Navigation
	cmd := tea.KeyMsg{Type: tea.KeyDown, Runes: []rune{}, Alt: false}
	updatedModel, _ := model.Update(cmd)
	m := updatedModel.(*MainModel)

	if m.menuCursor != 1 {
		t.Errorf("Expected menu cursor 1 after Down key, got %d", m.menuCursor)
	}

	// Cursor stops at the last row
	for i := 0; i < 10; i++ {
		m.Update(cmd)
	}
	if m.menuCursor != len(views.MenuOptions)-1 {
		t.Errorf("Expected menu cursor %d at the bottom, got %d", len(views.MenuOptions)-1, m.menuCursor)
	}

	// Test Up Navigation
	cmd = tea.KeyMsg{Type: tea.KeyUp, Runes: []rune{}, Alt: false}
	updatedModel, _ = m.Update(cmd)
	m = updatedModel.(*MainModel)

	if m.menuCursor != len(views.MenuOptions)-2 {
		t.Errorf("Expected menu cursor %d after Up key, got %d", len(views.MenuOptions)-2, m.menuCursor)
	}
}

func TestMenuAnimationLogic(t *testing.T) {
	model := testModel(&MockProvider{})

	// Move cursor to 1
	model.menuCursor = 1

	// Initial animation cursor should be 0
	if model.animCursor != 0 {
		t.Errorf("Expected initial animCursor 0, got %f", model.animCursor)
	}

	// The spring physics should move animCursor towards menuCursor (1.0)

	// Frame 1
	animateMsg := AnimateMsg(time.Now())
	updatedModel, _ := model.Update(animateMsg)
	m := updatedModel.(*MainModel)

	if m.animCursor <= 0 {
		t.Errorf("Expected animCursor to increase after animation frame, got %f", m.animCursor)
	}
	if m.animCursor >= 1.0 {
		t.Errorf("Expected animCursor to not reach target immediately, got %f", m.animCursor)
	}

	// Frame 2
	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)
	prevCursor := m.animCursor

	// Frame 3
	updatedModel, _ = m.Update(animateMsg)
	m = updatedModel.(*MainModel)

	if m.animCursor <= prevCursor {
		t.Errorf("Expected animCursor to continue increasing, got %f (prev %f)", m.animCursor, prevCursor)
	}
}

func TestPageTransition(t *testing.T) {
	model := testModel(&MockProvider{})

	// Select last item (Console)
	model.menuCursor = len(views.MenuOptions) - 1
	cmd := tea.KeyMsg{Type: tea.KeyEnter, Runes: []rune{}, Alt: false}
	updatedModel, _ := model.Update(cmd)
	m := updatedModel.(*MainModel)

	if m.state.CurrentPage != state.PageConsole {
		t.Errorf("Expected page to change to PageConsole, got %v", m.state.CurrentPage)
	}

	// Go Back
	updatedModel, _ = m.Update(key("b"))
	m = updatedModel.(*MainModel)

	if m.state.CurrentPage != state.PageMenu {
		t.Errorf("Expected page to change back to PageMenu, got %v", m.state.CurrentPage)
	}
}

func TestManualGaugeKeys(t *testing.T) {
	m := testModel(&MockProvider{})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.state.CurrentPage != state.PageGauge || m.state.Source != "" {
		t.Fatalf("Expected manual gauge, got page %v source %q", m.state.CurrentPage, m.state.Source)
	}
	if m.provider != nil {
		t.Errorf("Expected no provider in manual mode")
	}

	m.Update(key("+"))
	if m.ring.Progress() != 5 || m.ring.Displayed() != 5 {
		t.Errorf("Expected instant 5, got progress %v displayed %v", m.ring.Progress(), m.ring.Displayed())
	}

	_, cmd := m.Update(key("7"))
	if cmd == nil {
		t.Errorf("Expected a frame command after an animated set")
	}
	if m.ring.Progress() != 70 {
		t.Errorf("Expected anchor 70, got %v", m.ring.Progress())
	}
	if m.ring.State() != animator.Running {
		t.Errorf("Expected running animation, got %v", m.ring.State())
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.ring.State() != animator.Paused {
		t.Errorf("Expected space to pause, got %v", m.ring.State())
	}
	m.Update(key("s"))
	if m.ring.State() != animator.Running {
		t.Errorf("Expected s to resume, got %v", m.ring.State())
	}

	logs := strings.Join(m.state.ConsoleLogs, "\n")
	if !strings.Contains(logs, "idle -> running") {
		t.Errorf("Expected transition in console log, got:\n%s", logs)
	}

	if !strings.Contains(m.View(), m.ring.Label()) {
		t.Errorf("Expected gauge view to show label %q", m.ring.Label())
	}
}

func TestGaugeFollowsSource(t *testing.T) {
	p := &MockProvider{percent: 95}
	m := testModel(p)
	m.menuCursor = 1

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected a fetch command when opening a sensor source")
	}
	if !m.polling {
		t.Errorf("Expected a fetch in flight")
	}

	msg := fetchSampleCmd(p)()
	_, cmd = m.Update(msg)

	if !m.state.HasSample {
		t.Fatal("Expected the sample to be recorded")
	}
	if m.state.Result.Status != engine.StatusCritical {
		t.Errorf("Expected CRIT for 95%%, got %s", m.state.Result.Status)
	}
	if m.ring.Progress() != 95 || cmd == nil {
		t.Errorf("Expected an animation towards 95, got anchor %v", m.ring.Progress())
	}
	if m.polling {
		t.Errorf("Expected polling flag cleared")
	}

	// Leaving the page closes the source and drops late readings.
	m.Update(key("b"))
	if !p.closed {
		t.Errorf("Expected provider closed on back")
	}
	p.percent = 10
	m.Update(fetchSampleCmd(p)())
	if m.ring.Progress() != 95 {
		t.Errorf("Expected late reading ignored, got %v", m.ring.Progress())
	}
}

func TestGaugeSourceError(t *testing.T) {
	p := &MockProvider{err: errors.New("sensor offline")}
	m := testModel(p)

	m.navigateTo(1)
	m.Update(fetchSampleCmd(p)())

	if m.state.Err == nil {
		t.Fatal("Expected sample error in state")
	}
	if m.ring.State() != animator.Idle {
		t.Errorf("Expected no animation after a failed reading, got %v", m.ring.State())
	}
	if !strings.Contains(m.View(), "sensor offline") {
		t.Errorf("Expected error on the gauge page")
	}
}

func TestTickPolls(t *testing.T) {
	p := &MockProvider{percent: 20}
	m := testModel(p)
	m.navigateTo(1)
	m.Update(fetchSampleCmd(p)())

	start := m.lastPoll
	m.Update(TickMsg(start.Add(time.Second)))
	if m.polling {
		t.Errorf("Expected no poll before the interval elapsed")
	}

	m.Update(TickMsg(start.Add(m.opts.Collector.PollInterval)))
	if !m.polling {
		t.Errorf("Expected a poll once the interval elapsed")
	}
	if m.history.Len() != 2 {
		t.Errorf("Expected one history point per tick, got %d", m.history.Len())
	}
}

func TestQuitDetachesRing(t *testing.T) {
	p := &MockProvider{percent: 40}
	m := testModel(p)
	m.navigateTo(1)

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Errorf("Expected quit command")
	}
	if !m.ring.Detached() {
		t.Errorf("Expected ring detached on quit")
	}
	if !p.closed {
		t.Errorf("Expected provider closed on quit")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Expected farewell view, got %q", m.View())
	}
}
