package views

import (
	"errors"
	"strings"
	"testing"

	"circleprogress/internal/animator"
	"circleprogress/internal/collector"
	"circleprogress/internal/engine"
	"circleprogress/ui/tui/state"
)

func TestMenuViewListsOptions(t *testing.T) {
	out := MenuView{}.Render(state.AppState{}, ViewProps{Width: 80, Height: 40, MenuCursor: 1, AnimCursor: 1})

	for _, opt := range MenuOptions {
		if !strings.Contains(out, opt) {
			t.Errorf("menu missing %q", opt)
		}
	}
}

func TestGaugeView(t *testing.T) {
	tests := []struct {
		name  string
		state state.AppState
		want  string
	}{
		{"manual", state.AppState{}, "Driven from the keyboard."},
		{"waiting", state.AppState{Source: "cpu"}, "Waiting for the first reading"},
		{"error", state.AppState{Source: "cpu", Err: errors.New("boom")}, "Error: boom"},
		{
			"reading",
			state.AppState{
				Source:    "cpu",
				HasSample: true,
				Sample:    collector.Sample{Source: "cpu", Percent: 91, Detail: "8 cores"},
				Result:    engine.CheckResult{Name: "cpu Usage", Value: 91, Status: engine.StatusCritical},
			},
			"91.0% [CRIT]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := GaugeView{}.Render(tt.state, ViewProps{
				Width:     100,
				RingView:  "RING",
				Label:     "12.5%",
				RingState: animator.Paused,
			})
			for _, want := range []string{tt.want, "RING", "12.5%", "[paused]"} {
				if !strings.Contains(out, want) {
					t.Errorf("gauge view missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestConsoleViewScroll(t *testing.T) {
	s := state.AppState{}
	for i := 0; i < 50; i++ {
		s.ConsoleLogs = append(s.ConsoleLogs, strings.Repeat("x", i%5)+"line")
	}
	s.ConsoleLogs[49] = "last line"

	out := ConsoleView{}.Render(s, ViewProps{Width: 80, Height: 20, ScrollY: 1000})
	if !strings.Contains(out, "last line") {
		t.Errorf("expected scrolling past the end to show the last line")
	}
}

func TestColorForStatus(t *testing.T) {
	if ColorForStatus(engine.StatusCritical).GetForeground() == ColorForStatus(engine.StatusHealthy).GetForeground() {
		t.Errorf("expected distinct colors for CRIT and OK")
	}
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		total, height, scroll int
		start, end            int
	}{
		{0, 10, 0, 0, 0},
		{5, 10, 3, 0, 5},
		{50, 10, 0, 0, 10},
		{50, 10, 15, 15, 25},
		{50, 10, 99, 40, 50},
		{50, 10, -4, 0, 10},
	}

	for _, tt := range tests {
		start, end := visibleWindow(tt.total, tt.height, tt.scroll)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleWindow(%d, %d, %d) = %d, %d; want %d, %d",
				tt.total, tt.height, tt.scroll, start, end, tt.start, tt.end)
		}
	}
}
