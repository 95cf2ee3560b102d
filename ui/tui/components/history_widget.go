package components

import (
	"fmt"
	"strings"

	"circleprogress/internal/animator"
	"circleprogress/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pauseMarker = "▲"

// trace is one recorded ring reading.
type trace struct {
	value  float64
	paused bool
}

// HistoryWidget keeps a rolling trace of the value the ring displays and
// the animator state it was in, so paused stretches show under the line.
type HistoryWidget struct {
	chart    linechart.Model
	traces   []trace
	capacity int
	width    int
	height   int
}

var _ Component = (*HistoryWidget)(nil)

func NewHistoryWidget(width, height, capacity int) *HistoryWidget {
	capacity = max(capacity, 2)
	return &HistoryWidget{
		chart:    linechart.New(width, height, 0, float64(capacity-1), 0, 100),
		traces:   make([]trace, 0, capacity),
		capacity: capacity,
		width:    width,
		height:   height,
	}
}

func (h *HistoryWidget) Init() tea.Cmd { return nil }

func (h *HistoryWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

// Record appends a reading taken while the ring was in st. The chart range
// is fixed at [0,100] so readings are clamped; the ring may show anything.
func (h *HistoryWidget) Record(value float64, st animator.State) {
	h.traces = append(h.traces, trace{
		value:  max(0, min(100, value)),
		paused: st == animator.Paused,
	})
	if len(h.traces) > h.capacity {
		h.traces = h.traces[1:]
	}
}

// Len reports how many readings are held.
func (h *HistoryWidget) Len() int { return len(h.traces) }

// Values returns a copy of the held readings, oldest first.
func (h *HistoryWidget) Values() []float64 {
	out := make([]float64, len(h.traces))
	for i, tr := range h.traces {
		out[i] = tr.value
	}
	return out
}

// PausedCount reports how many held readings were taken while paused.
func (h *HistoryWidget) PausedCount() int {
	n := 0
	for _, tr := range h.traces {
		if tr.paused {
			n++
		}
	}
	return n
}

func (h *HistoryWidget) Resize(w, ht int) {
	h.width, h.height = w, ht
	h.chart.Resize(w, ht)
}

// markerRow places a marker under every paused reading, spread over the
// chart width the same way the x axis spreads the samples.
func (h *HistoryWidget) markerRow() string {
	if h.width <= 0 {
		return ""
	}
	row := []rune(strings.Repeat(" ", h.width))
	span := h.capacity - 1
	for i, tr := range h.traces {
		if !tr.paused {
			continue
		}
		x := i * (h.width - 1) / span
		row[x] = []rune(pauseMarker)[0]
	}
	return lipgloss.NewStyle().Foreground(styles.Warning).Render(string(row))
}

func (h *HistoryWidget) caption() string {
	if len(h.traces) == 0 {
		return lipgloss.NewStyle().Foreground(styles.Idle).Render("no readings yet")
	}
	last := h.traces[len(h.traces)-1].value
	text := fmt.Sprintf("last %.1f%%", last)
	if n := h.PausedCount(); n > 0 {
		text += fmt.Sprintf("  %s paused %d/%d", pauseMarker, n, len(h.traces))
	}
	return lipgloss.NewStyle().Foreground(styles.Idle).Render(text)
}

func (h *HistoryWidget) View() string {
	h.chart.Clear()
	for i := 1; i < len(h.traces); i++ {
		h.chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i - 1), Y: h.traces[i-1].value},
			canvas.Float64Point{X: float64(i), Y: h.traces[i].value},
		)
	}
	h.chart.DrawXYAxisAndLabel()

	parts := []string{
		lipgloss.NewStyle().Bold(true).Render("Progress History"),
		h.chart.View(),
	}
	if h.PausedCount() > 0 {
		parts = append(parts, h.markerRow())
	}
	parts = append(parts, h.caption())

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
