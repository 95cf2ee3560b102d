package ring

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

const (
	// StartAngle puts the start of the arc at 12 o'clock.
	StartAngle = -90.0
)

// Kind tags a draw command.
type Kind int

const (
	KindCircle Kind = iota
	KindArc
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Stroke holds the pen settings shared by the ring and the arc.
type Stroke struct {
	Color     lipgloss.Color
	Width     float64
	RoundCap  bool
	AntiAlias bool
}

// Command is one declarative drawing step. Only the fields relevant to
// Kind are set.
type Command struct {
	Kind Kind

	// Circle and arc.
	CenterX, CenterY float64
	Radius           float64
	Oval             Rect
	Stroke           Stroke

	// Arc only, in degrees. Positive sweeps run clockwise.
	StartAngle float64
	SweepAngle float64
	UseCenter  bool

	// Text only. X is the left edge, Y the baseline.
	Text     string
	X, Y     float64
	Color    lipgloss.Color
	FontSize float64
	Bold     bool
}

// TextMeasurer returns the advance width of a string in ring units.
type TextMeasurer interface {
	MeasureText(text string, fontSize float64, bold bool) float64
}

// TextMeasurerFunc adapts a function to TextMeasurer.
type TextMeasurerFunc func(text string, fontSize float64, bold bool) float64

func (f TextMeasurerFunc) MeasureText(text string, fontSize float64, bold bool) float64 {
	return f(text, fontSize, bold)
}

// CellMeasurer measures text as terminal cells, each cell being CellWidth
// ring units wide.
type CellMeasurer struct {
	CellWidth float64
}

func (m CellMeasurer) MeasureText(text string, _ float64, _ bool) float64 {
	return float64(lipgloss.Width(text)) * m.CellWidth
}

// Surface consumes a rendered command list.
type Surface interface {
	Size() Size
	Measurer() TextMeasurer
	Draw(cmds []Command)
}

// FormatLabel formats a progress value the way the label shows it.
func FormatLabel(progress float64) string {
	return strconv.FormatFloat(progress, 'f', 1, 64) + "%"
}

// SweepAngle converts a progress percentage to degrees. Out-of-range values
// are passed through.
func SweepAngle(progress float64) float64 {
	return progress * 360 / 100
}

// Render builds the ring, arc and label commands for one frame. It holds no
// state and does not clamp progress.
func Render(progress, width, height float64, style StyleConfig, tm TextMeasurer) []Command {
	g := NewGeometry(width, height, style.RingWidth)

	stroke := Stroke{
		Color:     style.RingColor,
		Width:     style.RingWidth,
		RoundCap:  true,
		AntiAlias: true,
	}

	cmds := make([]Command, 0, 3)
	cmds = append(cmds, Command{
		Kind:    KindCircle,
		CenterX: g.Center,
		CenterY: g.Center,
		Radius:  g.Radius,
		Stroke:  stroke,
	})

	stroke.Color = style.ProgressColor
	cmds = append(cmds, Command{
		Kind:       KindArc,
		CenterX:    g.Center,
		CenterY:    g.Center,
		Radius:     g.Radius,
		Oval:       g.Bounds(),
		Stroke:     stroke,
		StartAngle: StartAngle,
		SweepAngle: SweepAngle(progress),
	})

	text := FormatLabel(progress)
	var textWidth float64
	if tm != nil {
		textWidth = tm.MeasureText(text, style.LabelFontSize, style.LabelBold)
	}
	cmds = append(cmds, Command{
		Kind:     KindText,
		Text:     text,
		X:        g.Center - textWidth/2,
		Y:        g.Center + style.LabelFontSize/2,
		Color:    style.LabelColor,
		FontSize: style.LabelFontSize,
		Bold:     style.LabelBold,
	})
	return cmds
}

// RenderTo renders onto a surface using the surface's own size and measurer.
func RenderTo(s Surface, progress float64, style StyleConfig) {
	size := s.Size()
	s.Draw(Render(progress, size.Width, size.Height, style, s.Measurer()))
}

// View is the capability a host adapter drives.
type View interface {
	Measure(c Constraints) Size
	Render(s Surface)
	OnDetach()
}
