package components

import (
	"math"

	"circleprogress/internal/ring"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
)

// Braille dot positions (col, row) → bit offset:
//
//	(0,0)=0  (1,0)=3
//	(0,1)=1  (1,1)=4
//	(0,2)=2  (1,2)=5
//	(0,3)=6  (1,3)=7
var brailleBits = [2][4]uint{
	{0, 1, 2, 6},
	{3, 4, 5, 7},
}

const (
	dotsPerCellX = 2
	dotsPerCellY = 4
)

// TermSurface is a ring.Surface backed by a terminal cell grid. Ring units
// are scaled uniformly so the measured size fits the grid; each cell holds a
// 2x4 braille dot block, which keeps circles round on typical fonts.
type TermSurface struct {
	cols, rows int
	size       ring.Size
	scale      float64 // dots per ring unit

	canvas canvas.Model
}

// NewTermSurface creates a cols x rows surface that presents itself to the
// renderer as a size-unit view.
func NewTermSurface(cols, rows int, size ring.Size) *TermSurface {
	cols = max(cols, 1)
	rows = max(rows, 1)

	scale := 0.0
	if size.Width > 0 && size.Height > 0 {
		scale = min(
			float64(cols*dotsPerCellX)/size.Width,
			float64(rows*dotsPerCellY)/size.Height,
		)
	}

	return &TermSurface{
		cols:   cols,
		rows:   rows,
		size:   size,
		scale:  scale,
		canvas: canvas.New(cols, rows),
	}
}

func (s *TermSurface) Size() ring.Size {
	return s.size
}

// Measurer reports text widths in ring units: one cell per character.
func (s *TermSurface) Measurer() ring.TextMeasurer {
	if s.scale == 0 {
		return ring.CellMeasurer{}
	}
	return ring.CellMeasurer{CellWidth: dotsPerCellX / s.scale}
}

type cellLayer struct {
	ring, arc uint8
}

// Draw rasterizes the commands onto the canvas, replacing what was there.
func (s *TermSurface) Draw(cmds []ring.Command) {
	layers := make([]cellLayer, s.cols*s.rows)

	var ringColor, arcColor lipgloss.Color
	for _, c := range cmds {
		switch c.Kind {
		case ring.KindCircle:
			ringColor = c.Stroke.Color
			s.plot(layers, func(l *cellLayer, bit uint8) { l.ring |= bit }, func(x, y float64) bool {
				return onStroke(c, x, y)
			})
		case ring.KindArc:
			if c.SweepAngle == 0 {
				continue
			}
			arcColor = c.Stroke.Color
			s.plot(layers, func(l *cellLayer, bit uint8) { l.arc |= bit }, func(x, y float64) bool {
				return onArc(c, x, y)
			})
		}
	}

	ringStyle := lipgloss.NewStyle().Foreground(ringColor)
	arcStyle := lipgloss.NewStyle().Foreground(arcColor)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			l := layers[row*s.cols+col]
			cell := canvas.Cell{Rune: ' '}
			switch {
			case l.arc != 0:
				cell = canvas.Cell{Rune: rune(0x2800 + int(l.ring|l.arc)), Style: arcStyle}
			case l.ring != 0:
				cell = canvas.Cell{Rune: rune(0x2800 + int(l.ring)), Style: ringStyle}
			}
			s.canvas.SetCell(canvas.Point{X: col, Y: row}, cell)
		}
	}

	for _, c := range cmds {
		if c.Kind == ring.KindText {
			s.drawText(c)
		}
	}
}

// plot visits every dot, tests its center in ring units and sets its bit.
func (s *TermSurface) plot(layers []cellLayer, set func(*cellLayer, uint8), hit func(x, y float64) bool) {
	if s.scale == 0 {
		return
	}
	for dy := 0; dy < s.rows*dotsPerCellY; dy++ {
		y := (float64(dy) + 0.5) / s.scale
		for dx := 0; dx < s.cols*dotsPerCellX; dx++ {
			x := (float64(dx) + 0.5) / s.scale
			if !hit(x, y) {
				continue
			}
			l := &layers[(dy/dotsPerCellY)*s.cols+dx/dotsPerCellX]
			set(l, 1<<brailleBits[dx%dotsPerCellX][dy%dotsPerCellY])
		}
	}
}

// drawText places the label on the cell row holding the visual middle of
// the glyphs, i.e. half a font size above the baseline.
func (s *TermSurface) drawText(c ring.Command) {
	if s.scale == 0 {
		return
	}
	row := int(math.Floor((c.Y - c.FontSize/2) * s.scale / dotsPerCellY))
	col := int(math.Floor(c.X * s.scale / dotsPerCellX))
	if row < 0 || row >= s.rows {
		return
	}

	st := lipgloss.NewStyle().Foreground(c.Color).Bold(c.Bold)
	for _, r := range c.Text {
		if col >= 0 && col < s.cols {
			s.canvas.SetCell(canvas.Point{X: col, Y: row}, canvas.Cell{Rune: r, Style: st})
		}
		col++
	}
}

// View returns the rendered grid.
func (s *TermSurface) View() string {
	return s.canvas.View()
}

func onStroke(c ring.Command, x, y float64) bool {
	d := math.Hypot(x-c.CenterX, y-c.CenterY)
	return math.Abs(d-c.Radius) <= c.Stroke.Width/2
}

func onArc(c ring.Command, x, y float64) bool {
	// Cap discs never leave the stroke band, so this also bounds them.
	if !onStroke(c, x, y) {
		return false
	}
	if math.Abs(c.SweepAngle) >= 360 {
		return true
	}

	// Screen y grows downwards, so increasing atan2 angles run clockwise.
	theta := math.Atan2(y-c.CenterY, x-c.CenterX)*180/math.Pi - c.StartAngle
	theta = math.Mod(theta+720, 360)
	if c.SweepAngle > 0 && theta <= c.SweepAngle {
		return true
	}
	if c.SweepAngle < 0 && (theta == 0 || theta >= 360+c.SweepAngle) {
		return true
	}
	return c.Stroke.RoundCap && onCap(c, x, y)
}

func onCap(c ring.Command, x, y float64) bool {
	half := c.Stroke.Width / 2
	for _, deg := range []float64{c.StartAngle, c.StartAngle + c.SweepAngle} {
		rad := deg * math.Pi / 180
		ex := c.CenterX + c.Radius*math.Cos(rad)
		ey := c.CenterY + c.Radius*math.Sin(rad)
		if math.Hypot(x-ex, y-ey) <= half {
			return true
		}
	}
	return false
}
