package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedWidth measures every character as 10 units.
var fixedWidth = TextMeasurerFunc(func(text string, _ float64, _ bool) float64 {
	return float64(len(text)) * 10
})

func TestRender_CommandOrder(t *testing.T) {
	cmds := Render(25, 750, 750, DefaultStyle(), fixedWidth)

	require.Len(t, cmds, 3)
	assert.Equal(t, KindCircle, cmds[0].Kind)
	assert.Equal(t, KindArc, cmds[1].Kind)
	assert.Equal(t, KindText, cmds[2].Kind)
}

func TestRender_RingAndArcGeometry(t *testing.T) {
	style := DefaultStyle()
	cmds := Render(25, 750, 750, style, fixedWidth)

	circle := cmds[0]
	assert.Equal(t, 375.0, circle.CenterX)
	assert.Equal(t, 375.0, circle.CenterY)
	assert.Equal(t, 360.0, circle.Radius)
	assert.Equal(t, style.RingColor, circle.Stroke.Color)
	assert.Equal(t, 30.0, circle.Stroke.Width)
	assert.True(t, circle.Stroke.RoundCap)
	assert.True(t, circle.Stroke.AntiAlias)

	arc := cmds[1]
	assert.Equal(t, style.ProgressColor, arc.Stroke.Color)
	assert.Equal(t, 30.0, arc.Stroke.Width)
	assert.Equal(t, -90.0, arc.StartAngle)
	assert.Equal(t, 90.0, arc.SweepAngle)
	assert.False(t, arc.UseCenter)
	assert.Equal(t, Rect{Left: 15, Top: 15, Right: 735, Bottom: 735}, arc.Oval)
}

func TestRender_LabelPlacement(t *testing.T) {
	style := DefaultStyle()
	cmds := Render(42.5, 750, 750, style, fixedWidth)

	label := cmds[2]
	assert.Equal(t, "42.5%", label.Text)
	// five characters at 10 units each
	assert.Equal(t, 375.0-25.0, label.X)
	assert.Equal(t, 375.0+25.0, label.Y)
	assert.Equal(t, style.LabelColor, label.Color)
	assert.True(t, label.Bold)
	assert.Equal(t, 50.0, label.FontSize)
}

func TestRender_NonSquareUsesShortSide(t *testing.T) {
	cmds := Render(50, 400, 750, DefaultStyle(), fixedWidth)

	assert.Equal(t, 200.0, cmds[0].CenterX)
	assert.Equal(t, 185.0, cmds[0].Radius)
}

func TestRender_Endpoints(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		sweep    float64
		label    string
	}{
		{"empty", 0, 0, "0.0%"},
		{"full", 100, 360, "100.0%"},
		{"rounds to one decimal", 33.333, 119.9988, "33.3%"},
		{"out of range passes through", 150, 540, "150.0%"},
		{"negative passes through", -10, -36, "-10.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := Render(tt.progress, 750, 750, DefaultStyle(), fixedWidth)
			assert.InDelta(t, tt.sweep, cmds[1].SweepAngle, 1e-9)
			assert.Equal(t, tt.label, cmds[2].Text)
		})
	}
}

func TestRender_NilMeasurerCentersOnOrigin(t *testing.T) {
	cmds := Render(10, 100, 100, DefaultStyle(), nil)
	assert.Equal(t, 50.0, cmds[2].X)
}

func TestFormatLabel(t *testing.T) {
	for v := 0.0; v <= 100; v += 0.5 {
		got := FormatLabel(v)
		assert.Equal(t, "%", got[len(got)-1:])
		assert.Contains(t, got, ".")
	}
	assert.Equal(t, "7.0%", FormatLabel(7))
	assert.Equal(t, "99.9%", FormatLabel(99.94))
}

type recordingSurface struct {
	size Size
	cmds []Command
}

func (s *recordingSurface) Size() Size             { return s.size }
func (s *recordingSurface) Measurer() TextMeasurer { return CellMeasurer{CellWidth: 20} }
func (s *recordingSurface) Draw(cmds []Command)    { s.cmds = cmds }

func TestRenderTo(t *testing.T) {
	s := &recordingSurface{size: Size{Width: 200, Height: 300}}
	RenderTo(s, 50, DefaultStyle())

	require.Len(t, s.cmds, 3)
	assert.Equal(t, 100.0, s.cmds[0].CenterX)
	assert.Equal(t, 180.0, s.cmds[1].SweepAngle)
	// "50.0%" is five cells of 20 units
	assert.Equal(t, 100.0-50.0, s.cmds[2].X)
}
