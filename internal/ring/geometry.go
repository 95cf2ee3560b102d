package ring

// Mode describes how much freedom the host gives the widget along one axis.
type Mode int

const (
	// Exact means the host has already decided the size.
	Exact Mode = iota
	// AtMost means the widget may be as small as it needs, up to Size.
	AtMost
	// Unspecified means the host imposes no bound at all.
	Unspecified
)

func (m Mode) String() string {
	switch m {
	case Exact:
		return "exact"
	case AtMost:
		return "at-most"
	case Unspecified:
		return "unspecified"
	}
	return "unknown"
}

// Flexible reports whether the axis is sized by the widget rather than the host.
func (m Mode) Flexible() bool {
	return m == AtMost || m == Unspecified
}

// Dimension is one axis of a layout constraint.
type Dimension struct {
	Size float64
	Mode Mode
}

// Constraints is what the host offers during measurement.
type Constraints struct {
	Width  Dimension
	Height Dimension
}

// ExactConstraints builds constraints for a host that has fixed both axes.
func ExactConstraints(w, h float64) Constraints {
	return Constraints{
		Width:  Dimension{Size: w, Mode: Exact},
		Height: Dimension{Size: h, Mode: Exact},
	}
}

// Size is a resolved width and height in ring units.
type Size struct {
	Width  float64
	Height float64
}

// Measure resolves the widget size. A flexible axis takes DefaultSideLength,
// a fixed axis keeps the host's size, so an unconstrained ring is square.
func Measure(c Constraints) Size {
	size := Size{Width: c.Width.Size, Height: c.Height.Size}
	if c.Width.Mode.Flexible() {
		size.Width = DefaultSideLength
	}
	if c.Height.Mode.Flexible() {
		size.Height = DefaultSideLength
	}
	return size
}

// Geometry is derived per render from the live view size.
type Geometry struct {
	Center float64
	Radius float64
}

// NewGeometry computes the ring center and stroke radius.
func NewGeometry(width, height, ringWidth float64) Geometry {
	center := min(width, height) / 2
	return Geometry{
		Center: center,
		Radius: center - ringWidth/2,
	}
}

// Bounds returns the square box the ring and arc are inscribed in.
func (g Geometry) Bounds() Rect {
	return Rect{
		Left:   g.Center - g.Radius,
		Top:    g.Center - g.Radius,
		Right:  g.Center + g.Radius,
		Bottom: g.Center + g.Radius,
	}
}

// Rect is an axis-aligned box in ring units.
type Rect struct {
	Left, Top, Right, Bottom float64
}
