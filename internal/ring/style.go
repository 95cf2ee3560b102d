package ring

import "github.com/charmbracelet/lipgloss"

const (
	// DefaultSideLength is the measured side used for a flexible axis.
	DefaultSideLength = 750.0

	DefaultRingWidth     = 30.0
	DefaultLabelFontSize = 50.0
)

var (
	DefaultRingColor     = lipgloss.Color("#808080")
	DefaultProgressColor = lipgloss.Color("#FF8800")
)

// StyleConfig contains the visual parameters of a progress ring.
// Use DefaultStyle() to get the stock look, then override as needed.
type StyleConfig struct {
	RingColor     lipgloss.Color // Background ring (default: mid-gray)
	ProgressColor lipgloss.Color // Progress arc (default: warm orange)
	RingWidth     float64        // Stroke width in ring units (default: 30)
	LabelColor    lipgloss.Color // Percentage label (default: RingColor)
	LabelFontSize float64        // Label size in ring units (default: 50)
	LabelBold     bool           // Always true for the stock style
}

// DefaultStyle returns a StyleConfig with the stock colors and sizes.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		RingColor:     DefaultRingColor,
		ProgressColor: DefaultProgressColor,
		RingWidth:     DefaultRingWidth,
		LabelColor:    DefaultRingColor,
		LabelFontSize: DefaultLabelFontSize,
		LabelBold:     true,
	}
}

// WithRingColor returns a copy of the style with a new background ring color.
// The label color follows unless it was set explicitly to something else.
func (s StyleConfig) WithRingColor(c lipgloss.Color) StyleConfig {
	if s.LabelColor == s.RingColor {
		s.LabelColor = c
	}
	s.RingColor = c
	return s
}

// WithProgressColor returns a copy of the style with a new arc color.
func (s StyleConfig) WithProgressColor(c lipgloss.Color) StyleConfig {
	s.ProgressColor = c
	return s
}

// WithRingWidth returns a copy of the style with a new stroke width.
func (s StyleConfig) WithRingWidth(w float64) StyleConfig {
	s.RingWidth = w
	return s
}

// WithLabelColor returns a copy of the style with a new label color.
func (s StyleConfig) WithLabelColor(c lipgloss.Color) StyleConfig {
	s.LabelColor = c
	return s
}

// WithLabelFontSize returns a copy of the style with a new label size.
func (s StyleConfig) WithLabelFontSize(size float64) StyleConfig {
	s.LabelFontSize = size
	return s
}

// Validate checks if the style is usable and returns an error if not.
func (s StyleConfig) Validate() error {
	if s.RingWidth <= 0 {
		return &ConfigError{Field: "RingWidth", Message: "must be positive"}
	}
	if s.LabelFontSize <= 0 {
		return &ConfigError{Field: "LabelFontSize", Message: "must be positive"}
	}
	if s.RingColor == "" {
		return &ConfigError{Field: "RingColor", Message: "must not be empty"}
	}
	if s.ProgressColor == "" {
		return &ConfigError{Field: "ProgressColor", Message: "must not be empty"}
	}
	return nil
}

// ConfigError represents a style validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
