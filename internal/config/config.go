// Package config loads the optional YAML file that overrides the ring style,
// animation, sensor and threshold defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"circleprogress/internal/animator"
	"circleprogress/internal/collector"
	"circleprogress/internal/engine"
	"circleprogress/internal/ring"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// File mirrors the YAML layout. Keys missing from a file keep the values
// from Default.
type File struct {
	Ring       RingConfig      `yaml:"ring"`
	Animation  AnimationConfig `yaml:"animation"`
	Collector  CollectorConfig `yaml:"collector"`
	Thresholds engine.Config   `yaml:"thresholds"`
}

// RingConfig holds colors as hex or ANSI strings. An empty label color
// follows the ring color. The label is always bold.
type RingConfig struct {
	RingColor     string  `yaml:"ring_color"`
	ProgressColor string  `yaml:"progress_color"`
	LabelColor    string  `yaml:"label_color,omitempty"`
	RingWidth     float64 `yaml:"ring_width"`
	LabelFontSize float64 `yaml:"label_font_size"`
}

type AnimationConfig struct {
	Duration time.Duration `yaml:"duration"`
	Easing   string        `yaml:"easing"`
}

type CollectorConfig struct {
	SampleTimeout   time.Duration `yaml:"sample_timeout"`
	PollInterval    time.Duration `yaml:"poll_interval"`
	DiskPath        string        `yaml:"disk_path"`
	HistoryCapacity int           `yaml:"history_capacity"`
	MaxConsoleLogs  int           `yaml:"max_console_logs"`
}

// Settings is a validated File converted to the types the program uses.
type Settings struct {
	Style      ring.StyleConfig
	Duration   time.Duration
	Easing     animator.Easing
	Collector  collector.CollectorConfig
	Thresholds engine.Config
}

// Default returns the file equivalent of the built-in defaults.
func Default() File {
	style := ring.DefaultStyle()
	col := collector.DefaultCollectorConfig()
	return File{
		Ring: RingConfig{
			RingColor:     string(style.RingColor),
			ProgressColor: string(style.ProgressColor),
			RingWidth:     style.RingWidth,
			LabelFontSize: style.LabelFontSize,
		},
		Animation: AnimationConfig{
			Duration: animator.DefaultDuration,
			Easing:   "linear",
		},
		Collector: CollectorConfig{
			SampleTimeout:   col.SampleTimeout,
			PollInterval:    col.PollInterval,
			DiskPath:        col.DiskPath,
			HistoryCapacity: col.HistoryCapacity,
			MaxConsoleLogs:  col.MaxConsoleLogs,
		},
		Thresholds: engine.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Settings, error) {
	f := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	return f.Resolve()
}

// Marshal renders the file as YAML.
func (f File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Resolve converts and validates the file.
func (f File) Resolve() (Settings, error) {
	style := ring.DefaultStyle().
		WithRingColor(lipgloss.Color(f.Ring.RingColor)).
		WithProgressColor(lipgloss.Color(f.Ring.ProgressColor)).
		WithRingWidth(f.Ring.RingWidth).
		WithLabelFontSize(f.Ring.LabelFontSize)
	if f.Ring.LabelColor != "" {
		style = style.WithLabelColor(lipgloss.Color(f.Ring.LabelColor))
	}
	if err := style.Validate(); err != nil {
		return Settings{}, err
	}

	if f.Animation.Duration < 0 {
		return Settings{}, &collector.ConfigError{Field: "Duration", Message: "must not be negative"}
	}
	easing, err := animator.EasingByName(f.Animation.Easing)
	if err != nil {
		return Settings{}, err
	}

	col := collector.DefaultCollectorConfig().
		WithSampleTimeout(f.Collector.SampleTimeout).
		WithPollInterval(f.Collector.PollInterval).
		WithDiskPath(f.Collector.DiskPath).
		WithHistoryCapacity(f.Collector.HistoryCapacity)
	col.MaxConsoleLogs = f.Collector.MaxConsoleLogs
	if err := col.Validate(); err != nil {
		return Settings{}, err
	}

	if err := f.Thresholds.Validate(); err != nil {
		return Settings{}, err
	}

	return Settings{
		Style:      style,
		Duration:   f.Animation.Duration,
		Easing:     easing,
		Collector:  col,
		Thresholds: f.Thresholds,
	}, nil
}
