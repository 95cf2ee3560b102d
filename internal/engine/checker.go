package engine

import (
	"strings"

	"circleprogress/internal/collector"
)

const (
	StatusHealthy  = "OK"
	StatusWarning  = "WARN"
	StatusCritical = "CRIT"
)

// Thresholds defines warning and critical levels for a percentage reading.
type Thresholds struct {
	Warning  float64 `yaml:"warning"`
	Critical float64 `yaml:"critical"`
}

// Config holds per-source thresholds.
type Config struct {
	CPU  Thresholds `yaml:"cpu"`
	RAM  Thresholds `yaml:"mem"`
	Disk Thresholds `yaml:"disk"`
}

func DefaultConfig() Config {
	return Config{
		CPU:  Thresholds{Warning: 70.0, Critical: 90.0},
		RAM:  Thresholds{Warning: 70.0, Critical: 90.0},
		Disk: Thresholds{Warning: 80.0, Critical: 90.0},
	}
}

// For returns the thresholds that apply to a sample's source.
func (c Config) For(source string) Thresholds {
	switch strings.ToLower(source) {
	case "cpu":
		return c.CPU
	case "memory", "mem", "ram":
		return c.RAM
	case "disk":
		return c.Disk
	}
	return Thresholds{Warning: 100, Critical: 100}
}

type CheckResult struct {
	Name   string
	Value  float64
	Status string
}

func getStatus(value, warning, critical float64) string {
	if value > critical {
		return StatusCritical
	}
	if value > warning {
		return StatusWarning
	}
	return StatusHealthy
}

// Evaluate classifies a sample against the configured thresholds.
func Evaluate(s collector.Sample, cfg Config) CheckResult {
	th := cfg.For(s.Source)
	return CheckResult{
		Name:   s.Source + " Usage",
		Value:  s.Percent,
		Status: getStatus(s.Percent, th.Warning, th.Critical),
	}
}

// Validate checks that every pair of thresholds is ordered and within 0-100.
func (c Config) Validate() error {
	for name, th := range map[string]Thresholds{"CPU": c.CPU, "RAM": c.RAM, "Disk": c.Disk} {
		if th.Warning < 0 || th.Critical > 100 {
			return &collector.ConfigError{Field: name, Message: "thresholds must be within 0-100"}
		}
		if th.Warning > th.Critical {
			return &collector.ConfigError{Field: name, Message: "warning must not exceed critical"}
		}
	}
	return nil
}
