package engine

import (
	"testing"

	"circleprogress/internal/collector"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		sample   collector.Sample
		expected string
	}{
		{
			name:     "CPU Healthy",
			sample:   collector.Sample{Source: "CPU", Percent: 10},
			expected: StatusHealthy,
		},
		{
			name:     "CPU Critical",
			sample:   collector.Sample{Source: "CPU", Percent: 95},
			expected: StatusCritical,
		},
		{
			name:     "RAM Warning",
			sample:   collector.Sample{Source: "Memory", Percent: 75},
			expected: StatusWarning,
		},
		{
			name:     "Disk below warning",
			sample:   collector.Sample{Source: "Disk", Percent: 75},
			expected: StatusHealthy,
		},
		{
			name:     "Boundary is not over",
			sample:   collector.Sample{Source: "Disk", Percent: 80},
			expected: StatusHealthy,
		},
		{
			name:     "Unknown source never flags",
			sample:   collector.Sample{Source: "Manual", Percent: 100},
			expected: StatusHealthy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.sample, DefaultConfig())
			if got.Status != tt.expected {
				t.Errorf("Evaluate(%+v) status = %s; want %s", tt.sample, got.Status, tt.expected)
			}
			if got.Value != tt.sample.Percent {
				t.Errorf("Expected value %f, got %f", tt.sample.Percent, got.Value)
			}
		})
	}
}

func TestEvaluateName(t *testing.T) {
	got := Evaluate(collector.Sample{Source: "CPU", Percent: 1}, DefaultConfig())
	if got.Name != "CPU Usage" {
		t.Errorf("Expected name 'CPU Usage', got %q", got.Name)
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Disk = Thresholds{Warning: 95, Critical: 90}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for warning above critical")
	}

	cfg = DefaultConfig()
	cfg.CPU.Critical = 120
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for critical above 100")
	}
}
