package collector

import (
	"context"
	"errors"
	"testing"

	"circleprogress/internal/collector/services"
)

// mockSensor satisfies services.Sensor.
type mockSensor struct {
	reading      services.Reading
	err          error
	connects     int
	disconnected bool
}

func (m *mockSensor) Name() string { return "Mock" }

func (m *mockSensor) Connect(ctx context.Context) error {
	m.connects++
	return nil
}

func (m *mockSensor) Disconnect(ctx context.Context) error {
	m.disconnected = true
	return nil
}

func (m *mockSensor) Collect(ctx context.Context) (services.Reading, error) {
	return m.reading, m.err
}

func TestSensorProvider_Sample(t *testing.T) {
	mock := &mockSensor{reading: services.Reading{Percent: 42.5, Detail: "detail"}}
	p := NewSensorProvider(mock, DefaultCollectorConfig())

	s, err := p.Sample(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Percent != 42.5 {
		t.Errorf("Expected percent 42.5, got %f", s.Percent)
	}
	if s.Source != "Mock" || s.Detail != "detail" {
		t.Errorf("Unexpected sample %+v", s)
	}

	p.Sample(context.Background())
	if mock.connects != 1 {
		t.Errorf("Expected a single Connect, got %d", mock.connects)
	}

	if err := p.Close(context.Background()); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !mock.disconnected {
		t.Error("Expected Close to disconnect the sensor")
	}
}

func TestSensorProvider_ClampsReading(t *testing.T) {
	mock := &mockSensor{reading: services.Reading{Percent: 100.4}}
	p := NewSensorProvider(mock, DefaultCollectorConfig())

	s, err := p.Sample(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.Percent != 100 {
		t.Errorf("Expected clamped 100, got %f", s.Percent)
	}
}

func TestSensorProvider_WrapsError(t *testing.T) {
	sentinel := errors.New("boom")
	p := NewSensorProvider(&mockSensor{err: sentinel}, DefaultCollectorConfig())

	_, err := p.Sample(context.Background())
	if !errors.Is(err, sentinel) {
		t.Errorf("Expected wrapped sentinel error, got %v", err)
	}
}

func TestNewProvider(t *testing.T) {
	cfg := DefaultCollectorConfig()

	tests := []struct {
		name     string
		source   string
		wantName string
		wantErr  bool
	}{
		{"cpu", "cpu", "CPU", false},
		{"memory alias", "RAM", "Memory", false},
		{"disk", "disk", "Disk", false},
		{"unknown", "gpu", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.source, cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewProvider(%q) error = %v, wantErr %v", tt.source, err, tt.wantErr)
			}
			if err == nil && p.Name() != tt.wantName {
				t.Errorf("Expected provider %q, got %q", tt.wantName, p.Name())
			}
		})
	}

	if _, err := NewProvider("cpu", cfg.WithPollInterval(0)); err == nil {
		t.Error("Expected invalid config to be rejected")
	}
}
