package collector

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"circleprogress/internal/collector/services"
)

// Source names accepted by NewProvider.
const (
	SourceCPU  = "cpu"
	SourceMem  = "mem"
	SourceDisk = "disk"
)

// Sample is one reading ready to be shown on the ring.
type Sample struct {
	Source  string
	Percent float64
	Detail  string
	At      time.Time
}

// Provider defines the contract for anything that can feed the ring.
type Provider interface {
	Name() string
	Sample(ctx context.Context) (Sample, error)
}

// SensorProvider adapts a services.Sensor into a Provider, bounding every
// reading by the configured timeout. Sample and Close may be called from
// different goroutines.
type SensorProvider struct {
	mu        sync.Mutex
	sensor    services.Sensor
	timeout   time.Duration
	connected bool
}

func NewSensorProvider(s services.Sensor, cfg CollectorConfig) *SensorProvider {
	return &SensorProvider{sensor: s, timeout: cfg.SampleTimeout}
}

func (p *SensorProvider) Name() string {
	return p.sensor.Name()
}

func (p *SensorProvider) Sample(ctx context.Context) (Sample, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		if err := p.sensor.Connect(ctx); err != nil {
			return Sample{}, fmt.Errorf("connect %s: %w", p.sensor.Name(), err)
		}
		p.connected = true
	}

	r, err := p.sensor.Collect(ctx)
	if err != nil {
		return Sample{}, fmt.Errorf("collect %s: %w", p.sensor.Name(), err)
	}

	return Sample{
		Source:  p.sensor.Name(),
		Percent: clampPercent(r.Percent),
		Detail:  r.Detail,
		At:      time.Now(),
	}, nil
}

// Close releases the underlying sensor.
func (p *SensorProvider) Close(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		return nil
	}
	p.connected = false
	return p.sensor.Disconnect(ctx)
}

// clampPercent keeps readings inside the animated setter's accepted range;
// sensors occasionally report a hair above 100.
func clampPercent(v float64) float64 {
	return max(0, min(100, v))
}

// Sources lists the names NewProvider understands.
func Sources() []string {
	names := []string{SourceCPU, SourceMem, SourceDisk}
	sort.Strings(names)
	return names
}

// NewProvider builds the provider for a source name.
func NewProvider(name string, cfg CollectorConfig) (*SensorProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var s services.Sensor
	switch strings.ToLower(name) {
	case SourceCPU:
		s = services.NewCPUSensor()
	case SourceMem, "memory", "ram":
		s = services.NewMemSensor()
	case SourceDisk:
		s = services.NewDiskSensor(cfg.DiskPath)
	default:
		return nil, fmt.Errorf("unknown source %q (want one of %s)", name, strings.Join(Sources(), ", "))
	}
	return NewSensorProvider(s, cfg), nil
}
