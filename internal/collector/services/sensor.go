package services

import "context"

// Reading is one percentage measurement taken by a sensor.
type Reading struct {
	Percent float64 // 0-100
	Detail  string  // Short human-readable context, e.g. "3.1/16.0 GB"
}

// Sensor defines the interface for all percentage sensors.
type Sensor interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Collect(ctx context.Context) (Reading, error)
}

const gib = 1 << 30

func toGiB(b uint64) float64 {
	return float64(b) / gib
}
