package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
)

type CPUSensor struct {
	model string
	cores int
}

func NewCPUSensor() *CPUSensor {
	return &CPUSensor{}
}

func (s *CPUSensor) Name() string {
	return "CPU"
}

// Connect caches the static CPU description so Collect stays cheap.
func (s *CPUSensor) Connect(ctx context.Context) error {
	s.model = "Unknown"
	info, err := cpu.InfoWithContext(ctx)
	if err == nil && len(info) > 0 {
		s.model = info[0].ModelName
	}
	s.cores, _ = cpu.CountsWithContext(ctx, true)
	return nil
}

func (s *CPUSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *CPUSensor) Collect(ctx context.Context) (Reading, error) {
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to get total cpu percent: %w", err)
	}
	if len(total) == 0 {
		return Reading{}, fmt.Errorf("failed to get total cpu percent: no samples")
	}

	return Reading{
		Percent: total[0],
		Detail:  fmt.Sprintf("%s (%d cores)", s.model, s.cores),
	}, nil
}
