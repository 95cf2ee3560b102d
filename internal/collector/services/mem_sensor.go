package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"
)

type MemSensor struct{}

func NewMemSensor() *MemSensor {
	return &MemSensor{}
}

func (s *MemSensor) Name() string {
	return "Memory"
}

func (s *MemSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *MemSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *MemSensor) Collect(ctx context.Context) (Reading, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to get virtual memory: %w", err)
	}

	return Reading{
		Percent: v.UsedPercent,
		Detail:  fmt.Sprintf("%.1f/%.1f GB", toGiB(v.Used), toGiB(v.Total)),
	}, nil
}
