package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// DiskSensor reports the used percentage of a single mountpoint.
type DiskSensor struct {
	path string
}

func NewDiskSensor(path string) *DiskSensor {
	if path == "" {
		path = "/"
	}
	return &DiskSensor{path: path}
}

func (s *DiskSensor) Name() string {
	return "Disk"
}

func (s *DiskSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Disconnect(ctx context.Context) error {
	return nil
}

func (s *DiskSensor) Collect(ctx context.Context) (Reading, error) {
	u, err := disk.UsageWithContext(ctx, s.path)
	if err != nil {
		return Reading{}, fmt.Errorf("failed to get usage for %s: %w", s.path, err)
	}

	return Reading{
		Percent: u.UsedPercent,
		Detail:  fmt.Sprintf("%s %.1f/%.1f GB", u.Path, toGiB(u.Used), toGiB(u.Total)),
	}, nil
}
