package metrics

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Rhushya/Kloudmate/internal/errors"
	"github.com/Rhushya/Kloudmate/internal/logger"
)

const (
	cpuSampleWindow = time.Second
	rootMountpoint  = "/"
)

// HostSource reads utilization from the local host via gopsutil.
type HostSource struct {
	mountpoint string
}

// NewHostSource returns a Source measuring the local host. Disk usage is
// read for the root filesystem.
func NewHostSource() *HostSource {
	return &HostSource{mountpoint: rootMountpoint}
}

// Collect reads CPU, memory and disk utilization. CPU and memory failures
// fail the whole reading; a disk failure is logged and substituted with
// 0.0 so one flaky sensor does not cost the tick.
func (s *HostSource) Collect(ctx context.Context) (Sample, error) {
	errFactory := errors.New()

	cpuPercents, err := cpu.PercentWithContext(ctx, cpuSampleWindow, false)
	if err != nil {
		return Sample{}, errFactory.Wrap(ErrCPUReadFailed, err)
	}
	if len(cpuPercents) == 0 {
		return Sample{}, errFactory.WithMessage(ErrCPUReadFailed, "no aggregate cpu reading returned")
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return Sample{}, errFactory.Wrap(ErrMemoryReadFailed, err)
	}

	diskUsage := 0.0
	usage, err := disk.UsageWithContext(ctx, s.mountpoint)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("mountpoint", s.mountpoint).
			Msg("Could not read disk usage, defaulting to 0")
	} else {
		diskUsage = usage.UsedPercent
	}

	return Sample{
		CPUUsage:    cpuPercents[0],
		MemoryUsage: vm.UsedPercent,
		DiskUsage:   diskUsage,
	}, nil
}
