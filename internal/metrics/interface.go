package metrics

import (
	"context"
	"time"
)

// Sample is one timestamped utilization reading for one host. Samples are
// immutable once stored; the pair (Timestamp, Hostname) identifies them.
type Sample struct {
	Timestamp   time.Time
	Hostname    string
	CPUUsage    float64
	MemoryUsage float64
	DiskUsage   float64
}

// Source reads instantaneous host utilization. Implementations return
// percentages in [0, 100] with zeroed Timestamp and Hostname; the sampler
// stamps those.
type Source interface {
	Collect(ctx context.Context) (Sample, error)
}
