package metrics

import (
	"github.com/Rhushya/Kloudmate/internal/errors"
)

const (
	minUsagePercent = 0.0
	maxUsagePercent = 100.0
)

// Validate checks that the sample can be stored.
func (s Sample) Validate() error {
	errFactory := errors.New()

	if s.Hostname == "" {
		return errFactory.WithMessage(ErrInvalidSample, "hostname must not be empty")
	}
	if s.Timestamp.IsZero() {
		return errFactory.WithMessage(ErrInvalidSample, "timestamp must be set")
	}

	for _, usage := range []float64{s.CPUUsage, s.MemoryUsage, s.DiskUsage} {
		if usage < minUsagePercent || usage > maxUsagePercent {
			return errFactory.WithData(ErrInvalidSample, struct {
				Field string
				Value float64
			}{
				Field: "usage",
				Value: usage,
			})
		}
	}

	return nil
}
