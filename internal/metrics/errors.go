package metrics

import "github.com/Rhushya/Kloudmate/internal/errors"

const (
	ErrInvalidSample    = errors.ErrorCode("metrics_invalid_sample")
	ErrCPUReadFailed    = errors.ErrorCode("metrics_cpu_read_failed")
	ErrMemoryReadFailed = errors.ErrorCode("metrics_memory_read_failed")
)
