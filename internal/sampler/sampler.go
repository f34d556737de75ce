package sampler

import (
	"context"
	"time"

	"github.com/Rhushya/Kloudmate/internal/logger"
	"github.com/Rhushya/Kloudmate/internal/metrics"
	"github.com/Rhushya/Kloudmate/internal/store"
)

// SampleWriter is the slice of the store the sampler needs.
type SampleWriter interface {
	EnsureSchema(ctx context.Context) error
	Insert(ctx context.Context, sample metrics.Sample) (store.InsertOutcome, error)
}

// Sampler drives a metric source on a fixed period and appends each
// reading to the store. One bad tick never stops the loop; only
// cancellation does.
type Sampler struct {
	source   metrics.Source
	writer   SampleWriter
	interval time.Duration
	hostname string
}

func New(source metrics.Source, writer SampleWriter, interval time.Duration, hostname string) *Sampler {
	return &Sampler{
		source:   source,
		writer:   writer,
		interval: interval,
		hostname: hostname,
	}
}

// Run ensures the schema and loops until ctx is cancelled. Returns nil on
// cancellation; the only error it can return is a failed schema init.
func (s *Sampler) Run(ctx context.Context) error {
	if err := s.writer.EnsureSchema(ctx); err != nil {
		return err
	}

	logger.Info().
		Dur("interval", s.interval).
		Str("hostname", s.hostname).
		Msg("Sampler started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Sampler stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Sampler) tick(ctx context.Context) {
	sample, err := s.source.Collect(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to collect metrics, skipping tick")
		return
	}

	sample.Timestamp = time.Now().UTC().Truncate(time.Second)
	sample.Hostname = s.hostname

	outcome, err := s.writer.Insert(ctx, sample)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to store metrics")
		return
	}

	if outcome == store.Duplicate {
		logger.Warn().
			Time("timestamp", sample.Timestamp).
			Str("hostname", sample.Hostname).
			Msg("Duplicate sample, skipping")
		return
	}

	logger.Info().
		Float64("cpu", sample.CPUUsage).
		Float64("memory", sample.MemoryUsage).
		Float64("disk", sample.DiskUsage).
		Msg("Stored metrics")
}
