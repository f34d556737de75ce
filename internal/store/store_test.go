package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhushya/Kloudmate/internal/errors"
	"github.com/Rhushya/Kloudmate/internal/metrics"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "telemetry.db"))
	require.NoError(t, err)
	require.NoError(t, s.EnsureSchema(context.Background()))
	return s
}

func sampleAt(ts time.Time, hostname string, cpu float64) metrics.Sample {
	return metrics.Sample{
		Timestamp:   ts,
		Hostname:    hostname,
		CPUUsage:    cpu,
		MemoryUsage: 50.0,
		DiskUsage:   70.0,
	}
}

func rowCount(t *testing.T, s *Store) int {
	t.Helper()

	rs, err := s.Query(context.Background(), "SELECT COUNT(*) FROM system_metrics")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)
	return int(rs.Rows[0][0].(int64))
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.Equal(t, ErrInvalidDBPath, errors.CodeOf(err))
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.EnsureSchema(context.Background()))
	require.NoError(t, s.EnsureSchema(context.Background()))
}

func TestEnsureSchemaConcurrent(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "telemetry.db"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.EnsureSchema(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestInsertDuplicateOutcome(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	outcome, err := s.Insert(context.Background(), sampleAt(ts, "h1", 60))
	require.NoError(t, err)
	assert.Equal(t, Inserted, outcome)

	// Second sample for the same (timestamp, hostname) is skipped, not
	// overwritten and not fatal.
	outcome, err = s.Insert(context.Background(), sampleAt(ts, "h1", 99))
	require.NoError(t, err)
	assert.Equal(t, Duplicate, outcome)

	assert.Equal(t, 1, rowCount(t, s))

	// The stored row still carries the first sample's values.
	rs, err := s.Query(context.Background(), "SELECT cpu_usage FROM system_metrics")
	require.NoError(t, err)
	assert.Equal(t, 60.0, rs.Rows[0][0])
}

func TestInsertSameTimestampDifferentHosts(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, host := range []string{"h1", "h2"} {
		outcome, err := s.Insert(context.Background(), sampleAt(ts, host, 60))
		require.NoError(t, err)
		assert.Equal(t, Inserted, outcome)
	}

	assert.Equal(t, 2, rowCount(t, s))
}

func TestInsertConcurrentSameKey(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	const writers = 4
	outcomes := make([]InsertOutcome, writers)
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i], errs[i] = s.Insert(context.Background(), sampleAt(ts, "h1", float64(60+i)))
		}(i)
	}
	wg.Wait()

	inserted := 0
	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i])
		if outcomes[i] == Inserted {
			inserted++
		}
	}
	assert.Equal(t, 1, inserted, "exactly one concurrent insert must win")
	assert.Equal(t, 1, rowCount(t, s))
}

func TestInsertRejectsInvalidSample(t *testing.T) {
	s := newTestStore(t)

	bad := sampleAt(time.Now(), "h1", 150.0)
	_, err := s.Insert(context.Background(), bad)
	require.Error(t, err)
	assert.Equal(t, 0, rowCount(t, s))
}

func TestQueryOrderedRows(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := s.Insert(context.Background(), sampleAt(base.Add(time.Duration(i)*time.Minute), "h1", float64(60+i)))
		require.NoError(t, err)
	}

	rs, err := s.Query(context.Background(),
		"SELECT timestamp, cpu_usage FROM system_metrics ORDER BY timestamp")
	require.NoError(t, err)
	require.Equal(t, []string{"timestamp", "cpu_usage"}, rs.Columns)
	require.Len(t, rs.Rows, 3)

	assert.Equal(t, "2025-06-01 12:00:00", rs.Rows[0][0])
	assert.Equal(t, 60.0, rs.Rows[0][1])
	assert.Equal(t, "2025-06-01 12:02:00", rs.Rows[2][0])
	assert.Equal(t, 62.0, rs.Rows[2][1])
}

func TestQueryExecutionError(t *testing.T) {
	s := newTestStore(t)

	rs, err := s.Query(context.Background(), "SELECT nope FROM system_metrics")
	require.Error(t, err)
	assert.Nil(t, rs, "no partial results on error")
	assert.Equal(t, ErrQueryExecution, errors.CodeOf(err))
}

func TestQueryIsReadOnly(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := s.Insert(context.Background(), sampleAt(ts, "h1", 60))
	require.NoError(t, err)

	for _, stmt := range []string{
		"INSERT INTO system_metrics VALUES ('2025-06-01 13:00:00', 'evil', 0, 0, 0)",
		"DELETE FROM system_metrics",
		"DROP TABLE system_metrics",
	} {
		_, err := s.Query(context.Background(), stmt)
		require.Error(t, err, "mutating statement must be rejected: %s", stmt)
		assert.Equal(t, ErrQueryExecution, errors.CodeOf(err))
	}

	assert.Equal(t, 1, rowCount(t, s), "store contents unchanged")
}

func TestQueryRelativeTimeWindow(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	_, err := s.Insert(context.Background(), sampleAt(now.Add(-30*time.Minute), "h1", 75))
	require.NoError(t, err)
	_, err = s.Insert(context.Background(), sampleAt(now.Add(-3*time.Hour), "h1", 90))
	require.NoError(t, err)

	rs, err := s.Query(context.Background(),
		"SELECT hostname, cpu_usage FROM system_metrics WHERE timestamp >= datetime('now', '-1 hour')")
	require.NoError(t, err)
	require.Len(t, rs.Rows, 1)
	assert.Equal(t, 75.0, rs.Rows[0][1])
}
