package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhushya/Kloudmate/internal/errors"
)

func validSample() Sample {
	return Sample{
		Timestamp:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Hostname:    "h1",
		CPUUsage:    42.5,
		MemoryUsage: 61.2,
		DiskUsage:   80.0,
	}
}

func TestSampleValidate(t *testing.T) {
	require.NoError(t, validSample().Validate())
}

func TestSampleValidateBounds(t *testing.T) {
	s := validSample()
	s.CPUUsage = 100.1
	err := s.Validate()
	require.Error(t, err)
	assert.Equal(t, ErrInvalidSample, errors.CodeOf(err))

	s = validSample()
	s.DiskUsage = -0.1
	require.Error(t, s.Validate())

	// 0 and 100 are inclusive bounds
	s = validSample()
	s.CPUUsage = 0.0
	s.MemoryUsage = 100.0
	require.NoError(t, s.Validate())
}

func TestSampleValidateIdentity(t *testing.T) {
	s := validSample()
	s.Hostname = ""
	require.Error(t, s.Validate())

	s = validSample()
	s.Timestamp = time.Time{}
	require.Error(t, s.Validate())
}
