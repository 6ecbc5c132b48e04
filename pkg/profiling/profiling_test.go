package profiling

import (
	"testing"

	"github.com/grafana/pyroscope-go"
	"github.com/psgtech/campus-portal-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileTypes_Default(t *testing.T) {
	got, err := parseProfileTypes("  ")
	require.NoError(t, err)
	assert.Equal(t, defaultProfileTypes, got)
}

func TestParseProfileTypes_DeduplicatesAndPreservesOrder(t *testing.T) {
	got, err := parseProfileTypes("goroutines, cpu,mutex,cpu")
	require.NoError(t, err)

	assert.Equal(t, []pyroscope.ProfileType{
		pyroscope.ProfileGoroutines,
		pyroscope.ProfileCPU,
		pyroscope.ProfileMutexCount,
		pyroscope.ProfileMutexDuration,
	}, got)
}

func TestParseProfileTypes_Invalid(t *testing.T) {
	_, err := parseProfileTypes("cpu,heap_dump")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heap_dump")
}

func TestApplicationName(t *testing.T) {
	assert.Equal(t,
		"campus-portal-api{service_name=portal,environment=production,service_version=1.2.0}",
		applicationName("", "portal", "production", "1.2.0"))
}

func TestStart_Disabled(t *testing.T) {
	stop, err := Start(config.ProfilingConfig{Enabled: false}, config.ObservabilityConfig{}, "test")
	require.NoError(t, err)
	assert.NotPanics(t, stop)
}

func TestStart_EnabledWithoutEndpoint(t *testing.T) {
	_, err := Start(config.ProfilingConfig{Enabled: true}, config.ObservabilityConfig{}, "test")
	assert.Error(t, err)
}
