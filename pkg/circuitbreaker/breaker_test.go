package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
)

func TestRun_TripsAfterFailures(t *testing.T) {
	cfg := DefaultConfig("test_trip")
	cfg.Timeout = time.Hour
	cb := New(cfg)

	calls := 0
	failing := func() error {
		calls++
		return errors.New("db down")
	}

	for i := 0; i < int(cfg.MinRequests); i++ {
		err := Run(cb, failing)
		assert.False(t, IsRejected(err))
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	err := Run(cb, failing)
	assert.True(t, IsRejected(err))
	assert.Contains(t, err.Error(), "test_trip")
	assert.Equal(t, int(cfg.MinRequests), calls, "open breaker does not call through")
}

func TestRun_StaysClosedOnSuccess(t *testing.T) {
	cb := New(DefaultConfig("test_closed"))

	for i := 0; i < 10; i++ {
		assert.NoError(t, Run(cb, func() error { return nil }))
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}

func TestRun_MixedBelowThreshold(t *testing.T) {
	cb := New(DefaultConfig("test_mixed"))

	for i := 0; i < 10; i++ {
		var err error
		if i%3 == 0 {
			err = errors.New("flaky")
		}
		_ = Run(cb, func() error { return err }) //nolint:errcheck
	}
	assert.Equal(t, gobreaker.StateClosed, cb.State())
}
