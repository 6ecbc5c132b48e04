package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrLoad_CachesUntilInvalidated(t *testing.T) {
	dc := NewDirectoryCache(time.Minute, false)
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	got, err := GetOrLoad(context.Background(), dc, EventsKey, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)

	_, err = GetOrLoad(context.Background(), dc, EventsKey, load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	dc.Invalidate(EventsKey)
	_, err = GetOrLoad(context.Background(), dc, EventsKey, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	dc := NewDirectoryCache(time.Minute, false)
	calls := 0
	load := func(context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("boom")
		}
		return 42, nil
	}

	_, err := GetOrLoad(context.Background(), dc, TeachersKey, load)
	require.Error(t, err)

	got, err := GetOrLoad(context.Background(), dc, TeachersKey, load)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_Disabled(t *testing.T) {
	tests := []struct {
		name string
		dc   *DirectoryCache
	}{
		{name: "explicitly disabled", dc: NewDirectoryCache(time.Minute, true)},
		{name: "zero ttl", dc: NewDirectoryCache(0, false)},
		{name: "nil cache", dc: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			load := func(context.Context) (string, error) {
				calls++
				return "v", nil
			}
			for i := 0; i < 3; i++ {
				_, err := GetOrLoad(context.Background(), tt.dc, EventsKey, load)
				require.NoError(t, err)
			}
			assert.Equal(t, 3, calls)
		})
	}
}

func TestGetOrLoad_WrongTypeReloads(t *testing.T) {
	dc := NewDirectoryCache(time.Minute, false)
	dc.cache.Set(EventsKey, 123, time.Minute)

	got, err := GetOrLoad(context.Background(), dc, EventsKey, func(context.Context) (string, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got)
}
