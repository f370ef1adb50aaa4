package cache_test

import (
	"math"
	"testing"
	"time"

	"github.com/SscSPs/currency_registry/internal/apperrors"
	"github.com/SscSPs/currency_registry/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := cache.NewConfig()

	assert.Equal(t, 50, cfg.Capacity())
	assert.Equal(t, int64(30), cfg.Expiration())
	assert.Equal(t, time.Minute, cfg.Unit())
	assert.Equal(t, 30*time.Minute, cfg.TTL())
}

func TestConfig_RejectsNonPositiveValues(t *testing.T) {
	cfg := cache.NewConfig()

	for _, v := range []int{0, -1} {
		err := cfg.SetCapacity(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	}
	for _, v := range []int64{0, -5} {
		err := cfg.SetExpiration(v)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	}

	assert.Equal(t, cache.NewConfig(), cfg, "rejected values must not be applied")
}

func TestConfig_AcceptsValidValues(t *testing.T) {
	cfg := cache.NewConfig()

	require.NoError(t, cfg.SetCapacity(100))
	require.NoError(t, cfg.SetExpiration(1))
	cfg.SetUnit(time.Hour)

	assert.Equal(t, 100, cfg.Capacity())
	assert.Equal(t, int64(1), cfg.Expiration())
	assert.Equal(t, time.Hour, cfg.Unit())
	assert.Equal(t, time.Hour, cfg.TTL())
}

func TestConfig_TTLDoesNotOverflow(t *testing.T) {
	cfg := cache.NewConfig()

	require.NoError(t, cfg.SetExpiration(math.MaxInt64/10))
	cfg.SetUnit(time.Hour)

	assert.Equal(t, cache.MaxTTL, cfg.TTL())

	require.NoError(t, cfg.SetExpiration(math.MaxInt64))
	cfg.SetUnit(time.Nanosecond)
	assert.Equal(t, cache.MaxTTL, cfg.TTL())
}
