package cache

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_registry/internal/apperrors"
)

const (
	DefaultCapacity   = 50
	DefaultExpiration = 30
	DefaultUnit       = time.Minute

	// MaxTTL bounds TTL so expiry instants stay representable.
	MaxTTL = 100 * 365 * 24 * time.Hour
)

// Config tunes a Bounded store. Entries are bounded by count and by time since
// last access rather than by a wall-clock schedule.
type Config struct {
	capacity   int
	expiration int64
	unit       time.Duration
}

// NewConfig returns the default configuration: 50 entries, 30 minutes.
func NewConfig() Config {
	return Config{
		capacity:   DefaultCapacity,
		expiration: DefaultExpiration,
		unit:       DefaultUnit,
	}
}

// SetCapacity sets the maximum number of entries.
func (c *Config) SetCapacity(capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: cache capacity must be positive, got %d", apperrors.ErrInvalidArgument, capacity)
	}
	c.capacity = capacity
	return nil
}

// SetExpiration sets how many units an entry lives after its last access.
func (c *Config) SetExpiration(expiration int64) error {
	if expiration <= 0 {
		return fmt.Errorf("%w: cache expiration must be positive, got %d", apperrors.ErrInvalidArgument, expiration)
	}
	c.expiration = expiration
	return nil
}

// SetUnit sets the unit Expiration is counted in.
func (c *Config) SetUnit(unit time.Duration) {
	c.unit = unit
}

func (c Config) Capacity() int {
	return c.capacity
}

func (c Config) Expiration() int64 {
	return c.expiration
}

func (c Config) Unit() time.Duration {
	return c.unit
}

// TTL is Expiration expressed in Unit, capped at MaxTTL.
func (c Config) TTL() time.Duration {
	if c.unit > 0 && c.expiration > int64(MaxTTL/c.unit) {
		return MaxTTL
	}
	return time.Duration(c.expiration) * c.unit
}
