package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/trickstertwo/rlog"
)

// Sink names accepted in Config.Sink.
const (
	SinkNone    = "none"
	SinkStderr  = "stderr"
	SinkZerolog = "zerolog"
	SinkZap     = "zap"
	SinkSlog    = "slog"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config holds everything a host can set declaratively.
type Config struct {
	// Verbose lowers the threshold to rlog.LevelVerbose.
	Verbose       bool          `koanf:"verbose"`
	EntriesToKeep int           `koanf:"entries_to_keep"`
	Sink          string        `koanf:"sink"`
	Console       bool          `koanf:"console"` // human-readable sink output instead of JSON
	Breaker       BreakerConfig `koanf:"breaker"`
}

// BreakerConfig guards the sink with a circuit breaker.
type BreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
	Timeout          time.Duration `koanf:"timeout"`
}

func defaultConfig() *Config {
	return &Config{
		Verbose:       false,
		EntriesToKeep: rlog.DefaultEntriesToKeep,
		Sink:          SinkNone,
		Console:       false,
		Breaker: BreakerConfig{
			Enabled:          false,
			FailureThreshold: 5,
			Timeout:          30 * time.Second,
		},
	}
}

// Default returns the built-in defaults.
func Default() Config { return *defaultConfig() }

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.EntriesToKeep <= 0 {
		return fmt.Errorf("%w: entries_to_keep must be positive, got %d", ErrInvalidConfig, c.EntriesToKeep)
	}
	switch c.Sink {
	case SinkNone, SinkStderr, SinkZerolog, SinkZap, SinkSlog:
	default:
		return fmt.Errorf("%w: unknown sink %q", ErrInvalidConfig, c.Sink)
	}
	if c.Breaker.Enabled {
		if c.Breaker.FailureThreshold == 0 {
			return fmt.Errorf("%w: breaker.failure_threshold must be positive", ErrInvalidConfig)
		}
		if c.Breaker.Timeout <= 0 {
			return fmt.Errorf("%w: breaker.timeout must be positive, got %s", ErrInvalidConfig, c.Breaker.Timeout)
		}
	}
	return nil
}
