package resilience

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

type ReconnectConfig struct {
	InitialInterval     time.Duration
	MaxInterval         time.Duration
	Multiplier          float64
	RandomizationFactor float64
}

func DefaultReconnectConfig() ReconnectConfig {
	return ReconnectConfig{
		InitialInterval:     500 * time.Millisecond,
		MaxInterval:         30 * time.Second,
		Multiplier:          2,
		RandomizationFactor: 0.5,
	}
}

func NormalizeReconnectConfig(cfg ReconnectConfig) ReconnectConfig {
	defaults := DefaultReconnectConfig()
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = defaults.InitialInterval
	}
	if cfg.MaxInterval < cfg.InitialInterval {
		cfg.MaxInterval = defaults.MaxInterval
		if cfg.MaxInterval < cfg.InitialInterval {
			cfg.MaxInterval = cfg.InitialInterval
		}
	}
	if cfg.Multiplier < 1 {
		cfg.Multiplier = defaults.Multiplier
	}
	if cfg.RandomizationFactor < 0 || cfg.RandomizationFactor > 1 {
		cfg.RandomizationFactor = defaults.RandomizationFactor
	}
	return cfg
}

// NewReconnectBackOff returns an exponential backoff with jitter that never
// gives up. Callers Reset it after a successful connect.
func NewReconnectBackOff(cfg ReconnectConfig) *backoff.ExponentialBackOff {
	cfg = NormalizeReconnectConfig(cfg)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = cfg.InitialInterval
	b.MaxInterval = cfg.MaxInterval
	b.Multiplier = cfg.Multiplier
	b.RandomizationFactor = cfg.RandomizationFactor
	b.Reset()
	return b
}
