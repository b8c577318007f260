package resilience

import (
	"testing"
	"time"
)

func TestNewReconnectBackOff_GrowsWithinBounds(t *testing.T) {
	t.Parallel()

	b := NewReconnectBackOff(ReconnectConfig{
		InitialInterval:     100 * time.Millisecond,
		MaxInterval:         time.Second,
		Multiplier:          2,
		RandomizationFactor: 0.5,
	})

	for i := 0; i < 20; i++ {
		next := b.NextBackOff()
		if next <= 0 {
			t.Fatalf("attempt %d: expected positive delay, got %s", i, next)
		}
		// jitter may push a delay up to 1.5x the capped interval
		if next > 1500*time.Millisecond {
			t.Fatalf("attempt %d: delay %s exceeds jittered max", i, next)
		}
	}

	b.Reset()
	if next := b.NextBackOff(); next > 150*time.Millisecond {
		t.Fatalf("expected reset to restart from initial interval, got %s", next)
	}
}

func TestNormalizeReconnectConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NormalizeReconnectConfig(ReconnectConfig{RandomizationFactor: 4})
	defaults := DefaultReconnectConfig()
	if cfg != defaults {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
