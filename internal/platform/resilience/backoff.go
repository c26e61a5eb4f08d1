package resilience

import (
	crand "crypto/rand"
	"encoding/binary"
	"math"
	"time"

	"github.com/jsamuelsen11/todolist-service/internal/platform/config"
)

// Backoff computes retry delays. Attempt 1 is the first retry.
//
// The delay is Initial * Multiplier^(attempt-1), capped at Max when Max is
// positive. Jitter, when positive, spreads the delay by ±Jitter of its value.
type Backoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64
}

// Delay returns the wait before the given retry attempt.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	multiplier := b.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}

	delay := float64(b.Initial) * math.Pow(multiplier, float64(attempt-1))

	// Cap before applying jitter.
	if b.Max > 0 && delay > float64(b.Max) {
		delay = float64(b.Max)
	}

	if b.Jitter > 0 {
		spread := delay * b.Jitter
		delay += spread * (2*secureRandFloat64() - 1)
	}

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// exponentialBase doubles the delay on each retry.
const exponentialBase = 2.0

func backoffFromConfig(cfg config.PolicyRetryConfig) Backoff {
	b := Backoff{
		Initial:    cfg.Delay,
		Max:        cfg.MaxDelay,
		Multiplier: 1,
	}
	if cfg.Exponential {
		b.Multiplier = exponentialBase
	}
	return b
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}
