package bridge

import (
	rand "math/rand/v2"
	"time"
)

const (
	backoffMultiplier = 2.0
	backoffCapFactor  = 10
)

// jitterBackoff returns the delay before the next upstream subscribe attempt
// using decorrelated jitter:
//
//	next = min(cap, base + rand[0, prev*mult - base))
//
// prev <= 0 yields base. A cap below base always yields the cap.
func jitterBackoff(prev, base time.Duration, mult float64, capDur time.Duration, rng *rand.Rand) time.Duration {
	if base <= 0 {
		base = 50 * time.Millisecond
	}
	if mult < 1.0 {
		mult = 1.0
	}
	if capDur > 0 && capDur < base {
		return capDur
	}
	if prev <= 0 {
		return base
	}

	spread := time.Duration(float64(prev)*mult) - base
	if spread <= 0 {
		spread = base
	}

	var jitter int64
	if rng != nil {
		jitter = rng.Int64N(int64(spread))
	} else {
		jitter = rand.Int64N(int64(spread)) //nolint:gosec // non-crypto backoff jitter
	}

	next := base + time.Duration(jitter)
	if capDur > 0 && next > capDur {
		return capDur
	}

	return next
}

// newRetryRNG returns a deterministic RNG for a non-zero seed, nil otherwise
// so callers fall back to the package-level source.
//
//nolint:gosec
func newRetryRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		return nil
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
