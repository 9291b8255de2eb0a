package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJitterBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	capDur := time.Second

	t.Run("first attempt waits base", func(t *testing.T) {
		require.Equal(t, base, jitterBackoff(0, base, 2, capDur, newRetryRNG(1)))
	})

	t.Run("stays within base and cap", func(t *testing.T) {
		rng := newRetryRNG(42)
		prev := time.Duration(0)
		for range 20 {
			next := jitterBackoff(prev, base, 2, capDur, rng)
			require.GreaterOrEqual(t, next, base)
			require.LessOrEqual(t, next, capDur)
			prev = next
		}
	})

	t.Run("cap below base wins", func(t *testing.T) {
		require.Equal(t, 50*time.Millisecond, jitterBackoff(base, base, 2, 50*time.Millisecond, nil))
	})

	t.Run("same seed is deterministic", func(t *testing.T) {
		a, b := newRetryRNG(7), newRetryRNG(7)
		for range 5 {
			require.Equal(t, jitterBackoff(base, base, 2, capDur, a), jitterBackoff(base, base, 2, capDur, b))
		}
	})

	t.Run("zero seed uses the global source", func(t *testing.T) {
		require.Nil(t, newRetryRNG(0))
		next := jitterBackoff(base, base, 2, capDur, nil)
		require.GreaterOrEqual(t, next, base)
	})
}
