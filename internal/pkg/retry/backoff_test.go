//go:build unit

package retry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	cases := []struct {
		name    string
		attempt int
		limit   time.Duration
		lo, hi  time.Duration
	}{
		{name: "first attempt", attempt: 0, lo: 100 * time.Millisecond, hi: 120 * time.Millisecond},
		{name: "doubles", attempt: 2, lo: 400 * time.Millisecond, hi: 480 * time.Millisecond},
		{name: "capped", attempt: 10, limit: time.Second, lo: time.Second, hi: 1200 * time.Millisecond},
		{name: "negative attempt treated as zero", attempt: -3, lo: 100 * time.Millisecond, hi: 120 * time.Millisecond},
		{name: "huge attempt does not overflow", attempt: 500, limit: 5 * time.Second, lo: 5 * time.Second, hi: 6 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for range 20 {
				got := Backoff(tc.attempt, base, tc.limit)
				assert.GreaterOrEqual(t, got, tc.lo)
				assert.LessOrEqual(t, got, tc.hi)
			}
		})
	}
}

func TestSleep_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}
