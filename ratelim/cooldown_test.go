package ratelim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownWindow(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cd := NewCooldown(5 * time.Minute)
	cd.now = func() time.Time { return now }

	// fresh IP may submit
	require.Zero(t, cd.Remaining("1.2.3.4"))

	cd.Record("1.2.3.4")

	// second submission inside the window must wait
	now = now.Add(2 * time.Minute)
	assert.Equal(t, 3*time.Minute, cd.Remaining("1.2.3.4"))

	// rejection does not touch the ledger: waiting time keeps shrinking
	// from the original acceptance, not from the rejected attempt
	now = now.Add(1 * time.Minute)
	assert.Equal(t, 2*time.Minute, cd.Remaining("1.2.3.4"))

	// other IPs are unaffected
	assert.Zero(t, cd.Remaining("5.6.7.8"))

	// after the window elapses the IP may submit again
	now = now.Add(2 * time.Minute)
	assert.Zero(t, cd.Remaining("1.2.3.4"))

	// acceptance overwrites the previous timestamp
	cd.Record("1.2.3.4")
	now = now.Add(time.Minute)
	assert.Equal(t, 4*time.Minute, cd.Remaining("1.2.3.4"))
}

func TestCooldownEvictsStaleEntries(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cd := NewCooldown(5 * time.Minute)
	cd.now = func() time.Time { return now }

	cd.Record("1.2.3.4")
	cd.Record("5.6.7.8")

	now = now.Add(10 * time.Minute)
	cd.Record("9.9.9.9")

	cd.mu.Lock()
	defer cd.mu.Unlock()
	assert.Len(t, cd.last, 1)
	assert.Contains(t, cd.last, "9.9.9.9")
}

func TestCooldownSharedEmptyBucket(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	cd := NewCooldown(5 * time.Minute)
	cd.now = func() time.Time { return now }

	// clients without a resolvable address share one bucket
	cd.Record("")
	assert.NotZero(t, cd.Remaining(""))
}
