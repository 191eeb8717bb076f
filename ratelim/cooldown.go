package ratelim

import (
	"sync"
	"time"
)

// Cooldown is the anti-spam ledger for public testimonial submission: one
// accepted submission per IP per window. An empty IP collapses to a single
// shared bucket; acceptable for an advisory control, not a security one.
type Cooldown struct {
	window time.Duration
	last   map[string]time.Time
	mu     sync.Mutex
	now    func() time.Time
}

func NewCooldown(window time.Duration) *Cooldown {
	return &Cooldown{
		window: window,
		last:   make(map[string]time.Time),
		now:    time.Now,
	}
}

// Remaining reports how long the IP must still wait. Zero means the
// submission may proceed. Never mutates the ledger.
func (c *Cooldown) Remaining(ip string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.last[ip]
	if !ok {
		return 0
	}
	elapsed := c.now().Sub(last)
	if elapsed >= c.window {
		return 0
	}
	return c.window - elapsed
}

// Record marks an accepted submission, overwriting any previous timestamp,
// and evicts entries older than the window while it holds the lock.
func (c *Cooldown) Record(ip string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.last[ip] = now
	for k, t := range c.last {
		if now.Sub(t) >= c.window {
			delete(c.last, k)
		}
	}
}
