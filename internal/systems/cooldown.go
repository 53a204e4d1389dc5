package systems

import "time"

// Cooldown gates an action to once per Period. The first trigger always passes.
type Cooldown struct {
	Period time.Duration
	last   time.Time
}

func NewCooldown(period time.Duration) *Cooldown {
	return &Cooldown{Period: period}
}

func (c *Cooldown) Ready(now time.Time) bool {
	return c.last.IsZero() || now.Sub(c.last) >= c.Period
}

// Trigger stamps now when ready, returning whether it did.
func (c *Cooldown) Trigger(now time.Time) bool {
	if !c.Ready(now) {
		return false
	}
	c.last = now
	return true
}

// Last is the time of the previous trigger (zero if never).
func (c *Cooldown) Last() time.Time {
	return c.last
}
