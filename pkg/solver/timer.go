package solver

import "time"

// Wall clock of one search, with an optional deadline
type clock struct {
	start    time.Time
	deadline time.Time
}

func newClock() *clock {
	return &clock{start: time.Now()}
}

// Start measuring from now, 'movetime' in milliseconds, no deadline if not positive
func (c *clock) Restart(movetime int) {
	c.start = time.Now()
	c.deadline = time.Time{}
	if movetime > 0 {
		c.deadline = c.start.Add(time.Duration(movetime) * time.Millisecond)
	}
}

func (c *clock) HasDeadline() bool {
	return !c.deadline.IsZero()
}

func (c *clock) Expired() bool {
	return c.HasDeadline() && !time.Now().Before(c.deadline)
}

func (c *clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Elapsed milliseconds, at least 1 so it can be used as a divisor
func (c *clock) Millis() int {
	return max(int(c.Elapsed().Milliseconds()), 1)
}
