package synth

// Counter is the monotonic featured-rank clock for one run.
// The first call to Next returns start+1.
type Counter struct {
	seq int
}

// NewCounterAt creates a counter that continues after start.
func NewCounterAt(start int) *Counter {
	return &Counter{seq: start}
}

// Next increments and returns the next rank.
func (c *Counter) Next() int {
	c.seq++
	return c.seq
}

// Current returns the last issued rank without incrementing.
func (c *Counter) Current() int {
	return c.seq
}
