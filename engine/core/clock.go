package core

import "time"

// TimeSource returns the current time. The real clock uses time.Now; headless
// runs use NewFixedStepSource so every frame advances by the same delta.
type TimeSource func() time.Time

type Clock struct {
	now       TimeSource
	startTime time.Time
	running   bool
	elapsed   float64
}

func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

func NewClockWithSource(now TimeSource) *Clock {
	return &Clock{now: now}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.now().Sub(c.startTime).Seconds()
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
	c.running = true
	c.elapsed = 0
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

// Elapsed returns the seconds between Start and the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// NewFixedStepSource returns a TimeSource that starts at a fixed instant and
// moves forward by step on every call after the first.
func NewFixedStepSource(step time.Duration) TimeSource {
	current := time.Unix(0, 0)
	first := true
	return func() time.Time {
		if first {
			first = false
			return current
		}
		current = current.Add(step)
		return current
	}
}
