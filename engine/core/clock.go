package core

import "time"

// TimeSource returns the current time in seconds. The window collaborator's
// Time method satisfies it; NewClock falls back to the wall clock.
type TimeSource func() float64

type Clock struct {
	source    TimeSource
	startTime float64
	elapsed   float64
	running   bool
}

func NewClock(source TimeSource) *Clock {
	if source == nil {
		source = wallTime
	}
	return &Clock{source: source}
}

func wallTime() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.source() - c.startTime
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.source()
	c.elapsed = 0
	c.running = true
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

// Elapsed returns the seconds between Start and the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
