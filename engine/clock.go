package engine

import (
	"time"

	"github.com/lixenwraith/tilerunner/constant"
)

// TimeProvider supplies wall time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock with its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.currentTime
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// Clock turns elapsed wall time into the tick scalar passed to Level.Update
// One nominal interval is 1.0; paused time never reaches the simulation
type Clock struct {
	provider TimeProvider
	interval time.Duration
	last     time.Time
	paused   bool
}

// NewClock starts a clock at tickRate updates per second
func NewClock(provider TimeProvider, tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = constant.TickRate
	}
	return &Clock{
		provider: provider,
		interval: time.Second / time.Duration(tickRate),
		last:     provider.Now(),
	}
}

// Interval is the nominal wall duration of one tick
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Tick returns ticks elapsed since the previous call, capped at MaxTickDelta
// Returns 0 while paused
func (c *Clock) Tick() float64 {
	now := c.provider.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	if c.paused || elapsed <= 0 {
		return 0
	}
	return min(float64(elapsed)/float64(c.interval), constant.MaxTickDelta)
}

// Pause stops game time advancement
func (c *Clock) Pause() {
	c.paused = true
}

// Resume continues from now; the paused span is dropped
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.last = c.provider.Now()
}

func (c *Clock) IsPaused() bool {
	return c.paused
}
