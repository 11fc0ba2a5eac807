package engine

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/tilerunner/constant"
)

func TestClockTick(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(start)
	clock := NewClock(mock, 60)

	tests := []struct {
		name    string
		advance time.Duration
		want    float64
	}{
		{"nominal", clock.Interval(), 1.0},
		{"half", clock.Interval() / 2, 0.5},
		{"stall capped", time.Second, constant.MaxTickDelta},
		{"no time", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock.Advance(tt.advance)
			got := clock.Tick()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Tick() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockPause(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	clock := NewClock(mock, 60)

	clock.Pause()
	mock.Advance(10 * time.Second)
	if got := clock.Tick(); got != 0 {
		t.Errorf("paused Tick() = %v, want 0", got)
	}

	mock.Advance(10 * time.Second)
	clock.Resume()
	if clock.IsPaused() {
		t.Fatal("clock still paused after Resume")
	}

	mock.Advance(clock.Interval())
	if got := clock.Tick(); math.Abs(got-1) > 1e-9 {
		t.Errorf("Tick() after resume = %v, want 1 (paused span dropped)", got)
	}
}

func TestClockDefaultRate(t *testing.T) {
	clock := NewClock(NewMockTimeProvider(time.Time{}), 0)
	if clock.Interval() != constant.TickInterval {
		t.Errorf("Interval() = %v, want %v", clock.Interval(), constant.TickInterval)
	}
}
