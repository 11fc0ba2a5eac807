package camera

import (
	"testing"

	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveRejections(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		speed  float64
	}{
		{"negative x", -1, 0, 0.5},
		{"negative y", 0, -1, 0.5},
		{"zero move", 0, 0, 0.5},
		{"zero speed", 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(320, 192)
			assert.False(t, c.Move(tt.dx, tt.dy, tt.speed))
			assert.False(t, c.IsMoving())
			assert.Equal(t, GridPos{}, c.Target())
		})
	}
}

func TestMoveWhileMovingKeepsTarget(t *testing.T) {
	c := New(320, 192)
	require.True(t, c.Move(1, 0, 0.25))

	assert.False(t, c.Move(0, 1, 0.25))
	assert.Equal(t, GridPos{X: 1}, c.Target())
}

func TestMoveInterpolatesAndStops(t *testing.T) {
	c := New(320, 192)
	require.True(t, c.Move(1, 0, 0.25))

	c.Update(1)
	assert.InDelta(t, 80.0, c.Position().X, 1e-9)
	assert.False(t, c.Stopped())

	c.Update(1)
	assert.InDelta(t, 160.0, c.Position().X, 1e-9)

	c.Update(1)
	c.Update(1)
	assert.Equal(t, 320.0, c.Position().X, "snapped to target")
	assert.False(t, c.IsMoving())
	assert.Equal(t, GridPos{X: 1}, c.GridPos())

	assert.True(t, c.Stopped())
	assert.False(t, c.Stopped(), "signal is one-shot")
}

func TestTrack(t *testing.T) {
	c := New(320, 192)

	assert.False(t, c.Track(vmath.Vec(100, 100), 0.5), "inside current room")
	require.True(t, c.Track(vmath.Vec(330, 100), 0.5))
	assert.Equal(t, GridPos{X: 1}, c.Target())
}

func TestShake(t *testing.T) {
	c := New(320, 192)
	rng := vmath.NewFastRand(7)
	assert.Equal(t, vmath.Vector{}, c.ShakeOffset(rng))

	c.Shake(3, 2)
	off := c.ShakeOffset(rng)
	assert.LessOrEqual(t, off.X, 3.0)
	assert.GreaterOrEqual(t, off.X, -3.0)
	assert.Equal(t, vmath.Vector{}, c.Position(), "shake never moves the camera")

	c.Update(2)
	assert.Equal(t, vmath.Vector{}, c.ShakeOffset(rng))
}

func TestVisible(t *testing.T) {
	c := New(320, 192)
	area := vmath.Box(16, 16)

	assert.True(t, c.Visible(area, vmath.Vec(100, 100)))
	assert.True(t, c.Visible(area, vmath.Vec(-4, 100)), "partially inside")
	assert.False(t, c.Visible(area, vmath.Vec(400, 100)))

	c.SetPosition(GridPos{X: 1})
	assert.True(t, c.Visible(area, vmath.Vec(400, 100)))
}
