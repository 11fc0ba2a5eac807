package physics

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crate struct {
	entity.Body
	vertical   []float64
	horizontal []float64
}

func (c *crate) VerticalCollisionEvent(direction, tick float64) {
	c.vertical = append(c.vertical, direction)
}

func (c *crate) HorizontalCollisionEvent(direction, tick float64) {
	c.horizontal = append(c.horizontal, direction)
}

// newCrate places a 10x14 box so its bottom edge moves from oldBottom to newBottom
func newCrate(x, oldBottom, newBottom float64) *crate {
	c := &crate{}
	c.Spawn(vmath.Vec(x, oldBottom-7))
	c.CollisionBox = vmath.Box(10, 14)
	c.Position = vmath.Vec(x, newBottom-7)
	c.Speed = vmath.Vec(0, newBottom-oldBottom)
	return c
}

func TestFallingOntoTileTop(t *testing.T) {
	// 16x16 tile at (0, 32): old edge 3px above, new edge 1px below
	c := newCrate(8, 29, 33)

	hit := VerticalCollision(c, 0, 32, 16, 1, 1.0)

	require.True(t, hit)
	assert.Equal(t, 32.0, c.CollisionBox.Bottom(c.Position), "snapped to tile top")
	assert.True(t, c.TouchSurface)
	assert.Equal(t, 0.0, c.Speed.Y)
	assert.Equal(t, []float64{1}, c.vertical)
}

func TestMovingAwayNeverHits(t *testing.T) {
	c := newCrate(8, 33, 29)
	assert.False(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))

	c = newCrate(8, 31, 31)
	assert.False(t, VerticalCollision(c, 0, 32, 16, 1, 1.0), "zero speed")
	assert.Empty(t, c.vertical)
}

func TestNoTunnelingWithinMargin(t *testing.T) {
	for _, speed := range []float64{0.25, 1, 3, 5, 8, 12, 15.5} {
		t.Run(fmt.Sprintf("speed_%.2f", speed), func(t *testing.T) {
			// Old edge just above the line, new edge carried far past it
			c := newCrate(8, 31.9, 31.9+speed)
			assert.True(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))
			assert.Equal(t, 32.0, c.CollisionBox.Bottom(c.Position))
		})
	}
}

func TestRestingNearbyIsIgnored(t *testing.T) {
	// New edge still 2px short of the line
	c := newCrate(8, 29, 30)
	assert.False(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))
	assert.False(t, c.TouchSurface)
}

func TestAlreadyDeepIsIgnored(t *testing.T) {
	// Old edge 10px past a line: belongs to another surface
	c := newCrate(8, 42, 43)
	assert.False(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))
}

func TestPerpendicularSpanMustOverlap(t *testing.T) {
	c := newCrate(30, 29, 33)
	assert.False(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))
}

func TestBounceFactor(t *testing.T) {
	tests := []struct {
		name   string
		bounce float64
		want   float64
	}{
		{"Inelastic", 0, 0},
		{"Half", 0.5, -2},
		{"Elastic", 1, -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCrate(8, 29, 33)
			c.BounceFactor = vmath.Vec(0, tt.bounce)
			require.True(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))
			assert.Equal(t, tt.want, c.Speed.Y)
		})
	}
}

func TestCeilingHit(t *testing.T) {
	// Rising into the bottom of a tile spanning y 0..16
	c := &crate{}
	c.Spawn(vmath.Vec(8, 25))
	c.CollisionBox = vmath.Box(10, 14)
	c.Position = vmath.Vec(8, 21)
	c.Speed = vmath.Vec(0, -4)

	require.True(t, VerticalCollision(c, 0, 16, 16, -1, 1.0))
	assert.Equal(t, 16.0, c.CollisionBox.Top(c.Position))
	assert.False(t, c.TouchSurface, "only downward hits touch a surface")
	assert.Equal(t, []float64{-1}, c.vertical)
}

func TestHorizontalWall(t *testing.T) {
	// Moving right into a wall whose left edge is x=32, spanning y 0..16
	c := &crate{}
	c.Spawn(vmath.Vec(25, 8))
	c.CollisionBox = vmath.Box(10, 14)
	c.Position = vmath.Vec(28, 8)
	c.Speed = vmath.Vec(3, 0)
	c.BounceFactor = vmath.Vec(1, 0)

	require.True(t, HorizontalCollision(c, 32, 0, 16, 1, 1.0))
	assert.Equal(t, 32.0, c.CollisionBox.Right(c.Position))
	assert.Equal(t, -3.0, c.Speed.X)
	assert.Equal(t, []float64{1}, c.horizontal)

	// Second call in the same tick: now moving away
	assert.False(t, HorizontalCollision(c, 32, 0, 16, 1, 1.0))
}

func TestDyingBodyIgnored(t *testing.T) {
	c := newCrate(8, 29, 33)
	c.Kill()
	assert.False(t, VerticalCollision(c, 0, 32, 16, 1, 1.0))
}
