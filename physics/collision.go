package physics

import (
	"math"

	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// VerticalCollision resolves c against a horizontal obstacle line at y spanning [x, x+width]
// direction +1 tests the body's bottom edge moving down, -1 its top edge moving up
// A hit requires the old edge to be outside the line (or at most the far margin past it)
// and the new edge to be within the near margin of it or beyond
func VerticalCollision(c entity.Collider, x, y, width, direction, tick float64) bool {
	b := c.AsBody()
	if !b.IsAlive() || b.Speed.Y*direction <= 0 {
		return false
	}

	box := b.CollisionBox
	if !vmath.SpanOverlap(box.Left(b.Position), box.Right(b.Position), x, x+width) {
		return false
	}

	half := direction * box.H / 2
	oldEdge := b.OldPosition.Y + box.Y + half
	newEdge := b.Position.Y + box.Y + half
	if !crossed(oldEdge, newEdge, y, direction, b.Speed.Y, tick) {
		return false
	}

	b.Position.Y = y - box.Y - half
	b.Speed.Y = -b.Speed.Y * b.BounceFactor.Y
	if direction > 0 {
		b.TouchSurface = true
	}

	if h, ok := c.(entity.VerticalCollisionHandler); ok {
		h.VerticalCollisionEvent(direction, tick)
	}
	return true
}

// HorizontalCollision resolves c against a vertical obstacle line at x spanning [y, y+height]
// direction +1 tests the right edge moving right, -1 the left edge moving left
func HorizontalCollision(c entity.Collider, x, y, height, direction, tick float64) bool {
	b := c.AsBody()
	if !b.IsAlive() || b.Speed.X*direction <= 0 {
		return false
	}

	box := b.CollisionBox
	if !vmath.SpanOverlap(box.Top(b.Position), box.Bottom(b.Position), y, y+height) {
		return false
	}

	half := direction * box.W / 2
	oldEdge := b.OldPosition.X + box.X + half
	newEdge := b.Position.X + box.X + half
	if !crossed(oldEdge, newEdge, x, direction, b.Speed.X, tick) {
		return false
	}

	b.Position.X = x - box.X - half
	b.Speed.X = -b.Speed.X * b.BounceFactor.X

	if h, ok := c.(entity.HorizontalCollisionHandler); ok {
		h.HorizontalCollisionEvent(direction, tick)
	}
	return true
}

// crossed is the swept edge test shared by both axes
// Distances are signed along direction: positive means short of the line
func crossed(oldEdge, newEdge, line, direction, speed, tick float64) bool {
	far := parameter.CollisionFarMargin + math.Abs(speed)*tick
	if (line-oldEdge)*direction < -far {
		return false
	}
	return (line-newEdge)*direction <= parameter.CollisionNearMargin
}
