package entity

import "github.com/lixenwraith/tilerunner/vmath"

// Body is an entity that collides with tile edges and collision objects
type Body struct {
	Entity

	// CollisionBox is used against tiles; Hitbox stays the combat shape
	CollisionBox vmath.Rect

	// BounceFactor is per-axis restitution in [0, 1]
	BounceFactor vmath.Vector

	// TouchSurface is raised by a downward vertical hit this tick
	TouchSurface bool
	// DidTouchSurface holds the previous tick's TouchSurface
	DidTouchSurface bool
}

// AsBody implements Collider
func (b *Body) AsBody() *Body {
	return b
}

// Spawn re-initialises the body including surface contact
func (b *Body) Spawn(pos vmath.Vector) {
	b.Entity.Spawn(pos)
	b.TouchSurface = false
	b.DidTouchSurface = false
}

// Integrate rotates surface contact then integrates motion
func (b *Body) Integrate(tick float64) {
	b.DidTouchSurface = b.TouchSurface
	b.TouchSurface = false
	b.Entity.Integrate(tick)
}
