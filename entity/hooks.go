package entity

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Actor is anything driven by Update
type Actor interface {
	Base() *Entity
}

// Collider is an actor with a collision body
type Collider interface {
	Actor
	AsBody() *Body
}

// Optional capabilities; an absent hook is a no-op

// Updater runs ordinary per-tick logic while alive
type Updater interface {
	UpdateEvent(tick float64)
}

// Integrator replaces the default motion step
type Integrator interface {
	Integrate(tick float64)
}

// Dier advances a death animation, returning true once it has completed
type Dier interface {
	Die(tick float64) bool
}

// CameraEnterer is told which side of the view it entered from
type CameraEnterer interface {
	OnCameraEnter(from core.Direction)
}

// CameraExiter is told which side of the view it left through
type CameraExiter interface {
	OnCameraExit(to core.Direction)
}

// VerticalCollisionHandler reacts to a resolved vertical hit (+1 down, -1 up)
type VerticalCollisionHandler interface {
	VerticalCollisionEvent(direction, tick float64)
}

// HorizontalCollisionHandler reacts to a resolved horizontal hit (+1 right, -1 left)
type HorizontalCollisionHandler interface {
	HorizontalCollisionEvent(direction, tick float64)
}

// Ladder describes a ladder tile touched this tick
type Ladder struct {
	Strip vmath.Rect // Climbable strip in world space
	Tile  vmath.Rect // Whole tile in world space
	Top   bool       // Topmost ladder tile; standable from above
}

// LadderCollider is offered every ladder tile near the body
type LadderCollider interface {
	LadderCollision(l Ladder, tick float64)
}

// HurtCollider is told when the body touches a hurt edge; side is the edge, tile the whole tile in world space
type HurtCollider interface {
	HurtCollision(side core.Direction, tile vmath.Rect, tick float64)
}

// ObjectCollider reacts to landing on or bumping a collision object
type ObjectCollider interface {
	CollisionObjectCollision(obj Actor, direction float64)
}

// Sprite is the render-facing description of an entity
type Sprite struct {
	Kind  string
	Frame int
	FlipX bool
	Flash bool
}

// Visual entities can be drawn
type Visual interface {
	Sprite() Sprite
}
