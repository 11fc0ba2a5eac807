package entity

import (
	"github.com/lixenwraith/tilerunner/vmath"
)

// Entity is the lifecycle base shared by every simulated object
// Invariant: dying implies exists; exists=false marks the slot reusable
type Entity struct {
	Position    vmath.Vector
	OldPosition vmath.Vector // Position before the last integration step
	Speed       vmath.Vector
	TargetSpeed vmath.Vector
	Friction    vmath.Vector // Per-axis approach rate toward TargetSpeed (px/tick²)
	Hitbox      vmath.Rect

	// CameraCheckArea is the box tested against the camera view
	CameraCheckArea vmath.Rect

	exists   bool
	dying    bool
	inCamera bool
}

// Base implements Actor
func (e *Entity) Base() *Entity {
	return e
}

// Spawn re-initialises every mutable field and activates the entity at pos
func (e *Entity) Spawn(pos vmath.Vector) {
	e.Position = pos
	e.OldPosition = pos
	e.Speed = vmath.Vector{}
	e.TargetSpeed = vmath.Vector{}
	e.exists = true
	e.dying = false
	e.inCamera = false
}

// Kill starts the death sequence; returns false if not alive
func (e *Entity) Kill() bool {
	if !e.exists || e.dying {
		return false
	}
	e.dying = true
	return true
}

// ForceKill deactivates immediately, skipping any death animation
func (e *Entity) ForceKill() {
	e.exists = false
	e.dying = false
}

// IsActive reports whether the slot is in use (alive or dying)
func (e *Entity) IsActive() bool { return e.exists }

// IsDying reports whether a death animation is running
func (e *Entity) IsDying() bool { return e.dying }

// IsAlive reports exists and not dying
func (e *Entity) IsAlive() bool { return e.exists && !e.dying }

// IsInCamera reports the result of the last CameraCheck
func (e *Entity) IsInCamera() bool { return e.inCamera }

// Pos returns a copy of the current position
func (e *Entity) Pos() vmath.Vector { return e.Position }

// SetPosition teleports without producing a swept step
func (e *Entity) SetPosition(pos vmath.Vector) {
	e.Position = pos
	e.OldPosition = pos
}

// Integrate advances speed toward TargetSpeed and position by speed
// The previous position is recorded first for swept tests
func (e *Entity) Integrate(tick float64) {
	e.OldPosition = e.Position
	e.Speed.X = vmath.Approach(e.Speed.X, e.TargetSpeed.X, e.Friction.X*tick)
	e.Speed.Y = vmath.Approach(e.Speed.Y, e.TargetSpeed.Y, e.Friction.Y*tick)
	e.Position.X += e.Speed.X * tick
	e.Position.Y += e.Speed.Y * tick
}
