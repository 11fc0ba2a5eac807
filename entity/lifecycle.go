package entity

import (
	"math"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Update runs one tick of the lifecycle for a
// Dying actors only advance their death animation; leaving the camera while
// dying finalises them without finishing it
func Update(a Actor, tick float64) {
	e := a.Base()
	if !e.exists {
		return
	}

	if e.dying {
		if !e.inCamera {
			e.ForceKill()
			return
		}
		finished := true
		if d, ok := a.(Dier); ok {
			finished = d.Die(tick)
		}
		if finished {
			e.ForceKill()
		}
		return
	}

	if u, ok := a.(Updater); ok {
		u.UpdateEvent(tick)
		// UpdateEvent may kill or despawn
		if !e.exists || e.dying {
			return
		}
	}

	if m, ok := a.(Integrator); ok {
		m.Integrate(tick)
	} else {
		e.Integrate(tick)
	}
}

// CameraCheck recomputes visibility against view (world space, zero owner offset)
// Enter and exit hooks fire once per transition
func CameraCheck(a Actor, view vmath.Rect) {
	e := a.Base()
	if !e.exists {
		return
	}

	in := e.CameraCheckArea.Overlap(e.Position, view, vmath.Vector{})
	if in == e.inCamera {
		return
	}
	e.inCamera = in

	side := sideOf(e.CameraCheckArea.Center(e.Position), view)
	if in {
		if h, ok := a.(CameraEnterer); ok {
			h.OnCameraEnter(side)
		}
		return
	}
	if h, ok := a.(CameraExiter); ok {
		h.OnCameraExit(side)
	}
}

// sideOf picks the view edge nearest to p relative to the view's aspect
func sideOf(p vmath.Vector, view vmath.Rect) core.Direction {
	if view.W == 0 || view.H == 0 {
		return core.DirNone
	}
	dx := (p.X - view.X) / (view.W / 2)
	dy := (p.Y - view.Y) / (view.H / 2)
	if dx == 0 && dy == 0 {
		return core.DirNone
	}
	if math.Abs(dx) >= math.Abs(dy) {
		if dx < 0 {
			return core.DirLeft
		}
		return core.DirRight
	}
	if dy < 0 {
		return core.DirUp
	}
	return core.DirDown
}

// Overlay tests hitbox overlap between two active actors
func Overlay(a, b Actor) bool {
	ea, eb := a.Base(), b.Base()
	if !ea.exists || !eb.exists {
		return false
	}
	return ea.Hitbox.Overlap(ea.Position, eb.Hitbox, eb.Position)
}

// OverlayRect tests a's hitbox against r owned by a body at pos
func OverlayRect(a Actor, r vmath.Rect, pos vmath.Vector) bool {
	e := a.Base()
	if !e.exists {
		return false
	}
	return e.Hitbox.Overlap(e.Position, r, pos)
}
