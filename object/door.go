package object

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Door triggers a scene transition when the player enters it
type Door struct {
	entity.Entity
	Target string
}

func NewDoor() *Door {
	return &Door{}
}

func (d *Door) Spawn(pos vmath.Vector, target string) {
	d.Entity.Spawn(pos)
	d.Target = target
	d.Hitbox = vmath.Box(12, 16)
	d.CameraCheckArea = vmath.Box(16, 16)
}

// Enter fires the transition hook when a overlaps the door; false otherwise
func (d *Door) Enter(a entity.Actor, hooks *core.Hooks) bool {
	if !d.IsActive() || !entity.Overlay(d, a) {
		return false
	}
	hooks.Sound(core.SoundDoor, 1)
	hooks.Activate(d.Target)
	return true
}

func (d *Door) Sprite() entity.Sprite {
	return entity.Sprite{Kind: "door"}
}
