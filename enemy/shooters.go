package enemy

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/vmath"
)

// archer stands its ground and shoots at the player in range
type archer struct{}

func (s *archer) Init(e *Enemy) {
	e.Health = 2
	e.Hitbox = vmath.Box(10, 14)
	e.CollisionBox = vmath.Box(10, 14)
	e.DropProbability = 0.4
	e.Timer = 60
}

func (s *archer) UpdateAI(e *Enemy, tick float64) {
	e.TargetSpeed.X = 0
	if e.Timer > 0 {
		e.Timer -= tick
	}
}

func (s *archer) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	face(e, player.X)
	if e.Timer <= 0 && within(e, player, 160, 48) {
		fire(e, player, false)
		e.env.Hooks().Sound(core.SoundShoot, 0.6)
		e.Timer = 120
	}
}

func (s *archer) Frame(e *Enemy) int {
	if e.Timer > 100 {
		return 1
	}
	return 0
}

// mushroom puffs lobbed spores when the player steps close
type mushroom struct{}

func (s *mushroom) Init(e *Enemy) {
	e.Health = 3
	e.Weight = 0
	e.Hitbox = vmath.Box(12, 12)
	e.CollisionBox = vmath.Box(12, 12)
}

func (s *mushroom) UpdateAI(e *Enemy, tick float64) {
	e.TargetSpeed.X = 0
	if e.Timer > 0 {
		e.Timer -= tick
	}
}

func (s *mushroom) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if e.Timer > 0 || !within(e, player, 48, 32) {
		return
	}
	for _, dx := range []float64{-0.6, 0, 0.6} {
		e.env.SpawnProjectile(e.Position, vmath.Vec(dx, -1), e.Damage, true)
	}
	e.Timer = 150
}

// turret is a fixed emplacement firing horizontally toward the player's side
type turret struct{}

func (s *turret) Init(e *Enemy) {
	e.Gravity = false
	e.Weight = 0
	e.Health = 4
	e.Hitbox = vmath.Box(14, 14)
	e.CollisionBox = vmath.Box(14, 14)
	e.DropProbability = 0.5
	e.Timer = 80
}

func (s *turret) UpdateAI(e *Enemy, tick float64) {
	e.TargetSpeed = vmath.Vector{}
	e.Speed = vmath.Vector{}
	if e.Timer > 0 {
		e.Timer -= tick
	}
}

func (s *turret) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	face(e, player.X)
	if e.Timer <= 0 {
		e.env.SpawnProjectile(e.Position, vmath.Vec(e.Facing, 0), e.Damage, false)
		e.env.Hooks().Sound(core.SoundShoot, 0.4)
		e.Timer = 80
	}
}
