package enemy

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// slime creeps and hops at a fixed interval
type slime struct{}

func (s *slime) Init(e *Enemy) {
	e.Health = 2
	e.Hitbox = vmath.Box(12, 8)
	e.CollisionBox = vmath.Box(12, 8)
	e.DropProbability = 0.25
	e.Timer = 90
}

func (s *slime) UpdateAI(e *Enemy, tick float64) {
	walk(e, 0.3)
	if countdown(e, tick) && grounded(e) {
		e.Speed.Y = -2.5
		e.Timer = 90
	}
}

// skeleton patrols around its spawn point
type skeleton struct{}

func (s *skeleton) Init(e *Enemy) {
	e.Health = 3
	e.Hitbox = vmath.Box(10, 14)
	e.CollisionBox = vmath.Box(10, 14)
}

func (s *skeleton) UpdateAI(e *Enemy, tick float64) {
	e.Timer += tick
	patrol(e, 48)
	walk(e, 0.5)
}

// knight patrols and charges a player on its level
type knight struct {
	charge float64
}

const knightCharge = 40.0

func (s *knight) Init(e *Enemy) {
	e.Health = 5
	e.Damage = 2
	e.Weight = 0.5
	e.DropProbability = 0.5
	e.Hitbox = vmath.Box(12, 16)
	e.CollisionBox = vmath.Box(12, 16)
}

func (s *knight) UpdateAI(e *Enemy, tick float64) {
	e.Timer += tick
	if s.charge > 0 {
		s.charge -= tick
		walk(e, 2)
		return
	}
	patrol(e, 64)
	walk(e, 0.4)
}

func (s *knight) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if s.charge > 0 || !within(e, player, 80, 8) {
		return
	}
	face(e, player.X)
	s.charge = knightCharge
}

func (s *knight) OnWall(e *Enemy, direction float64) {
	s.charge = 0
	e.turn(direction)
}

func (s *knight) Frame(e *Enemy) int {
	if s.charge > 0 {
		return 2
	}
	return int(e.Timer/8) % 2
}

// frog leaps toward the player whenever it lands
type frog struct{}

func (s *frog) Init(e *Enemy) {
	e.Health = 2
	e.Hitbox = vmath.Box(12, 10)
	e.CollisionBox = vmath.Box(12, 10)
	e.Friction.X = 0.05
	e.Timer = 70
}

func (s *frog) UpdateAI(e *Enemy, tick float64) {
	if !grounded(e) {
		return
	}
	e.TargetSpeed.X = 0
	if countdown(e, tick) {
		e.Speed = vmath.Vec(e.Facing*1.5, -3.5)
		e.TargetSpeed.X = e.Speed.X
		e.Timer = 70
	}
}

func (s *frog) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if grounded(e) {
		face(e, player.X)
	}
}

func (s *frog) Frame(e *Enemy) int {
	if grounded(e) {
		return 0
	}
	return 1
}

// golem is slow and heavy; its landings shake the camera
type golem struct {
	airborne bool
}

const golemDeathTime = 48.0

func (s *golem) Init(e *Enemy) {
	e.Health = 8
	e.Damage = 2
	e.Weight = 0.2
	e.DropProbability = 0.8
	e.Hitbox = vmath.Box(20, 24)
	e.CollisionBox = vmath.Box(20, 24)
	e.CameraCheckArea = vmath.Box(24, 28)
	e.Timer = golemDeathTime
}

func (s *golem) UpdateAI(e *Enemy, tick float64) {
	patrol(e, 32)
	walk(e, 0.25)
}

func (s *golem) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if grounded(e) && !s.airborne && within(e, player, 64, 32) {
		face(e, player.X)
		e.Speed.Y = -3
		s.airborne = true
	}
}

func (s *golem) OnGround(e *Enemy, direction float64) {
	if direction > 0 && s.airborne {
		s.airborne = false
		e.env.Hooks().ShakeCamera(2, 12)
	}
}

// DeathAnimation crumbles with a second particle burst halfway through
func (s *golem) DeathAnimation(e *Enemy, tick float64) bool {
	half := e.Timer > golemDeathTime/2
	e.Timer -= tick
	if half && e.Timer <= golemDeathTime/2 {
		e.env.SpawnParticles(e.Position, parameter.EnemyDeathParticles, "rock")
		e.env.Hooks().ShakeCamera(1, 8)
	}
	return e.Timer <= 0
}

// mimic lies dormant as a chest until the player comes close or hits it
type mimic struct {
	awake bool
}

func (s *mimic) Init(e *Enemy) {
	e.Health = 4
	e.Damage = 2
	e.Contact = false
	e.DropProbability = 1
	e.Hitbox = vmath.Box(14, 12)
	e.CollisionBox = vmath.Box(14, 12)
}

func (s *mimic) UpdateAI(e *Enemy, tick float64) {
	if !s.awake {
		e.TargetSpeed.X = 0
		return
	}
	walk(e, 0.8)
	if countdown(e, tick) && grounded(e) {
		e.Speed.Y = -2
		e.Timer = 40
	}
}

func (s *mimic) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if !s.awake && within(e, player, 24, 16) {
		s.wake(e)
	}
	if s.awake {
		face(e, player.X)
	}
}

func (s *mimic) OnHurt(e *Enemy, a Attack) {
	s.wake(e)
}

func (s *mimic) wake(e *Enemy) {
	if s.awake {
		return
	}
	s.awake = true
	e.Contact = true
	e.env.Hooks().Sound(core.SoundBossRoar, 0.4)
}

func (s *mimic) Frame(e *Enemy) int {
	if !s.awake {
		return 0
	}
	return 1 + int(e.Timer/6)%2
}
