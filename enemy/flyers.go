package enemy

import (
	"math"

	"github.com/lixenwraith/tilerunner/vmath"
)

// airborne sets up a gravity-free enemy with responsive steering
func airborne(e *Enemy) {
	e.Gravity = false
	e.Friction = vmath.Vec(0.1, 0.1)
}

// bat hangs asleep until the player comes near, then flutters after them
type bat struct {
	awake bool
}

func (s *bat) Init(e *Enemy) {
	airborne(e)
	e.Health = 1
	e.Hitbox = vmath.Box(10, 8)
	e.CollisionBox = vmath.Box(10, 8)
}

func (s *bat) UpdateAI(e *Enemy, tick float64) {
	if !s.awake {
		e.TargetSpeed = vmath.Vector{}
		return
	}
	e.Timer += tick
}

func (s *bat) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if !s.awake {
		s.awake = within(e, player, 64, 64)
		return
	}
	face(e, player.X)
	wobble := math.Sin(e.Timer*0.2) * 8
	fly(e, player.Add(vmath.Vec(0, wobble)), 1.2)
}

func (s *bat) Frame(e *Enemy) int {
	if !s.awake {
		return 0
	}
	return 1 + int(e.Timer/4)%2
}

// ghost drifts through walls toward the player
type ghost struct{}

func (s *ghost) Init(e *Enemy) {
	airborne(e)
	e.Phasing = true
	e.Health = 3
	e.Weight = 0.5
	e.Friction = vmath.Vec(0.02, 0.02)
	e.Hitbox = vmath.Box(12, 14)
}

func (s *ghost) UpdateAI(e *Enemy, tick float64) {
	e.Timer += tick
}

func (s *ghost) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	face(e, player.X)
	fly(e, player, 0.5)
}

// wisp circles its spawn point
type wisp struct{}

const wispRadius = 24.0

func (s *wisp) Init(e *Enemy) {
	airborne(e)
	e.Phasing = true
	e.Health = 1
	e.Weight = 0
	e.Hitbox = vmath.Box(8, 8)
	e.DropProbability = 0.5
}

func (s *wisp) UpdateAI(e *Enemy, tick float64) {
	e.Timer += tick
	a := e.Timer * 0.05
	goal := e.Anchor.Add(vmath.Vec(math.Cos(a)*wispRadius, math.Sin(a)*wispRadius))
	fly(e, goal, 2)
}

// crow perches and swoops at the player's position, then climbs away
type crow struct {
	swoop vmath.Vector
}

const (
	crowPerched = iota
	crowDiving
	crowClimbing
)

func (s *crow) Init(e *Enemy) {
	airborne(e)
	e.Health = 1
	e.Hitbox = vmath.Box(10, 8)
	e.CollisionBox = vmath.Box(10, 8)
	e.Phase = crowPerched
}

func (s *crow) UpdateAI(e *Enemy, tick float64) {
	switch e.Phase {
	case crowPerched:
		e.TargetSpeed = vmath.Vector{}
	case crowDiving:
		fly(e, s.swoop, 2.5)
		if e.Position.Distance(s.swoop) < 4 {
			e.Phase = crowClimbing
			e.Timer = 60
		}
	case crowClimbing:
		e.TargetSpeed = vmath.Vec(e.Facing*1.5, -1.5)
		if countdown(e, tick) {
			e.Phase = crowPerched
		}
	}
}

func (s *crow) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if e.Phase == crowPerched && within(e, player, 96, 96) && player.Y > e.Position.Y {
		face(e, player.X)
		s.swoop = player
		e.Phase = crowDiving
	}
}

func (s *crow) OnWall(e *Enemy, direction float64) {
	e.turn(direction)
	if e.Phase == crowDiving {
		e.Phase = crowClimbing
		e.Timer = 60
	}
}

func (s *crow) Frame(e *Enemy) int {
	return e.Phase
}

// bomber cruises at its spawn height and drops bombs over the player
type bomber struct{}

func (s *bomber) Init(e *Enemy) {
	airborne(e)
	e.Health = 2
	e.Clamp = true
	e.Hitbox = vmath.Box(14, 8)
	e.CollisionBox = vmath.Box(14, 8)
}

func (s *bomber) UpdateAI(e *Enemy, tick float64) {
	if e.Timer > 0 {
		e.Timer -= tick
	}
	e.TargetSpeed = vmath.Vec(e.Facing*0.8, (e.Anchor.Y-e.Position.Y)*0.1)
}

func (s *bomber) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if e.Timer <= 0 && player.Y > e.Position.Y && within(e, player, 8, 160) {
		e.env.SpawnProjectile(e.Position, vmath.Vec(0, 1), e.Damage, true)
		e.Timer = 90
	}
}

// spider hangs on a thread and drops onto a player passing below
type spider struct{}

const (
	spiderHanging = iota
	spiderDropping
	spiderClimbing
)

func (s *spider) Init(e *Enemy) {
	airborne(e)
	e.Phasing = true
	e.Health = 2
	e.Hitbox = vmath.Box(10, 10)
	e.Phase = spiderHanging
}

func (s *spider) UpdateAI(e *Enemy, tick float64) {
	switch e.Phase {
	case spiderHanging:
		e.TargetSpeed = vmath.Vector{}
	case spiderDropping:
		e.TargetSpeed = vmath.Vec(0, 3)
		if e.Position.Y-e.Anchor.Y > 96 || countdown(e, tick) {
			e.Phase = spiderClimbing
		}
	case spiderClimbing:
		e.TargetSpeed = vmath.Vec(0, -0.6)
		if e.Position.Y <= e.Anchor.Y {
			e.SetPosition(e.Anchor)
			e.Phase = spiderHanging
		}
	}
}

func (s *spider) PlayerEvent(e *Enemy, player vmath.Vector, tick float64) {
	if e.Phase == spiderHanging && player.Y > e.Position.Y && within(e, player, 12, 128) {
		e.Phase = spiderDropping
		e.Timer = 40
	}
}

// fish leaps out of water at its spawn point and falls back in
type fish struct{}

func (s *fish) Init(e *Enemy) {
	e.Phasing = true
	e.Health = 1
	e.Hitbox = vmath.Box(10, 10)
	e.Timer = 60
	e.Contact = false
}

func (s *fish) UpdateAI(e *Enemy, tick float64) {
	e.Contact = e.Position.Y < e.Anchor.Y
	if e.Position.Y >= e.Anchor.Y && e.Speed.Y >= 0 {
		e.SetPosition(e.Anchor)
		e.Speed = vmath.Vector{}
		e.TargetSpeed = vmath.Vector{}
		if countdown(e, tick) {
			e.Speed.Y = -5
			e.Timer = 100
		}
		// Stay submerged; the base set a fall target
		e.TargetSpeed.Y = 0
	}
}

func (s *fish) Frame(e *Enemy) int {
	if e.Speed.Y < 0 {
		return 0
	}
	return 1
}
