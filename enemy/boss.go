package enemy

import (
	"math"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/sirupsen/logrus"
)

// Boss attack cycle
const (
	bossCooldown = iota
	bossGather
	bossStrike
)

const (
	bossDeathTime = 90.0
	handCount     = 2
)

// handle is a generation-checked reference to a pooled enemy
type handle struct {
	e   *Enemy
	gen int
}

func (h handle) live() *Enemy {
	if h.e == nil || !h.e.IsAlive() || h.e.Generation() != h.gen {
		return nil
	}
	return h.e
}

// boss hovers over its anchor and slams with two hands
// Hands must all report ready before a strike begins
type boss struct {
	hands    [handCount]handle
	attached bool
	enraged  bool
	dying    bool
	next     int
	clock    float64
}

func (s *boss) Init(e *Enemy) {
	e.Gravity = false
	e.Phasing = true
	e.Weight = 0
	e.Health = 30
	e.Damage = 2
	e.DropProbability = 1
	e.Hitbox = vmath.Box(28, 28)
	e.CollisionBox = vmath.Box(28, 28)
	e.CameraCheckArea = vmath.Box(96, 48)
	e.Friction = vmath.Vec(0.2, 0.2)
	e.Phase = bossCooldown
	e.Timer = parameter.BossCooldown
}

// Hands returns the live hands
func (s *boss) Hands() []*Enemy {
	var hs []*Enemy
	for _, h := range s.hands {
		if he := h.live(); he != nil {
			hs = append(hs, he)
		}
	}
	return hs
}

// Enraged reports the second phase
func (s *boss) Enraged() bool {
	return s.enraged
}

func (s *boss) UpdateAI(e *Enemy, tick float64) {
	if !s.attached {
		s.attach(e)
	}

	s.clock += tick
	sway := vmath.Vec(math.Sin(s.clock*0.02)*24, math.Sin(s.clock*0.05)*4)
	fly(e, e.Anchor.Add(sway), 1)

	if !s.enraged && e.Health*2 < e.MaxHealth {
		s.enraged = true
		hooks := e.env.Hooks()
		hooks.Sound(core.SoundBossRoar, 1)
		hooks.ShakeCamera(parameter.BossShakeAmplitude, parameter.BossShakeDuration)
		logger.Component("enemy").WithFields(logrus.Fields{
			"species": e.id.String(),
			"health":  e.Health,
		}).Debug("boss enraged")
	}

	hands := s.Hands()
	switch e.Phase {
	case bossCooldown:
		if countdown(e, tick) {
			e.Phase = bossGather
			target := e.Position
			if p := e.env.Target(); p != nil {
				target = p.Pos()
			}
			for i, h := range s.strikers(hands) {
				h.species.(*hand).prepare(h, target.Add(vmath.Vec(float64(i)*24-12, 0)))
			}
		}
	case bossGather:
		// Barrier: every live hand must be in position
		for _, h := range hands {
			if h.species.(*hand).engaged && !h.Ready() {
				return
			}
		}
		for _, h := range hands {
			if h.Ready() {
				h.species.(*hand).strike(h)
			}
		}
		e.Phase = bossStrike
	case bossStrike:
		for _, h := range hands {
			if h.species.(*hand).engaged {
				return
			}
		}
		e.Phase = bossCooldown
		e.Timer = parameter.BossCooldown
		if s.enraged {
			e.Timer = parameter.BossCooldownEnraged
		}
	}
}

// strikers picks both hands when enraged, otherwise alternates
func (s *boss) strikers(hands []*Enemy) []*Enemy {
	if s.enraged || len(hands) < 2 {
		return hands
	}
	s.next = (s.next + 1) % len(hands)
	return hands[s.next : s.next+1]
}

// attach spawns the hands from the enemy pool
func (s *boss) attach(e *Enemy) {
	s.attached = true
	for i := range s.hands {
		side := float64(2*i - 1)
		pos := e.Position.Add(vmath.Vec(side*parameter.BossHandOffsetX, parameter.BossHandOffsetY))
		he := e.env.SpawnEnemy(Hand, pos)
		if he == nil {
			continue
		}
		he.species.(*hand).bind(he, e, side)
		s.hands[i] = handle{e: he, gen: he.Generation()}
	}
}

func (s *boss) OnHurt(e *Enemy, a Attack) {
	e.env.Hooks().ShakeCamera(1, 6)
}

// DeathAnimation takes the hands down immediately and bursts for a while
func (s *boss) DeathAnimation(e *Enemy, tick float64) bool {
	for i, h := range s.hands {
		if he := h.live(); he != nil {
			he.ForceKill()
		}
		s.hands[i] = handle{}
	}

	if !s.dying {
		s.dying = true
		e.Timer = bossDeathTime
		e.env.Hooks().ShakeCamera(parameter.BossShakeAmplitude*2, bossDeathTime)
	}
	before := int(e.Timer / 15)
	e.Timer -= tick
	if int(e.Timer/15) != before {
		e.env.SpawnParticles(e.Position, parameter.EnemyDeathParticles, "spark")
	}
	return e.Timer <= 0
}

func (s *boss) Frame(e *Enemy) int {
	if s.enraged {
		return 1
	}
	return 0
}

// Hand states
const (
	handFollow = iota
	handWindUp
	handReady
	handStrike
	handReturn
)

const handRaise = 24.0

// hand tracks a rest point beside its boss and slams on command
type hand struct {
	boss    handle
	side    float64
	target  vmath.Vector
	engaged bool // Between prepare and the return to rest
}

func (s *hand) Init(e *Enemy) {
	e.Gravity = false
	e.Phasing = true
	e.Weight = 0
	e.Health = 6
	e.DropProbability = 0
	e.Hitbox = vmath.Box(16, 14)
	e.CollisionBox = vmath.Box(16, 14)
	e.CameraCheckArea = vmath.Box(16, 14)
	e.Friction = vmath.Vec(0.5, 0.5)
	e.Phase = handFollow
}

func (s *hand) bind(e, b *Enemy, side float64) {
	s.boss = handle{e: b, gen: b.Generation()}
	s.side = side
	e.Facing = side
}

func (s *hand) rest(b *Enemy) vmath.Vector {
	return b.Position.Add(vmath.Vec(s.side*parameter.BossHandOffsetX, parameter.BossHandOffsetY))
}

// prepare raises the hand over target
func (s *hand) prepare(e *Enemy, target vmath.Vector) {
	s.target = target
	s.engaged = true
	e.Phase = handWindUp
	e.Timer = parameter.BossWindUp
}

// strike releases a ready hand
func (s *hand) strike(e *Enemy) {
	e.Phase = handStrike
	e.Phasing = false
	e.Speed = vmath.Vec(0, parameter.BossStrikeSpeed)
}

func (s *hand) UpdateAI(e *Enemy, tick float64) {
	b := s.boss.live()
	if b == nil {
		e.Kill()
		return
	}

	switch e.Phase {
	case handFollow:
		fly(e, s.rest(b), 3)
	case handWindUp:
		fly(e, vmath.Vec(s.target.X, s.rest(b).Y-handRaise), 3)
		if countdown(e, tick) {
			e.Phase = handReady
		}
	case handReady:
		fly(e, vmath.Vec(s.target.X, s.rest(b).Y-handRaise), 1)
	case handStrike:
		e.TargetSpeed = vmath.Vec(0, parameter.BossStrikeSpeed)
		if e.Position.Y-s.target.Y > 64 {
			s.land(e)
		}
	case handReturn:
		fly(e, s.rest(b), 2)
		if e.Position.Distance(s.rest(b)) < 2 {
			e.Phase = handFollow
			s.engaged = false
		}
	}
}

func (s *hand) OnGround(e *Enemy, direction float64) {
	if e.Phase == handStrike && direction > 0 {
		s.land(e)
		hooks := e.env.Hooks()
		hooks.Sound(core.SoundBounce, 1)
		hooks.ShakeCamera(parameter.BossShakeAmplitude, parameter.BossShakeDuration)
	}
}

func (s *hand) land(e *Enemy) {
	e.Phase = handReturn
	e.Phasing = true
}

func (s *hand) Ready(e *Enemy) bool {
	return e.Phase == handReady
}

func (s *hand) Frame(e *Enemy) int {
	if e.Phase == handStrike {
		return 1
	}
	return 0
}
