package player

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/enemy"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/physics"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Input is the per-tick intent set polled by the input collaborator
type Input struct {
	Left, Right, Up, Down bool
	Jump, Attack          bool
}

// Animation frames reported through Sprite
const (
	FrameIdle = iota
	FrameWalk
	FrameJump
	FrameClimb
	FrameAttack
	FrameDead
)

// Player is the controllable body
// Exactly one of climbing, attacking or normal movement sets velocity targets per tick
type Player struct {
	entity.Body

	Health    int
	MaxHealth int
	Score     int
	Facing    float64

	// Frozen drops input while the camera changes rooms
	Frozen bool

	hooks *core.Hooks
	input Input
	prev  Input

	climbing bool
	onLadder bool
	ladder   entity.Ladder
	carrier  entity.Actor

	attackTimer float64
	ledgeTimer  float64
	jumpBuffer  float64
	invuln      float64
	deathTimer  float64
	jumping     bool
	impact      float64
}

// New returns an inactive player; hooks may be nil
func New(hooks *core.Hooks) *Player {
	return &Player{hooks: hooks, MaxHealth: parameter.PlayerMaxHealth}
}

// Spawn resets the player at pos with full health
func (p *Player) Spawn(pos vmath.Vector) {
	p.Body.Spawn(pos)
	p.Hitbox = vmath.Box(parameter.PlayerWidth, parameter.PlayerHeight)
	p.CollisionBox = p.Hitbox
	p.CameraCheckArea = p.Hitbox
	p.BounceFactor = vmath.Vector{}
	p.Friction = vmath.Vec(parameter.PlayerGroundFriction, parameter.GravityFriction)
	p.TargetSpeed = vmath.Vec(0, parameter.FallSpeed)

	p.Health = p.MaxHealth
	p.Facing = 1
	p.Frozen = false
	p.input, p.prev = Input{}, Input{}
	p.climbing, p.onLadder, p.jumping = false, false, false
	p.carrier = nil
	p.attackTimer, p.ledgeTimer, p.jumpBuffer = 0, 0, 0
	p.invuln, p.impact = 0, 0
	p.deathTimer = parameter.PlayerDeathTime
}

// SetInput stores the intents for the next update
func (p *Player) SetInput(in Input) {
	p.input = in
}

// UpdateEvent turns input into velocity targets
func (p *Player) UpdateEvent(tick float64) {
	in := p.input
	if p.Frozen {
		in = Input{}
	}
	pressedJump := in.Jump && !p.prev.Jump
	pressedAttack := in.Attack && !p.prev.Attack
	p.prev = in

	p.invuln = max(p.invuln-tick, 0)
	p.jumpBuffer = max(p.jumpBuffer-tick, 0)
	if p.TouchSurface {
		p.ledgeTimer = parameter.PlayerLedgeTime
	} else {
		p.ledgeTimer = max(p.ledgeTimer-tick, 0)
	}
	if pressedJump {
		p.jumpBuffer = parameter.PlayerJumpBuffer
	}

	if !p.climbing && p.onLadder && p.attackTimer <= 0 && (in.Up || (in.Down && p.ladder.Top)) {
		p.startClimb()
	}

	switch {
	case p.climbing:
		p.climb(in)
	case p.attackTimer > 0:
		p.attack(in, tick)
	default:
		p.move(in)
	}

	if pressedAttack && !p.climbing && p.attackTimer <= 0 {
		p.attackTimer = parameter.PlayerAttackTime
		p.hooks.Sound(core.SoundSwing, 0.7)
	}

	// Re-offered by the tile pass after integration
	p.onLadder = false
}

func (p *Player) startClimb() {
	p.climbing = true
	p.jumping = false
	p.Position.X = p.ladder.Strip.Center(vmath.Vector{}).X
	p.Speed = vmath.Vector{}
}

func (p *Player) climb(in Input) {
	if !p.onLadder {
		p.climbing = false
		p.move(in)
		return
	}

	if p.jumpBuffer > 0 {
		p.climbing = false
		p.jumpBuffer = 0
		p.launch(parameter.PlayerJumpSpeed * 0.75)
		return
	}
	if p.TouchSurface && in.Down && !p.ladder.Top {
		p.climbing = false
		p.move(in)
		return
	}

	dy := 0.0
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	p.Speed.X = 0
	p.TargetSpeed = vmath.Vec(0, dy*parameter.PlayerClimbSpeed)
	p.Friction = vmath.Vec(parameter.PlayerClimbFriction, parameter.PlayerClimbFriction)
}

func (p *Player) attack(in Input, tick float64) {
	p.attackTimer = max(p.attackTimer-tick, 0)
	p.gravity()
	if p.TouchSurface {
		p.TargetSpeed.X = 0
		p.Friction.X = parameter.PlayerGroundFriction
	}
}

func (p *Player) move(in Input) {
	dir := 0.0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	if dir != 0 {
		p.Facing = dir
	}

	p.gravity()
	p.TargetSpeed.X = dir * parameter.PlayerWalkSpeed
	p.Friction.X = parameter.PlayerAirFriction
	if p.TouchSurface {
		p.Friction.X = parameter.PlayerGroundFriction
	}

	if p.jumpBuffer > 0 && p.ledgeTimer > 0 {
		p.jumpBuffer = 0
		p.ledgeTimer = 0
		p.launch(parameter.PlayerJumpSpeed)
		if p.carrier != nil {
			p.Speed.X += p.carrier.Base().Speed.X
		}
		return
	}

	// Releasing jump early cuts the rise
	if p.jumping && !in.Jump && p.Speed.Y < 0 {
		p.Speed.Y *= parameter.PlayerJumpCut
		p.jumping = false
	}
	if p.Speed.Y >= 0 {
		p.jumping = false
	}
}

func (p *Player) launch(speed float64) {
	p.gravity()
	p.Speed.Y = -speed
	p.jumping = true
	p.hooks.Sound(core.SoundJump, 0.6)
}

func (p *Player) gravity() {
	p.TargetSpeed.Y = parameter.FallSpeed
	p.Friction.Y = parameter.GravityFriction
}

// Integrate records the fall speed that a landing this tick would absorb
func (p *Player) Integrate(tick float64) {
	p.carrier = nil
	p.Body.Integrate(tick)
	p.impact = p.Speed.Y
}

// VerticalCollisionEvent plays the landing sound and stops a rise on ceilings
func (p *Player) VerticalCollisionEvent(direction, tick float64) {
	if direction < 0 {
		p.jumping = false
		return
	}
	if !p.DidTouchSurface && p.impact >= parameter.PlayerLandSpeed {
		p.hooks.Sound(core.SoundLand, 0.5)
	}
	if p.climbing && !p.ladder.Top {
		p.climbing = false
	}
}

// LadderCollision records ladder contact; ladder tops act as one-way floors
func (p *Player) LadderCollision(l entity.Ladder, tick float64) {
	if l.Top && !p.climbing && !p.input.Down {
		var zero vmath.Vector
		physics.VerticalCollision(p, l.Tile.Left(zero), l.Tile.Top(zero), l.Tile.W, 1, tick)
	}
	if l.Strip.Overlap(vmath.Vector{}, p.CollisionBox, p.Position) {
		p.onLadder = true
		p.ladder = l
	}
}

// HurtCollision takes one point from a hurt edge, knocked away from a side edge's tile
func (p *Player) HurtCollision(side core.Direction, tile vmath.Rect, tick float64) {
	from := p.Position.X
	if side == core.DirLeft || side == core.DirRight {
		from = tile.Center(vmath.Vector{}).X
	}
	p.Hurt(1, from)
}

// CollisionObjectCollision remembers the platform carrying the player this tick
func (p *Player) CollisionObjectCollision(obj entity.Actor, direction float64) {
	if direction > 0 {
		p.carrier = obj
	}
}

// Hurt applies damage from a source at fromX; false while invulnerable or dead
func (p *Player) Hurt(damage int, fromX float64) bool {
	if !p.IsAlive() || p.invuln > 0 || damage <= 0 {
		return false
	}

	p.Health -= damage
	p.climbing = false
	p.attackTimer = 0
	p.jumping = false

	if p.Health <= 0 {
		p.Health = 0
		p.Kill()
		p.deathTimer = parameter.PlayerDeathTime
		p.hooks.Sound(core.SoundPlayerDeath, 1)
		return true
	}

	p.invuln = parameter.PlayerInvulnTime
	p.hooks.Sound(core.SoundPlayerHurt, 1)
	dir := vmath.Sign(p.Position.X - fromX)
	if dir == 0 {
		dir = -p.Facing
	}
	p.Speed = vmath.Vec(dir*parameter.PlayerKnockbackX, -parameter.PlayerKnockbackY)
	return true
}

// Heal restores health up to the maximum
func (p *Player) Heal(n int) {
	p.Health = min(p.Health+n, p.MaxHealth)
}

// Die runs the death animation timer
func (p *Player) Die(tick float64) bool {
	p.deathTimer -= tick
	return p.deathTimer <= 0
}

// Weapon returns the live sword attack while swinging
func (p *Player) Weapon() (enemy.Attack, bool) {
	if !p.IsAlive() || p.attackTimer <= 0 {
		return enemy.Attack{}, false
	}
	return enemy.Attack{
		Shape: vmath.Rect{
			X: p.Facing * (parameter.PlayerWidth + parameter.SwordReach) / 2,
			W: parameter.SwordReach,
			H: parameter.SwordHeight,
		},
		Origin:    p.Position,
		Damage:    parameter.PlayerSwordDamage,
		Direction: p.Facing,
		LootBonus: parameter.PlayerLootBonus,
	}, true
}

func (p *Player) IsClimbing() bool { return p.climbing }

func (p *Player) IsAttacking() bool { return p.attackTimer > 0 }

func (p *Player) IsGrounded() bool { return p.TouchSurface }

func (p *Player) IsInvulnerable() bool { return p.invuln > 0 }

// Input returns the last stored intents
func (p *Player) Input() Input { return p.input }

func (p *Player) Sprite() entity.Sprite {
	s := entity.Sprite{Kind: "player", FlipX: p.Facing < 0}
	switch {
	case p.IsDying():
		s.Frame = FrameDead
	case p.climbing:
		s.Frame = FrameClimb
	case p.attackTimer > 0:
		s.Frame = FrameAttack
	case !p.TouchSurface:
		s.Frame = FrameJump
	case p.Speed.X != 0:
		s.Frame = FrameWalk
	}
	s.Flash = p.invuln > 0 && int(p.invuln/3)%2 == 0
	return s
}
