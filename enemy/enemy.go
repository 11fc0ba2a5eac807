package enemy

import (
	"strconv"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Enemy is the shared mechanics of every species
// Alive -> Hurt (timed, re-entrant) -> Dying (death animation) -> Dead (slot free, loot attempted)
type Enemy struct {
	entity.Body

	Health          int
	MaxHealth       int
	Damage          int     // Contact damage dealt to the player
	HurtTimer       float64 // Ticks of hit immunity left
	Weight          float64 // Knockback scale; 0 is immovable
	DropProbability float64
	Facing          float64 // -1 left, 1 right

	Gravity bool // Base forces a fall target every tick
	Phasing bool // Skips tile collision
	Contact bool // Touching hurts the player
	Clamp   bool // Kept inside the camera view

	// Species scratch state
	Timer  float64
	Phase  int
	Anchor vmath.Vector

	id          SpeciesID
	species     Species
	env         Env
	generation  int
	deathTimer  float64
	lootBonus   float64
	lootDropped bool
}

// New is the pool factory; the enemy stays inactive until Spawn
func New(env Env) *Enemy {
	return &Enemy{env: env}
}

// Spawn resets every field and runs the species setup; false for unknown ids
func (e *Enemy) Spawn(id SpeciesID, pos vmath.Vector) bool {
	s, ok := NewSpecies(id)
	if !ok {
		return false
	}

	e.Body.Spawn(pos)
	e.id = id
	e.species = s
	e.generation++

	e.Hitbox = vmath.Box(12, 12)
	e.CollisionBox = vmath.Box(12, 12)
	e.CameraCheckArea = vmath.Box(16, 16)
	e.BounceFactor = vmath.Vector{}
	e.Friction = vmath.Vec(0.2, parameter.GravityFriction)

	e.Health = 1
	e.Damage = 1
	e.HurtTimer = 0
	e.Weight = 1
	e.DropProbability = 0.3
	e.Facing = -1
	e.Gravity = true
	e.Phasing = false
	e.Contact = true
	e.Clamp = false
	e.Timer = 0
	e.Phase = 0
	e.Anchor = pos
	e.deathTimer = parameter.EnemyDeathTime
	e.lootBonus = 1
	e.lootDropped = false

	s.Init(e)
	e.MaxHealth = e.Health
	return true
}

// ID returns the species id of the current spawn
func (e *Enemy) ID() SpeciesID {
	return e.id
}

// Generation increments on every spawn; a stale handle has an older value
func (e *Enemy) Generation() int {
	return e.generation
}

// Species returns the current behavior
func (e *Enemy) Species() Species {
	return e.species
}

// Env returns the owning level
func (e *Enemy) Env() Env {
	return e.env
}

// UpdateEvent runs hurt countdown, gravity, AI and the player reaction
// Clamping to the view happens in Integrate, after movement
// Movable enemies are stunned while hurt
func (e *Enemy) UpdateEvent(tick float64) {
	if e.Gravity {
		e.TargetSpeed.Y = parameter.FallSpeed
		e.Friction.Y = parameter.GravityFriction
	}

	if e.HurtTimer > 0 {
		e.HurtTimer = max(e.HurtTimer-tick, 0)
		if e.Weight > 0 {
			e.TargetSpeed.X = 0
			return
		}
	}

	if ai, ok := e.species.(AIUpdater); ok {
		ai.UpdateAI(e, tick)
		if !e.IsAlive() {
			return
		}
	}

	if pr, ok := e.species.(PlayerReactor); ok {
		if p := e.env.Target(); p != nil && p.IsAlive() {
			pr.PlayerEvent(e, p.Pos(), tick)
		}
	}
}

// Integrate moves the body, then holds Clamp species inside the view on every path
func (e *Enemy) Integrate(tick float64) {
	e.Body.Integrate(tick)
	if e.Clamp && e.IsAlive() {
		e.ClampToView(e.env.View())
	}
}

// Hit applies a if its shape overlaps the hitbox; returns whether damage landed
// Lethal damage starts the death sequence exactly once
func (e *Enemy) Hit(a Attack) bool {
	if !e.IsAlive() || e.HurtTimer > 0 {
		return false
	}
	if !a.Shape.Overlap(a.Origin, e.Hitbox, e.Position) {
		return false
	}

	hooks := e.env.Hooks()
	e.Health -= a.Damage
	e.lootBonus = a.LootBonus
	if e.lootBonus <= 0 {
		e.lootBonus = 1
	}
	e.env.SpawnMessage(vmath.Vec(e.Position.X, e.Hitbox.Top(e.Position)), strconv.Itoa(a.Damage))

	if e.Health <= 0 {
		e.Health = 0
		e.Kill()
		e.Speed = vmath.Vector{}
		e.TargetSpeed = vmath.Vector{}
		hooks.Sound(core.SoundEnemyDeath, 1)
		return true
	}

	e.HurtTimer = parameter.EnemyHurtTime
	hooks.Sound(core.SoundHit, 0.8)
	e.Knockback(a.Direction)
	if hr, ok := e.species.(HurtReactor); ok {
		hr.OnHurt(e, a)
	}
	return true
}

// Knockback pushes along direction scaled by weight
func (e *Enemy) Knockback(direction float64) {
	if e.Weight <= 0 || direction == 0 {
		return
	}
	e.Speed.X = vmath.Sign(direction) * parameter.EnemyKnockbackSpeed * e.Weight
	if e.Gravity {
		e.Speed.Y = -parameter.EnemyKnockbackLift * e.Weight
	}
}

// ClampToView keeps the collision box inside view horizontally
func (e *Enemy) ClampToView(view vmath.Rect) {
	var zero vmath.Vector
	box := e.CollisionBox
	if l := view.Left(zero); box.Left(e.Position) < l {
		e.Position.X = l - box.X + box.W/2
		e.Speed.X = max(e.Speed.X, 0)
		e.turn(-1)
	}
	if r := view.Right(zero); box.Right(e.Position) > r {
		e.Position.X = r - box.X - box.W/2
		e.Speed.X = min(e.Speed.X, 0)
		e.turn(1)
	}
}

// Die advances the species death animation; loot is attempted once on completion
func (e *Enemy) Die(tick float64) bool {
	var finished bool
	if da, ok := e.species.(DeathAnimator); ok {
		finished = da.DeathAnimation(e, tick)
	} else {
		e.deathTimer -= tick
		finished = e.deathTimer <= 0
	}
	if finished {
		e.dropLoot()
	}
	return finished
}

// DeathTimer returns ticks left in the default death animation
func (e *Enemy) DeathTimer() float64 {
	return e.deathTimer
}

func (e *Enemy) dropLoot() {
	if e.lootDropped {
		return
	}
	e.lootDropped = true
	e.env.SpawnParticles(e.Position, parameter.EnemyDeathParticles, "spark")

	rng := e.env.Rand()
	if !rng.Chance(e.DropProbability * e.lootBonus) {
		return
	}
	if rng.Chance(parameter.HeartChance) {
		e.env.SpawnCollectible(e.Position, object.LootHeart, parameter.HeartHeal)
		return
	}
	e.env.SpawnCollectible(e.Position, object.LootCoin, parameter.CoinValue)
}

// OnCameraExit despawns; spawn points bring the enemy back on re-entry
func (e *Enemy) OnCameraExit(to core.Direction) {
	e.ForceKill()
}

func (e *Enemy) VerticalCollisionEvent(direction, tick float64) {
	if gr, ok := e.species.(GroundReactor); ok {
		gr.OnGround(e, direction)
	}
}

func (e *Enemy) HorizontalCollisionEvent(direction, tick float64) {
	if wr, ok := e.species.(WallReactor); ok {
		wr.OnWall(e, direction)
		return
	}
	e.turn(direction)
}

// Ready is the species rendezvous report; true when the species has none
func (e *Enemy) Ready() bool {
	if !e.IsAlive() {
		return false
	}
	if r, ok := e.species.(Readier); ok {
		return r.Ready(e)
	}
	return true
}

// Sprite reports species, animation frame and hurt flash
func (e *Enemy) Sprite() entity.Sprite {
	frame := int(e.Timer/8) % 2
	if fr, ok := e.species.(Framer); ok {
		frame = fr.Frame(e)
	}
	return entity.Sprite{
		Kind:  e.id.String(),
		Frame: frame,
		FlipX: e.Facing > 0,
		Flash: e.HurtTimer > 0 && int(e.HurtTimer/2)%2 == 0,
	}
}

// turn faces away from a blocked direction
func (e *Enemy) turn(blocked float64) {
	if blocked != 0 {
		e.Facing = -vmath.Sign(blocked)
	}
}
