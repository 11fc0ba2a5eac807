package object

import (
	"math"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// LootKind selects what a collectible grants
type LootKind int

const (
	LootCoin LootKind = iota
	LootHeart
)

// settleSpeed is the rebound below which a collectible stops bouncing
const settleSpeed = 0.6

// blinkTime is the remaining lifetime at which a collectible starts blinking
const blinkTime = 120.0

// Collectible is a dropped coin or heart that bounces on tiles and expires
type Collectible struct {
	entity.Body
	Kind  LootKind
	Value int

	hooks *core.Hooks
	life  float64
}

// NewCollectible is the pool factory
func NewCollectible(hooks *core.Hooks) *Collectible {
	return &Collectible{hooks: hooks}
}

// Spawn pops a collectible out of pos with a small random sideways drift
func (c *Collectible) Spawn(pos vmath.Vector, kind LootKind, value int, rng *vmath.FastRand) {
	c.Body.Spawn(pos)
	c.Kind = kind
	c.Value = value
	c.life = parameter.CollectibleLifetime

	c.Hitbox = vmath.Box(8, 8)
	c.CollisionBox = vmath.Box(6, 6)
	c.CameraCheckArea = vmath.Box(8, 8)
	c.BounceFactor = vmath.Vec(0.5, parameter.CollectibleBounce)
	c.Friction = vmath.Vec(0.02, parameter.GravityFriction)
	c.TargetSpeed = vmath.Vec(0, parameter.FallSpeed)

	drift := 0.0
	if rng != nil {
		drift = rng.Range(-1, 1)
	}
	c.Speed = vmath.Vec(drift, -parameter.CollectiblePopSpeed)
}

// UpdateEvent counts down the lifetime
func (c *Collectible) UpdateEvent(tick float64) {
	c.life -= tick
	if c.life <= 0 {
		c.ForceKill()
	}
}

// VerticalCollisionEvent settles small rebounds and plays the bounce sound on big ones
func (c *Collectible) VerticalCollisionEvent(direction, tick float64) {
	if direction < 0 {
		return
	}
	if math.Abs(c.Speed.Y) < settleSpeed {
		c.Speed.Y = 0
		c.Speed.X = 0
		return
	}
	c.hooks.Sound(core.SoundBounce, 0.3)
}

// Collect grants the loot once; false if already gone
func (c *Collectible) Collect() bool {
	if !c.IsAlive() {
		return false
	}
	c.ForceKill()
	if c.Kind == LootHeart {
		c.hooks.Sound(core.SoundHeart, 1)
	} else {
		c.hooks.Sound(core.SoundCoin, 1)
	}
	return true
}

// Life returns remaining ticks
func (c *Collectible) Life() float64 {
	return c.life
}

func (c *Collectible) Sprite() entity.Sprite {
	kind := "coin"
	if c.Kind == LootHeart {
		kind = "heart"
	}
	hidden := c.life < blinkTime && int(c.life/4)%2 == 0
	return entity.Sprite{Kind: kind, Flash: hidden}
}
