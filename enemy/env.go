package enemy

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Target is the player as enemies see it
type Target interface {
	Pos() vmath.Vector
	IsAlive() bool
}

// Env is what an enemy may ask of the level that owns it
type Env interface {
	Rand() *vmath.FastRand
	Hooks() *core.Hooks
	Target() Target
	View() vmath.Rect

	SpawnCollectible(pos vmath.Vector, kind object.LootKind, value int)
	SpawnProjectile(pos, dir vmath.Vector, damage int, lob bool)
	SpawnParticles(pos vmath.Vector, n int, kind string)
	SpawnMessage(pos vmath.Vector, text string)

	// SpawnEnemy draws from the enemy pool; nil when id is unknown
	SpawnEnemy(id SpeciesID, pos vmath.Vector) *Enemy
}

// Attack is a weapon shape swept against enemy hitboxes
type Attack struct {
	Shape     vmath.Rect   // Weapon box relative to Origin
	Origin    vmath.Vector // Owner position
	Damage    int
	Direction float64 // Horizontal sign for knockback; 0 for none
	LootBonus float64 // Drop probability multiplier; <=0 means 1
}
