package enemy

import (
	"testing"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lethal builds an attack centred on e that takes all its health
func lethal(e *Enemy) Attack {
	return Attack{Shape: vmath.Box(16, 16), Origin: e.Position, Damage: e.Health, Direction: 1}
}

func TestCatalogue(t *testing.T) {
	assert.Equal(t, SpeciesID(16), Boss, "sixteen regular species precede the boss")

	env := newEnv(1)
	for id := SpeciesID(0); id < SpeciesCount; id++ {
		t.Run(id.String(), func(t *testing.T) {
			e := New(env)
			require.True(t, e.Spawn(id, vmath.Vec(100, 100)))
			assert.Equal(t, id, e.ID())
			assert.True(t, e.IsAlive())
			assert.Positive(t, e.Health)
			assert.Equal(t, e.Health, e.MaxHealth)

			parsed, ok := ParseSpecies(id.String())
			require.True(t, ok)
			assert.Equal(t, id, parsed)
		})
	}
}

func TestUnknownSpecies(t *testing.T) {
	e := New(newEnv(1))
	assert.False(t, e.Spawn(-1, vmath.Vec(0, 0)))
	assert.False(t, e.Spawn(SpeciesCount, vmath.Vec(0, 0)))
	assert.False(t, e.IsActive())

	_, ok := ParseSpecies("dragon")
	assert.False(t, ok)
}

func TestGenerationAdvancesPerSpawn(t *testing.T) {
	e := New(newEnv(1))
	require.True(t, e.Spawn(Slime, vmath.Vec(0, 0)))
	g := e.Generation()
	e.ForceKill()
	require.True(t, e.Spawn(Bat, vmath.Vec(0, 0)))
	assert.Equal(t, g+1, e.Generation())
}

func TestLethalHitDiesOnce(t *testing.T) {
	env := newEnv(3)
	e := env.spawn(Skeleton, vmath.Vec(100, 100))
	require.NotNil(t, e)
	require.True(t, e.IsInCamera())

	require.True(t, e.Hit(lethal(e)))
	assert.True(t, e.IsDying())
	assert.Zero(t, e.Health)
	assert.Contains(t, env.sounds, core.SoundEnemyDeath)

	assert.False(t, e.Hit(lethal(e)), "already dying")

	steps := int(parameter.EnemyDeathTime)
	for i := 1; i < steps; i++ {
		entity.Update(e, 1)
		require.True(t, e.IsActive(), "step %d", i)
		require.False(t, e.IsAlive())
	}
	entity.Update(e, 1)
	assert.False(t, e.IsActive())
	assert.Equal(t, parameter.EnemyDeathParticles, env.particles)
}

func TestDropProbabilityIsSeeded(t *testing.T) {
	for seed := uint64(1); seed <= 24; seed++ {
		env := newEnv(seed)
		e := env.spawn(Slime, vmath.Vec(100, 100))
		e.DropProbability = 0.85

		require.True(t, e.Hit(lethal(e)))
		for i := 0; i < 100 && e.IsActive(); i++ {
			entity.Update(e, 1)
		}
		require.False(t, e.IsActive())

		replay := vmath.NewFastRand(seed)
		if !replay.Chance(0.85) {
			assert.Empty(t, env.drops, "seed %d", seed)
			continue
		}
		want := drop{object.LootCoin, parameter.CoinValue}
		if replay.Chance(parameter.HeartChance) {
			want = drop{object.LootHeart, parameter.HeartHeal}
		}
		assert.Equal(t, []drop{want}, env.drops, "seed %d", seed)
	}
}

func TestLootBonusScalesDrop(t *testing.T) {
	env := newEnv(9)
	e := env.spawn(Slime, vmath.Vec(100, 100))
	e.DropProbability = 0.5

	a := lethal(e)
	a.LootBonus = 2
	require.True(t, e.Hit(a))
	for e.IsActive() {
		entity.Update(e, 1)
	}
	assert.Len(t, env.drops, 1, "probability 1 always drops")
}

func TestOffscreenDeathSkipsLoot(t *testing.T) {
	env := newEnv(5)
	e := env.spawn(Slime, vmath.Vec(100, 100))
	e.DropProbability = 1

	require.True(t, e.Hit(lethal(e)))
	entity.CameraCheck(e, vmath.FromCorner(1000, 1000, 320, 192))

	assert.False(t, e.IsActive())
	assert.Empty(t, env.drops)
}

func TestNonLethalHit(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Skeleton, vmath.Vec(100, 100))

	a := Attack{Shape: vmath.Box(16, 16), Origin: vmath.Vec(92, 100), Damage: 1, Direction: 1}
	require.True(t, e.Hit(a))
	assert.Equal(t, 2, e.Health)
	assert.Equal(t, parameter.EnemyHurtTime, e.HurtTimer)
	assert.Equal(t, parameter.EnemyKnockbackSpeed, e.Speed.X)
	assert.Equal(t, -parameter.EnemyKnockbackLift, e.Speed.Y)
	assert.Equal(t, []string{"1"}, env.messages)
	assert.Contains(t, env.sounds, core.SoundHit)

	assert.False(t, e.Hit(a), "immune while hurt")

	e.TargetSpeed.X = 1
	e.UpdateEvent(1)
	assert.Zero(t, e.TargetSpeed.X, "stunned while hurt")
}

func TestHitMissesOutsideShape(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Skeleton, vmath.Vec(100, 100))

	a := Attack{Shape: vmath.Box(16, 16), Origin: vmath.Vec(140, 100), Damage: 1}
	assert.False(t, e.Hit(a))
	assert.Equal(t, 3, e.Health)
}

func TestKnockbackWeight(t *testing.T) {
	tests := []struct {
		name   string
		weight float64
		want   float64
	}{
		{"immovable", 0, 0},
		{"heavy", 0.5, -parameter.EnemyKnockbackSpeed * 0.5},
		{"normal", 1, -parameter.EnemyKnockbackSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(1).spawn(Skeleton, vmath.Vec(100, 100))
			e.Weight = tt.weight
			e.Knockback(-1)
			assert.Equal(t, tt.want, e.Speed.X)
		})
	}
}

func TestClampToView(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Skeleton, vmath.Vec(2, 100))
	e.Speed.X = -1

	e.ClampToView(env.view)

	assert.Equal(t, 0.0, e.CollisionBox.Left(e.Position))
	assert.Zero(t, e.Speed.X)
	assert.Equal(t, 1.0, e.Facing)
}

func TestClampHoldsWhileKnockedBack(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Bomber, vmath.Vec(310, 60))
	require.True(t, e.Clamp)
	e.Weight = 1

	require.True(t, e.Hit(Attack{Shape: vmath.Box(32, 32), Origin: e.Position, Damage: 1, Direction: 1}))
	require.True(t, e.IsAlive())
	require.Positive(t, e.HurtTimer)

	right := env.view.Right(vmath.Vector{})
	for i := 0; i < 20; i++ {
		entity.Update(e, 1)
		require.LessOrEqual(t, e.CollisionBox.Right(e.Position), right, "tick %d", i)
	}
}

func TestWallTurnsWalker(t *testing.T) {
	e := newEnv(1).spawn(Slime, vmath.Vec(100, 100))
	e.Facing = 1
	e.HorizontalCollisionEvent(1, 1)
	assert.Equal(t, -1.0, e.Facing)
}

func TestMimicWakesNearPlayer(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Mimic, vmath.Vec(100, 100))
	require.False(t, e.Contact)

	e.UpdateEvent(1)
	assert.False(t, e.Contact, "player far away")

	env.player.pos = vmath.Vec(110, 100)
	e.UpdateEvent(1)
	assert.True(t, e.Contact)
}

func TestArcherFiresOnCooldown(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Archer, vmath.Vec(100, 100))
	env.player.pos = vmath.Vec(40, 100)

	for i := 0; i < 59; i++ {
		e.UpdateEvent(1)
	}
	assert.Zero(t, env.shots)

	e.UpdateEvent(1)
	assert.Equal(t, 1, env.shots)
	assert.Equal(t, -1.0, e.Facing)
}

func TestDeadPlayerIgnored(t *testing.T) {
	env := newEnv(1)
	e := env.spawn(Archer, vmath.Vec(100, 100))
	env.player.pos = vmath.Vec(40, 100)
	env.player.alive = false

	for i := 0; i < 120; i++ {
		e.UpdateEvent(1)
	}
	assert.Zero(t, env.shots)
}
