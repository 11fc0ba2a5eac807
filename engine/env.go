package engine

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/enemy"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Level is the environment of every enemy it spawns
var _ enemy.Env = (*Level)(nil)

// Rand is the seeded simulation random source
func (l *Level) Rand() *vmath.FastRand {
	return l.rng
}

// Hooks returns the level's hook set, with shake routed through the camera
func (l *Level) Hooks() *core.Hooks {
	return &l.hooks
}

// Target exposes the player to enemy AI
func (l *Level) Target() enemy.Target {
	return l.player
}

// View is the camera's current pixel rect
func (l *Level) View() vmath.Rect {
	return l.camera.View()
}

func (l *Level) SpawnCollectible(pos vmath.Vector, kind object.LootKind, value int) {
	l.collectibles.Next().Spawn(pos, kind, value, l.rng)
}

// SpawnProjectile fires a hostile shot
func (l *Level) SpawnProjectile(pos, dir vmath.Vector, damage int, lob bool) {
	l.projectiles.Next().Spawn(pos, dir, true, damage, lob)
}

// SpawnParticles bursts n particles outward from pos
func (l *Level) SpawnParticles(pos vmath.Vector, n int, kind string) {
	for i := 0; i < n; i++ {
		vel := vmath.Vec(l.rng.Range(-1, 1), l.rng.Range(-1, 0.2)).Normalize().Scale(parameter.ParticleSpeed)
		pt := l.particles.Next()
		pt.Spawn(pos, vel, kind)
		entity.CameraCheck(pt, l.camera.CheckView())
	}
}

func (l *Level) SpawnMessage(pos vmath.Vector, text string) {
	m := l.messages.Next()
	m.Spawn(pos, text)
	entity.CameraCheck(m, l.camera.CheckView())
}

// SpawnEnemy draws a pooled enemy; nil when id is outside the catalogue
func (l *Level) SpawnEnemy(id enemy.SpeciesID, pos vmath.Vector) *enemy.Enemy {
	e := l.enemies.Next()
	if !e.Spawn(id, pos) {
		return nil
	}
	entity.CameraCheck(e, l.camera.CheckView())
	return e
}
