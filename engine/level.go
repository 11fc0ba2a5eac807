package engine

import (
	"strconv"

	"github.com/lixenwraith/tilerunner/camera"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/enemy"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/logger"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/player"
	"github.com/lixenwraith/tilerunner/pool"
	"github.com/lixenwraith/tilerunner/tile"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/sirupsen/logrus"
)

// fxSeedSalt separates the draw-time jitter stream from the simulation stream
const fxSeedSalt = 0x9e3779b97f4a7c15

// Options configures a level
type Options struct {
	// Seed drives every simulation random draw; same seed, same run
	Seed uint64

	// Hooks are the collaborator callbacks; nil fields are skipped
	Hooks core.Hooks
}

// Level owns the map, camera, player, pools and spawn points of one scene
// All mutation happens inside Update on the caller's goroutine
type Level struct {
	tiles  *tile.Map
	camera *camera.Camera
	player *player.Player

	hooks    core.Hooks
	external core.Hooks
	rng      *vmath.FastRand
	fx       *vmath.FastRand

	enemies      *pool.Pool[*enemy.Enemy]
	projectiles  *pool.Pool[*object.Projectile]
	particles    *pool.Pool[*object.Particle]
	collectibles *pool.Pool[*object.Collectible]
	messages     *pool.Pool[*object.Message]

	platforms []*object.Platform
	doors     []*object.Door
	spawns    []*SpawnPoint

	ticks    uint64
	doorHeld bool
	dead     bool
	log      *logrus.Entry
}

// NewLevel builds a level over m with the player at start
func NewLevel(m *tile.Map, start vmath.Vector, opts Options) *Level {
	l := &Level{
		tiles:    m,
		camera:   camera.New(constant.RoomWidth, constant.RoomHeight),
		external: opts.Hooks,
		rng:      vmath.NewFastRand(opts.Seed),
		fx:       vmath.NewFastRand(opts.Seed ^ fxSeedSalt),
		log:      logger.Component("level"),
	}

	// Shake drives the own camera before reaching the collaborator
	l.hooks = opts.Hooks
	l.hooks.Shake = func(amplitude, duration float64) {
		l.camera.Shake(amplitude, duration)
		l.external.ShakeCamera(amplitude, duration)
	}

	l.enemies = pool.New(poolEnemies, parameter.EnemyPoolSize, func() *enemy.Enemy {
		return enemy.New(l)
	})
	l.projectiles = pool.New(poolProjectiles, parameter.ProjectilePoolSize, object.NewProjectile)
	l.particles = pool.New(poolParticles, parameter.ParticlePoolSize, object.NewParticle)
	l.collectibles = pool.New(poolCollectibles, parameter.CollectiblePoolSize, func() *object.Collectible {
		return object.NewCollectible(&l.hooks)
	})
	l.messages = pool.New(poolMessages, parameter.MessagePoolSize, object.NewMessage)

	l.player = player.New(&l.hooks)
	l.player.Spawn(start)
	l.camera.SetPosition(l.camera.RoomOf(start))
	entity.CameraCheck(l.player, l.camera.CheckView())
	return l
}

// Pool names used in logs and stats
const (
	poolEnemies      = "enemies"
	poolProjectiles  = "projectiles"
	poolParticles    = "particles"
	poolCollectibles = "collectibles"
	poolMessages     = "messages"
)

// AddPlatform places a moving platform; see object.Platform.Spawn
func (l *Level) AddPlatform(pos, travel vmath.Vector, width, period float64) *object.Platform {
	p := object.NewPlatform()
	p.Spawn(pos, travel, width, period)
	l.platforms = append(l.platforms, p)
	return p
}

// AddDoor places a transition trigger
func (l *Level) AddDoor(pos vmath.Vector, target string) *object.Door {
	d := object.NewDoor()
	d.Spawn(pos, target)
	l.doors = append(l.doors, d)
	return d
}

// Update advances the whole level by one tick
func (l *Level) Update(tick float64) {
	if tick <= 0 {
		return
	}
	tick = min(tick, constant.MaxTickDelta)
	l.ticks++
	p := l.player

	// Behavior and integration
	for _, pl := range l.platforms {
		entity.Update(pl, tick)
	}
	entity.Update(p, tick)
	l.enemies.Update(tick)
	l.projectiles.Update(tick)
	l.particles.Update(tick)
	l.collectibles.Update(tick)
	l.messages.Update(tick)

	// Tile contact
	l.tiles.ObjectCollision(p, tick)
	l.enemies.EachActive(func(e *enemy.Enemy) {
		if !e.Phasing {
			l.tiles.ObjectCollision(e, tick)
		}
	})
	l.projectiles.EachActive(func(pr *object.Projectile) {
		l.tiles.ObjectCollision(pr, tick)
	})
	l.collectibles.EachActive(func(c *object.Collectible) {
		l.tiles.ObjectCollision(c, tick)
	})

	// Collision objects
	for _, pl := range l.platforms {
		pl.Collide(p, tick)
		l.enemies.EachActive(func(e *enemy.Enemy) {
			if !e.Phasing {
				pl.Collide(e, tick)
			}
		})
		l.collectibles.EachActive(func(c *object.Collectible) {
			pl.Collide(c, tick)
		})
	}

	l.combat()
	l.collect()
	l.enterDoors()

	// Camera and visibility
	l.camera.Update(tick)
	if l.camera.Stopped() {
		p.Frozen = false
		l.log.WithField("room", l.camera.GridPos()).Debug("room entered")
	}
	if p.IsAlive() && l.camera.Track(p.Pos(), parameter.CameraMoveSpeed) {
		p.Frozen = true
	}

	view := l.camera.CheckView()
	entity.CameraCheck(p, view)
	for _, pl := range l.platforms {
		entity.CameraCheck(pl, view)
	}
	for _, d := range l.doors {
		entity.CameraCheck(d, view)
	}
	l.enemies.CameraCheck(view)
	l.projectiles.CameraCheck(view)
	l.particles.CameraCheck(view)
	l.collectibles.CameraCheck(view)
	l.messages.CameraCheck(view)

	l.updateSpawns(view)

	if !l.dead && !p.IsActive() {
		l.dead = true
		l.log.WithField("tick", l.ticks).Debug("player dead")
	}
}

// combat resolves sword, projectile and contact damage
func (l *Level) combat() {
	p := l.player

	if w, ok := p.Weapon(); ok {
		l.enemies.EachActive(func(e *enemy.Enemy) {
			e.Hit(w)
		})
		// Sword parries hostile shots back
		l.projectiles.EachActive(func(pr *object.Projectile) {
			if pr.Hostile && entity.OverlayRect(pr, w.Shape, w.Origin) && pr.Reflect() {
				l.hooks.Sound(core.SoundBounce, 0.5)
			}
		})
	}

	l.projectiles.EachActive(func(pr *object.Projectile) {
		if !pr.IsAlive() {
			return
		}
		if pr.Hostile {
			if p.IsAlive() && entity.Overlay(pr, p) {
				p.Hurt(pr.Damage, pr.Position.X)
				pr.ForceKill()
			}
			return
		}
		shot := enemy.Attack{
			Shape:     pr.Hitbox,
			Origin:    pr.Position,
			Damage:    pr.Damage,
			Direction: pr.Direction(),
		}
		l.enemies.EachActive(func(e *enemy.Enemy) {
			if pr.IsAlive() && e.Hit(shot) {
				pr.ForceKill()
			}
		})
	})

	if !p.IsAlive() {
		return
	}
	l.enemies.EachActive(func(e *enemy.Enemy) {
		if e.IsAlive() && e.Contact && entity.Overlay(e, p) {
			p.Hurt(e.Damage, e.Position.X)
		}
	})
}

// collect hands overlapping loot to the player
func (l *Level) collect() {
	p := l.player
	if !p.IsAlive() {
		return
	}
	l.collectibles.EachActive(func(c *object.Collectible) {
		if !entity.Overlay(c, p) || !c.Collect() {
			return
		}
		switch c.Kind {
		case object.LootHeart:
			p.Heal(c.Value)
			l.SpawnMessage(c.Position, "+HP")
		default:
			p.Score += c.Value
			l.SpawnMessage(c.Position, "+"+strconv.Itoa(c.Value))
		}
	})
}

// enterDoors fires a door on the press of up while overlapping it
func (l *Level) enterDoors() {
	p := l.player
	up := p.IsAlive() && !p.Frozen && p.Input().Up
	pressed := up && !l.doorHeld
	l.doorHeld = up
	if !pressed {
		return
	}
	for _, d := range l.doors {
		if d.Enter(p, &l.hooks) {
			l.log.WithField("target", d.Target).Debug("door entered")
			return
		}
	}
}

// Player returns the controllable body
func (l *Level) Player() *player.Player {
	return l.player
}

// Camera returns the room camera
func (l *Level) Camera() *camera.Camera {
	return l.camera
}

// Map returns the tile map
func (l *Level) Map() *tile.Map {
	return l.tiles
}

// PlayerDead reports that the player's death animation has finished
func (l *Level) PlayerDead() bool {
	return !l.player.IsActive()
}

// Ticks returns the number of updates run
func (l *Level) Ticks() uint64 {
	return l.ticks
}
