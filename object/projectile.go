package object

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Projectile is a pooled shot; hostile ones hurt the player, friendly ones hurt enemies
// Any tile edge or leaving the view destroys it
type Projectile struct {
	entity.Body
	Hostile bool
	Damage  int

	life float64
	lob  bool
}

func NewProjectile() *Projectile {
	return &Projectile{}
}

// Spawn fires from pos along dir at ProjectileSpeed; lob adds gravity
func (p *Projectile) Spawn(pos, dir vmath.Vector, hostile bool, damage int, lob bool) {
	p.Body.Spawn(pos)
	p.Hostile = hostile
	p.Damage = damage
	p.life = parameter.ProjectileLifetime

	size := float64(parameter.ProjectileSize)
	p.Hitbox = vmath.Box(size, size)
	p.CollisionBox = vmath.Box(size, size)
	p.CameraCheckArea = vmath.Box(size, size)

	p.Speed = dir.Normalize().Scale(parameter.ProjectileSpeed)
	p.TargetSpeed = p.Speed
	p.Friction = vmath.Vector{}
	p.lob = lob
	if lob {
		p.TargetSpeed.Y = parameter.FallSpeed
		p.Friction.Y = parameter.GravityFriction / 3
	}
}

func (p *Projectile) UpdateEvent(tick float64) {
	p.life -= tick
	if p.life <= 0 {
		p.ForceKill()
	}
}

func (p *Projectile) VerticalCollisionEvent(direction, tick float64) {
	p.ForceKill()
}

func (p *Projectile) HorizontalCollisionEvent(direction, tick float64) {
	p.ForceKill()
}

func (p *Projectile) OnCameraExit(to core.Direction) {
	p.ForceKill()
}

// Reflect turns a hostile shot back as a friendly one
func (p *Projectile) Reflect() bool {
	if !p.IsAlive() || !p.Hostile {
		return false
	}
	p.Hostile = false
	p.Speed = p.Speed.Scale(-1)
	p.TargetSpeed.X = p.Speed.X
	if !p.lob {
		p.TargetSpeed.Y = p.Speed.Y
	}
	p.life = parameter.ProjectileLifetime
	return true
}

// Direction is the horizontal travel sign used for knockback
func (p *Projectile) Direction() float64 {
	return vmath.Sign(p.Speed.X)
}

func (p *Projectile) Sprite() entity.Sprite {
	kind := "shot"
	if p.Hostile {
		kind = "enemy-shot"
	}
	return entity.Sprite{Kind: kind, FlipX: p.Speed.X < 0}
}
