package object

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Particle is a short-lived visual fragment without tile collision
type Particle struct {
	entity.Entity
	Kind string

	life    float64
	maxLife float64
}

func NewParticle() *Particle {
	return &Particle{}
}

// Spawn launches a particle from pos with velocity vel
func (p *Particle) Spawn(pos, vel vmath.Vector, kind string) {
	p.Entity.Spawn(pos)
	p.Kind = kind
	p.Speed = vel
	p.TargetSpeed = vmath.Vec(0, parameter.FallSpeed)
	p.Friction = vmath.Vec(0.05, 0.15)
	p.CameraCheckArea = vmath.Box(2, 2)
	p.life = parameter.ParticleLifetime
	p.maxLife = p.life
}

func (p *Particle) UpdateEvent(tick float64) {
	p.life -= tick
	if p.life <= 0 {
		p.ForceKill()
	}
}

// OnCameraExit drops particles that leave the view
func (p *Particle) OnCameraExit(to core.Direction) {
	p.ForceKill()
}

func (p *Particle) Sprite() entity.Sprite {
	frame := 0
	if p.life < p.maxLife/2 {
		frame = 1
	}
	return entity.Sprite{Kind: p.Kind, Frame: frame}
}
