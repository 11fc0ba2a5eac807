package object

import (
	"math"

	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/physics"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Platform is a moving one-way collision object oscillating between origin and origin+travel
// Bodies land on its top edge and are carried by its horizontal motion
type Platform struct {
	entity.Entity

	origin vmath.Vector
	travel vmath.Vector
	rate   float64
	phase  float64
}

func NewPlatform() *Platform {
	return &Platform{}
}

// Spawn places a w-wide platform at pos; period is ticks per full round trip, zero means static
func (p *Platform) Spawn(pos, travel vmath.Vector, w, period float64) {
	p.Entity.Spawn(pos)
	p.origin = pos
	p.travel = travel
	p.phase = 0
	p.rate = 0
	if period > 0 {
		p.rate = 2 * math.Pi / period
	}
	p.Hitbox = vmath.Box(w, 4)
	p.CameraCheckArea = vmath.Box(w+math.Abs(travel.X)*2, 4+math.Abs(travel.Y)*2)
}

// Integrate moves along the cosine path; the previous position is kept for carrying
func (p *Platform) Integrate(tick float64) {
	p.OldPosition = p.Position
	p.phase += p.rate * tick
	t := 0.5 - 0.5*math.Cos(p.phase)
	p.Position = p.origin.Add(p.travel.Scale(t))
	p.Speed = p.Position.Sub(p.OldPosition)
}

// Collide resolves c landing on the top edge and carries it on contact
func (p *Platform) Collide(c entity.Collider, tick float64) bool {
	if !p.IsActive() {
		return false
	}
	b := c.AsBody()
	top := p.Hitbox.Top(p.Position)
	left := p.Hitbox.Left(p.Position)

	// Measure against the platform's own motion so a rising platform still registers
	rel := p.Position.Y - p.OldPosition.Y
	b.OldPosition.Y += rel
	b.Speed.Y -= rel
	hit := physics.VerticalCollision(c, left, top, p.Hitbox.W, 1, tick)
	b.Speed.Y += rel
	b.OldPosition.Y -= rel
	if !hit {
		return false
	}

	b.Position.X += p.Position.X - p.OldPosition.X
	if oc, ok := c.(entity.ObjectCollider); ok {
		oc.CollisionObjectCollision(p, 1)
	}
	return true
}

func (p *Platform) Sprite() entity.Sprite {
	return entity.Sprite{Kind: "platform"}
}
