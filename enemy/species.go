package enemy

import (
	"math"

	"github.com/lixenwraith/tilerunner/vmath"
)

// SpeciesID indexes the fixed species catalogue
type SpeciesID int

const (
	Slime SpeciesID = iota
	Bat
	Skeleton
	Knight
	Archer
	Ghost
	Spider
	Frog
	Mushroom
	Bomber
	Wisp
	Golem
	Fish
	Crow
	Mimic
	Turret
	Boss
	Hand
	SpeciesCount
)

var speciesNames = [SpeciesCount]string{
	"slime", "bat", "skeleton", "knight", "archer", "ghost", "spider", "frog",
	"mushroom", "bomber", "wisp", "golem", "fish", "crow", "mimic", "turret",
	"boss", "hand",
}

func (id SpeciesID) String() string {
	if id < 0 || id >= SpeciesCount {
		return "unknown"
	}
	return speciesNames[id]
}

// ParseSpecies resolves a species name
func ParseSpecies(name string) (SpeciesID, bool) {
	for i, n := range speciesNames {
		if n == name {
			return SpeciesID(i), true
		}
	}
	return 0, false
}

// Species is one catalogue entry; a fresh value is built per spawn
type Species interface {
	// Init sets stats and shape after the base reset
	Init(e *Enemy)
}

// Optional species hooks; absent means the base behavior

// AIUpdater drives autonomous motion each tick
type AIUpdater interface {
	UpdateAI(e *Enemy, tick float64)
}

// PlayerReactor reacts to the live player position
type PlayerReactor interface {
	PlayerEvent(e *Enemy, player vmath.Vector, tick float64)
}

// DeathAnimator replaces the default timed death; returns true when complete
type DeathAnimator interface {
	DeathAnimation(e *Enemy, tick float64) bool
}

// HurtReactor reacts to a non-lethal hit
type HurtReactor interface {
	OnHurt(e *Enemy, a Attack)
}

// WallReactor replaces the default turn-around on horizontal contact
type WallReactor interface {
	OnWall(e *Enemy, direction float64)
}

// GroundReactor reacts to vertical contact (+1 floor, -1 ceiling)
type GroundReactor interface {
	OnGround(e *Enemy, direction float64)
}

// Readier reports rendezvous readiness to a composing parent
type Readier interface {
	Ready(e *Enemy) bool
}

// Framer overrides the animation frame
type Framer interface {
	Frame(e *Enemy) int
}

var catalogue = [SpeciesCount]func() Species{
	Slime:    func() Species { return &slime{} },
	Bat:      func() Species { return &bat{} },
	Skeleton: func() Species { return &skeleton{} },
	Knight:   func() Species { return &knight{} },
	Archer:   func() Species { return &archer{} },
	Ghost:    func() Species { return &ghost{} },
	Spider:   func() Species { return &spider{} },
	Frog:     func() Species { return &frog{} },
	Mushroom: func() Species { return &mushroom{} },
	Bomber:   func() Species { return &bomber{} },
	Wisp:     func() Species { return &wisp{} },
	Golem:    func() Species { return &golem{} },
	Fish:     func() Species { return &fish{} },
	Crow:     func() Species { return &crow{} },
	Mimic:    func() Species { return &mimic{} },
	Turret:   func() Species { return &turret{} },
	Boss:     func() Species { return &boss{} },
	Hand:     func() Species { return &hand{} },
}

// NewSpecies constructs the behavior for id; false when id is outside the catalogue
func NewSpecies(id SpeciesID) (Species, bool) {
	if id < 0 || id >= SpeciesCount {
		return nil, false
	}
	return catalogue[id](), true
}

// --- Shared movement helpers ---

// walk sets horizontal target speed along Facing
func walk(e *Enemy, speed float64) {
	e.TargetSpeed.X = e.Facing * speed
}

// face turns toward x
func face(e *Enemy, x float64) {
	if d := vmath.Sign(x - e.Position.X); d != 0 {
		e.Facing = d
	}
}

// fly steers toward goal with speed capped at maxSpeed
func fly(e *Enemy, goal vmath.Vector, maxSpeed float64) {
	d := goal.Sub(e.Position)
	if l := d.Length(); l > maxSpeed {
		d = d.Scale(maxSpeed / l)
	}
	e.TargetSpeed.X = d.X
	e.TargetSpeed.Y = d.Y
}

// within reports whether p is inside an axis-aligned range of e
func within(e *Enemy, p vmath.Vector, dx, dy float64) bool {
	return math.Abs(p.X-e.Position.X) <= dx && math.Abs(p.Y-e.Position.Y) <= dy
}

// patrol turns around once e strays more than reach from its anchor
func patrol(e *Enemy, reach float64) {
	off := e.Position.X - e.Anchor.X
	if off > reach && e.Facing > 0 {
		e.Facing = -1
	} else if off < -reach && e.Facing < 0 {
		e.Facing = 1
	}
}

// countdown decrements e.Timer and reports expiry
func countdown(e *Enemy, tick float64) bool {
	e.Timer -= tick
	return e.Timer <= 0
}

// grounded reports floor contact from the last tick
func grounded(e *Enemy) bool {
	return e.TouchSurface || e.DidTouchSurface
}

// fire shoots a projectile from e toward target
func fire(e *Enemy, target vmath.Vector, lob bool) {
	dir := vmath.Direction(e.Position, target)
	if dir.Length() == 0 {
		dir = vmath.Vec(e.Facing, 0)
	}
	e.env.SpawnProjectile(e.Position, dir, e.Damage, lob)
}
