package enemy

import (
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/vmath"
)

type dummy struct {
	pos   vmath.Vector
	alive bool
}

func (d *dummy) Pos() vmath.Vector { return d.pos }
func (d *dummy) IsAlive() bool { return d.alive }

type drop struct {
	kind  object.LootKind
	value int
}

// fakeEnv records every spawn request
type fakeEnv struct {
	rng    *vmath.FastRand
	hooks  core.Hooks
	player *dummy
	view   vmath.Rect

	drops     []drop
	shots     int
	particles int
	messages  []string
	enemies   []*Enemy
	sounds    []core.SoundType
	shakes    int
}

func newEnv(seed uint64) *fakeEnv {
	env := &fakeEnv{
		rng:    vmath.NewFastRand(seed),
		player: &dummy{pos: vmath.Vec(1000, 1000), alive: true},
		view:   vmath.FromCorner(0, 0, 320, 192),
	}
	env.hooks = core.Hooks{
		PlaySound: func(s core.SoundType, v float64) { env.sounds = append(env.sounds, s) },
		Shake:     func(a, d float64) { env.shakes++ },
	}
	return env
}

func (f *fakeEnv) Rand() *vmath.FastRand { return f.rng }
func (f *fakeEnv) Hooks() *core.Hooks { return &f.hooks }
func (f *fakeEnv) Target() Target { return f.player }
func (f *fakeEnv) View() vmath.Rect { return f.view }

func (f *fakeEnv) SpawnCollectible(pos vmath.Vector, kind object.LootKind, value int) {
	f.drops = append(f.drops, drop{kind, value})
}

func (f *fakeEnv) SpawnProjectile(pos, dir vmath.Vector, damage int, lob bool) {
	f.shots++
}

func (f *fakeEnv) SpawnParticles(pos vmath.Vector, n int, kind string) {
	f.particles += n
}

func (f *fakeEnv) SpawnMessage(pos vmath.Vector, text string) {
	f.messages = append(f.messages, text)
}

func (f *fakeEnv) SpawnEnemy(id SpeciesID, pos vmath.Vector) *Enemy {
	for _, e := range f.enemies {
		if !e.IsActive() {
			if !e.Spawn(id, pos) {
				return nil
			}
			return e
		}
	}
	e := New(f)
	if !e.Spawn(id, pos) {
		return nil
	}
	f.enemies = append(f.enemies, e)
	return e
}

// spawn creates an enemy that is already inside the view
func (f *fakeEnv) spawn(id SpeciesID, pos vmath.Vector) *Enemy {
	e := f.SpawnEnemy(id, pos)
	if e != nil {
		entity.CameraCheck(e, f.view)
	}
	return e
}
