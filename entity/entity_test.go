package entity

import (
	"testing"

	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/vmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type probe struct {
	Body
	updates  int
	dieCalls int
	dieAfter int
	entered  []core.Direction
	exited   []core.Direction
}

func (p *probe) UpdateEvent(tick float64) { p.updates++ }

func (p *probe) Die(tick float64) bool {
	p.dieCalls++
	return p.dieCalls >= p.dieAfter
}

func (p *probe) OnCameraEnter(from core.Direction) { p.entered = append(p.entered, from) }
func (p *probe) OnCameraExit(to core.Direction)    { p.exited = append(p.exited, to) }

func newProbe(pos vmath.Vector) *probe {
	p := &probe{dieAfter: 3}
	p.Spawn(pos)
	p.Hitbox = vmath.Box(8, 8)
	p.CameraCheckArea = vmath.Box(8, 8)
	return p
}

var view = vmath.FromCorner(0, 0, 320, 192)

func TestFrictionStep(t *testing.T) {
	var e Entity
	e.Spawn(vmath.Vec(0, 0))
	e.Friction = vmath.Vec(0.15, 0.15)
	e.TargetSpeed = vmath.Vec(1.0, 0)

	Update(&e, 1.0)

	assert.InDelta(t, 0.15, e.Speed.X, 1e-12, "one friction step, not snapped")
	assert.InDelta(t, 0.15, e.Position.X, 1e-12)
	assert.Equal(t, vmath.Vec(0, 0), e.OldPosition)
}

func TestFrictionNeverOvershoots(t *testing.T) {
	var e Entity
	e.Spawn(vmath.Vec(0, 0))
	e.Friction = vmath.Vec(0.4, 0)
	e.TargetSpeed = vmath.Vec(1.0, 0)

	prev := 0.0
	for i := 0; i < 10; i++ {
		Update(&e, 1.0)
		assert.GreaterOrEqual(t, e.Speed.X, prev)
		assert.LessOrEqual(t, e.Speed.X, 1.0)
		prev = e.Speed.X
	}
	assert.Equal(t, 1.0, e.Speed.X)
}

func TestUpdateInactiveIsNoop(t *testing.T) {
	p := newProbe(vmath.Vec(10, 10))
	p.ForceKill()
	p.TargetSpeed = vmath.Vec(5, 0)
	p.Friction = vmath.Vec(5, 0)

	Update(p, 1.0)

	assert.Equal(t, 0, p.updates)
	assert.Equal(t, vmath.Vec(10, 10), p.Position)
}

func TestDyingRunsDeathOnly(t *testing.T) {
	p := newProbe(vmath.Vec(50, 50))
	CameraCheck(p, view)
	require.True(t, p.IsInCamera())
	require.True(t, p.Kill())
	require.False(t, p.Kill(), "second kill is rejected")

	p.TargetSpeed = vmath.Vec(5, 0)
	p.Friction = vmath.Vec(5, 0)

	Update(p, 1.0)
	Update(p, 1.0)
	assert.True(t, p.IsActive())
	assert.True(t, p.IsDying())
	assert.Equal(t, 0, p.updates, "no updateEvent while dying")
	assert.Equal(t, vmath.Vec(50, 50), p.Position, "no integration while dying")

	Update(p, 1.0)
	assert.False(t, p.IsActive())
	assert.False(t, p.IsDying())
	assert.Equal(t, 3, p.dieCalls)

	Update(p, 1.0)
	assert.Equal(t, 3, p.dieCalls, "dead entities are not revisited")
}

func TestDyingOffscreenIsFinalised(t *testing.T) {
	p := newProbe(vmath.Vec(500, 50))
	CameraCheck(p, view)
	require.False(t, p.IsInCamera())
	p.Kill()

	Update(p, 1.0)

	assert.False(t, p.IsActive())
	assert.Equal(t, 0, p.dieCalls)
}

func TestCameraTransitionsFireOnce(t *testing.T) {
	p := newProbe(vmath.Vec(-50, 96))
	CameraCheck(p, view)
	assert.Empty(t, p.entered)

	p.Position = vmath.Vec(10, 96)
	CameraCheck(p, view)
	CameraCheck(p, view)
	require.Len(t, p.entered, 1)
	assert.Equal(t, core.DirLeft, p.entered[0])

	p.Position = vmath.Vec(400, 96)
	CameraCheck(p, view)
	CameraCheck(p, view)
	require.Len(t, p.exited, 1)
	assert.Equal(t, core.DirRight, p.exited[0])
}

func TestSpawnResetsState(t *testing.T) {
	p := newProbe(vmath.Vec(50, 50))
	CameraCheck(p, view)
	p.Speed = vmath.Vec(3, 3)
	p.TouchSurface = true
	p.Kill()

	p.Spawn(vmath.Vec(1, 2))

	assert.True(t, p.IsAlive())
	assert.False(t, p.IsInCamera())
	assert.False(t, p.TouchSurface)
	assert.Equal(t, vmath.Vector{}, p.Speed)
	assert.Equal(t, vmath.Vec(1, 2), p.OldPosition)
}

func TestBodyIntegrateRotatesContact(t *testing.T) {
	p := newProbe(vmath.Vec(0, 0))
	p.TouchSurface = true

	Update(p, 1.0)

	assert.True(t, p.DidTouchSurface)
	assert.False(t, p.TouchSurface)
}

func TestOverlay(t *testing.T) {
	a := newProbe(vmath.Vec(0, 0))
	b := newProbe(vmath.Vec(4, 4))
	assert.True(t, Overlay(a, b))

	b.ForceKill()
	assert.False(t, Overlay(a, b))

	assert.True(t, OverlayRect(a, vmath.Box(4, 4), vmath.Vec(5, 0)))
	assert.False(t, OverlayRect(a, vmath.Box(4, 4), vmath.Vec(7, 0)))
}
