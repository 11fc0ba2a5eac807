package engine

import (
	"math"

	"github.com/lixenwraith/tilerunner/camera"
	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/enemy"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/object"
	"github.com/lixenwraith/tilerunner/tile"
	"github.com/lixenwraith/tilerunner/vmath"
)

// Drawer is the rendering collaborator; positions are screen pixels
type Drawer interface {
	DrawTile(layer, id int, at vmath.Vector)
	DrawSprite(s entity.Sprite, at vmath.Vector)
	DrawText(text string, at vmath.Vector)
}

// Draw emits the visible scene back to front
// Shake jitter is applied here only and never moves the camera
func (l *Level) Draw(d Drawer) {
	origin := l.camera.Position().Sub(l.camera.ShakeOffset(l.fx))

	l.drawTiles(d, origin, tile.LayerBottom)
	l.drawTiles(d, origin, tile.LayerMiddle)

	for _, pl := range l.platforms {
		drawActor(d, pl, origin)
	}
	for _, door := range l.doors {
		drawActor(d, door, origin)
	}
	l.collectibles.EachActive(func(a *object.Collectible) { drawActor(d, a, origin) })
	l.enemies.EachActive(func(a *enemy.Enemy) { drawActor(d, a, origin) })
	l.projectiles.EachActive(func(a *object.Projectile) { drawActor(d, a, origin) })
	drawActor(d, l.player, origin)
	l.particles.EachActive(func(a *object.Particle) { drawActor(d, a, origin) })

	l.drawTiles(d, origin, tile.LayerTop)

	l.messages.EachActive(func(m *object.Message) {
		if m.IsInCamera() {
			d.DrawText(m.Text, m.Position.Sub(origin))
		}
	})
}

// drawActor draws a only while it exists and is in view
func drawActor(d Drawer, a entity.Actor, origin vmath.Vector) {
	e := a.Base()
	if !e.IsActive() || !e.IsInCamera() {
		return
	}
	v, ok := a.(entity.Visual)
	if !ok {
		return
	}
	d.DrawSprite(v.Sprite(), e.Position.Sub(origin))
}

func (l *Level) drawTiles(d Drawer, origin vmath.Vector, layer int) {
	if !l.tiles.HasLayer(layer) {
		return
	}
	ts := float64(constant.TileSize)
	c0 := int(math.Floor(origin.X / ts))
	r0 := int(math.Floor(origin.Y / ts))
	c1 := c0 + constant.RoomWidth/constant.TileSize + 1
	r1 := r0 + constant.RoomHeight/constant.TileSize + 1

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			id := l.tiles.TileAt(layer, col, row)
			if id == constant.TileEmpty {
				continue
			}
			at := vmath.Vec(float64(col)*ts, float64(row)*ts).Sub(origin)
			d.DrawTile(layer, id, at)
		}
	}
}

// Stats are HUD and debug counters
type Stats struct {
	Ticks     uint64
	Room      camera.GridPos
	Health    int
	MaxHealth int
	Score     int

	// Live entities per pool
	Enemies      int
	Projectiles  int
	Particles    int
	Collectibles int
	Messages     int

	// Slots ever allocated across all pools
	Slots int
}

// Stats snapshots counters without mutating anything
func (l *Level) Stats() Stats {
	return Stats{
		Ticks:        l.ticks,
		Room:         l.camera.GridPos(),
		Health:       l.player.Health,
		MaxHealth:    l.player.MaxHealth,
		Score:        l.player.Score,
		Enemies:      l.enemies.Active(),
		Projectiles:  l.projectiles.Active(),
		Particles:    l.particles.Active(),
		Collectibles: l.collectibles.Active(),
		Messages:     l.messages.Active(),
		Slots: l.enemies.Len() + l.projectiles.Len() + l.particles.Len() +
			l.collectibles.Len() + l.messages.Len(),
	}
}
