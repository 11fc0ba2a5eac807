package tile

import (
	"math"

	"github.com/lixenwraith/tilerunner/constant"
	"github.com/lixenwraith/tilerunner/core"
	"github.com/lixenwraith/tilerunner/entity"
	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/physics"
	"github.com/lixenwraith/tilerunner/vmath"
)

// ladderTopReach extends a ladder-top strip upward so a body standing on it still touches
const ladderTopReach = 2.0

// hurtReach is how far outside a hurt edge a body still counts as touching it
const hurtReach = 1.0

// ObjectCollision tests c against every flagged tile in a window around its box
// Vertical edges resolve before horizontal ones so floor contact settles first
func (m *Map) ObjectCollision(c entity.Collider, tick float64) {
	b := c.AsBody()
	if !b.IsAlive() {
		return
	}

	c0, r0, c1, r1 := m.window(b)
	if c0 > c1 || r0 > r1 {
		return
	}

	m.scan(c0, r0, c1, r1, func(col, row int, f Flags) {
		m.vertical(c, col, row, f, tick)
	})
	m.scan(c0, r0, c1, r1, func(col, row int, f Flags) {
		m.horizontal(c, col, row, f, tick)
	})
}

// window returns the clamped inclusive cell range around the body's box
func (m *Map) window(b *entity.Body) (c0, r0, c1, r1 int) {
	ts := float64(constant.TileSize)
	box := b.CollisionBox
	c0 = floorDiv(box.Left(b.Position), ts) - parameter.TileScanMargin
	c1 = floorDiv(box.Right(b.Position), ts) + parameter.TileScanMargin
	r0 = floorDiv(box.Top(b.Position), ts) - parameter.TileScanMargin
	r1 = floorDiv(box.Bottom(b.Position), ts) + parameter.TileScanMargin

	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, m.width-1), min(r1, m.height-1)
	return c0, r0, c1, r1
}

// scan visits every layer's non-empty masks in the window
func (m *Map) scan(c0, r0, c1, r1 int, fn func(col, row int, f Flags)) {
	for layer := range m.layers {
		if m.layers[layer] == nil {
			continue
		}
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				if f := m.Flags(m.TileAt(layer, col, row)); f != 0 {
					fn(col, row, f)
				}
			}
		}
	}
}

func (m *Map) vertical(c entity.Collider, col, row int, f Flags, tick float64) {
	ts := float64(constant.TileSize)
	x, y := float64(col)*ts, float64(row)*ts

	if f.Has(FlagTop) {
		physics.VerticalCollision(c, x, y, ts, 1, tick)
	}
	if f.Has(FlagBottom) {
		physics.VerticalCollision(c, x, y+ts, ts, -1, tick)
	}
	if f.Has(FlagHurtTop) {
		physics.VerticalCollision(c, x, y, ts, 1, tick)
		hurt(c, x, y, core.DirUp, tick)
	}
	if f.Has(FlagHurtBottom) {
		physics.VerticalCollision(c, x, y+ts, ts, -1, tick)
		hurt(c, x, y, core.DirDown, tick)
	}

	if f.Has(LadderMask) {
		if lc, ok := c.(entity.LadderCollider); ok {
			lc.LadderCollision(ladderAt(x, y, f.Has(FlagLadderTop)), tick)
		}
	}
}

func (m *Map) horizontal(c entity.Collider, col, row int, f Flags, tick float64) {
	ts := float64(constant.TileSize)
	x, y := float64(col)*ts, float64(row)*ts

	if f.Has(FlagLeft) {
		physics.HorizontalCollision(c, x, y, ts, 1, tick)
	}
	if f.Has(FlagRight) {
		physics.HorizontalCollision(c, x+ts, y, ts, -1, tick)
	}
	if f.Has(FlagHurtLeft) {
		physics.HorizontalCollision(c, x, y, ts, 1, tick)
		hurt(c, x, y, core.DirLeft, tick)
	}
	if f.Has(FlagHurtRight) {
		physics.HorizontalCollision(c, x+ts, y, ts, -1, tick)
		hurt(c, x, y, core.DirRight, tick)
	}
}

// hurt reports the tile at (x, y) when the body touches or overlaps its side edge
// Contact is tested after blocking, independent of which edge stopped the body
func hurt(c entity.Collider, x, y float64, side core.Direction, tick float64) {
	h, ok := c.(entity.HurtCollider)
	if !ok {
		return
	}

	ts := float64(constant.TileSize)
	reach := vmath.FromCorner(x, y, ts, ts)
	switch side {
	case core.DirUp:
		reach = vmath.FromCorner(x, y-hurtReach, ts, ts+hurtReach)
	case core.DirDown:
		reach = vmath.FromCorner(x, y, ts, ts+hurtReach)
	case core.DirLeft:
		reach = vmath.FromCorner(x-hurtReach, y, ts+hurtReach, ts)
	case core.DirRight:
		reach = vmath.FromCorner(x, y, ts+hurtReach, ts)
	}

	b := c.AsBody()
	if !b.CollisionBox.Overlap(b.Position, reach, vmath.Vector{}) {
		return
	}
	h.HurtCollision(side, vmath.FromCorner(x, y, ts, ts), tick)
}

// ladderAt builds the climbable center strip of a ladder tile
func ladderAt(x, y float64, top bool) entity.Ladder {
	ts := float64(constant.TileSize)
	strip := vmath.FromCorner(x+ts/4, y, ts/2, ts)
	if top {
		strip = vmath.FromCorner(x+ts/4, y-ladderTopReach, ts/2, ts+ladderTopReach)
	}
	return entity.Ladder{
		Strip: strip,
		Tile:  vmath.FromCorner(x, y, ts, ts),
		Top:   top,
	}
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}
