package camera

import (
	"math"

	"github.com/lixenwraith/tilerunner/parameter"
	"github.com/lixenwraith/tilerunner/vmath"
)

// GridPos is a room coordinate
type GridPos struct {
	X, Y int
}

// Camera moves between rooms of a fixed pixel size
// At most one grid move is in flight; pixel position interpolates toward the target room
type Camera struct {
	roomW, roomH float64

	pos    GridPos
	target GridPos

	pixel vmath.Vector
	from  vmath.Vector

	moving   bool
	timer    float64
	duration float64
	stopped  bool

	shakeAmp   float64
	shakeTimer float64
}

// New returns an idle camera at room (0, 0)
func New(roomW, roomH float64) *Camera {
	return &Camera{roomW: roomW, roomH: roomH}
}

// Move starts a grid move of (dx, dy) rooms; speed is the fraction of the move covered per tick
// Rejected while moving, on a zero move, or when the target would be negative
func (c *Camera) Move(dx, dy int, speed float64) bool {
	if c.moving || speed <= 0 || (dx == 0 && dy == 0) {
		return false
	}
	target := GridPos{X: c.pos.X + dx, Y: c.pos.Y + dy}
	if target.X < 0 || target.Y < 0 {
		return false
	}

	c.target = target
	c.from = c.pixel
	c.duration = 1 / speed
	c.timer = c.duration
	c.moving = true
	return true
}

// Update advances the move and shake timers
func (c *Camera) Update(tick float64) {
	if c.shakeTimer > 0 {
		c.shakeTimer = math.Max(c.shakeTimer-tick, 0)
	}
	if !c.moving {
		return
	}

	c.timer -= tick
	dest := c.roomPixel(c.target)
	if c.timer <= 0 {
		c.pixel = dest
		c.pos = c.target
		c.moving = false
		c.timer = 0
		c.stopped = true
		return
	}
	// timer/duration is the remaining fraction
	c.pixel = dest.Lerp(c.from, c.timer/c.duration)
}

// Stopped reports and clears the one-shot move completion signal
func (c *Camera) Stopped() bool {
	s := c.stopped
	c.stopped = false
	return s
}

// IsMoving reports whether a grid move is in flight
func (c *Camera) IsMoving() bool {
	return c.moving
}

// Track starts a move toward the room containing p when p has left the current room
func (c *Camera) Track(p vmath.Vector, speed float64) bool {
	if c.moving {
		return false
	}
	room := c.RoomOf(p)
	dx, dy := room.X-c.pos.X, room.Y-c.pos.Y
	if dx == 0 && dy == 0 {
		return false
	}
	return c.Move(dx, dy, speed)
}

// RoomOf returns the room containing p
func (c *Camera) RoomOf(p vmath.Vector) GridPos {
	return GridPos{
		X: int(math.Floor(p.X / c.roomW)),
		Y: int(math.Floor(p.Y / c.roomH)),
	}
}

// SetPosition jumps to a room immediately, cancelling any move
func (c *Camera) SetPosition(g GridPos) {
	g.X, g.Y = max(g.X, 0), max(g.Y, 0)
	c.pos = g
	c.target = g
	c.pixel = c.roomPixel(g)
	c.moving = false
	c.timer = 0
}

// GridPos returns the current room
func (c *Camera) GridPos() GridPos {
	return c.pos
}

// Target returns the room being moved to, or the current room when idle
func (c *Camera) Target() GridPos {
	return c.target
}

// Position returns the authoritative pixel position of the view's top-left corner
func (c *Camera) Position() vmath.Vector {
	return c.pixel
}

// Shake starts jitter of up to amplitude pixels for duration ticks
// A weaker shake does not override a stronger running one
func (c *Camera) Shake(amplitude, duration float64) {
	if c.shakeTimer > 0 && amplitude < c.shakeAmp {
		return
	}
	c.shakeAmp = amplitude
	c.shakeTimer = duration
}

// ShakeOffset returns the draw-time jitter; zero when no shake runs
func (c *Camera) ShakeOffset(rng *vmath.FastRand) vmath.Vector {
	if c.shakeTimer <= 0 || c.shakeAmp <= 0 || rng == nil {
		return vmath.Vector{}
	}
	return vmath.Vec(
		math.Round(rng.Range(-c.shakeAmp, c.shakeAmp)),
		math.Round(rng.Range(-c.shakeAmp, c.shakeAmp)),
	)
}

// View returns the current pixel rect in world space
func (c *Camera) View() vmath.Rect {
	return vmath.FromCorner(c.pixel.X, c.pixel.Y, c.roomW, c.roomH)
}

// CheckView is View widened by the visibility padding
func (c *Camera) CheckView() vmath.Rect {
	v := c.View()
	v.W += 2 * parameter.CameraCheckPadding
	v.H += 2 * parameter.CameraCheckPadding
	return v
}

// Visible tests area owned by pos against the current view
func (c *Camera) Visible(area vmath.Rect, pos vmath.Vector) bool {
	return area.Overlap(pos, c.View(), vmath.Vector{})
}

func (c *Camera) roomPixel(g GridPos) vmath.Vector {
	return vmath.Vec(float64(g.X)*c.roomW, float64(g.Y)*c.roomH)
}
