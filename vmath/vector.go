package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vector is a 4-component value type; gameplay uses X and Y only
// Stored by value so copies never alias
type Vector struct {
	X, Y, Z, W float64
}

// Vec returns a 2D vector with Z and W zeroed
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) gl() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func fromGL(g mgl64.Vec4) Vector {
	return Vector{X: g[0], Y: g[1], Z: g[2], W: g[3]}
}

// Clone returns an independent copy
func (v Vector) Clone() Vector {
	return v
}

// Add returns v + o
func (v Vector) Add(o Vector) Vector {
	return fromGL(v.gl().Add(o.gl()))
}

// Sub returns v - o
func (v Vector) Sub(o Vector) Vector {
	return fromGL(v.gl().Sub(o.gl()))
}

// Scale multiplies every component by s
func (v Vector) Scale(s float64) Vector {
	return fromGL(v.gl().Mul(s))
}

// Length returns the Euclidean length over all four components
func (v Vector) Length() float64 {
	return v.gl().Len()
}

// Normalize returns the unit vector, zero-safe
func (v Vector) Normalize() Vector {
	if v.Length() == 0 {
		return Vector{}
	}
	return fromGL(v.gl().Normalize())
}

// Distance returns |v - o|
func (v Vector) Distance(o Vector) float64 {
	return v.Sub(o).Length()
}

// Lerp blends from v (t=0) to o (t=1)
func (v Vector) Lerp(o Vector, t float64) Vector {
	return v.Add(o.Sub(v).Scale(t))
}

// Direction returns the unit vector pointing from a to b
func Direction(a, b Vector) Vector {
	return b.Sub(a).Normalize()
}
