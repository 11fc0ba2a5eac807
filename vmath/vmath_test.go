package vmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorOps(t *testing.T) {
	a := Vec(3, 4)
	assert.InDelta(t, 5.0, a.Length(), 1e-9)
	assert.InDelta(t, 1.0, a.Normalize().Length(), 1e-9)
	assert.Equal(t, Vector{}, Vector{}.Normalize(), "zero vector normalizes to zero")

	b := Vec(6, 8)
	assert.Equal(t, Vec(4.5, 6), a.Lerp(b, 0.5))
	assert.InDelta(t, 5.0, a.Distance(b), 1e-9)
	assert.Equal(t, Vec(6, 8), a.Scale(2))

	d := Direction(Vec(0, 0), Vec(0, -10))
	assert.InDelta(t, -1.0, d.Y, 1e-9)
	assert.InDelta(t, 0.0, d.X, 1e-9)
}

func TestVectorCloneDoesNotAlias(t *testing.T) {
	a := Vec(1, 2)
	b := a.Clone()
	b.X = 99
	assert.Equal(t, 1.0, a.X)
}

func TestRectOverlap(t *testing.T) {
	box := Box(10, 10)

	tests := []struct {
		name string
		a, b Vector
		want bool
	}{
		{"Same position", Vec(0, 0), Vec(0, 0), true},
		{"Partial", Vec(0, 0), Vec(9, 9), true},
		{"Touching edges", Vec(0, 0), Vec(10, 0), false},
		{"Far apart", Vec(0, 0), Vec(50, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, box.Overlap(tt.a, box, tt.b))
		})
	}
}

func TestRectOffsetEdges(t *testing.T) {
	r := Rect{X: 2, Y: -4, W: 8, H: 12}
	pos := Vec(100, 50)
	assert.Equal(t, 98.0, r.Left(pos))
	assert.Equal(t, 106.0, r.Right(pos))
	assert.Equal(t, 40.0, r.Top(pos))
	assert.Equal(t, 52.0, r.Bottom(pos))

	c := FromCorner(16, 32, 16, 16)
	assert.Equal(t, 16.0, c.Left(Vector{}))
	assert.Equal(t, 48.0, c.Bottom(Vector{}))
}

func TestApproach(t *testing.T) {
	assert.Equal(t, 0.15, Approach(0, 1, 0.15))
	assert.Equal(t, 1.0, Approach(0.95, 1, 0.15), "never overshoots")
	assert.Equal(t, -1.0, Approach(-0.9, -1, 0.5))
	assert.Equal(t, 2.0, Approach(2, 2, 0.3))
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		fa, fb := a.Float64(), b.Float64()
		assert.Equal(t, fa, fb)
		assert.True(t, fa >= 0 && fa < 1)
	}
	assert.False(t, a.Chance(0))
	assert.True(t, a.Chance(1))
	assert.False(t, math.IsNaN(a.Range(-1, 1)))
}

func TestFastRandZeroSeed(t *testing.T) {
	z := NewFastRand(0)
	one := NewFastRand(1)
	assert.Equal(t, one.Next(), z.Next(), "zero seed behaves as seed 1")
	assert.NotZero(t, z.Next())
	assert.Zero(t, z.Intn(0))
	assert.Less(t, z.Intn(7), 7)
}
