package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec returns a vector with the given components.
func Vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

// Add returns a + b.
func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale multiplies both components by s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot is the scalar product of a and b.
func Dot(a, b dmath.Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Perp returns v rotated a quarter turn, (-y, x).
func Perp(v dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: -v.Y, Y: v.X}
}

// Length returns the euclidean length of v.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged with ok == false.
func Normalize(v dmath.Vec2) (n dmath.Vec2, ok bool) {
	l := Length(v)
	if l == 0 {
		return v, false
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Distance returns the euclidean distance between two points.
func Distance(a, b dmath.Vec2) float64 {
	return Length(Sub(b, a))
}

// Rotate turns p around center by angle radians.
func Rotate(p, center dmath.Vec2, angle float64) dmath.Vec2 {
	sin, cos := math.Sincos(angle)
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dmath.Vec2{
		X: dx*cos - dy*sin + center.X,
		Y: dx*sin + dy*cos + center.Y,
	}
}
