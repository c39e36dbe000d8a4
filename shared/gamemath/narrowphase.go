package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// AABBOverlap reports whether two axis-aligned quads intersect. The min
// corner is read from the top-left vertex and the max corner from the
// bottom-right one. Intervals are closed, so shapes sharing an edge
// overlap.
func AABBOverlap(a, b Polygon) bool {
	aMin, aMax := a[TopLeft], a[BottomRight]
	bMin, bMax := b[TopLeft], b[BottomRight]
	return aMin.X <= bMax.X && aMax.X >= bMin.X &&
		aMin.Y <= bMax.Y && aMax.Y >= bMin.Y
}

// SATOverlap runs the separating axis test on two convex quads in any
// orientation. Candidate axes are the unit normals of every edge of both
// shapes, eight in total.
func SATOverlap(a, b Polygon) bool {
	for _, poly := range [2]*Polygon{&a, &b} {
		for i := range poly {
			axis := edgeNormal(poly, i)
			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA < minB || maxB < minA {
				return false
			}
		}
	}
	return true
}

// edgeNormal returns the unit normal of edge i (vertex i to i+1). A
// zero-length edge of a flattened quad borrows the direction of the next
// edge, which is where its normal would point; a quad collapsed to a point
// falls back to the world axes.
func edgeNormal(p *Polygon, i int) dmath.Vec2 {
	n := len(p)
	if axis, ok := Normalize(Perp(Sub(p[(i+1)%n], p[i]))); ok {
		return axis
	}
	if axis, ok := Normalize(Sub(p[(i+2)%n], p[(i+1)%n])); ok {
		return axis
	}
	if i%2 == 0 {
		return dmath.Vec2{Y: 1}
	}
	return dmath.Vec2{X: 1}
}

func project(p Polygon, axis dmath.Vec2) (lo, hi float64) {
	lo = Dot(p[0], axis)
	hi = lo
	for _, v := range p[1:] {
		d := Dot(v, axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// Overlap picks the narrow-phase test for a pair: the rotated test when
// either side is rotated, the axis-aligned one otherwise.
func Overlap(a Polygon, aRotated bool, b Polygon, bRotated bool) bool {
	if aRotated || bRotated {
		return SATOverlap(a, b)
	}
	return AABBOverlap(a, b)
}

// MinimumTranslation returns the displacement that pushes mover out of
// obstacle along a single axis. Overlap depths are measured between the
// bounding boxes of both shapes using their centres; the shallower axis
// wins (y on a tie) and the sign points from the obstacle centre towards
// the mover centre. Boxes that no longer overlap get the zero vector.
func MinimumTranslation(mover Polygon, moverCenter dmath.Vec2, obstacle Polygon, obstacleCenter dmath.Vec2) dmath.Vec2 {
	mb, ob := mover.Bounds(), obstacle.Bounds()

	dx := moverCenter.X - obstacleCenter.X
	dy := moverCenter.Y - obstacleCenter.Y
	overlapX := mb.W/2 + ob.W/2 - abs(dx)
	overlapY := mb.H/2 + ob.H/2 - abs(dy)
	if overlapX < 0 || overlapY < 0 {
		return dmath.Vec2{}
	}

	if overlapX < overlapY {
		if dx > 0 {
			return dmath.Vec2{X: overlapX}
		}
		return dmath.Vec2{X: -overlapX}
	}
	if dy > 0 {
		return dmath.Vec2{Y: overlapY}
	}
	return dmath.Vec2{Y: -overlapY}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
