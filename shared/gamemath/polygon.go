package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Vertex indices of a Polygon. The order is part of the contract: the
// axis-aligned test reads the min corner from TopLeft and the max corner
// from BottomRight.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Polygon is a quadrilateral stored as an ordered ring of four vertices:
// top-left, top-right, bottom-right, bottom-left.
type Polygon [4]dmath.Vec2

// RectPolygon returns the axis-aligned rectangle with top-left corner
// (x, y) and the given size.
func RectPolygon(x, y, w, h float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}

// CenteredRect returns the axis-aligned rectangle of size w x h centred on
// (cx, cy).
func CenteredRect(cx, cy, w, h float64) Polygon {
	return RectPolygon(cx-w/2, cy-h/2, w, h)
}

// RotatedRect builds a w x h rectangle that starts at midLeft and points
// along angle. The rectangle is turned around the point half a width behind
// midLeft, which is also returned as the shape's anchor.
func RotatedRect(midLeft dmath.Vec2, w, h, angle float64) (Polygon, dmath.Vec2) {
	center := dmath.Vec2{X: midLeft.X - w/2, Y: midLeft.Y}
	rect := RectPolygon(midLeft.X, midLeft.Y-h/2, w, h)
	var out Polygon
	for i, v := range rect {
		out[i] = Rotate(v, center, angle)
	}
	return out, center
}

// Translate returns p moved by delta. All four vertices move together so
// the shape is preserved.
func (p Polygon) Translate(delta dmath.Vec2) Polygon {
	for i := range p {
		p[i].X += delta.X
		p[i].Y += delta.Y
	}
	return p
}

// Bounds returns the smallest axis-aligned rectangle containing every
// vertex.
func (p Polygon) Bounds() Rect {
	minX, minY := p[0].X, p[0].Y
	maxX, maxY := minX, minY
	for _, v := range p[1:] {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Center is the average of the four vertices.
func (p Polygon) Center() dmath.Vec2 {
	var c dmath.Vec2
	for _, v := range p {
		c.X += v.X
		c.Y += v.Y
	}
	return dmath.Vec2{X: c.X / 4, Y: c.Y / 4}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p dmath.Vec2) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Polygon returns r as a TL, TR, BR, BL ring.
func (r Rect) Polygon() Polygon {
	return RectPolygon(r.X, r.Y, r.W, r.H)
}

// Quadrants splits r in half on both axes and returns the top-left,
// top-right, bottom-left and bottom-right quarters.
func (r Rect) Quadrants() [4]Rect {
	hw, hh := r.W/2, r.H/2
	return [4]Rect{
		{X: r.X, Y: r.Y, W: hw, H: hh},
		{X: r.X + hw, Y: r.Y, W: hw, H: hh},
		{X: r.X, Y: r.Y + hh, W: hw, H: hh},
		{X: r.X + hw, Y: r.Y + hh, W: hw, H: hh},
	}
}
