package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestTranslateKeepsShape(t *testing.T) {
	p := RectPolygon(10, 20, 30, 40)
	moved := p.Translate(dmath.Vec2{X: -5, Y: 2.5})

	for i := range p {
		assert.InDelta(t, p[i].X-5, moved[i].X, 1e-9)
		assert.InDelta(t, p[i].Y+2.5, moved[i].Y, 1e-9)
	}
	assert.Equal(t, RectPolygon(10, 20, 30, 40), p, "receiver is a copy")
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, r.Contains(Vec(0, 0)))
	assert.True(t, r.Contains(Vec(10, 10)))
	assert.True(t, r.Contains(Vec(5, 10)))
	assert.False(t, r.Contains(Vec(10.01, 5)))
	assert.False(t, r.Contains(Vec(-0.01, 5)))
}

func TestQuadrants(t *testing.T) {
	q := Rect{X: 0, Y: 0, W: 100, H: 50}.Quadrants()
	assert.Equal(t, Rect{X: 0, Y: 0, W: 50, H: 25}, q[0])
	assert.Equal(t, Rect{X: 50, Y: 0, W: 50, H: 25}, q[1])
	assert.Equal(t, Rect{X: 0, Y: 25, W: 50, H: 25}, q[2])
	assert.Equal(t, Rect{X: 50, Y: 25, W: 50, H: 25}, q[3])
}

func TestRotatedRect(t *testing.T) {
	p, anchor := RotatedRect(dmath.Vec2{X: 100, Y: 50}, 20, 4, math.Pi/2)

	assert.InDelta(t, 90, anchor.X, 1e-9)
	assert.InDelta(t, 50, anchor.Y, 1e-9)

	// A quarter turn about (90, 50) maps the top-left corner (100, 48) to
	// (92, 60).
	assert.InDelta(t, 92, p[TopLeft].X, 1e-9)
	assert.InDelta(t, 60, p[TopLeft].Y, 1e-9)

	b := p.Bounds()
	assert.InDelta(t, 4, b.W, 1e-9)
	assert.InDelta(t, 20, b.H, 1e-9)
}

func TestBoundsAndCenter(t *testing.T) {
	p := CenteredRect(5, 5, 10, 4)
	assert.Equal(t, Rect{X: 0, Y: 3, W: 10, H: 4}, p.Bounds())
	assert.Equal(t, Vec(5, 5), p.Center())
}
