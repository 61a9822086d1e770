// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an integer cell rectangle used for drawing on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Vec2 is a 2D vector in arena units (pixels, y pointing up).
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{X: x, Y: y}.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Aabb is an axis-aligned box described by its center and half extents.
type Aabb struct {
	Center Vec2
	Half   Vec2
}

// NewAabb creates a box from its center and half extents.
func NewAabb(center, half Vec2) Aabb {
	return Aabb{Center: center, Half: half}
}

// Min returns the bottom-left corner.
func (b Aabb) Min() Vec2 {
	return b.Center.Sub(b.Half)
}

// Max returns the top-right corner.
func (b Aabb) Max() Vec2 {
	return b.Center.Add(b.Half)
}

// ClosestPoint returns the point of the box nearest to p.
// Points inside the box are returned unchanged.
func (b Aabb) ClosestPoint(p Vec2) Vec2 {
	lo, hi := b.Min(), b.Max()
	return Vec2{X: ClampF(p.X, lo.X, hi.X), Y: ClampF(p.Y, lo.Y, hi.Y)}
}

// Circle is a bounding circle.
type Circle struct {
	Center Vec2
	Radius float64
}

// NewCircle creates a circle from its center and radius.
func NewCircle(center Vec2, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// Intersects reports whether the circle touches or overlaps the box.
func (c Circle) Intersects(b Aabb) bool {
	closest := b.ClosestPoint(c.Center)
	return c.Center.Sub(closest).LenSq() <= c.Radius*c.Radius
}

// Side is the side of a box that a circle hit.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// ClassifyCollision reports which side of box the ball hit.
// ok is false when the circle does not touch the box.
//
// The side follows the offset from the box's closest point to the ball
// center: a strictly dominant horizontal offset gives Left/Right, anything
// else (ties included) gives Top/Bottom.
func ClassifyCollision(ball Circle, box Aabb) (side Side, ok bool) {
	if !ball.Intersects(box) {
		return 0, false
	}

	offset := ball.Center.Sub(box.ClosestPoint(ball.Center))
	switch {
	case math.Abs(offset.X) > math.Abs(offset.Y):
		if offset.X < 0 {
			return SideLeft, true
		}
		return SideRight, true
	case offset.Y > 0:
		return SideTop, true
	default:
		return SideBottom, true
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
