package biarc

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, such as a tangent direction or the
// offset from an arc's start point to its center.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2   { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Div(f float64) Vec2   { return Vec2{v.X / f, v.Y / f} }
func (v Vec2) Negate() Vec2         { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Hypot2() float64      { return v.Dot(v) }
func (v Vec2) Hypot() float64       { return math.Hypot(v.X, v.Y) }
func (v Vec2) Angle() float64       { return math.Atan2(v.Y, v.X) }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Normalize scales v to unit length. The zero vector yields NaNs.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Hypot())
}

// TurnRight returns v rotated by −90°, i.e. ⟨y, −x⟩.
func (v Vec2) TurnRight() Vec2 {
	return Vec2{v.Y, -v.X}
}

// VecFromAngle returns the unit vector at angle th, measured from the
// positive x axis towards the positive y axis.
func VecFromAngle(th float64) Vec2 {
	sin, cos := math.Sincos(th)
	return Vec2{cos, sin}
}
