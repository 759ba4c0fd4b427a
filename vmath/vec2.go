package vmath

import "math"

// Vec2 is a float64 2D vector in world units
// Y grows upward; the arena origin is its center
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Mul multiplies component-wise
func V2Mul(a, b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2ReflectX returns velocity reflected off a vertical wall
func V2ReflectX(v Vec2) Vec2 {
	return Vec2{-v.X, v.Y}
}

// V2ReflectY returns velocity reflected off a horizontal wall
func V2ReflectY(v Vec2) Vec2 {
	return Vec2{v.X, -v.Y}
}
