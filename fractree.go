package fractree

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Vec2 is a 2D point or offset. The coordinate system has its origin at the
// top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RGBA implements the color.Color interface (alpha-premultiplied), so a
// Color can be passed directly to image and ebiten drawing functions.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A) * 0xffff)
	g = uint32(clamp01(c.G*c.A) * 0xffff)
	b = uint32(clamp01(c.B*c.A) * 0xffff)
	a = uint32(clamp01(c.A) * 0xffff)
	return
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
