package aspen

import "math"

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout
// the API. The coordinate system has its origin at the top-left, with Y
// increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div returns v divided by s.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Length returns the euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated by the given angle in degrees. Rotation is
// screen-space (Y down): Rotate of (1, 1) by 90 yields (1, -1).
func (v Vec2) Rotate(degrees float64) Vec2 {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return Vec2{v.X*cos + v.Y*sin, -v.X*sin + v.Y*cos}
}

// AlmostEqual reports whether v and o are within eps of each other on
// both axes.
func (v Vec2) AlmostEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// pointEps is the tolerance used for point-vs-point matching in quadtree
// queries.
const pointEps = 1e-6

// Origin selects the point within a node's content rectangle used as its
// local coordinate-system origin. It offsets the node's world position by
// a fraction of its world-space size.
type Origin uint8

const (
	OriginTopLeft     Origin = iota // no offset (default)
	OriginCenter                    // offset by -size/2
	OriginBottomRight               // offset by -size
)

// Content provides a node's intrinsic size in asset pixels. The second
// return value reports whether a size is available; when it is false the
// node falls back to its dummy size, or zero.
type Content interface {
	Size() (Vec2, bool)
}

// DefaultMaxIndexDepth is the quadtree subdivision limit a fresh root
// starts with.
const DefaultMaxIndexDepth = 8
