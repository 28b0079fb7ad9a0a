package planar

import (
	"fmt"
	"math"
)

// Vector is a free 2D displacement. The zero value is the zero
// vector, which is valid but rejected by [Vector.Unit] and as the
// target of [Vector.ProjOnto].
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the component-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vec(v.X+o.X, v.Y+o.Y)
}

// Sub returns the component-wise difference of v and o.
func (v Vector) Sub(o Vector) Vector {
	return Vec(v.X-o.X, v.Y-o.Y)
}

// Scale returns v scaled by k.
func (v Vector) Scale(k float64) Vector {
	return Vec(v.X*k, v.Y*k)
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the scalar 2D cross product of v and o, the signed
// area of the parallelogram they span.
func (v Vector) Cross(o Vector) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Mag returns the magnitude of v.
func (v Vector) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the vector of magnitude 1 in the direction of v. It
// returns [ErrZeroVector] if v's magnitude is exactly zero; a
// near-zero vector passes the check and normalizes as usual.
func (v Vector) Unit() (Vector, error) {
	m := v.Mag()
	if m == 0 {
		return Vector{}, ErrZeroVector
	}
	return Vec(v.X/m, v.Y/m), nil
}

// ProjOnto returns the projection of v onto o, that is o scaled by
// v⋅o/|o|². It returns [ErrZeroVector] if o's squared magnitude is
// exactly zero.
func (v Vector) ProjOnto(o Vector) (Vector, error) {
	d := o.X*o.X + o.Y*o.Y
	if d == 0 {
		return Vector{}, ErrZeroVector
	}
	return o.Scale(v.Dot(o) / d), nil
}

// Point reinterprets v as a location in the plane.
func (v Vector) Point() Point {
	return Pt(v.X, v.Y)
}

func (v Vector) String() string {
	return fmt.Sprintf("Vector(%v, %v)", v.X, v.Y)
}
