package planar

import (
	"fmt"
	"strings"
)

// This file holds the free-function mirror of the method API. Each
// function forwards to the corresponding method; none carries logic
// of its own.

// Axis selects a reflection axis for [ReflectAcrossAxes]. Selectors
// are matched case-insensitively.
type Axis string

const (
	AxisX      Axis = "x"
	AxisY      Axis = "y"
	AxisOrigin Axis = "origin"
)

// Distance returns the Euclidean distance between p1 and p2.
func Distance(p1, p2 Point) float64 {
	return p1.DistanceTo(p2)
}

// Midpoint returns the point halfway between p1 and p2.
func Midpoint(p1, p2 Point) Point {
	return p1.Midpoint(p2)
}

// ReflectAcrossAxes returns p reflected across the selected axis, or
// through the origin for [AxisOrigin]. It returns [ErrUnknownAxis]
// for any other selector.
func ReflectAcrossAxes(p Point, axis Axis) (Point, error) {
	switch Axis(strings.ToLower(string(axis))) {
	case AxisX:
		return p.ReflectX(), nil
	case AxisY:
		return p.ReflectY(), nil
	case AxisOrigin:
		return p.ReflectOrigin(), nil
	}
	return Point{}, fmt.Errorf("%w: %q", ErrUnknownAxis, axis)
}

// ReflectAcrossLine returns the mirror image of p across l.
func ReflectAcrossLine(p Point, l Line) (Point, error) {
	return p.ReflectAcross(l)
}

// VectorAdd returns u + v.
func VectorAdd(u, v Vector) Vector {
	return u.Add(v)
}

// VectorSub returns u - v.
func VectorSub(u, v Vector) Vector {
	return u.Sub(v)
}

// VectorDot returns the dot product of u and v.
func VectorDot(u, v Vector) float64 {
	return u.Dot(v)
}

// VectorCross returns the scalar cross product of u and v.
func VectorCross(u, v Vector) float64 {
	return u.Cross(v)
}

// VectorScale returns u scaled by k.
func VectorScale(u Vector, k float64) Vector {
	return u.Scale(k)
}

// VectorMag returns the magnitude of u.
func VectorMag(u Vector) float64 {
	return u.Mag()
}

// VectorUnit returns the unit vector in the direction of u.
func VectorUnit(u Vector) (Vector, error) {
	return u.Unit()
}

// VectorProj returns the projection of u onto v.
func VectorProj(u, v Vector) (Vector, error) {
	return u.ProjOnto(v)
}
