package planar

import (
	"fmt"
	"math"
)

// Point is a location in the plane. The zero value is the origin.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Pt((p.X+q.X)/2, (p.Y+q.Y)/2)
}

// Translate returns p offset by dx and dy.
func (p Point) Translate(dx, dy float64) Point {
	return Pt(p.X+dx, p.Y+dy)
}

// Vector reinterprets p as a displacement from the origin.
func (p Point) Vector() Vector {
	return Vec(p.X, p.Y)
}

// ReflectX returns p reflected across the x-axis.
func (p Point) ReflectX() Point {
	return Pt(p.X, -p.Y)
}

// ReflectY returns p reflected across the y-axis.
func (p Point) ReflectY() Point {
	return Pt(-p.X, p.Y)
}

// ReflectOrigin returns p reflected through the origin.
func (p Point) ReflectOrigin() Point {
	return Pt(-p.X, -p.Y)
}

// ReflectAcross returns the mirror image of p across l. It projects p
// onto l's normal and doubles the offset: with d = a²+b² and
// k = (ax+by+c)/d, the image is (x-2ak, y-2bk).
//
// It returns [ErrInvalidLine] if l has both a and b zero. The
// constructors never produce such a line, but the Line zero value is
// degenerate, so the check stays.
func (p Point) ReflectAcross(l Line) (Point, error) {
	d := l.a*l.a + l.b*l.b
	if d == 0 {
		return Point{}, ErrInvalidLine
	}

	k := (l.a*p.X + l.b*p.Y + l.c) / d
	return Pt(p.X-2*l.a*k, p.Y-2*l.b*k), nil
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%v, %v)", p.X, p.Y)
}
