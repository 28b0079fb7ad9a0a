package planar

import (
	"fmt"
	"math"
)

// Line is a line in the plane in general form, ax + by + c = 0.
//
// The coefficients are unexported so that every Line built through a
// constructor has a well-defined direction: a and b are never both
// zero. Two Lines with proportional coefficients describe the same
// geometric line but remain distinct values; no canonicalization is
// performed. The zero value is degenerate and unusable.
type Line struct {
	a, b, c float64
}

// NewLine returns the line ax + by + c = 0. It returns
// [ErrInvalidLine] if a and b are both zero.
func NewLine(a, b, c float64) (Line, error) {
	if a == 0 && b == 0 {
		return Line{}, ErrInvalidLine
	}
	return Line{a: a, b: b, c: c}, nil
}

// LineFromPoints returns the line through p1 and p2. It returns
// [ErrCoincidentPoints] if the points are exactly equal.
func LineFromPoints(p1, p2 Point) (Line, error) {
	if p1.X == p2.X && p1.Y == p2.Y {
		return Line{}, ErrCoincidentPoints
	}
	return NewLine(
		p1.Y-p2.Y,
		p2.X-p1.X,
		p1.X*p2.Y-p2.X*p1.Y,
	)
}

// LineSlopeIntercept returns the line y = m*x + yint. It returns
// [ErrNoSlope] if m is NaN or infinite; vertical lines have no
// slope-intercept form and must be built with [LineVertical].
func LineSlopeIntercept(m, yint float64) (Line, error) {
	if math.IsNaN(m) || math.IsInf(m, 0) {
		return Line{}, ErrNoSlope
	}
	return NewLine(-m, 1, -yint)
}

// LineVertical returns the vertical line x = xconst.
func LineVertical(xconst float64) Line {
	return Line{a: 1, b: 0, c: -xconst}
}

// Slope returns the slope of l. The second return value is false for
// a vertical line, whose slope is undefined.
func (l Line) Slope() (float64, bool) {
	if l.b == 0 {
		return 0, false
	}
	return -l.a / l.b, true
}

// YIntercept returns the y-intercept of l. The second return value is
// false for a vertical line, which has no y-intercept.
func (l Line) YIntercept() (float64, bool) {
	if l.b == 0 {
		return 0, false
	}
	return -l.c / l.b, true
}

// Contains reports whether p lies on l, within an absolute tolerance
// of 1e-9 on the residual ax + by + c.
func (l Line) Contains(p Point) bool {
	return math.Abs(l.a*p.X+l.b*p.Y+l.c) <= containsTol
}

// DistanceTo returns the perpendicular distance from p to l.
func (l Line) DistanceTo(p Point) float64 {
	return math.Abs(l.a*p.X+l.b*p.Y+l.c) / math.Hypot(l.a, l.b)
}

// Intersection returns the point where l and o cross, solving the
// 2x2 system by Cramer's rule. The second return value is false when
// the determinant is within 1e-12 of zero, which covers parallel and
// coincident lines alike.
func (l Line) Intersection(o Line) (Point, bool) {
	d := l.a*o.b - o.a*l.b
	if math.Abs(d) <= parallelTol {
		return Point{}, false
	}

	dx := -l.c*o.b - -o.c*l.b
	dy := l.a*-o.c - o.a*-l.c
	return Pt(dx/d, dy/d), true
}

// ReflectPoint returns the mirror image of p across l. It is the
// symmetric entry point to [Point.ReflectAcross].
func (l Line) ReflectPoint(p Point) (Point, error) {
	return p.ReflectAcross(l)
}

// ABC returns l's general-form coefficients.
func (l Line) ABC() (a, b, c float64) {
	return l.a, l.b, l.c
}

// SlopeIntercept returns l's slope and y-intercept. ok is false for a
// vertical line, for which neither is defined.
func (l Line) SlopeIntercept() (m, yint float64, ok bool) {
	m, ok = l.Slope()
	if !ok {
		return 0, 0, false
	}
	yint, _ = l.YIntercept()
	return m, yint, true
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%vx + %vy + %v = 0)", l.a, l.b, l.c)
}
