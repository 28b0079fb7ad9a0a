package planar_test

import (
	"math"
	"testing"

	"deedles.dev/planar"
	"github.com/stretchr/testify/require"
)

func TestNewLine(t *testing.T) {
	l, err := planar.NewLine(1, -1, 3)
	require.NoError(t, err)
	a, b, c := l.ABC()
	require.Equal(t, [...]float64{1, -1, 3}, [...]float64{a, b, c})

	_, err = planar.NewLine(0, 0, 5)
	require.ErrorIs(t, err, planar.ErrInvalidLine)
}

func TestLineFromPoints(t *testing.T) {
	p := planar.Pt(0, 1)
	q := planar.Pt(2, 5)

	l, err := planar.LineFromPoints(p, q)
	require.NoError(t, err)
	require.True(t, l.Contains(p))
	require.True(t, l.Contains(q))

	m, ok := l.Slope()
	require.True(t, ok)
	require.InDelta(t, 2, m, 1e-12)

	_, err = planar.LineFromPoints(planar.Pt(1, 1), planar.Pt(1, 1))
	require.ErrorIs(t, err, planar.ErrCoincidentPoints)
}

func TestLineSlopeIntercept(t *testing.T) {
	l, err := planar.LineSlopeIntercept(2, -3)
	require.NoError(t, err)

	m, yint, ok := l.SlopeIntercept()
	require.True(t, ok)
	require.Equal(t, 2.0, m)
	require.Equal(t, -3.0, yint)
	require.True(t, l.Contains(planar.Pt(0, -3)))
	require.True(t, l.Contains(planar.Pt(1, -1)))

	_, err = planar.LineSlopeIntercept(math.Inf(1), 0)
	require.ErrorIs(t, err, planar.ErrNoSlope)
	_, err = planar.LineSlopeIntercept(math.NaN(), 0)
	require.ErrorIs(t, err, planar.ErrNoSlope)
}

func TestLineVertical(t *testing.T) {
	l := planar.LineVertical(4)

	require.True(t, l.Contains(planar.Pt(4, -100)))
	require.False(t, l.Contains(planar.Pt(4.1, 0)))

	_, ok := l.Slope()
	require.False(t, ok)
	_, ok = l.YIntercept()
	require.False(t, ok)
	_, _, ok = l.SlopeIntercept()
	require.False(t, ok)
}

func TestYIntercept(t *testing.T) {
	l, err := planar.NewLine(2, 4, -8)
	require.NoError(t, err)

	yint, ok := l.YIntercept()
	require.True(t, ok)
	require.Equal(t, 2.0, yint)
}

func TestDistanceToPoint(t *testing.T) {
	// y = x, distance from (0, 2) is sqrt(2).
	l, err := planar.NewLine(1, -1, 0)
	require.NoError(t, err)

	require.InDelta(t, math.Sqrt2, l.DistanceTo(planar.Pt(0, 2)), 1e-12)
	require.Equal(t, 0.0, l.DistanceTo(planar.Pt(3, 3)))

	// Scaling the coefficients does not change the distance.
	k, err := planar.NewLine(10, -10, 0)
	require.NoError(t, err)
	require.InDelta(t, l.DistanceTo(planar.Pt(0, 2)), k.DistanceTo(planar.Pt(0, 2)), 1e-12)
}

func TestIntersection(t *testing.T) {
	// x = 0 crossed with y = 1.
	v, err := planar.LineFromPoints(planar.Pt(0, 0), planar.Pt(0, 2))
	require.NoError(t, err)
	h, err := planar.LineFromPoints(planar.Pt(-1, 1), planar.Pt(1, 1))
	require.NoError(t, err)

	p, ok := v.Intersection(h)
	require.True(t, ok)
	require.Equal(t, planar.Pt(0, 1), p)
	require.True(t, v.Contains(p))
	require.True(t, h.Contains(p))

	// Order does not matter.
	q, ok := h.Intersection(v)
	require.True(t, ok)
	require.Equal(t, p, q)
}

func TestIntersectionParallel(t *testing.T) {
	l1, err := planar.NewLine(1, -1, 0) // y = x
	require.NoError(t, err)
	l2, err := planar.NewLine(1, -1, -5) // y = x - 5
	require.NoError(t, err)

	_, ok := l1.Intersection(l2)
	require.False(t, ok)

	// A line never intersects itself.
	_, ok = l1.Intersection(l1)
	require.False(t, ok)
}

func TestLineReflectPoint(t *testing.T) {
	l := planar.LineVertical(2)

	r, err := l.ReflectPoint(planar.Pt(0, 3))
	require.NoError(t, err)
	require.InDelta(t, 4, r.X, 1e-12)
	require.InDelta(t, 3, r.Y, 1e-12)
}

func TestLineString(t *testing.T) {
	l, err := planar.NewLine(1, -2, 3)
	require.NoError(t, err)
	require.Equal(t, "Line(1x + -2y + 3 = 0)", l.String())
}
