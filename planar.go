// Package planar provides value types for 2D analytic geometry.
//
// It centers on three immutable types: [Point], a location in the
// plane; [Vector], a free displacement; and [Line], a line in general
// form ax + by + c = 0. Every operation returns a new value, so
// instances may be freely shared without synchronization.
//
// Alongside the methods, a set of free functions mirrors each
// operation for functional-style call sites. They forward directly to
// the corresponding method and carry no logic of their own.
package planar

import "errors"

// Errors returned by constructors and operations on degenerate
// inputs. All of them are reported synchronously at the call site; no
// operation ever produces a partial value.
var (
	// ErrInvalidLine indicates line coefficients with both a and b
	// zero, which describe no direction.
	ErrInvalidLine = errors.New("invalid line coefficients")

	// ErrCoincidentPoints indicates an attempt to construct a line
	// through two exactly equal points.
	ErrCoincidentPoints = errors.New("need two distinct points")

	// ErrNoSlope indicates a non-finite slope passed to
	// [LineSlopeIntercept]. Vertical lines have no slope-intercept
	// form; use [LineVertical] instead.
	ErrNoSlope = errors.New("vertical line has no slope; use LineVertical")

	// ErrZeroVector indicates an operation that is undefined for the
	// zero vector, such as normalization or projecting onto it.
	ErrZeroVector = errors.New("zero vector")

	// ErrUnknownAxis indicates an [Axis] outside of [AxisX], [AxisY],
	// and [AxisOrigin].
	ErrUnknownAxis = errors.New("unknown axis")
)

const (
	// containsTol is the absolute tolerance used by [Line.Contains].
	// Containment tests a derived algebraic condition and is the one
	// comparison in this package subject to rounding.
	containsTol = 1e-9

	// parallelTol is the absolute tolerance on the determinant below
	// which [Line.Intersection] reports two lines as parallel.
	parallelTol = 1e-12
)
