// Package geom provides the 2D float geometry used by the simulation:
// vectors, line segments and bounding circles. It contains no external
// dependencies to keep the math pure and testable.
package geom

import "math"

// Vec is a 2D point/vector. All arithmetic returns new values; no
// operation mutates its operands.
type Vec struct {
	X, Y float64
}

// V is a shorthand constructor.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Div returns v divided by a scalar.
func (v Vec) Div(s float64) Vec {
	return Vec{v.X / s, v.Y / s}
}

// MagSq returns the squared magnitude. The square root is deliberately
// not taken; callers compare squared quantities throughout.
func (v Vec) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the direction of v.
// Undefined for the zero vector (the components become NaN); producers
// must not pass one.
func (v Vec) Normalize() Vec {
	return v.Div(math.Sqrt(v.MagSq()))
}

// Slope returns y/x and true, or 0 and false when the slope is
// infinite (x == 0).
func (v Vec) Slope() (float64, bool) {
	if v.X == 0 {
		return 0, false
	}
	return v.Y / v.X, true
}

// Cross returns the 2D cross product v × o.
func (v Vec) Cross(o Vec) float64 {
	return v.X*o.Y - v.Y*o.X
}
