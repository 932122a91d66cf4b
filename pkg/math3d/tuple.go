// Package math3d provides the homogeneous-coordinate primitives of the noray
// ray tracer: points, vectors and the four-component tuple behind them.
package math3d

import "math"

// Epsilon is the float64 machine epsilon used to compare discriminants.
const Epsilon = 0x1p-52

// Tuple is a homogeneous coordinate. W is 1 for a point and 0 for a vector;
// arithmetic on raw tuples may produce any other W.
type Tuple struct {
	X, Y, Z, W float64
}

// T creates a new Tuple.
func T(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// IsPoint reports whether W is within Epsilon of 1.
func (t Tuple) IsPoint() bool {
	return math.Abs(t.W-1) < Epsilon
}

// IsVector reports whether W is within Epsilon of 0.
func (t Tuple) IsVector() bool {
	return math.Abs(t.W) < Epsilon
}

// Point narrows the tuple to a Point. ok is false when W is not 1.
func (t Tuple) Point() (p Point, ok bool) {
	if !t.IsPoint() {
		return Point{}, false
	}
	return Point{t.X, t.Y, t.Z}, true
}

// Vector narrows the tuple to a Vector. ok is false when W is not 0.
func (t Tuple) Vector() (v Vector, ok bool) {
	if !t.IsVector() {
		return Vector{}, false
	}
	return Vector{t.X, t.Y, t.Z}, true
}

// Add returns the component-wise sum.
//
//nolint:st1016 // a+b naming convention is clearer for tuple operations
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference.
//
//nolint:st1016 // a-b naming convention is clearer for tuple operations
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns the scalar product.
func (t Tuple) Scale(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}

// Div returns the scalar division. Dividing by zero is not guarded.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{t.X / s, t.Y / s, t.Z / s, t.W / s}
}

// Dot returns the dot product over all four components.
//
//nolint:st1016 // a·b naming convention is clearer for tuple operations
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// ApproxEqual reports whether every component of a and b differs by less
// than tol.
//
//nolint:st1016 // a,b naming convention is clearer for comparisons
func (a Tuple) ApproxEqual(b Tuple, tol float64) bool {
	return ApproxEqual(a.X, b.X, tol) &&
		ApproxEqual(a.Y, b.Y, tol) &&
		ApproxEqual(a.Z, b.Z, tol) &&
		ApproxEqual(a.W, b.W, tol)
}

// ApproxEqual reports whether |a-b| < tol.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}
