package math3d

import "math"

// Vector is a direction or displacement in 3D space. Its W is always 0.
type Vector struct {
	X, Y, Z float64
}

// V creates a new Vector.
func V(x, y, z float64) Vector {
	return Vector{x, y, z}
}

// Zero returns the zero vector.
func Zero() Vector {
	return Vector{}
}

// W returns the discriminant of a vector, 0.
func (Vector) W() float64 {
	return 0
}

// Tuple widens the vector to its homogeneous form.
func (a Vector) Tuple() Tuple {
	return Tuple{a.X, a.Y, a.Z, 0}
}

// Add returns the vector sum a + b.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Negate returns the negated vector.
func (a Vector) Negate() Vector {
	return Vector{-a.X, -a.Y, -a.Z}
}

// Scale returns the scalar product a * s.
func (a Vector) Scale(s float64) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s. A zero divisor yields IEEE
// infinities or NaN.
func (a Vector) Div(s float64) Vector {
	return Vector{a.X / s, a.Y / s, a.Z / s}
}

// Dot returns the dot product a · b.
func (a Vector) Dot(b Vector) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W()*b.W()
}

// Cross returns the cross product a × b in the left-handed system.
// Cross is anticommutative: a.Cross(b) == b.Cross(a).Negate().
func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Magnitude returns the length of the vector.
func (a Vector) Magnitude() float64 {
	return math.Sqrt(a.MagnitudeSq())
}

// MagnitudeSq returns the squared length (no sqrt).
func (a Vector) MagnitudeSq() float64 {
	w := a.W()
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z + w*w
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to NaN components.
func (a Vector) Normalize() Vector {
	return a.Div(a.Magnitude())
}

// Reflect returns the reflection of a around normal n.
func (a Vector) Reflect(n Vector) Vector {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// ApproxEqual reports whether every component of a and b differs by less
// than tol.
func (a Vector) ApproxEqual(b Vector, tol float64) bool {
	return ApproxEqual(a.X, b.X, tol) &&
		ApproxEqual(a.Y, b.Y, tol) &&
		ApproxEqual(a.Z, b.Z, tol)
}
