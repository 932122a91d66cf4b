package math3d

// Point is a position in 3D space. Its W is always 1.
//
// Points do not add to each other and have no negation; only the
// point/vector combinations below are defined.
type Point struct {
	X, Y, Z float64
}

// P creates a new Point.
func P(x, y, z float64) Point {
	return Point{x, y, z}
}

// Origin returns the point (0, 0, 0).
func Origin() Point {
	return Point{}
}

// W returns the discriminant of a point, 1.
func (Point) W() float64 {
	return 1
}

// Tuple widens the point to its homogeneous form.
func (p Point) Tuple() Tuple {
	return Tuple{p.X, p.Y, p.Z, 1}
}

// Add translates p by v.
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// SubVec translates p backwards by v.
func (p Point) SubVec(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Magnitude()
}

// ApproxEqual reports whether every coordinate of p and q differs by less
// than tol.
func (p Point) ApproxEqual(q Point, tol float64) bool {
	return ApproxEqual(p.X, q.X, tol) &&
		ApproxEqual(p.Y, q.Y, tol) &&
		ApproxEqual(p.Z, q.Z, tol)
}
