package sketch

import "math"

// Point represents a 2D point or vector.
// Construct points with Pt, which coerces non-finite coordinates to zero;
// a committed Point never carries NaN or Inf.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
// Non-finite coordinates are coerced to 0.
func Pt(x, y float64) Point {
	return Point{X: finiteOr(x, 0), Y: finiteOr(y, 0)}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Offset returns the component-wise offset from a to b.
func Offset(a, b Point) Point {
	return Point{X: b.X - a.X, Y: b.Y - a.Y}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float64 {
	return a.Distance(b)
}
