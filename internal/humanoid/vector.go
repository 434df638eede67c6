package humanoid

import (
	"math"

	"github.com/zhuchkkll-blip/nbClass/api/schemas"
)

// Vector2D represents a point or displacement in a 2D Cartesian coordinate
// system. Trajectory math runs on float vectors; results are truncated to
// integer screen coordinates only at the waypoint boundary.
type Vector2D struct {
	// X is the horizontal component of the vector.
	X float64
	// Y is the vertical component of the vector.
	Y float64
}

// vecFromPoint widens an integer screen coordinate to a float vector.
func vecFromPoint(p schemas.Point) Vector2D {
	return Vector2D{X: float64(p.X), Y: float64(p.Y)}
}

// Point truncates the vector to an integer screen coordinate. Truncation is
// toward zero on each axis, matching plain integer conversion.
func (v Vector2D) Point() schemas.Point {
	return schemas.Point{X: int(v.X), Y: int(v.Y)}
}

// Add performs vector addition, returning a new Vector2D `v + other`.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub performs vector subtraction, returning a new Vector2D `v - other`.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul performs scalar multiplication, returning a new Vector2D `v * scalar`.
func (v Vector2D) Mul(scalar float64) Vector2D {
	return Vector2D{X: v.X * scalar, Y: v.Y * scalar}
}

// Dist calculates the Euclidean distance between the points represented by
// `v` and `other`.
func (v Vector2D) Dist(other Vector2D) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}
