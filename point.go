package bones

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point is a position or direction in 3D space.
type Point = mgl64.Vec3

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{x, y, z}
}

// lerp linearly interpolates between two points. t is not clamped, values
// outside of [0, 1] extrapolate along the line through a and b.
func lerp(a, b Point, t float64) Point {
	// a + t * (b-a)
	return a.Add(b.Sub(a).Mul(t))
}

// normalize returns a unit vector with the same direction as v. Unlike
// [mgl64.Vec3.Normalize] it doesn't produce NaNs for (nearly) zero vectors,
// instead returning the zero vector and false.
func normalize(v Point) (Point, bool) {
	const epsilon = 1e-12
	l2 := v.Dot(v)
	if l2 < epsilon*epsilon || math.IsNaN(l2) || math.IsInf(l2, 0) {
		return Point{}, false
	}
	return v.Mul(1.0 / math.Sqrt(l2)), true
}

func isNaN(p Point) bool {
	return math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsNaN(p[2])
}

func formatPoint(p Point) string {
	return fmt.Sprintf("(%g, %g, %g)", p[0], p[1], p[2])
}
