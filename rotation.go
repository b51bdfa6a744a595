package bones

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotation is a unit quaternion describing an orientation or a change of
// orientation.
type Rotation = mgl64.Quat

// Identity is the rotation that doesn't rotate.
var Identity = mgl64.QuatIdent()

// FromToRotation returns the shortest-arc rotation that rotates the direction
// from onto the direction to. Neither vector has to be normalized.
//
// If either vector has zero length there is no meaningful direction and the
// identity rotation is returned. If the directions are exactly opposite, the
// rotation is a half turn about an arbitrary axis perpendicular to from.
func FromToRotation(from, to Point) Rotation {
	f, ok := normalize(from)
	if !ok {
		return mgl64.QuatIdent()
	}
	d, ok := normalize(to)
	if !ok {
		return mgl64.QuatIdent()
	}

	// (1 + f·d, f×d) is the rotation from f onto d scaled by 2cos(θ/2). It
	// stays accurate right up to opposite directions.
	const epsilon = 1e-12
	w := 1 + f.Dot(d)
	if w < epsilon {
		axis := Pt(1, 0, 0).Cross(f)
		if axis.Dot(axis) < 1e-6 {
			axis = Pt(0, 1, 0).Cross(f)
		}
		axis, _ = normalize(axis)
		return mgl64.Quat{W: 0, V: axis}
	}
	q := mgl64.Quat{W: w, V: f.Cross(d)}.Normalize()
	if isNaN(q.V) || math.IsNaN(q.W) {
		return mgl64.QuatIdent()
	}
	return q
}
