package bones

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Len(); !(d <= epsilon) {
		t.Fatalf("got %s, expected %s", formatPoint(p0), formatPoint(p1))
	}
}

// assertSameRotation checks that two quaternions describe the same rotation.
// q and -q are the same rotation.
func assertSameRotation(t *testing.T, got, want Rotation, epsilon float64) {
	t.Helper()
	if d := math.Abs(got.Normalize().Dot(want.Normalize())); !(math.Abs(1-d) <= epsilon) {
		t.Fatalf("got rotation %v, expected %v", got, want)
	}
}
