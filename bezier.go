package bones

import (
	"iter"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Evaluator evaluates Bézier curves given as control polygons. It owns a
// working buffer that is reused between evaluations and only reallocated when
// the length of the polygon changes.
//
// The zero value is ready to use. An Evaluator must not be used concurrently.
type Evaluator struct {
	work []Point
}

// Eval evaluates the Bézier curve with the control polygon polygon at
// parameter t, using de Casteljau's algorithm.
//
// t is not clamped. Values outside of [0, 1] extrapolate the curve, which for
// curves of degree two and higher is not the same as extending it linearly.
//
// A polygon consisting of a single point evaluates to that point for all t. An
// empty polygon evaluates to the zero point.
func (e *Evaluator) Eval(polygon []Point, t float64) Point {
	if len(polygon) == 0 {
		return Point{}
	}
	if len(e.work) != len(polygon) {
		e.work = make([]Point, len(polygon))
	}
	copy(e.work, polygon)
	for pass := len(e.work) - 1; pass > 0; pass-- {
		reduce(e.work, pass, t)
	}
	return e.work[0]
}

// reduce performs a single pass of de Casteljau's algorithm, replacing the
// first n points with the interpolations between them and their successors.
func reduce(pts []Point, n int, t float64) {
	for i := range n {
		pts[i] = lerp(pts[i], pts[i+1], t)
	}
}

// Bezier is a Bézier curve of arbitrary degree in 3D space, described by its
// control polygon. A curve with n control points has degree n-1.
//
// Methods of Bezier allocate. Use an [Evaluator] to repeatedly evaluate
// curves without allocating.
type Bezier struct {
	Points []Point
}

// Eval evaluates the curve at parameter t. See [Evaluator.Eval] for details.
func (b Bezier) Eval(t float64) Point {
	var e Evaluator
	return e.Eval(b.Points, t)
}

// Start returns the curve's start point, the first point of the control
// polygon.
func (b Bezier) Start() Point {
	if len(b.Points) == 0 {
		return Point{}
	}
	return b.Points[0]
}

// End returns the curve's end point, the last point of the control polygon.
func (b Bezier) End() Point {
	if len(b.Points) == 0 {
		return Point{}
	}
	return b.Points[len(b.Points)-1]
}

// Degree returns the curve's degree. The degree of an empty curve is -1.
func (b Bezier) Degree() int {
	return len(b.Points) - 1
}

// Subdivide splits the curve at t into two curves of the same degree. The
// first covers the parameter range [0, t], the second covers [t, 1].
func (b Bezier) Subdivide(t float64) (Bezier, Bezier) {
	n := len(b.Points)
	if n == 0 {
		return Bezier{}, Bezier{}
	}
	work := make([]Point, n)
	copy(work, b.Points)
	left := make([]Point, n)
	right := make([]Point, n)
	left[0] = work[0]
	right[n-1] = work[n-1]
	for pass := n - 1; pass > 0; pass-- {
		reduce(work, pass, t)
		// After reducing, the pass-th level of the triangle is work[:pass].
		left[n-pass] = work[0]
		right[pass-1] = work[pass-1]
	}
	return Bezier{left}, Bezier{right}
}

// Differentiate returns the curve's hodograph, the Bézier curve of one degree
// less that evaluates to the derivative of b. The points of the returned curve
// are to be interpreted as vectors.
func (b Bezier) Differentiate() Bezier {
	n := len(b.Points) - 1
	if n < 1 {
		return Bezier{[]Point{{}}}
	}
	out := make([]Point, n)
	for i := range out {
		out[i] = b.Points[i+1].Sub(b.Points[i]).Mul(float64(n))
	}
	return Bezier{out}
}

// Tangent returns the derivative of the curve at t.
func (b Bezier) Tangent(t float64) Point {
	return b.Differentiate().Eval(t)
}

// Samples returns an iterator over n points of the curve, evaluated at evenly
// spaced parameters from 0 to 1 inclusive. A single sample is the curve's
// start point.
func (b Bezier) Samples(n int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if n <= 0 {
			return
		}
		var e Evaluator
		if n == 1 {
			yield(e.Eval(b.Points, 0))
			return
		}
		step := 1.0 / float64(n-1)
		for i := range n {
			t := step * float64(i)
			if i == n-1 {
				t = 1
			}
			if !yield(e.Eval(b.Points, t)) {
				return
			}
		}
	}
}

// Transform returns the curve with the affine transformation m applied to all
// of its control points. Bézier curves are invariant under affine
// transformations, so this is the same as transforming all points on the
// curve.
func (b Bezier) Transform(m mgl64.Mat4) Bezier {
	out := make([]Point, len(b.Points))
	for i, p := range b.Points {
		out[i] = mgl64.TransformCoordinate(p, m)
	}
	return Bezier{out}
}

func (b Bezier) String() string {
	var sb strings.Builder
	sb.WriteString("Bezier{")
	for i, p := range b.Points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(formatPoint(p))
	}
	sb.WriteString("}")
	return sb.String()
}
