package bones

import "slices"

// Settings are the user-authored parameters of a [Rig]. They are owned and
// persisted by the host.
type Settings struct {
	// Links is the number of links to bend. It is reduced automatically when
	// the tip doesn't have enough ancestors.
	Links int
	// Controls are the intermediate control points of the curve, in the local
	// space of the anchor's parent.
	Controls []Point
	// Target is the end point of the curve, in the local space of the
	// anchor's parent.
	Target Point
	// Enabled controls whether [Rig.Tick] modifies the hierarchy.
	Enabled bool
}

// Rig bends a chain of links so that it follows a Bézier curve. The curve
// starts at the chain's anchor, passes near the control points, and ends at
// the target.
//
// Each link aims at the point of the curve at the link's weight (see
// [Chain]), so that longer links cover proportionally more of the curve.
//
// Control points and the target are stored relative to the anchor's parent,
// so that the curve moves along with the rest of the hierarchy. If the anchor
// has no parent, they are in working space.
//
// A Rig must not be used concurrently.
type Rig[N comparable] struct {
	Settings

	h     Hierarchy[N]
	tip   N
	chain Chain[N]

	polygon []Point
	eval    Evaluator
}

// NewRig returns a rig for the chain ending in tip.
func NewRig[N comparable](h Hierarchy[N], tip N, s Settings) *Rig[N] {
	return &Rig[N]{
		Settings: s,
		h:        h,
		tip:      tip,
	}
}

// Chain returns the rig's chain. It is only valid after a call to
// [Rig.Refresh] or [Rig.Tick] and until the hierarchy is modified.
func (r *Rig[N]) Chain() *Chain[N] {
	return &r.chain
}

// Refresh captures the chain again if the hierarchy has been restructured or
// the number of links has changed. It returns the number of links, which is
// also stored in Settings.Links.
func (r *Rig[N]) Refresh() int {
	if r.chain.NeedsReinit(r.h, r.tip, r.Links) {
		r.Links = r.chain.Init(r.h, r.tip, r.Links)
	}
	return r.chain.Len()
}

// Tick bends the chain along the curve. It does nothing if the rig isn't
// enabled. Tick reports whether rotations were written to the hierarchy.
func (r *Rig[N]) Tick() bool {
	if !r.Enabled {
		return false
	}
	if r.Refresh() == 0 {
		return false
	}
	r.updatePolygon()
	for i, node := range r.chain.Nodes[:r.chain.Len()] {
		onCurve := r.eval.Eval(r.polygon, r.chain.Weights[i])
		dir := onCurve.Sub(r.h.Position(node))
		offset := FromToRotation(r.chain.RestDirections[i], dir)
		r.h.SetRotation(node, offset.Mul(r.chain.RestRotations[i]))
	}
	return true
}

// Polygon returns the curve's control polygon in working space: the anchor's
// position, the control points, and the target. The returned slice is reused
// by the rig and only valid until the next call to Polygon or Tick.
func (r *Rig[N]) Polygon() []Point {
	r.Refresh()
	r.updatePolygon()
	return r.polygon
}

// Curve returns the curve in working space.
func (r *Rig[N]) Curve() Bezier {
	return Bezier{slices.Clone(r.Polygon())}
}

func (r *Rig[N]) updatePolygon() {
	if n := len(r.Controls) + 2; len(r.polygon) != n {
		r.polygon = make([]Point, n)
	}
	anchor := r.chain.Anchor()
	r.polygon[0] = r.h.Position(anchor)
	for i, c := range r.Controls {
		r.polygon[i+1] = toWorking(r.h, anchor, c)
	}
	r.polygon[len(r.polygon)-1] = toWorking(r.h, anchor, r.Target)
}

// ToWorking transforms p from the local space of the anchor's parent to
// working space.
func (r *Rig[N]) ToWorking(p Point) Point {
	r.Refresh()
	return toWorking(r.h, r.chain.Anchor(), p)
}

// FromWorking transforms p from working space to the local space of the
// anchor's parent.
func (r *Rig[N]) FromWorking(p Point) Point {
	r.Refresh()
	return fromWorking(r.h, r.chain.Anchor(), p)
}

func toWorking[N comparable](h Hierarchy[N], anchor N, p Point) Point {
	if parent, ok := h.Parent(anchor); ok {
		return h.TransformPoint(parent, p)
	}
	return p
}

func fromWorking[N comparable](h Hierarchy[N], anchor N, p Point) Point {
	if parent, ok := h.Parent(anchor); ok {
		return h.InverseTransformPoint(parent, p)
	}
	return p
}

// SetControl moves control point i to the working space position p.
func (r *Rig[N]) SetControl(i int, p Point) {
	r.Controls[i] = r.FromWorking(p)
}

// SetTarget moves the target to the working space position p.
func (r *Rig[N]) SetTarget(p Point) {
	r.Target = r.FromWorking(p)
}

// SetLinks changes the number of links and returns the number of links the
// chain actually has.
//
// Changing the number of links changes the anchor and thus the space the
// control points and target are stored in. SetLinks converts them to the new
// space so that they stay in place.
func (r *Rig[N]) SetLinks(n int) int {
	r.Refresh()
	oldAnchor := r.chain.Anchor()
	count := CountLinks(r.h, r.tip, n)
	if count == r.chain.Len() {
		r.Links = count
		return count
	}
	r.Links = r.chain.Init(r.h, r.tip, count)
	newAnchor := r.chain.Anchor()

	rebase := func(p Point) Point {
		return fromWorking(r.h, newAnchor, toWorking(r.h, oldAnchor, p))
	}
	r.Target = rebase(r.Target)
	for i, c := range r.Controls {
		r.Controls[i] = rebase(c)
	}
	return r.Links
}

// InsertControl inserts a new control point at index i, which must be in the
// range [0, len(r.Controls)]. The new point is placed halfway between its
// neighbours. When appending, its neighbours are the last control point and
// the target; when inserting at the front, the new point is placed halfway
// between the origin of the anchor's parent and the current first control
// point.
func (r *Rig[N]) InsertControl(i int) {
	var pos Point
	switch {
	case i == len(r.Controls) && i > 0:
		pos = r.Controls[i-1].Add(r.Target).Mul(0.5)
	case i == len(r.Controls):
		pos = r.Target.Mul(0.5)
	case i > 0:
		pos = r.Controls[i-1].Add(r.Controls[i]).Mul(0.5)
	default:
		pos = r.Controls[i].Mul(0.5)
	}
	r.Controls = slices.Insert(r.Controls, i, pos)
}

// RemoveControl removes the control point at index i.
func (r *Rig[N]) RemoveControl(i int) {
	r.Controls = slices.Delete(r.Controls, i, i+1)
}
