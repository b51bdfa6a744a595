// Package bones bends chains of rigid links, such as the bones of a skeleton,
// so that they follow Bézier curves.
//
// # Chains, curves, and rigs
//
// A [Chain] is a linear sequence of links captured from a transform hierarchy:
// a tip node and a number of its ancestors, up to the anchor. The pose of the
// hierarchy at the time of capture is the chain's rest pose.
//
// A [Bezier] describes a Bézier curve of arbitrary degree by its control
// polygon. Curves are evaluated with de Casteljau's algorithm; an [Evaluator]
// does so without allocating.
//
// A [Rig] ties the two together. Its curve starts at the chain's anchor, is
// shaped by any number of control points, and ends at a target. On every
// [Rig.Tick], each link is rotated so that it points at its own point on the
// curve. Points are assigned to links by cumulative squared segment length,
// which gives longer links a larger share of the curve.
//
// # Hierarchies
//
// This package doesn't own the hierarchy it operates on. Hosts provide it by
// implementing [Hierarchy] for their own node type, such as the transforms of
// a scene graph. Because the hierarchy may be restructured at any time,
// rigs validate their cached chains on every tick and recapture them as
// needed.
//
// [Skeleton] is a minimal implementation of [Hierarchy] for hosts that don't
// have one.
//
// # Degenerate geometry
//
// No function in this package returns errors. Requesting more links than a
// node has ancestors shortens the chain. Links of zero length, or curve points
// that coincide with a link's position, leave the link in its rest rotation
// instead of producing NaNs.
//
// # Math
//
// Vectors, quaternions, and matrices are those of [mgl64]. [Point] and
// [Rotation] are aliases for [mgl64.Vec3] and [mgl64.Quat].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [De Casteljau's algorithm]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [De Casteljau's algorithm]: https://en.wikipedia.org/wiki/De_Casteljau%27s_algorithm
// [mgl64]: https://pkg.go.dev/github.com/go-gl/mathgl/mgl64
package bones
