package bones

// Hierarchy describes a transform hierarchy owned by the host, such as the
// scene graph of a game engine or the bone tree of a model. Nodes are
// identified by opaque handles of type N.
//
// All positions and rotations are expressed in a single common space, the
// working space, which is usually world space.
type Hierarchy[N comparable] interface {
	// Parent returns the parent of n, and false if n is a root.
	Parent(n N) (N, bool)
	// Position returns the position of n in working space.
	Position(n N) Point
	// Rotation returns the orientation of n in working space.
	Rotation(n N) Rotation
	// SetRotation sets the orientation of n in working space. This affects
	// the positions and rotations of all of n's descendants.
	SetRotation(n N, r Rotation)
	// TransformPoint transforms p from the local space of n to working space.
	TransformPoint(n N, p Point) Point
	// InverseTransformPoint transforms p from working space to the local space
	// of n.
	InverseTransformPoint(n N, p Point) Point
}
