package bones

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var _ Hierarchy[int] = (*Skeleton)(nil)

// NoParent is the parent index of root joints.
const NoParent = -1

// Joint is a node of a [Skeleton]. Its transform is relative to its parent.
// Note that the zero value of Scale collapses the joint; [Skeleton.Add] uses
// a scale of one.
type Joint struct {
	Parent   int
	Position Point
	Rotation Rotation
	Scale    Point
}

// Skeleton is a simple in-memory transform hierarchy. Joints are stored in a
// flat slice and referred to by their index; parents are referred to by index
// as well.
//
// Skeleton implements [Hierarchy] with world space as the working space. It
// is meant for hosts without a scene graph of their own and for testing. A
// Skeleton must not be used concurrently.
//
// Rotations compose the joints' quaternions and ignore scale. Non-uniform or
// negative scales shear or mirror the world basis, which no quaternion can
// describe; positions and points are still transformed exactly.
type Skeleton struct {
	Joints []Joint
}

// Add adds a joint with the given parent, local position and local rotation,
// and unit scale. It returns the index of the new joint. Use [NoParent] to
// add a root.
func (s *Skeleton) Add(parent int, pos Point, rot Rotation) int {
	if parent != NoParent {
		s.check(parent)
	}
	s.Joints = append(s.Joints, Joint{
		Parent:   parent,
		Position: pos,
		Rotation: rot,
		Scale:    Pt(1, 1, 1),
	})
	return len(s.Joints) - 1
}

// Len returns the number of joints.
func (s *Skeleton) Len() int {
	return len(s.Joints)
}

// SetParent reparents joint n. The joint's local transform is kept, which
// means that it moves in world space along with its new parent.
//
// SetParent panics if the change would introduce a cycle.
func (s *Skeleton) SetParent(n, parent int) {
	s.check(n)
	if parent != NoParent {
		s.check(parent)
		for p := parent; p != NoParent; p = s.Joints[p].Parent {
			if p == n {
				panic(fmt.Sprintf("bones: making %d the parent of %d would introduce a cycle", parent, n))
			}
		}
	}
	s.Joints[n].Parent = parent
}

// SetLocalPosition sets the position of n relative to its parent.
func (s *Skeleton) SetLocalPosition(n int, pos Point) {
	s.check(n)
	s.Joints[n].Position = pos
}

// SetLocalRotation sets the rotation of n relative to its parent.
func (s *Skeleton) SetLocalRotation(n int, rot Rotation) {
	s.check(n)
	s.Joints[n].Rotation = rot
}

// SetLocalScale sets the scale of n relative to its parent.
func (s *Skeleton) SetLocalScale(n int, scale Point) {
	s.check(n)
	s.Joints[n].Scale = scale
}

func (s *Skeleton) Parent(n int) (int, bool) {
	s.check(n)
	p := s.Joints[n].Parent
	return p, p != NoParent
}

func (s *Skeleton) Position(n int) Point {
	return s.World(n).Col(3).Vec3()
}

// Rotation returns the world rotation of n, the product of the local rotations
// from the root down to n. Scale is not part of it: the result matches the
// basis of [Skeleton.World] only as long as every scale along the way is
// uniform and positive.
func (s *Skeleton) Rotation(n int) Rotation {
	s.check(n)
	j := s.Joints[n]
	if j.Parent == NoParent {
		return j.Rotation
	}
	return s.Rotation(j.Parent).Mul(j.Rotation)
}

// SetRotation sets the local rotation of n so that [Skeleton.Rotation]
// returns r. The same restriction on scale applies.
func (s *Skeleton) SetRotation(n int, r Rotation) {
	s.check(n)
	j := &s.Joints[n]
	if j.Parent == NoParent {
		j.Rotation = r
		return
	}
	j.Rotation = s.Rotation(j.Parent).Inverse().Mul(r).Normalize()
}

func (s *Skeleton) TransformPoint(n int, p Point) Point {
	return mgl64.TransformCoordinate(p, s.World(n))
}

func (s *Skeleton) InverseTransformPoint(n int, p Point) Point {
	return mgl64.TransformCoordinate(p, s.World(n).Inv())
}

// World returns the matrix that transforms points from the local space of n
// to world space.
func (s *Skeleton) World(n int) mgl64.Mat4 {
	s.check(n)
	j := s.Joints[n]
	local := mgl64.Translate3D(j.Position[0], j.Position[1], j.Position[2]).
		Mul4(j.Rotation.Mat4()).
		Mul4(mgl64.Scale3D(j.Scale[0], j.Scale[1], j.Scale[2]))
	if j.Parent == NoParent {
		return local
	}
	return s.World(j.Parent).Mul4(local)
}

func (s *Skeleton) check(n int) {
	if n < 0 || n >= len(s.Joints) {
		panic(fmt.Sprintf("bones: joint %d out of range [0, %d)", n, len(s.Joints)))
	}
}
