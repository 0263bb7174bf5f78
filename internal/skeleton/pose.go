package skeleton

import (
	"github.com/go-gl/mathgl/mgl64"

	"bvh-pose-merger/internal/bvh"
)

// Pose holds the world transform of every node of a skeleton for one frame.
// Matrices use column vectors: a point p in joint space maps to World(j)·p.
// Values are indexed by Joint.ID and never change after Evaluate returns.
type Pose struct {
	world []mgl64.Mat4
	local []mgl64.Quat
}

// Evaluate runs forward kinematics for one frame.
//
// Nodes are visited depth-first in declaration order, each consuming
// len(Channels) values from f in its own channel order. Position channels
// form the local translation t; rotation channels (degrees) are composed
// left to right into the local rotation q. A joint's world transform is
// P·T(t), where P is the transform handed down by its parent; each child
// receives P·T(t)·R(q)·T(child.Offset).
//
// The root's own OFFSET is never applied. f must hold at least
// s.ChannelCount values.
func Evaluate(s *bvh.Skeleton, f bvh.Frame) Pose {
	p := Pose{
		world: make([]mgl64.Mat4, len(s.Nodes)),
		local: make([]mgl64.Quat, len(s.Nodes)),
	}
	p.visit(s.Root, mgl64.Ident4(), f, 0)
	return p
}

// Rest evaluates the all-zero frame.
func Rest(s *bvh.Skeleton) Pose {
	return Evaluate(s, make(bvh.Frame, s.ChannelCount))
}

// visit fills in j and its subtree and returns the cursor past the values
// the subtree consumed.
func (p *Pose) visit(j *bvh.Joint, parent mgl64.Mat4, f bvh.Frame, cursor int) int {
	var t mgl64.Vec3
	q := mgl64.QuatIdent()
	for _, ch := range j.Channels {
		v := f[cursor]
		cursor++
		if ch.IsPosition() {
			t[ch.Axis()] = v
			continue
		}
		q = q.Mul(mgl64.QuatRotate(mgl64.DegToRad(v), ch.AxisVector()))
	}

	world := parent.Mul4(mgl64.Translate3D(t[0], t[1], t[2]))
	p.world[j.ID] = world
	p.local[j.ID] = q

	rotated := world.Mul4(q.Mat4())
	for _, c := range j.Children {
		cursor = p.visit(c, rotated.Mul4(mgl64.Translate3D(c.Offset[0], c.Offset[1], c.Offset[2])), f, cursor)
	}
	return cursor
}

// Len returns the number of nodes covered by the pose.
func (p Pose) Len() int {
	return len(p.world)
}

// World returns the world transform of j.
func (p Pose) World(j *bvh.Joint) mgl64.Mat4 {
	return p.world[j.ID]
}

// Position returns the world-space origin of j.
func (p Pose) Position(j *bvh.Joint) mgl64.Vec3 {
	return p.world[j.ID].Col(3).Vec3()
}

// Rotation returns the world orientation j inherits from its ancestors.
func (p Pose) Rotation(j *bvh.Joint) mgl64.Quat {
	return mgl64.Mat4ToQuat(p.world[j.ID]).Normalize()
}

// Local returns the rotation built from j's own rotation channels.
func (p Pose) Local(j *bvh.Joint) mgl64.Quat {
	return p.local[j.ID]
}
