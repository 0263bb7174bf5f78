package skeleton

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"bvh-pose-merger/internal/bvh"
)

// Bone is the segment between a joint and one of its children in world space.
type Bone struct {
	Parent, Child *bvh.Joint
	From, To      mgl64.Vec3
}

// Bones returns one segment per parent/child edge, in node order.
func (p Pose) Bones(s *bvh.Skeleton) []Bone {
	bones := make([]Bone, 0, len(s.Nodes))
	for _, n := range s.Nodes {
		from := p.Position(n)
		for _, c := range n.Children {
			bones = append(bones, Bone{
				Parent: n,
				Child:  c,
				From:   from,
				To:     p.Position(c),
			})
		}
	}
	return bones
}

// Positions returns the world origin of every node, indexed by Joint.ID.
func (p Pose) Positions() []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(p.world))
	for i, w := range p.world {
		out[i] = w.Col(3).Vec3()
	}
	return out
}

// Bounds returns the axis-aligned box around all node positions.
func (p Pose) Bounds() (lo, hi mgl64.Vec3) {
	lo = mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range p.Positions() {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], v[k])
			hi[k] = math.Max(hi[k], v[k])
		}
	}
	return lo, hi
}
