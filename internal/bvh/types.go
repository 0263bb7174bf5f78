package bvh

import "github.com/go-gl/mathgl/mgl64"

// Channel is one animated degree of freedom declared by CHANNELS.
type Channel uint8

const (
	XPosition Channel = iota
	YPosition
	ZPosition
	XRotation
	YRotation
	ZRotation
)

var channelNames = [...]string{
	XPosition: "Xposition",
	YPosition: "Yposition",
	ZPosition: "Zposition",
	XRotation: "Xrotation",
	YRotation: "Yrotation",
	ZRotation: "Zrotation",
}

// String returns the channel keyword as written in a BVH file.
func (c Channel) String() string {
	if int(c) < len(channelNames) {
		return channelNames[c]
	}
	return "Channel(?)"
}

// ParseChannel maps a BVH channel keyword to a Channel.
func ParseChannel(s string) (Channel, bool) {
	for i, name := range channelNames {
		if name == s {
			return Channel(i), true
		}
	}
	return 0, false
}

// IsPosition reports whether c is one of the three translation channels.
func (c Channel) IsPosition() bool {
	return c <= ZPosition
}

// Axis returns 0, 1 or 2 for X, Y or Z.
func (c Channel) Axis() int {
	return int(c) % 3
}

// AxisVector returns the unit vector of the channel's axis.
func (c Channel) AxisVector() mgl64.Vec3 {
	var v mgl64.Vec3
	v[c.Axis()] = 1
	return v
}

// EndSiteName is the name every leaf joint carries once its block closes.
const EndSiteName = "End Site"

// Joint is a node of the skeleton tree. Children are owned by their parent.
type Joint struct {
	ID       int // index into Skeleton.Nodes
	Name     string
	Offset   mgl64.Vec3
	Channels []Channel
	Children []*Joint
	IsRoot   bool
}

// IsEndSite reports whether the joint is a leaf.
func (j *Joint) IsEndSite() bool {
	return len(j.Children) == 0
}

// Skeleton owns the joint tree plus index-based lookups into it.
type Skeleton struct {
	Root *Joint

	// Joints lists ROOT and every JOINT in declaration order. End sites are
	// not addressable and never appear here.
	Joints []*Joint

	// Nodes lists every node, end sites included, in declaration pre-order.
	Nodes []*Joint

	NameToIndex  map[string]int // name -> index into Joints, last duplicate wins
	ChannelCount int
}

// Index returns the position of the named joint in Joints.
func (s *Skeleton) Index(name string) (int, bool) {
	i, ok := s.NameToIndex[name]
	return i, ok
}

// Lookup returns the named addressable joint.
func (s *Skeleton) Lookup(name string) (*Joint, bool) {
	i, ok := s.NameToIndex[name]
	if !ok {
		return nil, false
	}
	return s.Joints[i], true
}

// Parent returns the parent of the node with the given ID, or nil for the root.
func (s *Skeleton) Parent(id int) *Joint {
	for _, n := range s.Nodes {
		for _, c := range n.Children {
			if c.ID == id {
				return n
			}
		}
	}
	return nil
}

// Frame is one time sample: a flat vector of channel values.
type Frame []float64

// Motion holds the decoded MOTION section.
type Motion struct {
	FrameTime float64 // seconds per frame
	Frames    []Frame
}

// Len returns the number of frames. A nil Motion has none.
func (m *Motion) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Frames)
}

// Frame returns frame i, or false if out of range.
func (m *Motion) Frame(i int) (Frame, bool) {
	if m == nil || i < 0 || i >= len(m.Frames) {
		return nil, false
	}
	return m.Frames[i], true
}
