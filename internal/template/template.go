package template

import (
	"fmt"
	"strings"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/skeleton"
)

// TPoseTranslation is the root position written into generated frames.
// Retargeting in MotionBuilder expects the skeleton standing at this height.
var TPoseTranslation = [3]float64{0, 83, 0}

// Variant selects one of the built-in hierarchies.
type Variant string

const (
	Plain Variant = "plain"
	Dummy Variant = "dummy"
)

// Hierarchy returns the HIERARCHY section text of the variant.
func (v Variant) Hierarchy() (string, error) {
	switch v {
	case Plain, "":
		return PlainHierarchy, nil
	case Dummy:
		return DummyHierarchy, nil
	default:
		return "", fmt.Errorf("template: unknown variant %q", string(v))
	}
}

// Template is a parsed built-in skeleton. It is immutable once New returns
// and safe to share between goroutines.
type Template struct {
	variant   Variant
	hierarchy string
	skel      *bvh.Skeleton
	rest      skeleton.Pose
}

// New parses the variant's hierarchy and evaluates its rest pose.
func New(v Variant) (*Template, error) {
	h, err := v.Hierarchy()
	if err != nil {
		return nil, err
	}
	skel, _, err := bvh.ParseString(h)
	if err != nil {
		return nil, fmt.Errorf("template: parse %s hierarchy: %w", v, err)
	}
	if v == "" {
		v = Plain
	}
	return &Template{
		variant:   v,
		hierarchy: h,
		skel:      skel,
		rest:      skeleton.Rest(skel),
	}, nil
}

// Variant returns the variant the template was built from.
func (t *Template) Variant() Variant { return t.variant }

// Hierarchy returns the HIERARCHY section text, ending in a newline.
func (t *Template) Hierarchy() string { return t.hierarchy }

// Skeleton returns the parsed skeleton. Callers must not modify it.
func (t *Template) Skeleton() *bvh.Skeleton { return t.skel }

// ChannelCount is the number of values in every frame of the template.
func (t *Template) ChannelCount() int { return t.skel.ChannelCount }

// RestPose returns the pose of the all-zero frame.
func (t *Template) RestPose() skeleton.Pose { return t.rest }

// DummyFrame returns a frame holding the T-pose root translation and zero
// rotations everywhere.
func (t *Template) DummyFrame() bvh.Frame {
	f := make(bvh.Frame, t.skel.ChannelCount)
	copy(f, TPoseTranslation[:])
	return f
}

// ModelWithoutAngles returns the hierarchy followed by a MOTION header
// announcing frames frames. No frame lines are included.
func (t *Template) ModelWithoutAngles(frameTime float64, frames int) string {
	return t.hierarchy + bvh.MotionHeader(frameTime, frames)
}

// Model is ModelWithoutAngles plus the dummy frame as the first motion line.
func (t *Template) Model(frameTime float64, frames int) string {
	var sb strings.Builder
	sb.WriteString(t.ModelWithoutAngles(frameTime, frames))
	bvh.WriteFrame(&sb, t.DummyFrame())
	return sb.String()
}
