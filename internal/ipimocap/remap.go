package ipimocap

import (
	"fmt"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/template"
)

// Remapper turns captured poses into frames of a target skeleton.
//
// Channels 0-2 hold the root translation. The rotation triple of joint i
// (its index in Skeleton.Joints) starts at 3+3*i and is written in reverse
// capture order, so captured X/Y/Z angles land on Z/Y/X rotation channels.
type Remapper struct {
	Skeleton        *bvh.Skeleton
	DefaultRoot     [3]float64
	UseCapturedRoot bool
}

// NewRemapper targets a template skeleton rooted at the T-pose height.
func NewRemapper(t *template.Template, useCapturedRoot bool) *Remapper {
	return &Remapper{
		Skeleton:        t.Skeleton(),
		DefaultRoot:     template.TPoseTranslation,
		UseCapturedRoot: useCapturedRoot,
	}
}

// Frame builds one frame from p. Bones absent from p, and missing trailing
// angles, are left at zero.
func (r *Remapper) Frame(p *PoseData) (bvh.Frame, error) {
	skel := r.Skeleton
	f := make(bvh.Frame, skel.ChannelCount)
	if len(f) < 3 {
		return nil, fmt.Errorf("ipimocap: skeleton has %d channels, need at least 3", len(f))
	}

	for _, j := range skel.Joints {
		id, ok := skel.Index(j.Name)
		if !ok {
			continue
		}
		base := 3 + 3*id
		if base+3 > len(f) {
			return nil, fmt.Errorf("ipimocap: joint %q at index %d exceeds %d channels", j.Name, id, len(f))
		}
		angles := p.Bones[j.Name]
		for i := 0; i < 3; i++ {
			if k := 2 - i; k < len(angles) {
				f[base+i] = angles[k]
			}
		}
	}

	root := r.DefaultRoot
	if r.UseCapturedRoot && p.RootTranslation != nil {
		root = *p.RootTranslation
	}
	copy(f, root[:])
	return f, nil
}

// Remap is NewRemapper(t, useCapturedRoot).Frame(p).
func Remap(t *template.Template, p *PoseData, useCapturedRoot bool) (bvh.Frame, error) {
	return NewRemapper(t, useCapturedRoot).Frame(p)
}
