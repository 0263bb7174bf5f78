// Package preview draws a posed skeleton as a stick figure.
package preview

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/skeleton"
)

// Options controls Render. Zero values fall back to the defaults below.
type Options struct {
	Size        int
	Supersample int
	Yaw         float64 // degrees
	Pitch       float64 // degrees
	FillRatio   float64
	Backdrop    image.Image
}

var (
	boneColor  = color.NRGBA{R: 200, G: 200, B: 210, A: 255}
	jointColor = color.NRGBA{R: 230, G: 90, B: 60, A: 255}
	rootColor  = color.NRGBA{R: 60, G: 140, B: 230, A: 255}
)

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 256
	}
	if o.Supersample <= 0 {
		o.Supersample = 1
	}
	if o.FillRatio <= 0 || o.FillRatio > 1 {
		o.FillRatio = 0.8
	}
	return o
}

// Render draws every bone of pose as a thick segment and every joint as a
// disc, on an optional backdrop. The result is Size x Size.
func Render(s *bvh.Skeleton, pose skeleton.Pose, opts Options) *image.NRGBA {
	opts = opts.withDefaults()
	renderSize := opts.Size * opts.Supersample

	fb := NewFrameBuffer(renderSize, renderSize)
	if opts.Backdrop != nil {
		paintBackdrop(fb, opts.Backdrop)
	}

	R := ViewMatrix(opts.Yaw, opts.Pitch)
	world := pose.Positions()
	view := make([]mgl64.Vec3, len(world))
	for i, p := range world {
		view[i] = R.Mul3x1(p)
	}
	proj := fit(view, renderSize, opts.FillRatio)

	ss := float64(opts.Supersample)
	boneR := 1.5 * ss
	jointR := 3 * ss

	for _, b := range pose.Bones(s) {
		ax, ay, az := proj.apply(view[b.Parent.ID])
		bx, by, bz := proj.apply(view[b.Child.ID])
		fb.Segment(ax, ay, az, bx, by, bz, boneR, boneColor)
	}
	for _, n := range s.Nodes {
		x, y, z := proj.apply(view[n.ID])
		switch {
		case n == s.Root:
			// nudge forward so the root disc wins over its bones
			fb.Disc(x, y, jointR*1.3, z+1e-6, rootColor)
		case n.IsEndSite():
			fb.Disc(x, y, boneR*1.2, z+1e-6, jointColor)
		default:
			fb.Disc(x, y, jointR, z+1e-6, jointColor)
		}
	}

	img := fb.Image()
	if opts.Supersample > 1 {
		img = Downsample(img, opts.Size, opts.Size)
	}
	return img
}
