package preview

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a transparent color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float64, n)
	for i := range zbuf {
		zbuf[i] = math.Inf(-1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// Plot writes c at (x, y) when z is nearer than what is already there.
func (fb *FrameBuffer) Plot(x, y int, z float64, c color.NRGBA) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if z <= fb.ZBuf[i] {
		return
	}
	fb.ZBuf[i] = z
	fb.Color[i*4] = c.R
	fb.Color[i*4+1] = c.G
	fb.Color[i*4+2] = c.B
	fb.Color[i*4+3] = c.A
}

// Disc fills a circle of radius r around (cx, cy) at constant depth z.
func (fb *FrameBuffer) Disc(cx, cy, r, z float64, c color.NRGBA) {
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				fb.Plot(x, y, z, c)
			}
		}
	}
}

// Segment draws a line of half-width r from a to b, interpolating depth.
func (fb *FrameBuffer) Segment(ax, ay, az, bx, by, bz, r float64, c color.NRGBA) {
	steps := int(math.Ceil(math.Hypot(bx-ax, by-ay) * 2))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		fb.Disc(ax+(bx-ax)*t, ay+(by-ay)*t, r, az+(bz-az)*t, c)
	}
}

// Image copies the color buffer into an NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
