package preview

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Downsample shrinks img to w x h with CatmullRom. Filtering runs on
// premultiplied pixels so transparent neighbours do not darken bone edges.
// Images already within bounds are returned as is.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	src := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			src.SetRGBA(x, y, color.RGBAModel.Convert(img.NRGBAAt(x, y)).(color.RGBA))
		}
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, b, draw.Src, nil)

	out := image.NewNRGBA(scaled.Bounds())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := scaled.RGBAAt(x, y)
			if c.A <= 1 {
				out.SetNRGBA(x, y, color.NRGBA{A: c.A})
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{
				R: unpremul(c.R, c.A),
				G: unpremul(c.G, c.A),
				B: unpremul(c.B, c.A),
				A: c.A,
			})
		}
	}
	return out
}

func unpremul(v, a uint8) uint8 {
	n := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if n > 255 {
		n = 255
	}
	return uint8(n)
}
