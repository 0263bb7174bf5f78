package preview

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"
)

// LoadBackdrop reads a PNG, JPEG or TGA image. TGA carries no magic
// number, so it is selected by the .tga extension; everything else goes
// through the registered PNG and JPEG decoders.
func LoadBackdrop(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("preview: read %s: %w", path, err)
	}
	defer f.Close()

	img, err := decodeBackdrop(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("preview: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func decodeBackdrop(r io.Reader, ext string) (image.Image, error) {
	if strings.EqualFold(ext, ".tga") {
		return tga.Decode(r)
	}
	img, _, err := image.Decode(r)
	return img, err
}

// toNRGBA converts any image to NRGBA with its origin at 0,0.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// paintBackdrop scales bg over the whole frame buffer. Depth stays at -inf
// so every bone lands on top.
func paintBackdrop(fb *FrameBuffer, bg image.Image) {
	canvas := &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), bg, bg.Bounds(), draw.Src, nil)
}
