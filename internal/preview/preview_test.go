package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bvh-pose-merger/internal/bvh"
	"bvh-pose-merger/internal/skeleton"
)

const stickDoc = `HIERARCHY
ROOT Hip
{
	OFFSET 0 0 0
	CHANNELS 6 Xposition Yposition Zposition Zrotation Xrotation Yrotation
	JOINT Spine
	{
		OFFSET 0 10 0
		CHANNELS 3 Zrotation Xrotation Yrotation
		End Site
		{
			OFFSET 0 10 0
		}
	}
}
`

func stick(t *testing.T) (*bvh.Skeleton, skeleton.Pose) {
	t.Helper()
	skel, _, err := bvh.ParseString(stickDoc)
	require.NoError(t, err)
	return skel, skeleton.Rest(skel)
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestViewMatrix(t *testing.T) {
	m, ident := ViewMatrix(0, 0), mgl64.Ident3()
	assert.InDeltaSlice(t, ident[:], m[:], 1e-12)

	// yaw 90 brings +X onto -Z
	v := ViewMatrix(90, 0).Mul3x1(mgl64.Vec3{1, 0, 0})
	assert.InDeltaSlice(t, []float64{0, 0, -1}, v[:], 1e-12, "%v", v)

	// pitch 90 brings +Y onto +Z
	v = ViewMatrix(0, 90).Mul3x1(mgl64.Vec3{0, 1, 0})
	assert.InDeltaSlice(t, []float64{0, 0, 1}, v[:], 1e-12, "%v", v)
}

func TestFit(t *testing.T) {
	p := fit([]mgl64.Vec3{{0, 0, 0}, {0, 20, 0}}, 100, 0.8)
	assert.Equal(t, 4.0, p.scale)

	x, y, _ := p.apply(mgl64.Vec3{0, 20, 0})
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
	x, y, _ = p.apply(mgl64.Vec3{0, 0, 0})
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 90, y, 1e-9)

	// degenerate input does not divide by zero
	p = fit([]mgl64.Vec3{{1, 1, 1}}, 100, 0.8)
	assert.False(t, math.IsInf(p.scale, 0))
}

func TestFrameBufferDepth(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	fb.Plot(1, 1, 0, red)
	fb.Plot(1, 1, -1, blue) // farther, rejected
	assert.Equal(t, red, fb.Image().NRGBAAt(1, 1))
	fb.Plot(1, 1, 1, blue)
	assert.Equal(t, blue, fb.Image().NRGBAAt(1, 1))

	fb.Plot(-1, 0, 5, blue)
	fb.Plot(4, 4, 5, blue)
	assert.Equal(t, color.NRGBA{}, fb.Image().NRGBAAt(0, 0))
}

func TestRender(t *testing.T) {
	skel, pose := stick(t)
	img := Render(skel, pose, Options{Size: 64, Supersample: 2, FillRatio: 0.8})
	require.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	// corners stay transparent, the vertical stick crosses the center column
	assert.Equal(t, uint8(0), img.NRGBAAt(0, 0).A)
	assert.Equal(t, uint8(0), img.NRGBAAt(63, 63).A)
	assert.Greater(t, img.NRGBAAt(32, 32).A, uint8(128))
	assert.Equal(t, uint8(0), img.NRGBAAt(5, 32).A)
}

func TestRenderDefaults(t *testing.T) {
	skel, pose := stick(t)
	img := Render(skel, pose, Options{})
	assert.Equal(t, image.Rect(0, 0, 256, 256), img.Bounds())
}

func TestRenderBackdrop(t *testing.T) {
	skel, pose := stick(t)
	green := color.NRGBA{G: 255, A: 255}
	img := Render(skel, pose, Options{Size: 32, Supersample: 2, Backdrop: solid(8, 8, green)})

	c := img.NRGBAAt(0, 0)
	assert.InDelta(t, 0, float64(c.R), 2)
	assert.InDelta(t, 255, float64(c.G), 2)
	assert.InDelta(t, 255, float64(c.A), 2)
}

func TestDownsample(t *testing.T) {
	src := solid(8, 8, color.NRGBA{R: 255, A: 255})
	assert.Same(t, src, Downsample(src, 8, 8))

	dst := Downsample(src, 4, 2)
	require.Equal(t, image.Rect(0, 0, 4, 2), dst.Bounds())
	c := dst.NRGBAAt(2, 1)
	assert.InDelta(t, 255, float64(c.R), 2)
	assert.InDelta(t, 255, float64(c.A), 2)
}

func TestLoadBackdrop(t *testing.T) {
	dir := t.TempDir()
	src := solid(6, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	pngPath := filepath.Join(dir, "bg.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))
	require.NoError(t, os.WriteFile(pngPath, buf.Bytes(), 0644))

	img, err := LoadBackdrop(pngPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 4), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(3, 2))

	jpgPath := filepath.Join(dir, "bg.jpg")
	buf.Reset()
	require.NoError(t, jpeg.Encode(&buf, src, nil))
	require.NoError(t, os.WriteFile(jpgPath, buf.Bytes(), 0644))
	img, err = LoadBackdrop(jpgPath)
	require.NoError(t, err)
	assert.Equal(t, uint8(255), img.NRGBAAt(0, 0).A)

	// uncompressed true-colour TGA, 24 bits, top-left origin, BGR pixels
	tgaData := []byte{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3, 0, 2, 0, 24, 0x20}
	for i := 0; i < 3*2; i++ {
		tgaData = append(tgaData, 30, 20, 10)
	}
	tgaPath := filepath.Join(dir, "bg.tga")
	require.NoError(t, os.WriteFile(tgaPath, tgaData, 0644))
	img, err = LoadBackdrop(tgaPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(1, 1))

	// PNG bytes behind a .tga name go to the TGA decoder and fail
	misnamed := filepath.Join(dir, "png.tga")
	require.NoError(t, os.WriteFile(misnamed, mustPNG(t, src), 0644))
	_, err = LoadBackdrop(misnamed)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bg.txt")
	require.NoError(t, os.WriteFile(bad, []byte("not an image"), 0644))
	_, err = LoadBackdrop(bad)
	assert.Error(t, err)

	_, err = LoadBackdrop(filepath.Join(dir, "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func mustPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestEncode(t *testing.T) {
	skel, pose := stick(t)
	img := Render(skel, pose, Options{Size: 16})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	data := buf.Bytes()
	require.Greater(t, len(data), 12)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WEBP", string(data[8:12]))

	path := filepath.Join(t.TempDir(), "out.webp")
	require.NoError(t, WriteFile(path, img))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), info.Size())
}
