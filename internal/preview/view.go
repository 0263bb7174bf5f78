package preview

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ViewMatrix turns the model by yaw degrees about +Y, then tilts it by pitch
// degrees about +X. The camera looks down -Z.
func ViewMatrix(yaw, pitch float64) mgl64.Mat3 {
	return mgl64.Rotate3DX(mgl64.DegToRad(pitch)).Mul3(mgl64.Rotate3DY(mgl64.DegToRad(yaw)))
}

// projection maps view-space points onto a square canvas.
type projection struct {
	center mgl64.Vec3
	scale  float64
	half   float64
}

// fit centers the xy bounding box of pts and scales its larger side to
// fill of size pixels.
func fit(pts []mgl64.Vec3, size int, fill float64) projection {
	lo := mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	if len(pts) == 0 {
		lo, hi = mgl64.Vec3{}, mgl64.Vec3{}
	}

	span := math.Max(hi[0]-lo[0], hi[1]-lo[1])
	if span < 0.001 {
		span = 0.001
	}
	return projection{
		center: lo.Add(hi).Mul(0.5),
		scale:  float64(size) * fill / span,
		half:   float64(size) / 2,
	}
}

// apply returns pixel coordinates (y down) and depth.
func (p projection) apply(v mgl64.Vec3) (x, y, z float64) {
	x = (v[0]-p.center[0])*p.scale + p.half
	y = p.half - (v[1]-p.center[1])*p.scale
	return x, y, v[2]
}
