package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	planeLeft = iota
	planeRight
	planeBottom
	planeTop
	planeNear
	planeFar
)

type plane struct {
	a, b, c, d float64
}

func (p plane) distance(v mgl64.Vec3) float64 {
	return p.a*v[0] + p.b*v[1] + p.c*v[2] + p.d
}

// Frustum is a camera-space view volume. The eye sits at the origin looking
// down -Z, as in OpenGL.
type Frustum struct {
	width, height float64
	near          float64
	proj          mgl64.Mat4
	planes        [6]plane
}

// NewFrustum builds a frustum for a viewport of width x height pixels and a
// vertical field of view in degrees.
func NewFrustum(width, height, fovDeg, near, far float64) *Frustum {
	proj := mgl64.Perspective(mgl64.DegToRad(fovDeg), width/height, near, far)
	return &Frustum{
		width:  width,
		height: height,
		near:   near,
		proj:   proj,
		planes: extractFrustumPlanes(proj),
	}
}

// Projection returns the finite projection matrix the planes were built from.
func (f *Frustum) Projection() mgl64.Mat4 {
	return f.proj
}

// extractFrustumPlanes builds six planes from the projection matrix.
// Planes are returned in order: left, right, bottom, top, near, far.
func extractFrustumPlanes(clip mgl64.Mat4) [6]plane {
	// Matrix is in column-major order in mgl64
	m00, m01, m02, m03 := clip[0], clip[4], clip[8], clip[12]
	m10, m11, m12, m13 := clip[1], clip[5], clip[9], clip[13]
	m20, m21, m22, m23 := clip[2], clip[6], clip[10], clip[14]
	m30, m31, m32, m33 := clip[3], clip[7], clip[11], clip[15]

	var pl [6]plane
	pl[planeLeft] = normalizePlane(plane{m30 + m00, m31 + m01, m32 + m02, m33 + m03})
	pl[planeRight] = normalizePlane(plane{m30 - m00, m31 - m01, m32 - m02, m33 - m03})
	pl[planeBottom] = normalizePlane(plane{m30 + m10, m31 + m11, m32 + m12, m33 + m13})
	pl[planeTop] = normalizePlane(plane{m30 - m10, m31 - m11, m32 - m12, m33 - m13})
	pl[planeNear] = normalizePlane(plane{m30 + m20, m31 + m21, m32 + m22, m33 + m23})
	pl[planeFar] = normalizePlane(plane{m30 - m20, m31 - m21, m32 - m22, m33 - m23})
	return pl
}

func normalizePlane(p plane) plane {
	l := math.Sqrt(p.a*p.a + p.b*p.b + p.c*p.c)
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// TestPoint reports whether a sphere at p with the given radius is at least
// partly inside all six planes.
func (f *Frustum) TestPoint(p mgl64.Vec3, radius float64) bool {
	for i := range f.planes {
		if f.planes[i].distance(p)+radius < 0 {
			return false
		}
	}
	return true
}

// TestPointInfinite is TestPoint without the far plane.
func (f *Frustum) TestPointInfinite(p mgl64.Vec3, radius float64) bool {
	for i := planeLeft; i < planeFar; i++ {
		if f.planes[i].distance(p)+radius < 0 {
			return false
		}
	}
	return true
}

// TranslatePoint projects a camera-space point to window coordinates: X and Y
// in pixels from the bottom-left corner, Z the depth in [0,1] under the
// infinite-far projection bodies are drawn with. Points at or behind the eye
// plane have no projection and yield ok == false.
func (f *Frustum) TranslatePoint(p mgl64.Vec3) (win mgl64.Vec3, ok bool) {
	clip := f.proj.Mul4x1(p.Vec4(1))
	w := clip[3]
	if w <= 1e-12 {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{
		(clip[0]/w + 1) * 0.5 * f.width,
		(clip[1]/w + 1) * 0.5 * f.height,
		mgl64.Clamp(1-f.near/w, 0, 1),
	}, true
}

// InfinitePerspective is a perspective projection with the far plane at
// infinity, suitable for astronomical depth ranges.
func InfinitePerspective(fovyRad, aspect, near float32) mgl32.Mat4 {
	f := 1 / float32(math.Tan(float64(fovyRad)/2))
	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -1, -1,
		0, 0, -2 * near, 0,
	}
}

// FovFactor converts a field of view in degrees into the screen-height
// scaling used for apparent-size estimates.
func FovFactor(fovDeg float64) float64 {
	return 2 * math.Tan(mgl64.DegToRad(fovDeg)/2)
}
