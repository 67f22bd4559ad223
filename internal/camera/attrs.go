package camera

import (
	"cmp"

	"orrery/internal/graphics"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// BodyAttrs is the per-frame draw decision for one body.
type BodyAttrs struct {
	Body          *scene.Body
	ViewTransform mgl64.Mat4
	ViewCoords    mgl64.Vec3
	CamDist       float64
	BodyFlags     scene.Flags
	PixSize       float64

	Billboard      bool
	BillboardPos   mgl32.Vec3
	BillboardSize  float32
	BillboardColor graphics.Color
}

func (a *BodyAttrs) DrawLast() bool {
	return a.BodyFlags&scene.FlagDrawLast != 0
}

// compareAttrs orders by the key (drawLast, -camDist): normal bodies before
// draw-last ones, and back to front within each group.
func compareAttrs(a, b BodyAttrs) int {
	if c := cmpBool(a.DrawLast(), b.DrawLast()); c != 0 {
		return c
	}
	return cmp.Compare(b.CamDist, a.CamDist)
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}
