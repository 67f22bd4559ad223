package camera

import (
	"orrery/internal/graphics"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Renderer is the drawing backend the camera hands its sorted list to.
type Renderer interface {
	ClearScreen()
	SetProjection(m mgl32.Mat4)
	SetLights(lights []graphics.Light)
	// RenderBody draws b with its own method. The camera is passed so body
	// shading can query ShadowedIntensity and PrincipalShadows.
	RenderBody(c *Camera, b *scene.Body, viewCoords mgl64.Vec3, viewTransform mgl64.Mat4)
	// DrawBillboards issues the single batched marker draw.
	DrawBillboards(points []graphics.Billboard)
}
