package camera

import (
	"orrery/internal/graphics"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Context is the viewpoint and viewport shared by everything drawn from one
// camera: screen size, field of view, the frame the camera sits in, and the
// temporary camera frame that exists between BeginFrame and EndFrame.
type Context struct {
	width, height float64
	fovAng        float64 // vertical, degrees
	zNear, zFar   float64
	frustum       *graphics.Frustum

	frame  *scene.Frame
	pos    mgl64.Vec3
	orient mgl64.Mat3

	camFrame *scene.Frame
}

func NewContext(width, height, fovAng, zNear, zFar float64) *Context {
	return &Context{
		width:   width,
		height:  height,
		fovAng:  fovAng,
		zNear:   zNear,
		zFar:    zFar,
		frustum: graphics.NewFrustum(width, height, fovAng, zNear, zFar),
		orient:  mgl64.Ident3(),
	}
}

func (c *Context) SetCameraFrame(f *scene.Frame)       { c.frame = f }
func (c *Context) SetCameraPosition(p mgl64.Vec3)      { c.pos = p }
func (c *Context) SetCameraOrient(m mgl64.Mat3)        { c.orient = m }
func (c *Context) CameraFrame() *scene.Frame           { return c.frame }
func (c *Context) CameraPosition() mgl64.Vec3          { return c.pos }
func (c *Context) CameraOrient() mgl64.Mat3            { return c.orient }
func (c *Context) Frustum() *graphics.Frustum          { return c.frustum }
func (c *Context) Width() float64                      { return c.width }
func (c *Context) Height() float64                     { return c.height }
func (c *Context) FieldOfView() float64                { return c.fovAng }
func (c *Context) ClipPlanes() (near, far float64)     { return c.zNear, c.zFar }
func (c *Context) FovFactor() float64                  { return graphics.FovFactor(c.fovAng) }
func (c *Context) ScreenSize() (width, height float64) { return c.width, c.height }

// Resize changes the viewport and rebuilds the frustum.
func (c *Context) Resize(width, height float64) {
	c.width, c.height = width, height
	c.frustum = graphics.NewFrustum(c.width, c.height, c.fovAng, c.zNear, c.zFar)
}

// SetFieldOfView changes the vertical field of view and rebuilds the frustum.
func (c *Context) SetFieldOfView(deg float64) {
	c.fovAng = deg
	c.frustum = graphics.NewFrustum(c.width, c.height, c.fovAng, c.zNear, c.zFar)
}

// BeginFrame creates the temporary camera frame under the camera's frame,
// placed at the camera position and orientation.
func (c *Context) BeginFrame() {
	if c.frame == nil {
		panic("camera: BeginFrame without a camera frame")
	}
	if c.camFrame != nil {
		panic("camera: BeginFrame called twice")
	}

	c.camFrame = scene.NewCameraFrame(c.frame)
	c.camFrame.SetOrient(c.orient)
	c.camFrame.SetPosition(c.pos)
	c.camFrame.ClearMovement()
	c.camFrame.UpdateInterpTransform(1.0)
}

// EndFrame removes the temporary camera frame.
func (c *Context) EndFrame() {
	if c.frame == nil {
		panic("camera: EndFrame without a camera frame")
	}
	if c.camFrame == nil {
		panic("camera: EndFrame without BeginFrame")
	}
	c.camFrame.Remove()
	c.camFrame = nil
}

// InFrame reports whether BeginFrame has been called without EndFrame.
func (c *Context) InFrame() bool {
	return c.camFrame != nil
}

// TempFrame returns the temporary camera frame. It panics outside
// BeginFrame/EndFrame.
func (c *Context) TempFrame() *scene.Frame {
	if c.camFrame == nil {
		panic("camera: no temporary camera frame; call BeginFrame first")
	}
	return c.camFrame
}

// ProjectionMatrix is the infinite-far perspective used for drawing.
func (c *Context) ProjectionMatrix() mgl32.Mat4 {
	return graphics.InfinitePerspective(
		mgl32.DegToRad(float32(c.fovAng)),
		float32(c.width/c.height),
		float32(c.zNear),
	)
}

// ApplyDrawTransforms binds the projection on the renderer.
func (c *Context) ApplyDrawTransforms(r Renderer) {
	r.SetProjection(c.ProjectionMatrix())
}
