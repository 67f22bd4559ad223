// Package glrender draws a camera's draw list with OpenGL 4.1 point sprites:
// every full body is a lit disc, every billboard a soft dot.
package glrender

import (
	"embed"

	"orrery/internal/camera"
	"orrery/internal/galaxy"
	"orrery/internal/graphics"
	"orrery/internal/profiling"
	"orrery/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

//go:embed shaders
var shaderFS embed.FS

const (
	// x, y, z, size, r, g, b, a
	floatsPerVertex = 8
	vertexStride    = floatsPerVertex * 4

	// Stars glow a little even with no other light on them.
	ambientLevel = 0.03
)

// Renderer implements camera.Renderer. It needs a current GL context.
type Renderer struct {
	bodyShader      *Shader
	billboardShader *Shader
	vao             uint32
	vbo             uint32
	vboCap          int

	width, height int
	proj          mgl32.Mat4
	maxPointSize  float32

	lights      []graphics.Light
	lightDirs   []mgl32.Vec3
	lightColors []mgl32.Vec3
	scratch     []float32
}

var _ camera.Renderer = (*Renderer)(nil)

func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		width:  width,
		height: height,
		proj:   mgl32.Ident4(),
	}

	var err error
	r.bodyShader, err = NewShader(shaderFS, "shaders/points.vert", "shaders/body.frag")
	if err != nil {
		return nil, err
	}
	r.billboardShader, err = NewShader(shaderFS, "shaders/points.vert", "shaders/billboard.frag")
	if err != nil {
		r.bodyShader.Delete()
		return nil, err
	}

	r.setupVAO()

	var sizeRange [2]float32
	gl.GetFloatv(gl.POINT_SIZE_RANGE, &sizeRange[0])
	r.maxPointSize = max(sizeRange[1], 1)

	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	// the draw list is already sorted back to front
	gl.Disable(gl.DEPTH_TEST)

	return r, nil
}

func (r *Renderer) setupVAO() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.growBuffer(64)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.FLOAT, false, vertexStride, 4*4)
}

// growBuffer reallocates the VBO for at least n vertices. The VBO must be bound.
func (r *Renderer) growBuffer(n int) {
	if n <= r.vboCap {
		return
	}
	r.vboCap = max(n, 2*r.vboCap)
	gl.BufferData(gl.ARRAY_BUFFER, r.vboCap*vertexStride, nil, gl.DYNAMIC_DRAW)
}

func (r *Renderer) upload(verts []float32) {
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	r.growBuffer(len(verts) / floatsPerVertex)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
}

// SetViewport follows a framebuffer resize.
func (r *Renderer) SetViewport(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) ClearScreen() {
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Renderer) SetProjection(m mgl32.Mat4) {
	r.proj = m
}

func (r *Renderer) SetLights(lights []graphics.Light) {
	r.lights = append(r.lights[:0], lights...)

	r.lightDirs = r.lightDirs[:0]
	for _, l := range r.lights {
		r.lightDirs = append(r.lightDirs, lightDirection(l))
	}
}

// RenderBody draws b as a disc lit by every active light, each light's
// contribution scaled by how much of it the camera says reaches b.
func (r *Renderer) RenderBody(c *camera.Camera, b *scene.Body, viewCoords mgl64.Vec3, viewTransform mgl64.Mat4) {
	defer profiling.Track("glrender.RenderBody")()

	ndc, size, ok := projectDisc(r.proj, float64(r.height), viewCoords, b.PhysRadius)
	if !ok {
		return
	}
	size = min(size, r.maxPointSize)

	r.lightColors = r.lightColors[:0]
	for i, l := range r.lights {
		intensity := c.ShadowedIntensity(i, b)
		r.lightColors = append(r.lightColors, l.Diffuse.Vec4().Vec3().Mul(intensity))
	}

	r.scratch = appendVertex(r.scratch[:0], ndc, size, emissive(b))
	r.upload(r.scratch)

	r.bodyShader.Use()
	r.bodyShader.SetInt("uNumLights", int32(len(r.lights)))
	r.bodyShader.SetVec3Array("uLightDir", r.lightDirs)
	r.bodyShader.SetVec3Array("uLightColor", r.lightColors)
	gl.DrawArrays(gl.POINTS, 0, 1)
}

// DrawBillboards draws all points in one call.
func (r *Renderer) DrawBillboards(points []graphics.Billboard) {
	defer profiling.Track("glrender.DrawBillboards")()

	r.scratch = packBillboards(r.scratch[:0], points, float32(r.width), float32(r.height), r.maxPointSize)
	if len(r.scratch) == 0 {
		return
	}
	r.upload(r.scratch)

	r.billboardShader.Use()
	gl.DrawArrays(gl.POINTS, 0, int32(len(points)))
}

func (r *Renderer) Dispose() {
	r.bodyShader.Delete()
	r.billboardShader.Delete()
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
}

// lightDirection is the unit direction to l. The synthetic light has none,
// so it shines from the camera.
func lightDirection(l graphics.Light) mgl32.Vec3 {
	if l.Position.Len() == 0 {
		return mgl32.Vec3{0, 0, 1}
	}
	return l.Position.Normalize()
}

// emissive is the colour a body shows without any light on it.
func emissive(b *scene.Body) graphics.Color {
	if b.Kind == scene.KindStar && b.SystemBody != nil {
		return galaxy.StarRealColor(b.SystemBody.Type)
	}
	return graphics.White.Scale(ambientLevel)
}

// projectDisc projects a sphere at viewCoords to normalized device
// coordinates and an on-screen diameter in pixels.
func projectDisc(proj mgl32.Mat4, height float64, viewCoords mgl64.Vec3, radius float64) (mgl32.Vec3, float32, bool) {
	dist := viewCoords.Len()
	if dist <= 0 {
		return mgl32.Vec3{}, 0, false
	}
	v := mgl32.Vec4{float32(viewCoords[0]), float32(viewCoords[1]), float32(viewCoords[2]), 1}
	clip := proj.Mul4x1(v)
	if clip.W() <= 0 {
		return mgl32.Vec3{}, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())

	// proj[5] is 1/tan(fov/2)
	size := height * radius * float64(proj[5]) / dist
	return ndc, float32(max(size, 1)), true
}

// packBillboards converts window-space billboards to vertices.
func packBillboards(dst []float32, points []graphics.Billboard, width, height, maxSize float32) []float32 {
	for _, p := range points {
		ndc := mgl32.Vec3{
			p.Pos.X()/width*2 - 1,
			p.Pos.Y()/height*2 - 1,
			p.Pos.Z()*2 - 1,
		}
		dst = appendVertex(dst, ndc, min(p.Size, maxSize), p.Color)
	}
	return dst
}

func appendVertex(dst []float32, pos mgl32.Vec3, size float32, col graphics.Color) []float32 {
	c := col.Vec4()
	return append(dst, pos[0], pos[1], pos[2], size, c[0], c[1], c[2], c[3])
}
