package camera

import (
	"testing"

	"orrery/internal/galaxy"
	"orrery/internal/graphics"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// A 800x800 viewport with a 90° field of view makes the fov factor 2, so a
// body of radius r at distance d is 800·r/d pixels across.
const (
	testScreen = 800.0
	testFov    = 90.0
)

func pixelDistance(radius, px float64) float64 {
	return testScreen * radius / px
}

// addCelestial creates a body with its own non-rotating frame under parent.
func addCelestial(space *scene.Space, parent *scene.Frame, kind scene.Kind, t galaxy.BodyType, radius float64, pos mgl64.Vec3) *scene.Body {
	sb := galaxy.NewSystemBody(t.String(), t, radius, nil)
	b := scene.NewTerrainBody(kind, sb)
	if parent == nil {
		parent = space.Root()
	}
	f := scene.NewFrame(parent, sb.Name, false)
	f.SetPosition(pos)
	f.SetBody(b)
	space.AddBody(b, f)
	return b
}

func addStar(space *scene.Space, t galaxy.BodyType, radiusSol float64, pos mgl64.Vec3) *scene.Body {
	return addCelestial(space, nil, scene.KindStar, t, radiusSol, pos)
}

func addPlanet(space *scene.Space, radiusEarth float64, pos mgl64.Vec3) *scene.Body {
	return addCelestial(space, nil, scene.KindPlanet, galaxy.TypePlanetTerrestrial, radiusEarth, pos)
}

func addBody(space *scene.Space, name string, kind scene.Kind, radius float64, pos mgl64.Vec3) *scene.Body {
	b := scene.NewBody(name, kind, radius)
	space.AddBody(b, nil)
	b.SetPosition(pos)
	return b
}

// beginFrame puts a camera at pos in the root frame looking down -Z and runs
// BeginFrame; EndFrame is registered as cleanup.
func beginFrame(t *testing.T, space *scene.Space, pos mgl64.Vec3) (*Camera, *Context) {
	t.Helper()
	ctx := NewContext(testScreen, testScreen, testFov, 1, 1e13)
	ctx.SetCameraFrame(space.Root())
	ctx.SetCameraPosition(pos)
	ctx.BeginFrame()
	t.Cleanup(ctx.EndFrame)
	return New(ctx, space), ctx
}

func findAttrs(t *testing.T, c *Camera, b *scene.Body) BodyAttrs {
	t.Helper()
	for _, a := range c.DrawList() {
		if a.Body == b {
			return a
		}
	}
	t.Fatalf("%s not in draw list", b.Name)
	return BodyAttrs{}
}

func inDrawList(c *Camera, b *scene.Body) bool {
	for _, a := range c.DrawList() {
		if a.Body == b {
			return true
		}
	}
	return false
}

// recorder is a Renderer that logs the calls it receives.
type recorder struct {
	calls      []string
	lights     []graphics.Light
	bodies     []*scene.Body
	billboards [][]graphics.Billboard
	proj       mgl32.Mat4
}

func (r *recorder) ClearScreen() { r.calls = append(r.calls, "clear") }

func (r *recorder) SetProjection(m mgl32.Mat4) {
	r.calls = append(r.calls, "projection")
	r.proj = m
}

func (r *recorder) SetLights(lights []graphics.Light) {
	r.calls = append(r.calls, "lights")
	r.lights = append([]graphics.Light(nil), lights...)
}

func (r *recorder) RenderBody(c *Camera, b *scene.Body, viewCoords mgl64.Vec3, viewTransform mgl64.Mat4) {
	r.calls = append(r.calls, "body:"+b.Name)
	r.bodies = append(r.bodies, b)
}

func (r *recorder) DrawBillboards(points []graphics.Billboard) {
	r.calls = append(r.calls, "billboards")
	r.billboards = append(r.billboards, append([]graphics.Billboard(nil), points...))
}
