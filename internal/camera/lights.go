package camera

import (
	"orrery/internal/galaxy"
	"orrery/internal/graphics"
	"orrery/internal/profiling"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is how many stars can light a frame.
const MaxLights = 4

// LightSource pairs a light with the star body emitting it. Body is nil for
// the synthetic light used when no star is reachable.
type LightSource struct {
	Body  *scene.Body
	Light graphics.Light
}

func (c *Camera) updateLights(camFrame *scene.Frame) {
	defer profiling.Track("camera.positionSystemLights")()

	c.lights = positionSystemLights(camFrame, c.space.Root(), c.lights[:0])

	if len(c.lights) == 0 {
		// no star in reach (e.g. hyperspace); fake one so shading has a light
		light := graphics.NewDirectionalLight(mgl32.Vec3{}, graphics.White, graphics.White)
		c.lights = append(c.lights, LightSource{Light: light})
	}
}

// positionSystemLights walks the frame tree depth first from root and
// appends a directional light for every star found, up to MaxLights.
// Only non-rotating frames are considered so a star reachable through both
// its frames is counted once.
func positionSystemLights(camFrame, root *scene.Frame, lights []LightSource) []LightSource {
	stack := []*scene.Frame{root}
	for len(stack) > 0 {
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]

		if len(lights) >= MaxLights {
			continue
		}

		sb := f.SystemBody()
		if sb != nil && !f.IsRotFrame() && sb.SuperType() == galaxy.SuperTypeStar {
			lpos := f.PositionRelTo(camFrame)
			if l := lpos.Len(); l > 0 {
				lpos = lpos.Mul(1 / l)
			}
			col := galaxy.StarRealColor(sb.Type).WithAlpha(0)
			dir := mgl32.Vec3{float32(lpos[0]), float32(lpos[1]), float32(lpos[2])}
			lights = append(lights, LightSource{
				Body:  f.Body(),
				Light: graphics.NewDirectionalLight(dir, col, col),
			})
		}

		// push in reverse so children are visited in order
		kids := f.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return lights
}
