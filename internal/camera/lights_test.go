package camera

import (
	"fmt"
	"math"
	"testing"

	"orrery/internal/galaxy"
	"orrery/internal/graphics"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLightsDeepSpaceFallback(t *testing.T) {
	space := scene.NewSpace()
	ship := addBody(space, "ship", scene.KindShip, 10, mgl64.Vec3{0, 0, -100})

	c, _ := beginFrame(t, space, mgl64.Vec3{})
	c.Update()

	lights := c.Lights()
	if len(lights) != 1 {
		t.Fatalf("got %d lights, want 1 synthetic light", len(lights))
	}
	l := lights[0]
	if l.Body != nil {
		t.Errorf("synthetic light should have no body")
	}
	if l.Light.Diffuse != graphics.White || l.Light.Specular != graphics.White {
		t.Errorf("synthetic light colour = %v/%v, want white", l.Light.Diffuse, l.Light.Specular)
	}
	if l.Light.Position.Len() != 0 {
		t.Errorf("synthetic light position = %v, want origin", l.Light.Position)
	}
	if got := c.ShadowedIntensity(0, ship); got != 1 {
		t.Errorf("intensity under synthetic light = %v, want 1", got)
	}
	if got := c.CalcShadows(0, ship, nil); len(got) != 0 {
		t.Errorf("synthetic light cast %d shadows", len(got))
	}
}

func TestLightDirectionAndColour(t *testing.T) {
	space := scene.NewSpace()
	star := addStar(space, galaxy.TypeStarK, 1, mgl64.Vec3{0, 3e11, 0})

	c, _ := beginFrame(t, space, mgl64.Vec3{})
	c.Update()

	lights := c.Lights()
	if len(lights) != 1 || lights[0].Body != star {
		t.Fatalf("want the K star as only light, got %d lights", len(lights))
	}
	l := lights[0].Light
	if l.Type != graphics.LightDirectional {
		t.Errorf("light type = %v, want directional", l.Type)
	}
	pos := l.Position
	if math.Abs(float64(pos.Len())-1) > 1e-6 || math.Abs(float64(pos.Y())-1) > 1e-6 {
		t.Errorf("light direction = %v, want unit +Y", pos)
	}
	want := galaxy.StarRealColor(galaxy.TypeStarK).WithAlpha(0)
	if l.Diffuse != want || l.Specular != want {
		t.Errorf("light colour = %v/%v, want %v", l.Diffuse, l.Specular, want)
	}
}

func TestLightsFollowCameraOrientation(t *testing.T) {
	space := scene.NewSpace()
	addStar(space, galaxy.TypeStarG, 1, mgl64.Vec3{1e11, 0, 0})

	ctx := NewContext(testScreen, testScreen, testFov, 1, 1e13)
	ctx.SetCameraFrame(space.Root())
	// camera turned 90° about Y, so world +X is camera +Z
	ctx.SetCameraOrient(mgl64.Rotate3DY(math.Pi / 2))
	ctx.BeginFrame()
	t.Cleanup(ctx.EndFrame)

	c := New(ctx, space)
	c.Update()

	dir := c.Lights()[0].Light.Position
	if math.Abs(float64(dir.Z())-1) > 1e-6 {
		t.Errorf("light direction in camera space = %v, want +Z", dir)
	}
}

func TestLightsCountedOnceWithRotatingFrame(t *testing.T) {
	space := scene.NewSpace()
	star := addStar(space, galaxy.TypeStarG, 1, mgl64.Vec3{0, 0, -1e11})

	// a rotating child frame shares the star's catalog entry
	rot := scene.NewFrame(star.Frame(), "rot", true)
	rot.SetBody(star)

	c, _ := beginFrame(t, space, mgl64.Vec3{})
	c.Update()

	if n := len(c.Lights()); n != 1 {
		t.Errorf("got %d lights, want 1", n)
	}
}

func TestLightsCappedAtMax(t *testing.T) {
	space := scene.NewSpace()
	var stars []*scene.Body
	for i := 0; i < 6; i++ {
		s := addStar(space, galaxy.TypeStarG, 1, mgl64.Vec3{float64(i+1) * 1e11, 0, 0})
		s.Name = fmt.Sprintf("star%d", i)
		stars = append(stars, s)
	}

	c, _ := beginFrame(t, space, mgl64.Vec3{})
	c.Update()

	lights := c.Lights()
	if len(lights) != MaxLights {
		t.Fatalf("got %d lights, want %d", len(lights), MaxLights)
	}
	for i, l := range lights {
		if l.Body != stars[i] {
			t.Errorf("light %d is %s, want %s", i, l.Body.Name, stars[i].Name)
		}
	}
	if c.Stats().Lights != MaxLights {
		t.Errorf("stats lights = %d", c.Stats().Lights)
	}
}

func TestLightsFindNestedStars(t *testing.T) {
	space := scene.NewSpace()
	primary := addStar(space, galaxy.TypeStarG, 1, mgl64.Vec3{})
	companion := addCelestial(space, primary.Frame(), scene.KindStar, galaxy.TypeStarM, 0.5, mgl64.Vec3{5e11, 0, 0})
	// a planet in between must not become a light
	addCelestial(space, primary.Frame(), scene.KindPlanet, galaxy.TypePlanetTerrestrial, 1, mgl64.Vec3{1.5e11, 0, 0})

	c, _ := beginFrame(t, space, mgl64.Vec3{0, 0, 1e11})
	c.Update()

	lights := c.Lights()
	if len(lights) != 2 {
		t.Fatalf("got %d lights, want 2", len(lights))
	}
	if lights[0].Body != primary || lights[1].Body != companion {
		t.Errorf("lights out of depth-first order")
	}
}
