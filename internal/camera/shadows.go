package camera

import (
	"fmt"

	"orrery/internal/profiling"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// Eclipses whose occluder is this much smaller than the light disc are ignored.
const minShadowRatio = 0.01

// minLightRadius keeps a point-like light disc from dividing by zero.
const minLightRadius = 1e-6

// Shadow describes one eclipsing body as seen from the shadowed body b, with
// all lengths normalised so that b has radius 1. The picture is the plane
// perpendicular to the light direction through b's centre.
type Shadow struct {
	// Centre is the occluder's centre projected onto that plane.
	Centre mgl64.Vec3
	// SRad is the occluder's radius.
	SRad float32
	// LRad is the apparent radius of the light disc at the occluder's distance.
	LRad float32
}

// Severity ranks shadows: the larger the occluder relative to the light
// disc, the deeper the eclipse it can cause.
func (s Shadow) Severity() float32 {
	return s.SRad / s.LRad
}

// CalcShadows appends to out every body that eclipses light lightNum as seen
// from b, treating all bodies as spheres and the light as distant. A light
// without a body (the synthetic fallback) casts no shadows.
func (c *Camera) CalcShadows(lightNum int, b *scene.Body, out []Shadow) []Shadow {
	defer profiling.Track("camera.CalcShadows")()

	if lightNum < 0 || lightNum >= len(c.lights) {
		panic(fmt.Sprintf("camera: light %d out of range (%d active)", lightNum, len(c.lights)))
	}

	lightBody := c.lights[lightNum].Body
	if lightBody == nil {
		return out
	}

	lightRadius := lightBody.PhysRadius
	bLightPos := lightBody.PositionRelTo(b)
	lightDist := bLightPos.Len()
	bRadius := occlusionRadius(b)
	if lightDist <= 0 || bRadius <= 0 {
		return out
	}
	lightDir := bLightPos.Mul(1 / lightDist)

	// look for eclipsing third bodies
	for _, b2 := range c.space.Bodies() {
		if b2 == b || b2 == lightBody || !b2.Kind.CanEclipse() {
			continue
		}

		b2pos := b2.PositionRelTo(b)
		perpDist := lightDir.Dot(b2pos)
		if perpDist <= 0 || perpDist > lightDist {
			// b2 isn't between b and the light
			continue
		}

		srad := catalogRadius(b2) / bRadius
		lrad := max((lightRadius/lightDist)*perpDist/bRadius, minLightRadius)
		if srad/lrad < minShadowRatio {
			continue
		}

		projectedCentre := b2pos.Sub(lightDir.Mul(perpDist)).Mul(1 / bRadius)
		if projectedCentre.Len() < 1+srad+lrad {
			// some part of b is at least partially eclipsed
			out = append(out, Shadow{
				Centre: projectedCentre,
				SRad:   float32(srad),
				LRad:   float32(lrad),
			})
		}
	}
	return out
}

// occlusionRadius is the radius a body is shadowed over. Terrain bodies use
// their catalog size, which can differ from their dynamic radius.
func occlusionRadius(b *scene.Body) float64 {
	if b.Kind.IsTerrain() && b.SystemBody != nil {
		return b.SystemBody.PolarRadius()
	}
	return b.PhysRadius
}

func catalogRadius(b *scene.Body) float64 {
	if b.SystemBody != nil {
		return b.SystemBody.PolarRadius()
	}
	return b.PhysRadius
}
