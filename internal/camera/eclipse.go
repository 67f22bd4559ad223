package camera

import (
	"cmp"
	"math"
	"slices"

	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

// DiscCovered returns the fraction of the unit disc covered by a second disc
// of radius rad whose centre is dist away.
//
// With the second disc displaced along +x: xl is the x of the circles'
// intersection, xs the same point measured from the second disc's centre in
// units of rad, d the half-chord height there. The covered area is the sum
// of the two circular segments. Clamping covers containment of either disc
// and no overlap at all.
func DiscCovered(dist, rad float32) float32 {
	switch {
	case isNaN32(dist) || isNaN32(rad) || math.IsInf(float64(dist), 1):
		return 0
	case math.IsInf(float64(rad), 1):
		return 1
	}

	// float64 so that squares of large float32 inputs stay finite
	dist64, rad64 := float64(dist), float64(rad)
	radsq := rad64 * rad64
	xl := mgl64.Clamp((dist64*dist64+1-radsq)/(2*max(0.001, dist64)), -1, 1)
	xs := mgl64.Clamp((dist64-xl)/max(0.001, rad64), -1, 1)
	d := math.Sqrt(max(0, 1-xl*xl))

	th := mgl64.Clamp(math.Acos(xl), 0, math.Pi)
	th2 := mgl64.Clamp(math.Acos(xs), 0, math.Pi)

	return float32(mgl64.Clamp((th+radsq*th2-dist64*d)/math.Pi, 0, 1))
}

func isNaN32(f float32) bool {
	return f != f
}

// ShadowIntensity folds shadows into the fraction of light that gets through.
// Partial eclipses are treated as independent, so the order is irrelevant.
func ShadowIntensity(shadows []Shadow) float32 {
	product := float32(1)
	for i := range shadows {
		s := &shadows[i]
		product *= 1 - DiscCovered(float32(s.Centre.Len())/s.LRad, s.SRad/s.LRad)
	}
	return product
}

// ShadowedIntensity returns how much of light lightNum reaches the centre of
// b, in [0,1].
func (c *Camera) ShadowedIntensity(lightNum int, b *scene.Body) float32 {
	var buf [16]Shadow
	return ShadowIntensity(c.CalcShadows(lightNum, b, buf[:0]))
}

// PrincipalShadows appends to out at most n shadows on b, gathered across all
// active lights and ordered by descending severity.
func (c *Camera) PrincipalShadows(b *scene.Body, n int, out []Shadow) []Shadow {
	var buf [16]Shadow
	shadows := buf[:0]
	for i := 0; i < MaxLights && i < len(c.lights); i++ {
		shadows = c.CalcShadows(i, b, shadows)
	}

	slices.SortStableFunc(shadows, func(a, b Shadow) int {
		return cmp.Compare(b.Severity(), a.Severity())
	})

	n = max(0, min(n, len(shadows)))
	return append(out, shadows[:n]...)
}
