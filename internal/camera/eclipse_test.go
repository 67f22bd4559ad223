package camera

import (
	"math"
	"testing"

	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

func TestDiscCovered(t *testing.T) {
	tests := []struct {
		name string
		dist float32
		rad  float32
		want float32
	}{
		{"both zero", 0, 0, 0},
		{"concentric smaller", 0, 0.5, 0.25},
		{"concentric tenth", 0, 0.1, 0.01},
		{"concentric equal", 0, 1, 1},
		{"concentric larger", 0, 3, 1},
		{"touching", 2, 1, 0},
		{"apart", 5, 1, 0},
		{"touching small", 1.5, 0.5, 0},
		{"inside off-centre", 0.3, 0.5, 0.25},
		{"covers off-centre", 0.5, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscCovered(tt.dist, tt.rad)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("DiscCovered(%v, %v) = %v, want %v", tt.dist, tt.rad, got, tt.want)
			}
		})
	}
}

func TestDiscCoveredHalfOverlap(t *testing.T) {
	// lens of two unit discs one radius apart
	want := (2*math.Pi/3 - math.Sqrt(3)/2) / math.Pi
	got := DiscCovered(1, 1)
	if math.Abs(float64(got)-want) > 1e-5 {
		t.Errorf("DiscCovered(1, 1) = %v, want %v", got, want)
	}
}

func TestDiscCoveredRangeAndNaN(t *testing.T) {
	for dist := float32(0); dist <= 4; dist += 0.05 {
		for rad := float32(0); rad <= 4; rad += 0.05 {
			got := DiscCovered(dist, rad)
			if got != got || got < 0 || got > 1 {
				t.Fatalf("DiscCovered(%v, %v) = %v, out of [0,1]", dist, rad, got)
			}
			if dist > 1+rad+1e-3 && got != 0 {
				t.Fatalf("DiscCovered(%v, %v) = %v, want 0 for disjoint discs", dist, rad, got)
			}
		}
	}

	inf := float32(math.Inf(1))
	if got := DiscCovered(inf, 1); got != 0 {
		t.Errorf("DiscCovered(+Inf, 1) = %v, want 0", got)
	}
	if got := DiscCovered(0, inf); got != 1 {
		t.Errorf("DiscCovered(0, +Inf) = %v, want 1", got)
	}
	nan := float32(math.NaN())
	if got := DiscCovered(nan, nan); got != 0 {
		t.Errorf("DiscCovered(NaN, NaN) = %v, want 0", got)
	}

	// squares of these overflow float32
	huge := []struct{ dist, rad float32 }{
		{2e19, 2e19},
		{1e20, 1e20},
		{1e20, 5e19},
		{3e38, 3e38},
		{0, 3e38},
		{3e38, 1},
	}
	for _, tt := range huge {
		got := DiscCovered(tt.dist, tt.rad)
		if got != got || got < 0 || got > 1 {
			t.Errorf("DiscCovered(%v, %v) = %v, out of [0,1]", tt.dist, tt.rad, got)
		}
	}
	if got := DiscCovered(0, 3e38); got != 1 {
		t.Errorf("DiscCovered(0, 3e38) = %v, want 1", got)
	}
	if got := DiscCovered(3e38, 1); got != 0 {
		t.Errorf("DiscCovered(3e38, 1) = %v, want 0", got)
	}

	s := []Shadow{{Centre: mgl64.Vec3{1e14, 0, 0}, SRad: 1e14, LRad: 1e-6}}
	if got := ShadowIntensity(s); got != got || got < 0 || got > 1 {
		t.Errorf("ShadowIntensity with huge ratios = %v, out of [0,1]", got)
	}
}

func TestDiscCoveredMonotoneInDistance(t *testing.T) {
	prev := float32(2)
	for dist := float32(0); dist <= 2; dist += 0.01 {
		got := DiscCovered(dist, 0.6)
		if got > prev+1e-6 {
			t.Fatalf("coverage grew from %v to %v at dist %v", prev, got, dist)
		}
		prev = got
	}
}

func TestShadowIntensity(t *testing.T) {
	if got := ShadowIntensity(nil); got != 1 {
		t.Errorf("no shadows: got %v, want 1", got)
	}

	// growing occluder over the light centre can only take light away
	prev := float32(1)
	for srad := float32(0); srad <= 1.5; srad += 0.05 {
		s := []Shadow{{SRad: srad, LRad: 1}}
		got := ShadowIntensity(s)
		if got > prev {
			t.Fatalf("intensity rose from %v to %v at srad %v", prev, got, srad)
		}
		if got < 0 || got > 1 {
			t.Fatalf("intensity %v out of range", got)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("full cover: got %v, want 0", prev)
	}

	// the fold is a product and so order independent
	a := Shadow{Centre: mgl64.Vec3{0.2, 0, 0}, SRad: 0.5, LRad: 1}
	b := Shadow{Centre: mgl64.Vec3{0, 0.7, 0}, SRad: 0.3, LRad: 0.8}
	ab := ShadowIntensity([]Shadow{a, b})
	ba := ShadowIntensity([]Shadow{b, a})
	if math.Abs(float64(ab-ba)) > 1e-6 {
		t.Errorf("order dependent: %v vs %v", ab, ba)
	}
	want := (1 - DiscCovered(0.2, 0.5)) * (1 - DiscCovered(0.7/0.8, 0.3/0.8))
	if math.Abs(float64(ab-want)) > 1e-6 {
		t.Errorf("product = %v, want %v", ab, want)
	}
}

func TestCompareAttrs(t *testing.T) {
	near := BodyAttrs{CamDist: 10}
	far := BodyAttrs{CamDist: 100}
	lastNear := BodyAttrs{CamDist: 1, BodyFlags: scene.FlagDrawLast}
	lastFar := BodyAttrs{CamDist: 1000, BodyFlags: scene.FlagDrawLast}

	tests := []struct {
		name string
		a, b BodyAttrs
		want int
	}{
		{"farther first", far, near, -1},
		{"nearer later", near, far, 1},
		{"equal", near, near, 0},
		{"normal before draw-last", near, lastFar, -1},
		{"draw-last after normal even when farther", lastFar, far, 1},
		{"draw-last after normal even when nearer", lastNear, near, 1},
		{"draw-last farther first", lastFar, lastNear, -1},
		{"draw-last equal", lastNear, lastNear, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compareAttrs(tt.a, tt.b); got != tt.want {
				t.Errorf("compareAttrs = %d, want %d", got, tt.want)
			}
		})
	}
}
