package scene

import (
	"math"
	"testing"

	"orrery/internal/galaxy"

	"github.com/go-gl/mathgl/mgl64"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind       Kind
		terrain    bool
		canEclipse bool
	}{
		{KindShip, false, false},
		{KindTerrain, true, false},
		{KindPlanet, true, true},
		{KindStar, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsTerrain(); got != tt.terrain {
				t.Errorf("IsTerrain = %v, want %v", got, tt.terrain)
			}
			if got := tt.kind.CanEclipse(); got != tt.canEclipse {
				t.Errorf("CanEclipse = %v, want %v", got, tt.canEclipse)
			}
		})
	}
}

func TestTerrainBodyRadii(t *testing.T) {
	sb := galaxy.NewSystemBody("Oblate", galaxy.TypeStarG, 2, nil)
	sb.AspectRatio = 1.25
	b := NewTerrainBody(KindStar, sb)

	if b.Name != "Oblate" {
		t.Errorf("name = %q", b.Name)
	}
	if want := 2 / 1.25 * galaxy.SolRadius; math.Abs(b.PhysRadius-want) > 1e-3 {
		t.Errorf("phys radius = %v, want polar %v", b.PhysRadius, want)
	}
	if want := 2 * galaxy.SolRadius; b.ClipRadius != want {
		t.Errorf("clip radius = %v, want equatorial %v", b.ClipRadius, want)
	}
	if b.ClipRadius < b.PhysRadius {
		t.Errorf("clip radius smaller than physical radius")
	}
}

func TestBodyPositions(t *testing.T) {
	s := NewSpace()
	f := NewFrame(s.Root(), "orbit", false)
	f.SetPosition(mgl64.Vec3{100, 0, 0})
	f.SetOrient(mgl64.Rotate3DZ(math.Pi / 2))

	a := NewBody("a", KindShip, 1)
	s.AddBody(a, f)
	a.SetPosition(mgl64.Vec3{10, 0, 0})

	b := NewBody("b", KindShip, 1)
	s.AddBody(b, nil)
	b.SetPosition(mgl64.Vec3{0, 50, 0})

	if b.Frame() != s.Root() {
		t.Errorf("nil frame did not default to root")
	}
	if got := a.PositionRelToFrame(s.Root()); !vecNear(got, mgl64.Vec3{100, 10, 0}, 1e-9) {
		t.Errorf("a in root = %v", got)
	}
	if got := a.PositionRelTo(b); !vecNear(got, mgl64.Vec3{100, -40, 0}, 1e-9) {
		t.Errorf("a relative to b = %v", got)
	}
	// expressed in a's rotated frame axes
	if got := b.PositionRelTo(a); !vecNear(got, mgl64.Vec3{40, 100, 0}, 1e-9) {
		t.Errorf("b relative to a = %v", got)
	}
}

func TestSpaceBodies(t *testing.T) {
	s := NewSpace()
	a := NewBody("a", KindShip, 1)
	b := NewBody("b", KindShip, 1)
	s.AddBody(a, nil)
	s.AddBody(b, nil)

	if s.FindBody("b") != b || s.FindBody("zz") != nil {
		t.Errorf("FindBody wrong")
	}
	if !s.RemoveBody(a) || s.RemoveBody(a) {
		t.Errorf("RemoveBody should succeed once")
	}
	if len(s.Bodies()) != 1 {
		t.Errorf("bodies = %d, want 1", len(s.Bodies()))
	}

	b.Move(mgl64.Vec3{10, 0, 0})
	s.UpdateInterpTransforms(0.25)
	if got := b.InterpPosition(); !vecNear(got, mgl64.Vec3{2.5, 0, 0}, 1e-12) {
		t.Errorf("interp position = %v", got)
	}
}
