// Package system builds the small demo star systems the viewer and the
// inspector fly around in, and advances them along circular orbits.
package system

import (
	"math"

	"orrery/internal/galaxy"
	"orrery/internal/scene"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	earthYear      = 365.25 * 86400
	siderealDay    = 86164.1
	lunarMonth     = 27.32 * 86400
	moonDistance   = 3.844e8
	shipAltitude   = 2.5e7
	beaconDistance = 1e6
)

// orbit moves a frame on a circle in its parent's XZ plane.
type orbit struct {
	frame  *scene.Frame
	radius float64
	period float64
	phase  float64
}

func (o *orbit) position(t float64) mgl64.Vec3 {
	a := o.phase + 2*math.Pi*t/o.period
	return mgl64.Vec3{o.radius * math.Cos(a), 0, o.radius * math.Sin(a)}
}

// spin turns a rotating frame about its Y axis.
type spin struct {
	frame  *scene.Frame
	period float64
}

func (s *spin) orient(t float64) mgl64.Mat3 {
	return mgl64.Rotate3DY(2 * math.Pi * t / s.period)
}

type System struct {
	Space *scene.Space

	// Any of these may be nil for systems without them.
	Star   *scene.Body
	Planet *scene.Body
	Moon   *scene.Body
	Ship   *scene.Body
	Beacon *scene.Body

	orbits  []*orbit
	spins   []*spin
	elapsed float64

	planetOrbit, moonOrbit *orbit
}

// NewSol builds a G star with an earth-like planet at 1 AU, its moon, a ship
// parked above the planet and a marker beacon next to the ship.
func NewSol() *System {
	s := &System{Space: scene.NewSpace()}
	root := s.Space.Root()

	sol := galaxy.NewSystemBody("Sol", galaxy.TypeStarG, 1, nil)
	earth := galaxy.NewSystemBody("Earth", galaxy.TypePlanetTerrestrial, 1, sol)
	luna := galaxy.NewSystemBody("Moon", galaxy.TypePlanetAsteroid, 0.273, earth)

	var solFrame, earthFrame *scene.Frame
	s.Star, solFrame = s.addCelestial(root, scene.KindStar, sol, 25.05*86400)
	s.Planet, earthFrame = s.addCelestial(solFrame, scene.KindPlanet, earth, siderealDay)
	s.Moon, _ = s.addCelestial(earthFrame, scene.KindPlanet, luna, lunarMonth)

	s.planetOrbit = s.addOrbit(earthFrame, galaxy.AU, earthYear, 0)
	s.moonOrbit = s.addOrbit(s.Moon.Frame(), moonDistance, lunarMonth, math.Pi/3)

	s.Ship = scene.NewBody("Ship", scene.KindShip, 60)
	s.Ship.Flags |= scene.FlagDrawExclude
	s.Space.AddBody(s.Ship, earthFrame)
	s.Ship.SetPosition(mgl64.Vec3{0, 0, shipAltitude})

	s.Beacon = scene.NewBody("Beacon", scene.KindShip, 2000)
	s.Beacon.Flags |= scene.FlagDrawLast
	s.Space.AddBody(s.Beacon, earthFrame)
	s.Beacon.SetPosition(mgl64.Vec3{0, 3e5, shipAltitude - beaconDistance})

	return s
}

// NewDeepSpace builds a starless space holding only the ship and its beacon.
func NewDeepSpace() *System {
	s := &System{Space: scene.NewSpace()}

	s.Ship = scene.NewBody("Ship", scene.KindShip, 60)
	s.Ship.Flags |= scene.FlagDrawExclude
	s.Space.AddBody(s.Ship, nil)

	s.Beacon = scene.NewBody("Beacon", scene.KindShip, 2000)
	s.Beacon.Flags |= scene.FlagDrawLast
	s.Space.AddBody(s.Beacon, nil)
	s.Beacon.SetPosition(mgl64.Vec3{0, 3e5, -beaconDistance})

	return s
}

// addCelestial gives sb a body in its own non-rotating frame under parent,
// plus a rotating child frame bound to the same system body.
func (s *System) addCelestial(parent *scene.Frame, kind scene.Kind, sb *galaxy.SystemBody, day float64) (*scene.Body, *scene.Frame) {
	f := scene.NewFrame(parent, sb.Name, false)
	b := scene.NewTerrainBody(kind, sb)
	f.SetBody(b)
	s.Space.AddBody(b, f)

	rot := scene.NewFrame(f, sb.Name+" (rotating)", true)
	rot.SetBody(b)
	s.spins = append(s.spins, &spin{frame: rot, period: day})

	return b, f
}

func (s *System) addOrbit(f *scene.Frame, radius, period, phase float64) *orbit {
	o := &orbit{frame: f, radius: radius, period: period, phase: phase}
	f.SetPosition(o.position(s.elapsed))
	s.orbits = append(s.orbits, o)
	return o
}

// Elapsed returns simulated seconds since the system was built.
func (s *System) Elapsed() float64 { return s.elapsed }

// Viewpoint is where a camera riding the ship sits: the ship's frame and
// its position in it.
func (s *System) Viewpoint() (*scene.Frame, mgl64.Vec3) {
	return s.Ship.Frame(), s.Ship.Position()
}

// Advance moves the system dt simulated seconds forward. The previous state
// is kept for interpolation, so call UpdateInterpTransforms afterwards.
func (s *System) Advance(dt float64) {
	if dt < 0 {
		panic("system: negative time step")
	}
	s.elapsed += dt

	for _, o := range s.orbits {
		o.frame.Move(o.position(s.elapsed), o.frame.Orient())
	}
	for _, sp := range s.spins {
		sp.frame.Move(sp.frame.Position(), sp.orient(s.elapsed))
	}
	for _, b := range s.Space.Bodies() {
		b.Move(b.Position())
	}
}

// Eclipse moves the moon onto the planet-star line, on the star's side,
// so the planet sits in its shadow. It does nothing without a moon.
func (s *System) Eclipse() {
	if s.Moon == nil || s.Planet == nil || s.Star == nil {
		return
	}

	toStar := s.Star.PositionRelTo(s.Planet)
	if toStar.Len() == 0 {
		return
	}
	toStar = toStar.Normalize()

	// solve the orbit's phase so Advance carries on from here
	o := s.moonOrbit
	a := math.Atan2(toStar.Z(), toStar.X())
	o.phase = a - 2*math.Pi*s.elapsed/o.period

	// exactly on the line, even when the star is off the orbital plane
	o.frame.SetPosition(toStar.Mul(o.radius))
}
