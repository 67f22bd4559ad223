package scene

import (
	"orrery/internal/galaxy"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind is the closed classification of bodies the renderer cares about.
type Kind int

const (
	KindShip Kind = iota
	KindTerrain
	KindPlanet
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindTerrain:
		return "terrain"
	case KindPlanet:
		return "planet"
	case KindStar:
		return "star"
	default:
		return "unknown"
	}
}

// IsTerrain reports whether bodies of this kind have a surface worth showing
// from afar (and so get a billboard instead of vanishing).
func (k Kind) IsTerrain() bool {
	return k == KindTerrain || k == KindPlanet || k == KindStar
}

// CanEclipse reports whether bodies of this kind cast shadows on others.
func (k Kind) CanEclipse() bool {
	return k == KindPlanet || k == KindStar
}

type Flags uint32

const (
	FlagDrawExclude Flags = 1 << iota
	FlagDrawLast
)

// Body is anything that exists in space and may be drawn.
type Body struct {
	Name       string
	Kind       Kind
	Flags      Flags
	PhysRadius float64
	ClipRadius float64
	// SystemBody is the catalog entry for celestial bodies; nil for ships.
	SystemBody *galaxy.SystemBody

	frame                  *Frame
	pos, oldPos, interpPos mgl64.Vec3
}

// NewBody creates a body whose clip radius equals its physical radius.
func NewBody(name string, kind Kind, radius float64) *Body {
	return &Body{
		Name:       name,
		Kind:       kind,
		PhysRadius: radius,
		ClipRadius: radius,
	}
}

// NewTerrainBody creates a celestial body sized from its catalog entry. The
// clip radius uses the equatorial radius so flattened bodies never cull early.
func NewTerrainBody(kind Kind, sb *galaxy.SystemBody) *Body {
	return &Body{
		Name:       sb.Name,
		Kind:       kind,
		PhysRadius: sb.PolarRadius(),
		ClipRadius: sb.EquatorialRadius(),
		SystemBody: sb,
	}
}

func (b *Body) HasFlag(f Flags) bool { return b.Flags&f != 0 }

func (b *Body) Frame() *Frame { return b.frame }

func (b *Body) SetFrame(f *Frame) { b.frame = f }

func (b *Body) Position() mgl64.Vec3 { return b.pos }

// SetPosition places the body in its frame without movement.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.pos, b.oldPos, b.interpPos = p, p, p
}

// Move records the current position as the previous tick's and sets a new one.
func (b *Body) Move(p mgl64.Vec3) {
	b.oldPos = b.pos
	b.pos = p
}

func (b *Body) InterpPosition() mgl64.Vec3 { return b.interpPos }

func (b *Body) UpdateInterpTransform(alpha float64) {
	b.interpPos = lerp(b.oldPos, b.pos, alpha)
}

// PositionRelToFrame returns the body's position in f's coordinates.
func (b *Body) PositionRelToFrame(f *Frame) mgl64.Vec3 {
	return b.frame.PositionRelTo(f).Add(b.frame.OrientRelTo(f).Mul3x1(b.pos))
}

// PositionRelTo returns the vector from other to b, in other's frame axes.
func (b *Body) PositionRelTo(other *Body) mgl64.Vec3 {
	return b.PositionRelToFrame(other.frame).Sub(other.pos)
}
