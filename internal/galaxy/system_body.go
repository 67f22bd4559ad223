// Package galaxy holds the static star system catalog: what each body is,
// how big it is and what colour it shows from afar.
package galaxy

import "orrery/internal/graphics"

type BodyType int

const (
	TypeGravPoint BodyType = iota
	TypeBrownDwarf
	TypeWhiteDwarf
	TypeStarM
	TypeStarK
	TypeStarG
	TypeStarF
	TypeStarA
	TypeStarB
	TypeStarO
	TypeStarMGiant
	TypeStarKGiant
	TypeStarGGiant
	TypeStarFGiant
	TypeStarAGiant
	TypeStarBGiant
	TypeStarOGiant
	TypeStarMSuperGiant
	TypeStarKSuperGiant
	TypeStarGSuperGiant
	TypeStarFSuperGiant
	TypeStarASuperGiant
	TypeStarBSuperGiant
	TypeStarOSuperGiant
	TypeStarMHyperGiant
	TypeStarKHyperGiant
	TypeStarGHyperGiant
	TypeStarFHyperGiant
	TypeStarAHyperGiant
	TypeStarBHyperGiant
	TypeStarOHyperGiant
	TypeStarMWolfRayet
	TypeStarBWolfRayet
	TypeStarOWolfRayet
	TypeStarStellarBlackHole
	TypeStarIntermediateBlackHole
	TypeStarSupermassiveBlackHole
	TypePlanetGasGiant
	TypePlanetAsteroid
	TypePlanetTerrestrial
	TypeStarportOrbital
	TypeStarportSurface

	typeStarMin = TypeBrownDwarf
	typeStarMax = TypeStarSupermassiveBlackHole
)

type SuperType int

const (
	SuperTypeNone SuperType = iota
	SuperTypeStar
	SuperTypeRockyPlanet
	SuperTypeGasGiant
	SuperTypeStarport
)

// IsStar reports whether t is any kind of star, dwarf or black hole.
func (t BodyType) IsStar() bool {
	return t >= typeStarMin && t <= typeStarMax
}

func (t BodyType) SuperType() SuperType {
	switch {
	case t.IsStar():
		return SuperTypeStar
	case t == TypePlanetGasGiant:
		return SuperTypeGasGiant
	case t == TypePlanetAsteroid, t == TypePlanetTerrestrial:
		return SuperTypeRockyPlanet
	case t == TypeStarportOrbital, t == TypeStarportSurface:
		return SuperTypeStarport
	default:
		return SuperTypeNone
	}
}

// SystemBody is the catalog entry behind a dynamic body.
type SystemBody struct {
	Name string
	Type BodyType
	// Radius is in sol radii for stars and earth radii for everything else,
	// measured at the equator.
	Radius float64
	// AspectRatio is equatorial over polar radius; zero means spherical.
	AspectRatio float64

	Parent   *SystemBody
	Children []*SystemBody
}

// NewSystemBody creates a catalog entry and links it under parent (if any).
func NewSystemBody(name string, t BodyType, radius float64, parent *SystemBody) *SystemBody {
	sb := &SystemBody{
		Name:   name,
		Type:   t,
		Radius: radius,
		Parent: parent,
	}
	if parent != nil {
		parent.Children = append(parent.Children, sb)
	}
	return sb
}

func (sb *SystemBody) SuperType() SuperType {
	return sb.Type.SuperType()
}

func (sb *SystemBody) aspect() float64 {
	if sb.AspectRatio <= 0 {
		return 1
	}
	return sb.AspectRatio
}

// PolarRadius returns the polar radius in metres. Stars are flattened by the
// aspect ratio, the rest are treated as spheres of their equatorial radius.
func (sb *SystemBody) PolarRadius() float64 {
	if sb.SuperType() <= SuperTypeStar {
		return sb.Radius / sb.aspect() * SolRadius
	}
	return sb.Radius * EarthRadius
}

// EquatorialRadius returns the unadjusted equatorial radius in metres.
func (sb *SystemBody) EquatorialRadius() float64 {
	if sb.SuperType() <= SuperTypeStar {
		return sb.Radius * SolRadius
	}
	return sb.Radius * EarthRadius
}

// IsPlanet reports whether sb is rocky or gaseous and orbits a star directly.
func (sb *SystemBody) IsPlanet() bool {
	st := sb.SuperType()
	if st != SuperTypeRockyPlanet && st != SuperTypeGasGiant {
		return false
	}
	for p := sb.Parent; p != nil; p = p.Parent {
		switch p.SuperType() {
		case SuperTypeStar:
			return true
		case SuperTypeNone:
			// barycentre of a binary; keep climbing
			continue
		default:
			return false
		}
	}
	return false
}

func (sb *SystemBody) IsMoon() bool {
	return sb.SuperType() == SuperTypeRockyPlanet && !sb.IsPlanet()
}

// Albedo is the colour used for a distant planet's billboard.
func (sb *SystemBody) Albedo() graphics.Color {
	return graphics.Color{R: 200, G: 200, B: 200, A: 255}
}

var bodyTypeNames = [...]string{
	TypeGravPoint:                 "gravpoint",
	TypeBrownDwarf:                "brown dwarf",
	TypeWhiteDwarf:                "white dwarf",
	TypeStarM:                     "M star",
	TypeStarK:                     "K star",
	TypeStarG:                     "G star",
	TypeStarF:                     "F star",
	TypeStarA:                     "A star",
	TypeStarB:                     "B star",
	TypeStarO:                     "O star",
	TypeStarMGiant:                "M giant",
	TypeStarKGiant:                "K giant",
	TypeStarGGiant:                "G giant",
	TypeStarFGiant:                "F giant",
	TypeStarAGiant:                "A giant",
	TypeStarBGiant:                "B giant",
	TypeStarOGiant:                "O giant",
	TypeStarMSuperGiant:           "M supergiant",
	TypeStarKSuperGiant:           "K supergiant",
	TypeStarGSuperGiant:           "G supergiant",
	TypeStarFSuperGiant:           "F supergiant",
	TypeStarASuperGiant:           "A supergiant",
	TypeStarBSuperGiant:           "B supergiant",
	TypeStarOSuperGiant:           "O supergiant",
	TypeStarMHyperGiant:           "M hypergiant",
	TypeStarKHyperGiant:           "K hypergiant",
	TypeStarGHyperGiant:           "G hypergiant",
	TypeStarFHyperGiant:           "F hypergiant",
	TypeStarAHyperGiant:           "A hypergiant",
	TypeStarBHyperGiant:           "B hypergiant",
	TypeStarOHyperGiant:           "O hypergiant",
	TypeStarMWolfRayet:            "M Wolf-Rayet",
	TypeStarBWolfRayet:            "B Wolf-Rayet",
	TypeStarOWolfRayet:            "O Wolf-Rayet",
	TypeStarStellarBlackHole:      "stellar black hole",
	TypeStarIntermediateBlackHole: "intermediate black hole",
	TypeStarSupermassiveBlackHole: "supermassive black hole",
	TypePlanetGasGiant:            "gas giant",
	TypePlanetAsteroid:            "asteroid",
	TypePlanetTerrestrial:         "terrestrial planet",
	TypeStarportOrbital:           "orbital starport",
	TypeStarportSurface:           "surface starport",
}

func (t BodyType) String() string {
	if t < 0 || int(t) >= len(bodyTypeNames) {
		return "unknown"
	}
	return bodyTypeNames[t]
}
