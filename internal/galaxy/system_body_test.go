package galaxy

import (
	"testing"

	"orrery/internal/graphics"
)

func TestSuperType(t *testing.T) {
	tests := []struct {
		t    BodyType
		want SuperType
	}{
		{TypeGravPoint, SuperTypeNone},
		{TypeBrownDwarf, SuperTypeStar},
		{TypeStarG, SuperTypeStar},
		{TypeStarOWolfRayet, SuperTypeStar},
		{TypeStarSupermassiveBlackHole, SuperTypeStar},
		{TypePlanetGasGiant, SuperTypeGasGiant},
		{TypePlanetAsteroid, SuperTypeRockyPlanet},
		{TypePlanetTerrestrial, SuperTypeRockyPlanet},
		{TypeStarportOrbital, SuperTypeStarport},
		{TypeStarportSurface, SuperTypeStarport},
	}
	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			if got := tt.t.SuperType(); got != tt.want {
				t.Errorf("SuperType = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRadii(t *testing.T) {
	star := NewSystemBody("star", TypeStarG, 2, nil)
	star.AspectRatio = 2
	if got := star.PolarRadius(); got != SolRadius {
		t.Errorf("star polar radius = %v, want %v", got, SolRadius)
	}
	if got := star.EquatorialRadius(); got != 2*SolRadius {
		t.Errorf("star equatorial radius = %v", got)
	}

	planet := NewSystemBody("planet", TypePlanetTerrestrial, 0.5, star)
	planet.AspectRatio = 3
	if planet.PolarRadius() != 0.5*EarthRadius || planet.EquatorialRadius() != 0.5*EarthRadius {
		t.Errorf("planet radii should ignore the aspect ratio")
	}

	round := NewSystemBody("round", TypeStarM, 1, nil)
	if round.PolarRadius() != round.EquatorialRadius() {
		t.Errorf("zero aspect ratio should mean a sphere")
	}
}

func TestPlanetsAndMoons(t *testing.T) {
	bary := NewSystemBody("barycentre", TypeGravPoint, 0, nil)
	star := NewSystemBody("star", TypeStarK, 1, bary)
	planet := NewSystemBody("planet", TypePlanetTerrestrial, 1, star)
	moon := NewSystemBody("moon", TypePlanetAsteroid, 0.1, planet)
	giant := NewSystemBody("giant", TypePlanetGasGiant, 11, star)
	pair := NewSystemBody("pair", TypeGravPoint, 0, star)
	paired := NewSystemBody("paired", TypePlanetTerrestrial, 1, pair)
	circumbinary := NewSystemBody("circumbinary", TypePlanetTerrestrial, 1, bary)
	rogue := NewSystemBody("rogue", TypePlanetTerrestrial, 1, nil)
	port := NewSystemBody("port", TypeStarportOrbital, 0, planet)

	tests := []struct {
		sb           *SystemBody
		planet, moon bool
	}{
		{star, false, false},
		{planet, true, false},
		{moon, false, true},
		{giant, true, false},
		{paired, true, false},
		// nothing above the barycentre is a star
		{circumbinary, false, true},
		{rogue, false, true},
		{port, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.sb.Name, func(t *testing.T) {
			if got := tt.sb.IsPlanet(); got != tt.planet {
				t.Errorf("IsPlanet = %v, want %v", got, tt.planet)
			}
			if got := tt.sb.IsMoon(); got != tt.moon {
				t.Errorf("IsMoon = %v, want %v", got, tt.moon)
			}
		})
	}

	if len(star.Children) != 3 || star.Children[0] != planet {
		t.Errorf("children not linked in order")
	}
}

func TestStarRealColor(t *testing.T) {
	tests := []struct {
		t    BodyType
		want graphics.Color
	}{
		{TypeStarM, graphics.Color{R: 255, G: 170, B: 127, A: 255}},
		{TypeStarK, graphics.Color{R: 255, G: 255, B: 178, A: 255}},
		{TypeStarG, graphics.White},
		{TypeStarB, graphics.Color{R: 178, G: 178, B: 255, A: 255}},
		{TypeStarOSuperGiant, graphics.Color{R: 255, G: 178, B: 255, A: 255}},
		{TypeBrownDwarf, graphics.Color{R: 128, A: 255}},
		{TypeStarStellarBlackHole, graphics.Color{R: 10, G: 10, B: 10, A: 255}},
		{TypeGravPoint, graphics.Color{A: 255}},
		{TypePlanetTerrestrial, graphics.White},
		{BodyType(-1), graphics.White},
	}
	for _, tt := range tests {
		t.Run(tt.t.String(), func(t *testing.T) {
			if got := StarRealColor(tt.t); got != tt.want {
				t.Errorf("StarRealColor = %v, want %v", got, tt.want)
			}
		})
	}
}
