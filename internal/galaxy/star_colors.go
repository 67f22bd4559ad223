package galaxy

import "orrery/internal/graphics"

var (
	colRed       = graphics.Color{R: 255, G: 170, B: 127, A: 255}
	colOrange    = graphics.Color{R: 255, G: 255, B: 178, A: 255}
	colWhite     = graphics.Color{R: 255, G: 255, B: 255, A: 255}
	colBlue      = graphics.Color{R: 178, G: 178, B: 255, A: 255}
	colPurple    = graphics.Color{R: 255, G: 178, B: 255, A: 255}
	colBlackHole = graphics.Color{R: 10, G: 10, B: 10, A: 255}
)

// starRealColors is indexed by BodyType; only the star range is populated.
var starRealColors = [...]graphics.Color{
	TypeGravPoint:  {A: 255},
	TypeBrownDwarf: {R: 128, A: 255},
	TypeWhiteDwarf: colWhite,

	TypeStarM: colRed,
	TypeStarK: colOrange,
	TypeStarG: colWhite,
	TypeStarF: colWhite,
	TypeStarA: colWhite,
	TypeStarB: colBlue,
	TypeStarO: colPurple,

	TypeStarMGiant: colRed,
	TypeStarKGiant: colOrange,
	TypeStarGGiant: colWhite,
	TypeStarFGiant: colWhite,
	TypeStarAGiant: colWhite,
	TypeStarBGiant: colBlue,
	TypeStarOGiant: colPurple,

	TypeStarMSuperGiant: colRed,
	TypeStarKSuperGiant: colOrange,
	TypeStarGSuperGiant: colWhite,
	TypeStarFSuperGiant: colWhite,
	TypeStarASuperGiant: colWhite,
	TypeStarBSuperGiant: colBlue,
	TypeStarOSuperGiant: colPurple,

	TypeStarMHyperGiant: colRed,
	TypeStarKHyperGiant: colOrange,
	TypeStarGHyperGiant: colWhite,
	TypeStarFHyperGiant: colWhite,
	TypeStarAHyperGiant: colWhite,
	TypeStarBHyperGiant: colBlue,
	TypeStarOHyperGiant: colPurple,

	TypeStarMWolfRayet: colRed,
	TypeStarBWolfRayet: colBlue,
	TypeStarOWolfRayet: colPurple,

	TypeStarStellarBlackHole:      colBlackHole,
	TypeStarIntermediateBlackHole: colBlackHole,
	TypeStarSupermassiveBlackHole: colBlackHole,
}

// StarRealColor returns the apparent colour of a star of type t. Types past
// the star range (planets, starports) fall back to white.
func StarRealColor(t BodyType) graphics.Color {
	if t < 0 || int(t) >= len(starRealColors) {
		return graphics.White
	}
	return starRealColors[t]
}
