package galaxy

// Distances in metres.
const (
	AU          = 149598000000.0
	SolRadius   = 6.955e8
	EarthRadius = 6378135.0
)
